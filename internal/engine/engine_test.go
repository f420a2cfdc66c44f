package engine_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/engine"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/schedule"
)

func defaultEngine(t *testing.T) *engine.Engine {
	t.Helper()
	table, err := schedule.Build(schedule.Default())
	if err != nil {
		t.Fatalf("build default schedules: %v", err)
	}
	return engine.New(table)
}

func TestEngine_Analyze(t *testing.T) {
	eng := defaultEngine(t)

	convey.Convey("Given a two-leg ticket at odds 2.00 and 1.80 with stake 100", t, func() {
		selections := []domain.Selection{
			sel(1, "Konačni ishod", "1"),
			sel(2, "Konačni ishod", "2"),
		}
		offers := map[int]domain.MatchOffer{
			1: offer(1, book("Soccerbet", "Konačni ishod", "1", 2.00)),
			2: offer(2, book("Soccerbet", "Konačni ishod", "2", 1.80)),
		}

		res := eng.Analyze(selections, offers, 100)

		convey.Convey("Then the potential win is stake times the odds product", func() {
			convey.So(res.Rankings, convey.ShouldHaveLength, 1)
			convey.So(res.Rankings[0].OddsProduct, convey.ShouldAlmostEqual, 3.6, 1e-9)
			convey.So(res.Rankings[0].PotentialWin, convey.ShouldAlmostEqual, 360, 1e-9)
			convey.So(res.Bonuses, convey.ShouldBeEmpty)
			convey.So(res.BestBonus, convey.ShouldBeNil)
		})
	})

	convey.Convey("Given five Pinnbet legs all at or above 1.35 with stake 100", t, func() {
		selections := make([]domain.Selection, 0, 5)
		offers := make(map[int]domain.MatchOffer, 5)
		odds := []float64{1.35, 1.40, 1.50, 1.60, 1.70}
		for i, o := range odds {
			id := i + 1
			selections = append(selections, sel(id, "Ukupno golova", "3+"))
			offers[id] = offer(id, book("Pinnbet", "Ukupno golova", "3+", o))
		}

		res := eng.Analyze(selections, offers, 100)

		convey.Convey("Then the 5-leg 3% tier applies", func() {
			convey.So(res.Bonuses, convey.ShouldHaveLength, 1)
			b := res.Bonuses[0]
			convey.So(b.Bookmaker, convey.ShouldEqual, "Pinnbet")
			convey.So(b.AppliedThreshold.MinSelections, convey.ShouldEqual, 5)
			convey.So(b.BonusPercent, convey.ShouldEqual, 3)
			product := 1.35 * 1.40 * 1.50 * 1.60 * 1.70
			convey.So(b.BonusAmount, convey.ShouldAlmostEqual, 100*product*0.03, 1e-9)
			convey.So(res.BestBonus, convey.ShouldNotBeNil)
			convey.So(res.BestBonus.Bookmaker, convey.ShouldEqual, "Pinnbet")
		})

		convey.Convey("Then the ranking folds the bonus into the potential win", func() {
			product := 1.35 * 1.40 * 1.50 * 1.60 * 1.70
			want := 100*product + 100*product*0.03
			convey.So(res.Rankings[0].PotentialWin, convey.ShouldAlmostEqual, want, 1e-9)
		})
	})

	convey.Convey("Given Mozzartbet legs including a full-time result pick", t, func() {
		selections := []domain.Selection{
			sel(1, "Konačni ishod", "1"),
			sel(2, "Ukupno golova", "3+"),
			sel(3, "Ukupno golova", "0-2"),
			sel(4, "Ukupno golova", "3+"),
			sel(5, "Ukupno golova", "3+"),
		}
		offers := map[int]domain.MatchOffer{
			1: offer(1, book("Mozzartbet", "Konačni ishod", "1", 1.50)),
			2: offer(2, book("Mozzartbet", "Ukupno golova", "3+", 1.40)),
			3: offer(3, book("Mozzartbet", "Ukupno golova", "0-2", 1.45)),
			4: offer(4, book("Mozzartbet", "Ukupno golova", "3+", 1.55)),
			5: offer(5, book("Mozzartbet", "Ukupno golova", "3+", 1.60)),
		}

		res := eng.Analyze(selections, offers, 100)

		convey.Convey("Then the alternative percent applies and a swap is suggested", func() {
			convey.So(res.Bonuses, convey.ShouldHaveLength, 1)
			convey.So(res.Bonuses[0].BonusPercent, convey.ShouldEqual, 2)
			convey.So(res.Bonuses[0].ConditionSatisfied, convey.ShouldNotBeNil)
			convey.So(*res.Bonuses[0].ConditionSatisfied, convey.ShouldBeFalse)

			convey.So(res.Suggestions, convey.ShouldHaveLength, 1)
			convey.So(res.Suggestions[0].Bookmaker, convey.ShouldEqual, "Mozzartbet")
			convey.So(res.Suggestions[0].PotentialBonus,
				convey.ShouldBeGreaterThan, res.Suggestions[0].CurrentBonus)
		})
	})

	convey.Convey("Given a bet type nobody quotes", t, func() {
		selections := []domain.Selection{sel(1, "Konačni ishod", "X2X")}
		offers := map[int]domain.MatchOffer{
			1: offer(1,
				book("Mozzartbet", "Konačni ishod", "1", 2.00),
				book("Maxbet", "Konačni ishod", "1", 1.90),
			),
		}

		res := eng.Analyze(selections, offers, 100)

		convey.Convey("Then no bookmaker gets a ranking and the breakdown shows it missing everywhere", func() {
			convey.So(res.Rankings, convey.ShouldBeEmpty)
			convey.So(res.Breakdown, convey.ShouldHaveLength, 1)
			for _, q := range res.Breakdown[0].Quotes {
				convey.So(q.Available, convey.ShouldBeFalse)
			}
		})
	})

	convey.Convey("Given identical inputs run twice", t, func() {
		selections := []domain.Selection{
			sel(1, "Konačni ishod", "1"),
			sel(2, "Ukupno golova", "3+"),
		}
		offers := map[int]domain.MatchOffer{
			1: offer(1,
				book("Mozzartbet", "Konačni ishod", "1", 2.00),
				book("Pinnbet", "Konačni ishod", "1", 2.05),
			),
			2: offer(2,
				book("Mozzartbet", "Ukupno golova", "3+", 1.40),
				book("Pinnbet", "Ukupno golova", "3+", 1.45),
			),
		}

		first := eng.Analyze(selections, offers, 50)
		second := eng.Analyze(selections, offers, 50)

		convey.Convey("Then the results are identical", func() {
			convey.So(second, convey.ShouldResemble, first)
		})
	})

	convey.Convey("Given an empty selection set", t, func() {
		res := eng.Analyze(nil, map[int]domain.MatchOffer{}, 100)

		convey.Convey("Then everything is empty and nothing panics", func() {
			convey.So(res.Rankings, convey.ShouldBeEmpty)
			convey.So(res.Breakdown, convey.ShouldBeEmpty)
			convey.So(res.Bonuses, convey.ShouldBeEmpty)
			convey.So(res.BestBonus, convey.ShouldBeNil)
			convey.So(res.Suggestions, convey.ShouldBeEmpty)
		})
	})
}
