package schedule_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
	"github.com/Djalobre/kvotizza-fe-sub000/internal/schedule"
)

func writeScheduleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedules.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schedule file: %v", err)
	}
	return path
}

func TestFileSource_Load(t *testing.T) {
	path := writeScheduleFile(t, `
[[schedule]]
bookmaker = "Mozzartbet"

  [[schedule.thresholds]]
  min_selections = 5
  min_odds = 1.35
  bonus_percent = 3.0
  alternative_percent = 2.0
  condition = "exclude"
  categories = ["Konačni ishod"]
  description = "reduced with full-time result picks"

  [[schedule.thresholds]]
  min_selections = 10
  min_odds = 1.35
  bonus_percent = 7.0

[[schedule]]
bookmaker = "Pinnbet"

  [[schedule.thresholds]]
  min_selections = 5
  min_odds = 1.35
  bonus_percent = 3.0
`)

	schedules, err := schedule.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("len(schedules) = %d, want 2", len(schedules))
	}

	mozzart := schedules[0]
	if mozzart.Bookmaker != "Mozzartbet" {
		t.Errorf("Bookmaker = %q, want Mozzartbet", mozzart.Bookmaker)
	}
	if len(mozzart.Thresholds) != 2 {
		t.Fatalf("len(Thresholds) = %d, want 2", len(mozzart.Thresholds))
	}

	conditional := mozzart.Thresholds[0]
	if conditional.Condition.Mode != domain.FilterExclude {
		t.Errorf("Condition.Mode = %q, want exclude", conditional.Condition.Mode)
	}
	if len(conditional.Condition.Categories) != 1 || conditional.Condition.Categories[0] != "Konačni ishod" {
		t.Errorf("Condition.Categories = %v, want [Konačni ishod]", conditional.Condition.Categories)
	}
	if conditional.AlternativePercent == nil || *conditional.AlternativePercent != 2.0 {
		t.Errorf("AlternativePercent = %v, want 2.0", conditional.AlternativePercent)
	}

	plain := mozzart.Thresholds[1]
	if plain.Condition.Mode != domain.FilterNone {
		t.Errorf("plain tier Condition.Mode = %q, want none", plain.Condition.Mode)
	}
	if plain.AlternativePercent != nil {
		t.Errorf("plain tier AlternativePercent = %v, want nil", plain.AlternativePercent)
	}

	// The loaded table must pass validation as-is.
	if _, err := schedule.Build(schedules); err != nil {
		t.Errorf("Build(loaded) = %v, want nil", err)
	}
}

func TestFileSource_Load_UnknownConditionSurvivesForValidate(t *testing.T) {
	path := writeScheduleFile(t, `
[[schedule]]
bookmaker = "Mozzartbet"

  [[schedule.thresholds]]
  min_selections = 5
  min_odds = 1.35
  bonus_percent = 3.0
  condition = "sometimes"
  categories = ["Konačni ishod"]
`)

	schedules, err := schedule.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}
	if _, err := schedule.Build(schedules); err == nil {
		t.Fatal("Build() = nil, want validation error for unknown condition")
	}
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	_, err := schedule.FileSource{Path: "does/not/exist.toml"}.Load(context.Background())
	if err == nil {
		t.Fatal("Load() = nil, want error")
	}
}
