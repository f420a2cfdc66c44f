package oddsfeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Djalobre/kvotizza-fe-sub000/internal/domain"
)

func TestClient_MatchOffer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/matches/42/offer" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"matchId": 42,
			"bookmakerOffers": [{
				"name": "Mozzartbet",
				"categories": [{
					"name": "Konačni ishod",
					"odds": [
						{"type": "1", "value": 2.05, "trend": "up"},
						{"type": "X", "value": 3.30, "trend": "weird"},
						{"type": "2", "value": null, "trend": "down"}
					]
				}]
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})

	offer, err := c.MatchOffer(context.Background(), 42)
	if err != nil {
		t.Fatalf("MatchOffer() = %v, want nil", err)
	}

	if offer.MatchID != 42 {
		t.Errorf("MatchID = %d, want 42", offer.MatchID)
	}
	if len(offer.BookmakerOffers) != 1 {
		t.Fatalf("len(BookmakerOffers) = %d, want 1", len(offer.BookmakerOffers))
	}
	odds := offer.BookmakerOffers[0].Categories[0].Odds
	if len(odds) != 3 {
		t.Fatalf("len(Odds) = %d, want 3", len(odds))
	}
	if odds[0].Trend != domain.TrendUp {
		t.Errorf("odds[0].Trend = %q, want up", odds[0].Trend)
	}
	if odds[1].Trend != domain.TrendNone {
		t.Errorf("odds[1].Trend = %q, want none (unknown trend)", odds[1].Trend)
	}
	if odds[2].Value != 0 || odds[2].Playable() {
		t.Errorf("null value should land as unplayable 0, got %v", odds[2])
	}
}

func TestClient_MatchOffer_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.MatchOffer(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MatchOffer() = %v, want ErrNotFound", err)
	}
}

func TestClient_MatchOffer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.MatchOffer(context.Background(), 7)
	if err == nil {
		t.Fatal("MatchOffer() = nil, want error")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Errorf("MatchOffer() = %v, should not be ErrNotFound", err)
	}
}

func TestClient_MatchOffer_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.MatchOffer(context.Background(), 7)
	if !errors.Is(err, domain.ErrFeedUnreachable) {
		t.Errorf("MatchOffer() = %v, want ErrFeedUnreachable", err)
	}
}
