package domain

import "fmt"

// Selection is one bookmaker-agnostic pick from the dashboard: a match plus
// the category / bet-type pair the user wants in their accumulator. The
// engine treats it as an opaque value object.
type Selection struct {
	MatchID    int    `json:"matchId"`
	MatchLabel string `json:"matchLabel"`
	League     string `json:"league"`
	Category   string `json:"category"`
	BetType    string `json:"betType"`
}

// Key uniquely identifies a selection within one analysis pass.
func (s Selection) Key() string {
	return fmt.Sprintf("%d|%s|%s", s.MatchID, s.Category, s.BetType)
}

// ResolvedSelection is a Selection bound to one bookmaker's quoted price.
// Resolved selections exist only during a single computation pass and are
// never persisted.
type ResolvedSelection struct {
	MatchID   int     `json:"matchId"`
	Bookmaker string  `json:"bookmaker"`
	Category  string  `json:"category"`
	BetType   string  `json:"betType"`
	Odds      float64 `json:"odds"`
}
