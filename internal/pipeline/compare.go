package pipeline

import (
	"math"

	"pricecomp/internal"
)

// Session folds one comparison run: one chosen-or-skipped product pair
// per query, with running totals per store. A skipped side contributes
// nothing and never blocks the other store's total.
type Session struct {
	items   []internal.ComparisonItem
	tjTotal float64
	wfTotal float64
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) AddItem(query string, tj, wf *internal.Product) {
	s.items = append(s.items, internal.ComparisonItem{Query: query, TraderJoes: tj, WholeFoods: wf})
	if tj != nil {
		s.tjTotal += tj.Price
	}
	if wf != nil {
		s.wfTotal += wf.Price
	}
}

func (s *Session) Len() int { return len(s.items) }

// Result closes out the session. Trader Joe's wins exact total ties.
func (s *Session) Result() internal.ComparisonResult {
	cheaper := internal.StoreWholeFoods
	if s.tjTotal <= s.wfTotal {
		cheaper = internal.StoreTraderJoes
	}
	return internal.ComparisonResult{
		TraderJoesTotal: s.tjTotal,
		WholeFoodsTotal: s.wfTotal,
		Savings:         math.Abs(s.tjTotal - s.wfTotal),
		CheaperStore:    cheaper,
		Items:           s.items,
	}
}

// ItemSavings is the per-item price gap for display. It only exists when
// both sides were chosen; "not comparable" is never rendered as zero.
// Ties go to Trader Joe's, same as the session total.
func ItemSavings(item internal.ComparisonItem) (amount float64, cheaper internal.Store, ok bool) {
	if !item.Comparable() {
		return 0, "", false
	}
	cheaper = internal.StoreWholeFoods
	if item.TraderJoes.Price <= item.WholeFoods.Price {
		cheaper = internal.StoreTraderJoes
	}
	return math.Abs(item.TraderJoes.Price - item.WholeFoods.Price), cheaper, true
}
