package search

// Params holds the ranking constants. The defaults are empirically tuned;
// they are exposed through configuration but should not be changed without a
// signal that ranking behavior is intended to move.
type Params struct {
	// ScoreFloor drops semantic candidates at or below this score.
	ScoreFloor float64
	// TitleBoost is added per query token literally present in the title.
	TitleBoost float64
	// CheapCeiling keeps products priced at most this multiple of the
	// result-set median when the query asks for cheap items.
	CheapCeiling float64
	// ExpensiveFloor keeps products priced at least this multiple of the
	// median when the query asks for expensive items.
	ExpensiveFloor float64
	// KeywordWeight discounts keyword-only hits during hybrid fusion.
	KeywordWeight float64
	// OverlapBoost scales the cross-confirmation bonus for hits present in
	// both hybrid rankings.
	OverlapBoost float64
}

// DefaultParams returns the tuned ranking defaults.
func DefaultParams() Params {
	return Params{
		ScoreFloor:     0.4,
		TitleBoost:     0.3,
		CheapCeiling:   1.5,
		ExpensiveFloor: 0.7,
		KeywordWeight:  0.5,
		OverlapBoost:   0.3,
	}
}
