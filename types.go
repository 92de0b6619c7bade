package ratings

// Tenor selects between the long-term and short-term rating scales.
type Tenor string

const (
	TenorLongTerm  Tenor = "long-term"
	TenorShortTerm Tenor = "short-term"
)

// Strategy controls which long-term score bucket represents a short-term
// rating. The empty strategy means StrategyBase.
type Strategy string

const (
	StrategyBest  Strategy = "best"
	StrategyBase  Strategy = "base"
	StrategyWorst Strategy = "worst"
)

// Method selects the consolidation rule applied by ConsolidateRatings.
type Method string

const (
	MethodBest       Method = "best"
	MethodSecondBest Method = "second_best"
	MethodWorst      Method = "worst"
)

// normTenor applies the long-term default.
func normTenor(tenor Tenor) Tenor {
	if tenor == "" {
		return TenorLongTerm
	}
	return tenor
}

// normStrategy applies the base default and rejects unknown strategies.
func normStrategy(strategy Strategy) (Strategy, error) {
	switch strategy {
	case "":
		return StrategyBase, nil
	case StrategyBest, StrategyBase, StrategyWorst:
		return strategy, nil
	default:
		return "", &InvalidStrategyError{Strategy: strategy}
	}
}
