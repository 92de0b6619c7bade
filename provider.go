package ratings

import (
	"slices"
	"strings"
)

// Canonical provider tokens.
const (
	ProviderFitch     = "Fitch"
	ProviderMoody     = "Moody"
	ProviderSP        = "SP"
	ProviderBloomberg = "Bloomberg"
	ProviderDBRS      = "DBRS"
	ProviderICE       = "ICE"
)

// providerAliases maps case-insensitive substrings of free-text provider
// names (typically column headers like "DBRS Ratings" or "rtg_S&P
// composite") to canonical tokens. Matching iterates in declared order and
// the last matching alias wins, so a string containing several aliases
// resolves deterministically. Short aliases prone to accidental hits are
// listed first so a longer agency name wins, e.g. "Moody's Investors
// Service" contains "ice" but resolves to Moody.
var providerAliases = []struct {
	alias     string
	canonical string
}{
	{"ice", ProviderICE},
	{"sp", ProviderSP},
	{"bloomberg", ProviderBloomberg},
	{"dbrs", ProviderDBRS},
	{"fitch", ProviderFitch},
	{"moody", ProviderMoody},
	{"moody's", ProviderMoody},
	{"s&p", ProviderSP},
}

// validProviders lists the canonical providers publishing ratings for each
// tenor. Bloomberg and ICE carry long-term scales only.
var validProviders = map[Tenor][]string{
	TenorLongTerm:  {ProviderFitch, ProviderMoody, ProviderSP, ProviderBloomberg, ProviderDBRS, ProviderICE},
	TenorShortTerm: {ProviderFitch, ProviderMoody, ProviderSP, ProviderDBRS},
}

// ResolveProvider normalizes a free-text provider name into a canonical
// token and checks it against the providers valid for the tenor.
func ResolveProvider(raw string, tenor Tenor) (string, error) {
	tenor = normTenor(tenor)
	valid, ok := validProviders[tenor]
	if !ok {
		return "", &InvalidTenorError{Tenor: tenor}
	}

	lower := strings.ToLower(raw)
	resolved := ""
	for _, a := range providerAliases {
		if strings.Contains(lower, a.alias) {
			resolved = a.canonical
		}
	}

	if resolved == "" || !slices.Contains(valid, resolved) {
		return "", &InvalidProviderError{Raw: raw, Valid: valid}
	}

	return resolved, nil
}

// ResolveProviders resolves a list of provider names positionally.
func ResolveProviders(raws []string, tenor Tenor) ([]string, error) {
	resolved := make([]string, len(raws))
	for i, raw := range raws {
		p, err := ResolveProvider(raw, tenor)
		if err != nil {
			return nil, err
		}
		resolved[i] = p
	}
	return resolved, nil
}
