package ratings

import (
	"errors"
	"fmt"
)

// ErrMissingProvider is returned when a scalar translation is requested
// without a rating provider.
var ErrMissingProvider = errors.New("rating provider must not be empty")

// InvalidProviderError reports a provider string that matched no known
// agency alias, or resolved to an agency that does not publish ratings for
// the requested tenor.
type InvalidProviderError struct {
	Raw   string   // the offending input
	Valid []string // canonical providers valid for the tenor
}

func (e *InvalidProviderError) Error() string {
	return fmt.Sprintf("%q is not a valid rating provider; must contain one of %v", e.Raw, e.Valid)
}

// InvalidTenorError reports a tenor outside {long-term, short-term}.
type InvalidTenorError struct {
	Tenor Tenor
}

func (e *InvalidTenorError) Error() string {
	return fmt.Sprintf("%q is not a valid tenor; must be one of [long-term short-term]", string(e.Tenor))
}

// InvalidStrategyError reports a short-term translation strategy outside
// {best, base, worst}.
type InvalidStrategyError struct {
	Strategy Strategy
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("%q is not a valid short-term strategy; must be one of [best base worst]", string(e.Strategy))
}
