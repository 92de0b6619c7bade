// Package ratings translates credit ratings between agency letter scales, a
// unified 1-22 rating score scale, and WARF (weighted average rating
// factor) values, and consolidates ratings across agencies on a security
// level basis.
//
// All translations are backed by a static table loaded once per process
// (see internal/ratingtable). Inputs come in three shapes: scalars, named
// series, and frames of named columns (one column per agency). Missing
// values are the empty string for ratings and NaN for scores/WARF; unknown
// ratings and out-of-domain numbers degrade to missing per cell instead of
// failing the whole batch, while configuration problems (unknown provider,
// invalid tenor or strategy) are returned as errors.
package ratings
