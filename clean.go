package ratings

import "strings"

// PureRating strips watch/outlook annotations from a raw rating string. The
// annotation is expected to follow the rating after the first blank (e.g.
// "AA- *+", "BBB+ (CwNegative)"). A trailing "u"/"U" (unsolicited rating
// marker, usually attached without a blank) and a leading "(P)"
// (public-information marker) are stripped as well. Missing values pass
// through unchanged.
func PureRating(rating string) string {
	fields := strings.Fields(rating)
	if len(fields) == 0 {
		return ""
	}

	pure := strings.TrimRight(fields[0], "uU")

	if len(pure) >= 3 && strings.EqualFold(pure[:3], "(p)") {
		pure = pure[3:]
	}

	return pure
}

// PureRatings strips watch/outlook annotations element-wise. The resulting
// series is named after the input with a "_clean" suffix.
func PureRatings(s StringSeries) StringSeries {
	out := StringSeries{
		Name: s.Name + "_clean",
		Data: make([]string, len(s.Data)),
	}
	for i, rating := range s.Data {
		out.Data[i] = PureRating(rating)
	}
	return out
}

// PureRatingsFrame strips watch/outlook annotations per column. Every
// resulting column is named after its input with a "_clean" suffix.
func PureRatingsFrame(f StringFrame) StringFrame {
	out := StringFrame{Columns: make([]StringSeries, len(f.Columns))}
	for i, col := range f.Columns {
		out.Columns[i] = PureRatings(col)
	}
	return out
}
