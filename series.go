package ratings

import "math"

// StringSeries is a named vector of rating strings. The empty string marks
// a missing value.
type StringSeries struct {
	Name string
	Data []string
}

// FloatSeries is a named vector of scores or WARF values. NaN marks a
// missing value.
type FloatSeries struct {
	Name string
	Data []float64
}

// StringFrame is an ordered collection of rating columns, one per agency.
type StringFrame struct {
	Columns []StringSeries
}

// FloatFrame is an ordered collection of numeric columns, one per agency.
type FloatFrame struct {
	Columns []FloatSeries
}

func (f StringFrame) columnNames() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}
	return names
}

func (f FloatFrame) columnNames() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}
	return names
}

// missing is the numeric missing-value sentinel.
func missing() float64 {
	return math.NaN()
}

func isMissing(v float64) bool {
	return math.IsNaN(v)
}
