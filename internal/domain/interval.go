package domain

// Interval полуоткрытый интервал [Start, End) в минутах с начала суток
type Interval struct {
	Start int
	End   int
}

// Overlaps returns true if the two half-open intervals actually intersect.
// Touching intervals ([a,b) and [b,c)) do NOT overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// IsEmpty returns true if the interval contains no minutes
func (i Interval) IsEmpty() bool {
	return i.Start >= i.End
}
