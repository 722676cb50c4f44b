package shapes

// Square is a square described by its edge length.
//
// Side is not validated. Zero and negative lengths are accepted as given, so
// a negative Side yields a positive Area but a negative Perimeter.
type Square struct {
	Side float64 `json:"side"`
}

var _ Shape = Square{}

// NewSquare creates a Square with the given side length.
func NewSquare(side float64) Square {
	return Square{Side: side}
}

// DefaultSquare returns the unit square.
func DefaultSquare() Square {
	return Square{Side: 1.0}
}

// Name returns "Square".
func (s Square) Name() string {
	return "Square"
}

// Area computes side².
func (s Square) Area() float64 {
	return s.Side * s.Side
}

// Perimeter computes 4·side.
func (s Square) Perimeter() float64 {
	return 4.0 * s.Side
}

// Equal reports whether both squares have the same side under IEEE-754
// equality. A NaN side is never equal to anything, itself included.
func (s Square) Equal(other Square) bool {
	return s.Side == other.Side
}

// Less reports whether s orders before other. Always false when either side
// is NaN.
func (s Square) Less(other Square) bool {
	return s.Side < other.Side
}

// Compare orders two squares by side. It returns -1, 0 or +1 and true, or
// 0 and false when the sides are unordered (either one is NaN).
func (s Square) Compare(other Square) (int, bool) {
	switch {
	case s.Side < other.Side:
		return -1, true
	case s.Side > other.Side:
		return 1, true
	case s.Side == other.Side:
		return 0, true
	default:
		return 0, false
	}
}

// Clone returns an independent copy of s.
func (s Square) Clone() Square {
	return s
}

// String renders the four-line Name/Side/Perimeter/Area report.
func (s Square) String() string {
	return joinLines(
		ReportLine("Name", s.Name()),
		ReportNumber("Side", s.Side),
		ReportNumber("Perimeter", s.Perimeter()),
		ReportNumber("Area", s.Area()),
	)
}
