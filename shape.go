package shapes

// Shape is the capability shared by every shape variant: callers that only
// need a name, an area, and a perimeter program against Shape rather than a
// concrete type.
type Shape interface {
	Name() string
	Area() float64
	Perimeter() float64
}

// Summary is a JSON-friendly snapshot of a Shape's derived properties.
type Summary struct {
	Name      string  `json:"name"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

// Summarize evaluates s once and returns its properties as a Summary.
func Summarize(s Shape) Summary {
	return Summary{
		Name:      s.Name(),
		Area:      s.Area(),
		Perimeter: s.Perimeter(),
	}
}
