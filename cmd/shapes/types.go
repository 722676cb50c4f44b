package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/jward/shapes"
)

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIShape is a JSON-friendly shape representation.
type CLIShape struct {
	Name      string   `json:"name"`
	Side      CLIFloat `json:"side"`
	Perimeter CLIFloat `json:"perimeter"`
	Area      CLIFloat `json:"area"`
	Report    string   `json:"report"`
}

// CLIFloat is a float64 that survives JSON when non-finite: finite values
// encode as numbers, NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf".
type CLIFloat float64

// MarshalJSON implements json.Marshaler.
func (f CLIFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler, accepting both encodings.
func (f *CLIFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", s, err)
		}
		*f = CLIFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = CLIFloat(v)
	return nil
}

// CLIComparison is the result of comparing two squares.
type CLIComparison struct {
	Left     CLIShape `json:"left"`
	Right    CLIShape `json:"right"`
	Ordering string   `json:"ordering"` // less|equal|greater|unordered
	Equal    bool     `json:"equal"`
}

func toCLIShape(sq shapes.Square) CLIShape {
	sum := shapes.Summarize(sq)
	return CLIShape{
		Name:      sum.Name,
		Side:      CLIFloat(sq.Side),
		Perimeter: CLIFloat(sum.Perimeter),
		Area:      CLIFloat(sum.Area),
		Report:    sq.String(),
	}
}

// ordering names the result of a.Compare(b).
func ordering(a, b shapes.Square) string {
	c, ok := a.Compare(b)
	switch {
	case !ok:
		return "unordered"
	case c < 0:
		return "less"
	case c > 0:
		return "greater"
	default:
		return "equal"
	}
}
