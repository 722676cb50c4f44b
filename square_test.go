package shapes

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSquare(t *testing.T) {
	t.Parallel()
	generic := DefaultSquare()

	assert.Equal(t, "Square", generic.Name())
	assert.InDelta(t, 1.0, generic.Side, 0.01)
}

func TestNewSquare(t *testing.T) {
	t.Parallel()
	fancy := NewSquare(2.0)

	assert.Equal(t, "Square", fancy.Name())
	assert.InDelta(t, 2.0, fancy.Side, 0.01)
}

func TestSquare_Area(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, DefaultSquare().Area(), 1e-6)
	assert.InDelta(t, 4.0, NewSquare(2).Area(), 1e-6)
}

func TestSquare_Perimeter(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 4.0, DefaultSquare().Perimeter(), 1e-6)
	assert.InDelta(t, 8.0, NewSquare(2).Perimeter(), 1e-6)
}

func TestSquare_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		side      float64
		area      float64
		perimeter float64
	}{
		{"two", 2.0, 4.0, 8.0},
		{"zero", 0.0, 0.0, 0.0},
		// Squaring drops the sign; the perimeter keeps it.
		{"negative", -3.0, 9.0, -12.0},
		{"fractional", 0.5, 0.25, 2.0},
		{"large", 1e6, 1e12, 4e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sq := NewSquare(tt.side)
			assert.Equal(t, "Square", sq.Name())
			assert.InDelta(t, tt.area, sq.Area(), 1e-6)
			assert.InDelta(t, tt.perimeter, sq.Perimeter(), 1e-6)
			assert.InDelta(t, tt.side*tt.side, sq.Area(), 1e-6)
			assert.InDelta(t, 4.0*tt.side, sq.Perimeter(), 1e-6)
		})
	}
}

func TestSquare_NonFinite(t *testing.T) {
	t.Parallel()

	nan := NewSquare(math.NaN())
	assert.True(t, math.IsNaN(nan.Area()))
	assert.True(t, math.IsNaN(nan.Perimeter()))

	inf := NewSquare(math.Inf(-1))
	assert.True(t, math.IsInf(inf.Area(), 1))
	assert.True(t, math.IsInf(inf.Perimeter(), -1))
}

func TestSquare_Clone(t *testing.T) {
	t.Parallel()
	fancy := NewSquare(2.0)
	aCopy := fancy.Clone()

	assert.NotSame(t, &fancy, &aCopy)
	assert.InDelta(t, fancy.Side, aCopy.Side, 0.001)
	assert.True(t, aCopy.Equal(fancy))

	aCopy.Side = 5
	assert.InDelta(t, 2.0, fancy.Side, 1e-9, "copies must not share storage")
}

func TestSquare_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, NewSquare(2).Equal(NewSquare(2)))
	assert.False(t, NewSquare(2).Equal(NewSquare(3)))
	assert.True(t, NewSquare(0).Equal(NewSquare(math.Copysign(0, -1))))

	nan := NewSquare(math.NaN())
	assert.False(t, nan.Equal(nan))
	// Struct equality agrees with Equal.
	assert.True(t, NewSquare(2) == Square{Side: 2})
}

func TestSquare_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   float64
		want   int
		wantOK bool
	}{
		{"less", 1, 2, -1, true},
		{"greater", 3, -3, 1, true},
		{"equal", 2, 2, 0, true},
		{"nan left", math.NaN(), 1, 0, false},
		{"nan right", 1, math.NaN(), 0, false},
		{"inf", math.Inf(1), 1e308, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NewSquare(tt.a).Compare(NewSquare(tt.b))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSquare_Less(t *testing.T) {
	t.Parallel()

	assert.True(t, NewSquare(1).Less(NewSquare(2)))
	assert.False(t, NewSquare(2).Less(NewSquare(1)))
	assert.False(t, NewSquare(2).Less(NewSquare(2)))

	nan := NewSquare(math.NaN())
	assert.False(t, nan.Less(NewSquare(1)))
	assert.False(t, NewSquare(1).Less(nan))
}

func TestSquare_String(t *testing.T) {
	t.Parallel()
	fancy := NewSquare(2.0)
	fancyStr := fancy.String()

	assert.True(t, strings.HasPrefix(fancyStr, "Name"))
	assert.Contains(t, fancyStr, "Square")
	assert.False(t, strings.HasSuffix(fancyStr, "\n"))

	assert.Contains(t, fancyStr, fmt.Sprintf("%-12s:%24.4f", "Perimeter", fancy.Perimeter()))
	assert.Contains(t, fancyStr, fmt.Sprintf("%-12s:%24.4f", "Area", fancy.Area()))
	assert.Contains(t, fancyStr, fmt.Sprintf("%-12s:%24.4f", "Side", fancy.Side))
}

func TestSquare_StringLayout(t *testing.T) {
	t.Parallel()

	pad := func(n int) string { return strings.Repeat(" ", n) }
	want := "Name" + pad(8) + ":" + pad(18) + "Square" + "\n" +
		"Side" + pad(8) + ":" + pad(18) + "2.0000" + "\n" +
		"Perimeter" + pad(3) + ":" + pad(18) + "8.0000" + "\n" +
		"Area" + pad(8) + ":" + pad(18) + "4.0000"

	assert.Equal(t, want, NewSquare(2).String())

	lines := strings.Split(NewSquare(-3).String(), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, line, 12+1+24, "line %q", line)
	}
	assert.True(t, strings.HasSuffix(lines[2], "-12.0000"))
	assert.True(t, strings.HasSuffix(lines[3], "9.0000"))
}

func TestSquare_Stringer(t *testing.T) {
	t.Parallel()
	sq := NewSquare(2)
	assert.Equal(t, sq.String(), fmt.Sprint(sq))
}
