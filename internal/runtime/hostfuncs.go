package runtime

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/risor-io/risor/object"

	"github.com/jward/shapes"
)

// Risor cannot construct Go structs, so shapes are built Go-side and handed
// to scripts as proxied squareHandles. Methods on the proxy (sq.Area(),
// sq.String()) work directly; the shape_* functions below accept any proxied
// shapes.Shape.

// squareHandle is the script-side view of a Square. Its method set is limited
// to types the Risor proxy converts (strings and floats).
type squareHandle struct {
	sq shapes.Square
}

var _ shapes.Shape = (*squareHandle)(nil)

func (h *squareHandle) Name() string       { return h.sq.Name() }
func (h *squareHandle) Area() float64      { return h.sq.Area() }
func (h *squareHandle) Perimeter() float64 { return h.sq.Perimeter() }
func (h *squareHandle) Side() float64      { return h.sq.Side }
func (h *squareHandle) String() string     { return h.sq.String() }

// makeSquareFn creates the "square" host function.
//
// square(side) → Square proxy
func makeSquareFn() *object.Builtin {
	return object.NewBuiltin("square", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("square", 1, len(args))
		}
		side, errObj := numberArg("square", "side", args[0])
		if errObj != nil {
			return errObj
		}
		return proxySquare("square", shapes.NewSquare(side))
	})
}

// makeDefaultSquareFn creates the "default_square" host function.
//
// default_square() → Square proxy with side 1.0
func makeDefaultSquareFn() *object.Builtin {
	return object.NewBuiltin("default_square", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 0 {
			return object.NewArgsError("default_square", 0, len(args))
		}
		return proxySquare("default_square", shapes.DefaultSquare())
	})
}

// shape_name(s) → string
func makeShapeNameFn() *object.Builtin {
	return object.NewBuiltin("shape_name", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_name", 1, len(args))
		}
		s, errObj := shapeArg("shape_name", args[0])
		if errObj != nil {
			return errObj
		}
		return object.NewString(s.Name())
	})
}

// shape_area(s) → float
func makeShapeAreaFn() *object.Builtin {
	return object.NewBuiltin("shape_area", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_area", 1, len(args))
		}
		s, errObj := shapeArg("shape_area", args[0])
		if errObj != nil {
			return errObj
		}
		return object.NewFloat(s.Area())
	})
}

// shape_perimeter(s) → float
func makeShapePerimeterFn() *object.Builtin {
	return object.NewBuiltin("shape_perimeter", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_perimeter", 1, len(args))
		}
		s, errObj := shapeArg("shape_perimeter", args[0])
		if errObj != nil {
			return errObj
		}
		return object.NewFloat(s.Perimeter())
	})
}

// makeShapeReportFn creates the "shape_report" host function.
//
// shape_report(s) → string
//
// Uses the shape's own String method when it has one, otherwise the generic
// Name/Perimeter/Area report.
func makeShapeReportFn() *object.Builtin {
	return object.NewBuiltin("shape_report", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_report", 1, len(args))
		}
		s, errObj := shapeArg("shape_report", args[0])
		if errObj != nil {
			return errObj
		}
		if str, ok := s.(fmt.Stringer); ok {
			return object.NewString(str.String())
		}
		return object.NewString(shapes.Describe(s))
	})
}

// shape_summary(s) → {name, area, perimeter}
func makeShapeSummaryFn() *object.Builtin {
	return object.NewBuiltin("shape_summary", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_summary", 1, len(args))
		}
		s, errObj := shapeArg("shape_summary", args[0])
		if errObj != nil {
			return errObj
		}
		sum := shapes.Summarize(s)
		return object.NewMap(map[string]object.Object{
			"name":      object.NewString(sum.Name),
			"area":      object.NewFloat(sum.Area),
			"perimeter": object.NewFloat(sum.Perimeter),
		})
	})
}

// shape_equal(a, b) → bool
func makeShapeEqualFn() *object.Builtin {
	return object.NewBuiltin("shape_equal", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("shape_equal", 2, len(args))
		}
		a, b, errObj := squarePairArgs("shape_equal", args)
		if errObj != nil {
			return errObj
		}
		return object.NewBool(a.Equal(b))
	})
}

// makeShapeCompareFn creates the "shape_compare" host function.
//
// shape_compare(a, b) → -1, 0, 1, or nil when the sides are unordered (NaN)
func makeShapeCompareFn() *object.Builtin {
	return object.NewBuiltin("shape_compare", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 2 {
			return object.NewArgsError("shape_compare", 2, len(args))
		}
		a, b, errObj := squarePairArgs("shape_compare", args)
		if errObj != nil {
			return errObj
		}
		c, ok := a.Compare(b)
		if !ok {
			return object.Nil
		}
		return object.NewInt(int64(c))
	})
}

// shape_clone(s) → a new Square proxy with the same side
func makeShapeCloneFn() *object.Builtin {
	return object.NewBuiltin("shape_clone", func(ctx context.Context, args ...object.Object) object.Object {
		if len(args) != 1 {
			return object.NewArgsError("shape_clone", 1, len(args))
		}
		sq, errObj := squareArg("shape_clone", args[0])
		if errObj != nil {
			return errObj
		}
		return proxySquare("shape_clone", sq.Clone())
	})
}

// makeEmitFn creates the "emit" host function, which writes its arguments
// to the Runtime's output writer separated by spaces, plus a newline.
// Strings are written raw; other values use their Risor representation.
//
// emit(values...) → nil
func makeEmitFn(w io.Writer) *object.Builtin {
	return object.NewBuiltin("emit", func(ctx context.Context, args ...object.Object) object.Object {
		parts := make([]string, len(args))
		for i, arg := range args {
			if str, ok := arg.(*object.String); ok {
				parts[i] = str.Value()
			} else {
				parts[i] = arg.Inspect()
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return object.Errorf("emit: %v", err)
		}
		return object.Nil
	})
}

// numberArg accepts a Risor int or float as a float64.
func numberArg(fn, name string, arg object.Object) (float64, object.Object) {
	switch v := arg.(type) {
	case *object.Float:
		return v.Value(), nil
	case *object.Int:
		return float64(v.Value()), nil
	default:
		return 0, object.Errorf("%s: %s must be a number, got %s", fn, name, arg.Type())
	}
}

// shapeArg unwraps a proxied shapes.Shape.
func shapeArg(fn string, arg object.Object) (shapes.Shape, object.Object) {
	proxy, ok := arg.(*object.Proxy)
	if !ok {
		return nil, object.Errorf("%s: expected proxy (Shape), got %s", fn, arg.Type())
	}
	s, ok := proxy.Interface().(shapes.Shape)
	if !ok {
		return nil, object.Errorf("%s: expected shapes.Shape, got %T", fn, proxy.Interface())
	}
	return s, nil
}

// squareArg unwraps a Square proxy created by square() or its siblings.
func squareArg(fn string, arg object.Object) (shapes.Square, object.Object) {
	proxy, ok := arg.(*object.Proxy)
	if !ok {
		return shapes.Square{}, object.Errorf("%s: expected proxy (Square), got %s", fn, arg.Type())
	}
	h, ok := proxy.Interface().(*squareHandle)
	if !ok {
		return shapes.Square{}, object.Errorf("%s: expected a Square, got %T", fn, proxy.Interface())
	}
	return h.sq, nil
}

func squarePairArgs(fn string, args []object.Object) (shapes.Square, shapes.Square, object.Object) {
	a, errObj := squareArg(fn, args[0])
	if errObj != nil {
		return shapes.Square{}, shapes.Square{}, errObj
	}
	b, errObj := squareArg(fn, args[1])
	if errObj != nil {
		return shapes.Square{}, shapes.Square{}, errObj
	}
	return a, b, nil
}

// proxySquare hands a fresh handle to the script, so no two script values
// share storage.
func proxySquare(fn string, sq shapes.Square) object.Object {
	p, err := object.NewProxy(&squareHandle{sq: sq})
	if err != nil {
		return object.Errorf("%s: proxy error: %v", fn, err)
	}
	return p
}

// logObject provides log.Info/Warn/Error methods for Risor scripts.
type logObject struct {
	prefix string
	out    io.Writer
}

func (l *logObject) Info(msg string) {
	fmt.Fprintf(l.out, "[%s] INFO: %s\n", l.prefix, msg)
}

func (l *logObject) Warn(msg string) {
	fmt.Fprintf(l.out, "[%s] WARN: %s\n", l.prefix, msg)
}

func (l *logObject) Error(msg string) {
	fmt.Fprintf(l.out, "[%s] ERROR: %s\n", l.prefix, msg)
}
