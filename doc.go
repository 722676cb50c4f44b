// Package shapes provides geometric shape value types behind a common
// [Shape] capability.
//
// # Shapes
//
// [Shape] is a flat interface of three queries: Name, Area, and Perimeter.
// [Square] is a concrete variant; it is a plain value, so assignment and
// [Square.Clone] both produce independent copies.
//
//	sq := shapes.NewSquare(2)
//	sq.Area()      // 4
//	sq.Perimeter() // 8
//	fmt.Println(sq)
//
// # Reports
//
// Every shape renders as a fixed-width report, one "label : value" pair per
// line. Labels are left-justified to 12 columns and values right-justified to
// 24, with numbers shown to 4 decimal places:
//
//	Name        :                  Square
//	Side        :                  2.0000
//	Perimeter   :                  8.0000
//	Area        :                  4.0000
//
// The last line has no trailing newline. [ReportLine] and [ReportNumber]
// build individual lines; [Describe] renders the generic report for any
// [Shape].
//
// # Scripting
//
// The internal/runtime package exposes shapes to Risor scripts through host
// functions, and cmd/shapes wraps both the reports and the script host in a
// CLI.
package shapes
