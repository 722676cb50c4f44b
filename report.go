package shapes

import (
	"fmt"
	"strings"
)

// Report layout: labels are left-justified to labelWidth, values are
// right-justified to valueWidth, numbers carry valuePrecision decimals.
const (
	labelWidth     = 12
	valueWidth     = 24
	valuePrecision = 4
)

// ReportLine formats a single "label : value" report line with no newline.
func ReportLine(label, value string) string {
	return fmt.Sprintf("%-*s:%*s", labelWidth, label, valueWidth, value)
}

// ReportNumber formats a numeric report line with a fixed 4-decimal value.
func ReportNumber(label string, v float64) string {
	return fmt.Sprintf("%-*s:%*.*f", labelWidth, label, valueWidth, valuePrecision, v)
}

// Describe renders the generic report for any Shape: its name, perimeter,
// and area, one per line. The last line has no trailing newline.
func Describe(s Shape) string {
	return joinLines(
		ReportLine("Name", s.Name()),
		ReportNumber("Perimeter", s.Perimeter()),
		ReportNumber("Area", s.Area()),
	)
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
