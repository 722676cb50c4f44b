// Package scripts embeds the Risor scripts shipped with shapes.
package scripts

import "embed"

// FS holds every bundled .risor script at its base name, e.g. "demo.risor".
//
//go:embed *.risor
var FS embed.FS

// Demo is the script run by "shapes run" when no path is given.
const Demo = "demo.risor"
