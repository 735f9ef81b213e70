// Package output renders JSON-RPC results for human consumption. Every
// command has a registered renderer; anything without one falls back to
// JSON pass-through, so new server-side result shapes never break the
// client.
package output

import "github.com/fatih/color"

// Colors for status indicators
var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

// DisableColors turns off ANSI color output, used for the json format
// and for piped output.
func DisableColors() {
	color.NoColor = true
}
