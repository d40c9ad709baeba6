// Package static exposes onboarding page assets for HTTP serving.
package static

import "embed"

// FS exposes the stylesheet and the instructions toggle script.
//
//go:embed *.css *.js
var FS embed.FS
