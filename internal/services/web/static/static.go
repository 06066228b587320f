// Package static embeds the site's stylesheet, scripts and images.
package static

import "embed"

// FS is served under /static/.
//
//go:embed *.css *.js *.svg
var FS embed.FS
