// Package templates holds the HTML pages served by the game server.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
