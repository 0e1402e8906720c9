// Package web serves the Angular front end.
package web

import "embed"

//go:embed app
var App embed.FS
