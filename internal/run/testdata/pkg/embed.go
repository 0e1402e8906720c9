package pkg

import "embed"

//go:embed ui
var UI embed.FS
