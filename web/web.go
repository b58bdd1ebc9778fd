// Package web embeds the static contact form served alongside the API.
package web

import "embed"

// Files holds the embedded client assets.
//
//go:embed index.html
var Files embed.FS
