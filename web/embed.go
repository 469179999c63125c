// Package web holds the portfolio's public assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:public
var assets embed.FS

// Public returns the public asset tree rooted at the site root.
func Public() fs.FS {
	sub, err := fs.Sub(assets, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
