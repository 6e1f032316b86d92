// Package levels embeds the Tiled maps and their tileset image. It has no
// ebiten dependency so headless tools can load the same levels the game
// plays.
package levels

import "embed"

//go:embed *.tmx *.png
var FS embed.FS
