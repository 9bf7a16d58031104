package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed arenas/*.tmx
	arenaFS embed.FS
)

// ArenasDir is the directory holding arena TMX files inside Arenas().
const ArenasDir = "arenas"

// Arenas returns the embedded arena maps.
func Arenas() fs.FS {
	return arenaFS
}
