// Package assets bundles the level files shipped with the viewer.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LevelsDir is the directory inside FS holding the bundled levels.
const LevelsDir = "levels"

// FS returns the embedded level files.
func FS() fs.FS {
	return levelFS
}
