package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/automoto/boink/assets"
	"github.com/jakecoffman/cp"
	"github.com/lafriks/go-tiled"
)

// WallsGroup is the object group holding wall rectangles.
const WallsGroup = "Walls"

var ErrNoWalls = errors.New("arena has no walls")

// LoadFile parses a TMX map. Every rectangle in the Walls object group
// becomes a segment along its long axis, as thick as its short side.
func LoadFile(fsys fs.FS, tmxPath string) (Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := Layout{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		if og.Name != WallsGroup {
			continue
		}
		for _, o := range og.Objects {
			layout.Walls = append(layout.Walls, wallFromRect(o.Name, o.X, o.Y, o.Width, o.Height))
		}
	}
	if len(layout.Walls) == 0 {
		return Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoWalls)
	}
	return layout, nil
}

func wallFromRect(name string, x, y, w, h float64) Wall {
	if w >= h {
		cy := y + h/2
		return Wall{Name: name, A: cp.Vector{X: x, Y: cy}, B: cp.Vector{X: x + w, Y: cy}, Thickness: h}
	}
	cx := x + w/2
	return Wall{Name: name, A: cp.Vector{X: cx, Y: y}, B: cp.Vector{X: cx, Y: y + h}, Thickness: w}
}

// Load returns the embedded arena called name. An empty name yields a plain
// rectangle of the given size.
func Load(name string, width, height, thickness float64) (Layout, error) {
	if name == "" {
		return Rectangle(width, height, thickness), nil
	}
	layout, err := LoadFile(assets.Arenas(), path.Join(assets.ArenasDir, name+".tmx"))
	if err != nil {
		return Layout{}, err
	}
	log.Printf("[arena] loaded %s: %.0fx%.0f, %d walls", layout.Name, layout.Width, layout.Height, len(layout.Walls))
	return layout, nil
}

// Names lists the embedded arenas, sorted.
func Names() ([]string, error) {
	return namesIn(assets.Arenas(), assets.ArenasDir)
}

func namesIn(fsys fs.FS, dir string) ([]string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
