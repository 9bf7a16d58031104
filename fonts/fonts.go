package fonts

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
	// Damage is loaded without a fixed size; use Sized.
	Damage FontName = "damage"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Sized returns a face of f's typeface at size points, rounded to a whole
// point. Faces are cached per size.
func (f FontName) Sized(size float64) font.Face {
	key := sizedKey{name: f, size: int(math.Round(size))}
	if face, ok := sized[key]; ok {
		return face
	}
	tt, ok := sources[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: float64(key.size)})
	sized[key] = face
	return face
}

type sizedKey struct {
	name FontName
	size int
}

var (
	fonts   = map[FontName]font.Face{}
	sources = map[FontName]*truetype.Font{}
	sized   = map[sizedKey]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	sources[name] = fontData
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
