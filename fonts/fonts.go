package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Title FontName = "title"
	Small FontName = "small"
)

var fonts = map[FontName]font.Face{}

// Get returns the loaded face, falling back to the built-in bitmap face
// when the font file was missing at startup.
func (f FontName) Get() font.Face {
	if face, ok := fonts[f]; ok {
		return face
	}
	return basicfont.Face7x13
}

// LoadAll loads the game faces from a TTF on disk. A missing or broken
// file leaves all faces on the bitmap fallback.
func LoadAll(path string) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: font %s not found, using fallback face", path)
		return
	}
	LoadFontWithSize(HUD, ttf, 12)
	LoadFontWithSize(Title, ttf, 24)
	LoadFontWithSize(Small, ttf, 8)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: failed to parse font for %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
