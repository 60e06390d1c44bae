package ttf

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontInfo struct {
	font *opentype.Font
	key  Key
}

func (i *FontInfo) Font() *opentype.Font {
	return i.font
}

func (i *FontInfo) String() string {
	return i.key.String()
}

func (i FontInfo) Key() Key {
	return i.key
}

type Id uint8

type faceKey struct {
	id   Id
	size float64
}

// FontSet holds parsed fonts and the faces derived from them. Faces are
// created per (font, size) on first use. A FontSet is safe for concurrent
// use.
type FontSet struct {
	mu    sync.Mutex
	fonts []FontInfo
	faces map[faceKey]font.Face
}

func NewFontSet(capacity uint8) *FontSet {
	return &FontSet{
		fonts: make([]FontInfo, 0, capacity),
		faces: make(map[faceKey]font.Face),
	}
}

func (f *FontSet) Get(id Id) *FontInfo {
	f.mu.Lock()
	defer f.mu.Unlock()

	return &f.fonts[id]
}

func (f *FontSet) Key(id Id) Key {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.fonts[id].key
}

func (f *FontSet) AddTtf(family string, style Style, bytes []byte) (Id, error) {
	parsed, err := opentype.Parse(bytes)
	if err != nil {
		return 0, fmt.Errorf("unable to parse font file: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.fonts) > math.MaxUint8 {
		return 0, fmt.Errorf("font set is full")
	}

	id := len(f.fonts)
	f.fonts = append(f.fonts, FontInfo{
		font: parsed,
		key:  Key{Family: strings.ToLower(family), Style: style},
	})

	return Id(id), nil
}

func (f *FontSet) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.fonts)
}

// Lookup returns the id of the font added under the given family and style.
func (f *FontSet) Lookup(family string, style Style) (Id, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	want := Key{Family: strings.ToLower(family), Style: style}
	for i, info := range f.fonts {
		if info.key == want {
			return Id(i), true
		}
	}

	return 0, false
}

func (f *FontSet) MustAddTtf(family string, style Style, bytes []byte) Id {
	id, err := f.AddTtf(family, style, bytes)
	if err != nil {
		log.Panicf(
			"unable to add font family(%s), style(%s): %v",
			family,
			style,
			err,
		)
	}

	return id
}

// MeasureText returns the advance width and line height of text set at size
// pixels in the first font of the set. An empty set measures with a scaled
// 7x13 bitmap face.
func (f *FontSet) MeasureText(text string, size float64) (width, height float64) {
	return f.MeasureTextWith(0, text, size)
}

// MeasureTextWith measures text in the font with the given id, falling back
// to the 7x13 bitmap face when no such font exists.
func (f *FontSet) MeasureTextWith(id Id, text string, size float64) (width, height float64) {
	if size <= 0 || text == "" {
		return 0, math.Max(size, 0)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.face(id, size)
	if err != nil || face == nil {
		return fallbackExtent(text, size)
	}

	return toFloat(advance(face, text)), toFloat(face.Metrics().Height)
}

// face must be called with f.mu held.
func (f *FontSet) face(id Id, size float64) (font.Face, error) {
	if int(id) >= len(f.fonts) {
		return nil, nil
	}

	k := faceKey{id: id, size: size}
	if face, ok := f.faces[k]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(f.fonts[id].font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create face for %s at %g: %w", f.fonts[id].key, size, err)
	}
	if f.faces == nil {
		f.faces = make(map[faceKey]font.Face)
	}
	f.faces[k] = face

	return face, nil
}

// fallbackSize is the pixel height of basicfont.Face7x13.
const fallbackSize = 13

func fallbackExtent(text string, size float64) (width, height float64) {
	face := basicfont.Face7x13
	scale := size / fallbackSize

	return toFloat(font.MeasureString(face, text)) * scale,
		toFloat(face.Metrics().Height) * scale
}

// advance sums glyph advances and kerning pairs.
func advance(face font.Face, s string) fixed.Int26_6 {
	var adv fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			adv += face.Kern(prev, r)
		}
		if a, ok := face.GlyphAdvance(r); ok {
			adv += a
		}
		prev = r
	}
	return adv
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var (
	defaultOnce sync.Once
	defaultSet  *FontSet
)

// Default returns a shared set holding the Go Regular font.
func Default() *FontSet {
	defaultOnce.Do(func() {
		defaultSet = NewFontSet(1)
		defaultSet.MustAddTtf("go", StyleNone, goregular.TTF)
	})

	return defaultSet
}

type Key struct {
	Family string
	Style  Style
}

func (k Key) String() string {
	return strings.ToLower(k.Family) + k.Style.String()
}

type Style uint8

const (
	StyleNone Style = 0
)

const (
	StyleB Style = 1 << iota
	StyleI
)

func (s Style) String() string {
	switch s {
	case StyleB:
		return "b"
	case StyleI:
		return "i"
	case StyleB | StyleI:
		return "bi"
	}

	return ""
}
