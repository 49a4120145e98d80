package text

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/hubastard/spritebatch/engine/core"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	atlasPadding = 4
	atlasMinSize = 256
	atlasMaxSize = 4096
)

type kernPair struct{ left, right uint32 }

// FontAtlas is a Font whose glyphs are rasterized once into a single texture.
type FontAtlas struct {
	Name                     string
	SizePx                   float32
	Ascent, Descent, LineGap float32

	glyphs  map[rune]GlyphMetrics
	kerning map[kernPair]float32
	texture core.Texture
	face    font.Face
}

// Atlas returns the glyph texture, or nil for a nil atlas.
func (fa *FontAtlas) Atlas() core.Texture {
	if fa == nil {
		return nil
	}
	return fa.texture
}

func (fa *FontAtlas) Glyph(r rune) (GlyphMetrics, bool) {
	if fa == nil {
		return GlyphMetrics{}, false
	}
	g, ok := fa.glyphs[r]
	return g, ok
}

func (fa *FontAtlas) HasKerning() bool { return fa != nil && len(fa.kerning) > 0 }

func (fa *FontAtlas) Kerning(left, right uint32) float32 {
	if fa == nil {
		return 0
	}
	return fa.kerning[kernPair{left, right}]
}

// LineSpacing is the baseline-to-baseline distance.
func (fa *FontAtlas) LineSpacing() float32 {
	if fa == nil {
		return 0
	}
	return fa.Ascent + fa.Descent + fa.LineGap
}

func (fa *FontAtlas) Close() {
	if fa != nil && fa.face != nil {
		_ = fa.face.Close()
		fa.face = nil
	}
}

// LoadTTF reads assets/fonts/<ttfRelPath> and builds its atlas.
func LoadTTF(tf core.TextureFactory, ttfRelPath string, sizePx float32) (*FontAtlas, error) {
	path := filepath.Join("assets", "fonts", ttfRelPath)
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseTTF(tf, ttfRelPath, ttfData, sizePx)
}

// LoadDefault builds an atlas from the Go Regular font.
func LoadDefault(tf core.TextureFactory, sizePx float32) (*FontAtlas, error) {
	return ParseTTF(tf, "goregular", goregular.TTF, sizePx)
}

// ParseTTF rasterizes Latin-1 plus InvalidRune as white glyphs with alpha
// coverage and uploads the atlas as an RGBA texture.
func ParseTTF(tf core.TextureFactory, name string, ttfData []byte, sizePx float32) (*FontAtlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font %q: size must be positive, got %v", name, sizePx)
	}
	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent - descent
	if lineGap < 0 {
		lineGap = 0
	}

	var buf sfnt.Buffer
	runes := make([]rune, 0, 225)
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}
	runes = append(runes, InvalidRune)

	type meas struct {
		r      rune
		index  sfnt.GlyphIndex
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		idx, err := ft.GlyphIndex(&buf, rr)
		if err != nil {
			continue
		}
		measure = append(measure, meas{
			r:     rr,
			index: idx,
			w:     (br.Max.X - br.Min.X).Ceil(),
			h:     (br.Max.Y - br.Min.Y).Ceil(),
			adv:   float32(adv.Round()),
			bx:    float32(br.Min.X.Floor()),
			by:    float32(-br.Min.Y.Floor()),
		})
	}
	if len(measure) == 0 {
		return nil, fmt.Errorf("font %q: no drawable glyphs", name)
	}

	// Very simple shelf packer (rows); grow the square atlas until everything fits.
	atlasSize := atlasMinSize
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+atlasPadding*2 > atlasSize || g.h+atlasPadding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+atlasPadding > atlasSize {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			if g.h > rowH {
				rowH = g.h
			}
		}
		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > atlasMaxSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]GlyphMetrics, len(measure)+1)
	for _, g := range measure {
		gm := GlyphMetrics{
			Rune: g.r, Index: uint32(g.index),
			Advance: g.adv, BearingX: g.bx, BearingY: g.by,
			Width: float32(g.w), Height: float32(g.h),
		}
		if p, ok := pos[g.r]; ok {
			// Drawer expects the dot at the baseline.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gm.Bounds = core.Rect{X: float32(p.X), Y: float32(p.Y), W: float32(g.w), H: float32(g.h)}
		}
		glyphs[g.r] = gm
	}
	if _, ok := glyphs[InvalidRune]; !ok {
		if q, ok := glyphs['?']; ok {
			q.Rune = InvalidRune
			glyphs[InvalidRune] = q
		}
	}

	kerning := make(map[kernPair]float32)
	ppem := fixed.Int26_6(sizePx * 64)
	for _, a := range measure {
		for _, b := range measure {
			dx, err := ft.Kern(&buf, a.index, b.index, ppem, font.HintingFull)
			if err != nil {
				if errors.Is(err, sfnt.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("kern %q/%q: %w", a.r, b.r, err)
			}
			if dx != 0 {
				kerning[kernPair{uint32(a.index), uint32(b.index)}] = float32(dx.Round())
			}
		}
	}

	tex, err := tf.CreateTexture(core.TextureDesc{
		Name:  name,
		Width: atlasSize, Height: atlasSize,
		Format:    core.TextureRGBA8,
		Pixels:    tightPixels(dst),
		MinFilter: core.FilterLinear,
		MagFilter: core.FilterLinear,
		WrapU:     core.WrapClamp,
		WrapV:     core.WrapClamp,
	})
	if err != nil {
		return nil, fmt.Errorf("upload font atlas %q: %w", name, err)
	}

	return &FontAtlas{
		Name:   name,
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		glyphs:  glyphs,
		kerning: kerning,
		texture: tex,
		face:    face,
	}, nil
}

func tightPixels(img *image.RGBA) []byte {
	if img.Stride == img.Rect.Dx()*4 {
		return img.Pix
	}
	out := image.NewRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
	draw.Draw(out, out.Bounds(), img, img.Rect.Min, draw.Src)
	return out.Pix
}
