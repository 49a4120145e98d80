package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hubastard/spritebatch/engine/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

var (
	// ErrUnknownFormat is returned for file extensions the loader does not recognise.
	ErrUnknownFormat = errors.New("assets: unknown content format")
	// ErrUnsupportedFormat is returned for recognised image formats the
	// engine cannot load as textures.
	ErrUnsupportedFormat = errors.New("assets: unsupported content format")
)

type decoder func(io.Reader) (image.Image, error)

var decoders = map[string]decoder{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
}

// recognised but not loadable as a texture
var unsupported = map[string]bool{
	".gif":  true,
	".tga":  true,
	".tiff": true,
	".svg":  true,
}

// LoadImage returns width, height, and tightly packed RGBA8 pixels
// (row-major, top-left origin) of assets/textures/<relPath>.
func LoadImage(relPath string) (w, h int, rgba []byte, err error) {
	path := filepath.Join("assets", "textures", relPath)
	dec, err := decoderFor(path)
	if err != nil {
		return 0, 0, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return DecodeImage(f, dec)
}

// DecodeImage decodes r with dec and repacks it as RGBA8.
func DecodeImage(r io.Reader, dec func(io.Reader) (image.Image, error)) (w, h int, rgba []byte, err error) {
	img, err := dec(r)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image: %w", err)
	}
	rgbaImg := imageToRGBA(img)
	w, h = rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], rgbaImg.Pix[y*rgbaImg.Stride:y*rgbaImg.Stride+w*4])
	}
	return w, h, out, nil
}

// LoadTexture decodes assets/textures/<relPath> and uploads it.
func LoadTexture(tf core.TextureFactory, relPath string) (core.Texture, error) {
	w, h, pixels, err := LoadImage(relPath)
	if err != nil {
		return nil, err
	}
	return tf.CreateTexture(core.TextureDesc{
		Name:      relPath,
		Width:     w,
		Height:    h,
		Format:    core.TextureRGBA8,
		Pixels:    pixels,
		MinFilter: core.FilterLinear,
		MagFilter: core.FilterNearest,
		WrapU:     core.WrapClamp,
		WrapV:     core.WrapClamp,
	})
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if dec, ok := decoders[ext]; ok {
		return dec, nil
	}
	if unsupported[ext] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
