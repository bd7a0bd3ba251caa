// Package texture decodes images into 2D textures with repeat wrapping and
// linear filtering.
package texture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrRead   = errors.New("cannot read image")
	ErrDecode = errors.New("cannot decode image")
)

//go:embed default.jpg
var defaultImage []byte

// Texture is a 2D texture object.
type Texture struct {
	ID       uint32
	Width    int32
	Height   int32
	HasAlpha bool
}

// Load decodes an image file into a texture. The channel layout follows
// hasAlpha, not the file: RGBA when true, RGB otherwise.
func Load(path string, hasAlpha bool) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Failed to read texture %s: %v", path, err)
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	t, err := LoadFromMemory(data, hasAlpha)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return t, nil
}

// LoadFromMemory decodes an encoded image held in memory into a texture.
func LoadFromMemory(data []byte, hasAlpha bool) (*Texture, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to decode texture: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	log.Printf("Decoded %s texture %dx%d", format, img.Bounds().Dx(), img.Bounds().Dy())
	return upload(img, hasAlpha), nil
}

// Default decodes the built-in fallback texture.
func Default() (*Texture, error) {
	return LoadFromMemory(defaultImage, false)
}

func upload(img image.Image, hasAlpha bool) *Texture {
	pix := Pixels(img, hasAlpha, true)
	t := &Texture{
		Width:    int32(img.Bounds().Dx()),
		Height:   int32(img.Bounds().Dy()),
		HasAlpha: hasAlpha,
	}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// RGB rows are not 4 byte aligned for odd widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	format := t.format()
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), t.Width, t.Height, 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func (t *Texture) format() uint32 {
	if t.HasAlpha {
		return gl.RGBA
	}
	return gl.RGB
}

// Use binds the texture to a texture unit. Slots outside the supported range
// bind to Slot0.
func (t *Texture) Use(slot Slot) {
	gl.ActiveTexture(slot.Unit())
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture. It is safe to call more than once.
func (t *Texture) Delete() {
	if t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}

// Pixels converts img to tightly packed 8-bit RGBA or RGB rows, bottom row
// first when flip is set. Alpha stays straight, not premultiplied.
func Pixels(img image.Image, hasAlpha, flip bool) []byte {
	rgba := image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	if flip {
		rgba = vflip(rgba)
	}
	if hasAlpha {
		return rgba.Pix
	}

	out := make([]byte, 0, len(rgba.Pix)/4*3)
	for i := 0; i < len(rgba.Pix); i += 4 {
		out = append(out, rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
	}
	return out
}

// vflip vertically flips the provided NRGBA image.
func vflip(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	flipped := image.NewNRGBA(bounds)
	height := bounds.Dy()

	// This is faster than calling At/Set for each pixel
	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}
