package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// testImage is 2x2: top row red, green; bottom row blue, white.
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestPixelsRGBA(t *testing.T) {
	got := Pixels(testImage(), true, false)
	assert.Equal(t, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}, got)
}

func TestPixelsRGBFlipped(t *testing.T) {
	got := Pixels(testImage(), false, true)
	assert.Equal(t, []byte{
		0, 0, 255, 255, 255, 255,
		255, 0, 0, 0, 255, 0,
	}, got)
}

func TestPixelsOddWidthRGB(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	got := Pixels(img, false, false)
	assert.Len(t, got, 9)
}

func TestPixelsOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, color.RGBA{9, 8, 7, 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	got := Pixels(sub, true, false)
	require.Len(t, got, 2*2*4)
	assert.Equal(t, []byte{9, 8, 7, 255}, got[:4])
}

func TestPixelsKeepStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 128})
	src.Set(0, 1, color.NRGBA{0, 64, 255, 0})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	got := Pixels(img, true, true)
	assert.Equal(t, []byte{
		0, 0, 0, 0,
		255, 0, 0, 128,
	}, got)
}

func TestVflipRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 5))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	assert.Equal(t, img.Pix, vflip(vflip(img)).Pix)
}

func TestDecodersRegistered(t *testing.T) {
	var pngBuf, bmpBuf, tiffBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, testImage()))
	require.NoError(t, bmp.Encode(&bmpBuf, testImage()))
	require.NoError(t, tiff.Encode(&tiffBuf, testImage(), nil))

	tests := map[string][]byte{
		"png":  pngBuf.Bytes(),
		"bmp":  bmpBuf.Bytes(),
		"tiff": tiffBuf.Bytes(),
		"jpeg": defaultImage,
	}
	for want, data := range tests {
		_, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err, want)
		assert.Equal(t, want, format)
	}
}

func TestDefaultImage(t *testing.T) {
	img, _, err := image.Decode(bytes.NewReader(defaultImage))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
	assert.Len(t, Pixels(img, false, true), 3)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), false)
	assert.ErrorIs(t, err, ErrRead)

	_, err = LoadFromMemory([]byte("not an image"), true)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = LoadFromMemory(nil, false)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestSlotUnit(t *testing.T) {
	assert.Equal(t, 18, int(SlotCount))
	assert.Equal(t, uint32(gl.TEXTURE0), Slot0.Unit())
	assert.Equal(t, uint32(gl.TEXTURE5), Slot5.Unit())
	assert.Equal(t, uint32(gl.TEXTURE17), Slot17.Unit())

	for _, s := range []Slot{-1, SlotCount, 100} {
		assert.False(t, s.Valid())
		assert.Equal(t, uint32(gl.TEXTURE0), s.Unit())
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, uint32(gl.RGBA), (&Texture{HasAlpha: true}).format())
	assert.Equal(t, uint32(gl.RGB), (&Texture{}).format())
}

func TestDeleteZeroTexture(t *testing.T) {
	var tex Texture
	assert.NotPanics(t, tex.Delete)
}
