package recorder

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	options "github.com/richinsley/goglib/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solid returns a read function producing frames filled with one byte value
// that increases every call.
func solid() func(width, height int) []byte {
	var n byte
	return func(width, height int) []byte {
		n++
		return bytes.Repeat([]byte{n}, width*height*4)
	}
}

func sink(buf *bytes.Buffer) func(io.Reader) error {
	return func(r io.Reader) error {
		_, err := io.Copy(buf, r)
		return err
	}
}

func TestStreamsFrames(t *testing.T) {
	var buf bytes.Buffer
	r := start(Config{Width: 2, Height: 2, FPS: 30}, sink(&buf), solid())

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Hook(2, 2))
	}
	require.NoError(t, r.Close())

	assert.Equal(t, 3, r.Frames())
	require.Equal(t, 3*2*2*4, buf.Len())
	assert.Equal(t, byte(1), buf.Bytes()[0])
	assert.Equal(t, byte(3), buf.Bytes()[buf.Len()-1])
}

func TestMaxFrames(t *testing.T) {
	var buf bytes.Buffer
	r := start(Config{Width: 1, Height: 1, FPS: 30, MaxFrames: 2}, sink(&buf), solid())

	require.NoError(t, r.Hook(1, 1))
	assert.ErrorIs(t, r.Hook(1, 1), ErrFinished)
	assert.ErrorIs(t, r.Hook(1, 1), ErrClosed)

	require.NoError(t, r.Close())
	assert.Equal(t, 2*4, buf.Len())
}

func TestSizeChangeStops(t *testing.T) {
	var buf bytes.Buffer
	r := start(Config{Width: 4, Height: 4, FPS: 30}, sink(&buf), solid())

	err := r.Hook(8, 4)
	assert.ErrorIs(t, err, ErrSize)
	require.NoError(t, r.Close())
	assert.Zero(t, buf.Len())
}

func TestCloseTwice(t *testing.T) {
	var buf bytes.Buffer
	r := start(Config{Width: 1, Height: 1, FPS: 30}, sink(&buf), solid())
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
}

func TestEncoderError(t *testing.T) {
	boom := errors.New("ffmpeg exited")
	r := start(Config{Width: 1, Height: 1, FPS: 30}, func(io.Reader) error { return boom }, solid())

	// The encoder may already be gone, writes must not block.
	for i := 0; i < 10; i++ {
		_ = r.Hook(1, 1)
	}
	assert.ErrorIs(t, r.Close(), boom)
}

func TestNewValidates(t *testing.T) {
	_, err := New(Config{Width: 1, Height: 1, FPS: 30})
	assert.Error(t, err)

	_, err = New(Config{Width: 0, Height: 1, FPS: 30, OutputFile: "out.mp4"})
	assert.Error(t, err)
}

func TestGetArgs(t *testing.T) {
	in, out := getArgs(Config{Width: 640, Height: 480, FPS: 60, Codec: "h264", OutputFile: "out.mp4"})

	assert.Equal(t, "rawvideo", in["f"])
	assert.Equal(t, "rgba", in["pix_fmt"])
	assert.Equal(t, "640x480", in["s"])
	assert.Equal(t, 60, in["r"])

	assert.Equal(t, "vflip", out["vf"])
	assert.Equal(t, "yuv420p", out["pix_fmt"])
	assert.NotContains(t, out, "tag:v")
	if runtime.GOOS == "darwin" {
		assert.Equal(t, "h264_videotoolbox", out["c:v"])
	} else {
		assert.Equal(t, "libx264", out["c:v"])
	}
}

func TestGetArgsHEVC(t *testing.T) {
	_, out := getArgs(Config{Width: 1, Height: 1, FPS: 1, Codec: "hevc", OutputFile: "clip.mp4"})
	assert.Equal(t, "hvc1", out["tag:v"])

	_, out = getArgs(Config{Width: 1, Height: 1, FPS: 1, Codec: "hevc", OutputFile: "clip.mkv"})
	assert.NotContains(t, out, "tag:v")
}

func TestConfigFromOptions(t *testing.T) {
	o := options.New()
	*o.OutputFile = "demo.mp4"
	*o.MaxFrames = 120

	cfg := ConfigFromOptions(o, 300, 200)
	assert.Equal(t, Config{
		Width:      300,
		Height:     200,
		FPS:        options.DefaultFPS,
		OutputFile: "demo.mp4",
		FFMPEGPath: "",
		Codec:      options.DefaultCodec,
		MaxFrames:  120,
	}, cfg)
}
