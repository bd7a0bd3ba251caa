package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	o := New()
	assert.Equal(t, DefaultWidth, *o.Width)
	assert.Equal(t, DefaultHeight, *o.Height)
	assert.Equal(t, DefaultTitle, *o.Title)
	assert.Equal(t, DefaultGLMajor, *o.GLMajor)
	assert.Equal(t, DefaultGLMinor, *o.GLMinor)
	assert.True(t, *o.RebindDefaults)
	assert.Equal(t, uint(DefaultClearColor), *o.ClearColor)
	assert.False(t, o.Recording())
	require.NoError(t, o.Validate())
}

func TestNormalizeKeepsSetFields(t *testing.T) {
	w := 320
	rebind := false
	o := &Options{Width: &w, RebindDefaults: &rebind}
	o.Normalize()

	assert.Equal(t, 320, *o.Width)
	assert.Equal(t, DefaultHeight, *o.Height)
	assert.False(t, *o.RebindDefaults)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
		ok     bool
	}{
		{"defaults", func(o *Options) {}, true},
		{"zero width", func(o *Options) { *o.Width = 0 }, false},
		{"negative height", func(o *Options) { *o.Height = -1 }, false},
		{"gl 3.3", func(o *Options) { *o.GLMajor, *o.GLMinor = 3, 3 }, false},
		{"gl 4.0", func(o *Options) { *o.GLMajor, *o.GLMinor = 4, 0 }, false},
		{"gl 4.1", func(o *Options) { *o.GLMajor, *o.GLMinor = 4, 1 }, true},
		{"gl 4.6", func(o *Options) { *o.GLMajor, *o.GLMinor = 4, 6 }, true},
		{"gl 2.1", func(o *Options) { *o.GLMajor, *o.GLMinor = 2, 1 }, false},
		{"zero fps", func(o *Options) { *o.FPS = 0 }, false},
		{"negative max frames", func(o *Options) { *o.MaxFrames = -5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			tt.mutate(o)
			err := o.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestRecording(t *testing.T) {
	o := New()
	*o.OutputFile = "out.mp4"
	assert.True(t, o.Recording())
}
