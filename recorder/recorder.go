// Package recorder streams rendered frames to ffmpeg.
package recorder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	options "github.com/richinsley/goglib/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

var (
	// ErrFinished is returned by Hook once MaxFrames frames were recorded.
	ErrFinished = errors.New("recording finished")
	ErrClosed   = errors.New("recorder closed")
	ErrSize     = errors.New("framebuffer size changed")
)

const numBuffers = 3

type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
	Codec      string
	MaxFrames  int // 0 records until Close
}

// ConfigFromOptions builds a Config for a window of the given framebuffer size.
func ConfigFromOptions(opts *options.Options, width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		FPS:        *opts.FPS,
		OutputFile: *opts.OutputFile,
		FFMPEGPath: *opts.FFMPEGPath,
		Codec:      *opts.Codec,
		MaxFrames:  *opts.MaxFrames,
	}
}

// Recorder reads back the framebuffer after each frame and hands the pixels
// to an encoder goroutine that writes them to ffmpeg as raw RGBA video.
type Recorder struct {
	cfg    Config
	frames chan []byte
	done   chan error
	read   func(width, height int) []byte

	count     int
	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// New starts ffmpeg and returns a Recorder writing to cfg.OutputFile.
func New(cfg Config) (*Recorder, error) {
	if cfg.OutputFile == "" {
		return nil, errors.New("no output file")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid recording size %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	inputArgs, outputArgs := getArgs(cfg)
	run := func(r io.Reader) error {
		cmd := ffmpeg.Input("pipe:", inputArgs).
			Output(cfg.OutputFile, outputArgs).
			OverWriteOutput().WithInput(r).ErrorToStdOut()
		if cfg.FFMPEGPath != "" {
			cmd = cmd.SetFfmpegPath(cfg.FFMPEGPath)
		}
		return cmd.Run()
	}
	log.Printf("Recording %dx%d@%d to %s", cfg.Width, cfg.Height, cfg.FPS, cfg.OutputFile)
	return start(cfg, run, readPixels), nil
}

// start launches the encoder goroutine. run consumes the raw stream until EOF.
func start(cfg Config, run func(io.Reader) error, read func(width, height int) []byte) *Recorder {
	r := &Recorder{
		cfg:    cfg,
		frames: make(chan []byte, numBuffers),
		done:   make(chan error, 1),
		read:   read,
	}
	go r.runEncoder(run)
	return r
}

// runEncoder is the consumer. It feeds frames to run through a pipe.
func (r *Recorder) runEncoder(run func(io.Reader) error) {
	pipeReader, pipeWriter := io.Pipe()

	errc := make(chan error, 1)
	go func() {
		err := run(pipeReader)
		// Unblock writes if the encoder exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range r.frames {
		if writeErr != nil {
			continue
		}
		if _, err := pipeWriter.Write(frame); err != nil {
			log.Printf("Error writing frame to ffmpeg: %v", err)
			writeErr = err
		}
	}
	pipeWriter.Close()

	err := <-errc
	if err == nil {
		err = writeErr
	}
	r.done <- err
}

// Hook is a renderer frame hook. It captures one frame per call.
func (r *Recorder) Hook(width, height int) error {
	if r.closed {
		return ErrClosed
	}
	if width != r.cfg.Width || height != r.cfg.Height {
		r.finish()
		return fmt.Errorf("%w: %dx%d, recording %dx%d", ErrSize, width, height, r.cfg.Width, r.cfg.Height)
	}

	r.frames <- r.read(width, height)
	r.count++

	if r.cfg.MaxFrames > 0 && r.count >= r.cfg.MaxFrames {
		r.finish()
		log.Printf("Recorded %d frames", r.count)
		return ErrFinished
	}
	return nil
}

// Frames is the number of frames captured.
func (r *Recorder) Frames() int {
	return r.count
}

func (r *Recorder) finish() {
	if !r.closed {
		r.closed = true
		close(r.frames)
	}
}

// Close stops capturing and waits for the encoder to flush.
func (r *Recorder) Close() error {
	r.finish()
	r.closeOnce.Do(func() {
		r.closeErr = <-r.done
	})
	return r.closeErr
}

func getArgs(cfg Config) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"r":       cfg.FPS,
	}

	// Frames are read back bottom row first.
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"pix_fmt": "yuv420p",
	}

	switch runtime.GOOS {
	case "darwin":
		if cfg.Codec == "hevc" {
			outputArgs["c:v"] = "hevc_videotoolbox"
		} else {
			outputArgs["c:v"] = "h264_videotoolbox"
		}
	default:
		if cfg.Codec == "hevc" {
			outputArgs["c:v"] = "libx265"
		} else {
			outputArgs["c:v"] = "libx264"
		}
	}

	if cfg.Codec == "hevc" && len(cfg.OutputFile) > 4 && cfg.OutputFile[len(cfg.OutputFile)-4:] == ".mp4" {
		outputArgs["tag:v"] = "hvc1"
	}
	return
}

func readPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
