package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"

	"github.com/richinsley/goglib/glfwcontext"
	options "github.com/richinsley/goglib/options"
	"github.com/richinsley/goglib/recorder"
	renderer "github.com/richinsley/goglib/renderer"
)

func run(opts *options.Options, assets *sceneAssets) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return fmt.Errorf("failed to create window: %w", err)
	}

	r, err := renderer.NewRenderer(ctx, opts)
	if err != nil {
		ctx.Shutdown()
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	setup, ok := scenes[*opts.Example]
	if !ok {
		r.Shutdown()
		return fmt.Errorf("unknown example %q", *opts.Example)
	}
	render, cleanup, err := setup.build(context.Background(), r, assets)
	if err != nil {
		r.Shutdown()
		return fmt.Errorf("failed to set up %s: %w", *opts.Example, err)
	}
	r.OnShutdown(cleanup)
	r.SetRenderCallback(render)
	r.SetResizeCallback(func(width, height int) {
		log.Printf("Framebuffer resized to %dx%d", width, height)
	})

	if opts.Recording() {
		width, height := ctx.GetFramebufferSize()
		rec, err := recorder.New(recorder.ConfigFromOptions(opts, width, height))
		if err != nil {
			r.Shutdown()
			return fmt.Errorf("failed to start recorder: %w", err)
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Printf("Recorder finished with error: %v", err)
			} else {
				log.Printf("Successfully recorded %d frames to %s", rec.Frames(), *opts.OutputFile)
			}
		}()
		r.AddFrameHook(func(width, height int) error {
			err := rec.Hook(width, height)
			if errors.Is(err, recorder.ErrFinished) {
				r.Close()
			}
			return err
		})
	}

	log.Printf("Starting %s example...", *opts.Example)
	r.Run()
	return nil
}

func init() {
	runtime.LockOSThread()
}

func sceneNames() string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	opts := &options.Options{
		Width:          flag.Int("width", options.DefaultWidth, "Window width"),
		Height:         flag.Int("height", options.DefaultHeight, "Window height"),
		Title:          flag.String("title", "GLib window", "Window title"),
		GLMajor:        flag.Int("glmajor", options.DefaultGLMajor, "OpenGL major version"),
		GLMinor:        flag.Int("glminor", options.DefaultGLMinor, "OpenGL minor version"),
		Resizable:      flag.Bool("resizable", true, "Allow the window to be resized"),
		Visible:        flag.Bool("visible", true, "Show the window"),
		VSync:          flag.Bool("vsync", true, "Wait for vertical sync when swapping"),
		RebindDefaults: flag.Bool("rebind", true, "Bind the default shader and texture before every frame"),
		ClearColor:     flag.Uint("clear", 0x004CFFFF, "Clear color as 0xRRGGBBAA"),
		Example:        flag.String("example", "triangle", "Example to run"),
		OutputFile:     flag.String("output", "", "Record the window to this file"),
		FFMPEGPath:     flag.String("ffmpeg", "", "Path to ffmpeg executable"),
		FPS:            flag.Int("fps", options.DefaultFPS, "Frames per second for recording"),
		Codec:          flag.String("codec", options.DefaultCodec, "Video codec for recording (h264 or hevc)"),
		MaxFrames:      flag.Int("frames", 0, "Stop after recording this many frames"),
	}
	assets := &sceneAssets{
		Texture:  flag.String("texture", "", "Image file for the texture example"),
		Model:    flag.String("model", "", "Model file for the model example"),
		Vertex:   flag.String("vert", "", "Vertex shader file, replaces the example's built-in shader"),
		Fragment: flag.String("frag", "", "Fragment shader file, replaces the example's built-in shader"),
	}
	var help = flag.Bool("help", false, "Show help message")

	flag.Parse()

	if *help {
		fmt.Println("GLib examples")
		fmt.Printf("Examples: %s\n", sceneNames())
		flag.PrintDefaults()
		return
	}

	if err := run(opts, assets); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
