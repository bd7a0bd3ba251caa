package shader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrRead        = errors.New("cannot read shader source")
	ErrEmptySource = errors.New("shader source is empty")
	ErrCompile     = errors.New("shader compilation failed")
	ErrLink        = errors.New("program link failed")
)

type Stage int

const (
	Vertex Stage = iota
	Fragment
)

func (s Stage) ToGL() uint32 {
	switch s {
	case Vertex:
		return gl.VERTEX_SHADER
	case Fragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// CompileError carries the driver info log of a failed stage.
type CompileError struct {
	Stage  Stage
	Origin string // file path, or "memory"
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader (%s): %s", e.Stage, e.Origin, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the driver info log of a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }

const originMemory = "memory"

// ReadSource reads a shader source file.
func ReadSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return string(b), nil
}

// Compile compiles one stage from source and returns the stage handle.
func Compile(source string, stage Stage) (uint32, error) {
	return compile(source, stage, originMemory)
}

func compile(source string, stage Stage, origin string) (uint32, error) {
	if strings.TrimSpace(source) == "" {
		log.Printf("%s shader (%s): %v", stage, origin, ErrEmptySource)
		return 0, fmt.Errorf("%s shader (%s): %w", stage, origin, ErrEmptySource)
	}

	shader := gl.CreateShader(stage.ToGL())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)

		cerr := &CompileError{Stage: stage, Origin: origin, Log: strings.TrimRight(logText, "\x00")}
		log.Print(cerr)
		return 0, cerr
	}
	return shader, nil
}

// Link links a vertex and a fragment stage into a program. Both stages are
// deleted whether or not linking succeeds.
func Link(vertexShader, fragmentShader uint32) (*Program, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		lerr := &LinkError{Log: strings.TrimRight(logText, "\x00")}
		log.Print(lerr)
		return nil, lerr
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return newProgram(program, nil), nil
}

func build(vertexSource, fragmentSource, vertexOrigin, fragmentOrigin string) (*Program, error) {
	vs, err := compile(vertexSource, Vertex, vertexOrigin)
	if err != nil {
		return nil, err
	}
	fs, err := compile(fragmentSource, Fragment, fragmentOrigin)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}
	return Link(vs, fs)
}

// FromMemory builds a program from in-memory sources.
func FromMemory(vertexSource, fragmentSource string) (*Program, error) {
	return build(vertexSource, fragmentSource, originMemory, originMemory)
}

// FromFiles builds a program from source files.
func FromFiles(vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := ReadSource(vertexPath)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := ReadSource(fragmentPath)
	if err != nil {
		return nil, err
	}
	return build(vertexSource, fragmentSource, vertexPath, fragmentPath)
}

// Default builds the program used when no other program is bound.
func Default() (*Program, error) {
	return build(DefaultVertexSource, DefaultFragmentSource, "default", "default")
}
