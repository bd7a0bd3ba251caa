// Package translator converts WebGL2 (GLSL ES 3.00) shaders to desktop GLSL.
package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	mu         sync.Mutex
	translator *gst.ShaderTranslator
)

// Result is a translated stage and the renamed uniforms it declares.
type Result struct {
	Code string
	// Uniforms maps source uniform names to their translated names.
	Uniforms map[string]string
}

// GetTranslator returns the shared translator, creating it on first use.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	mu.Lock()
	defer mu.Unlock()
	if translator == nil {
		t, err := gst.NewShaderTranslator(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create shader translator: %w", err)
		}
		translator = t
	}
	return translator, nil
}

// Translate converts one WebGL2 stage ("vertex" or "fragment") to GLSL 330.
func Translate(ctx context.Context, source, stage string) (*Result, error) {
	t, err := GetTranslator(ctx)
	if err != nil {
		return nil, err
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	r := &Result{
		Code:     out.Code,
		Uniforms: make(map[string]string, len(out.Variables)),
	}
	for name, v := range out.Variables {
		r.Uniforms[name] = v.MappedName
	}
	return r, nil
}
