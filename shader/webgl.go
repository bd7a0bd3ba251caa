package shader

import (
	"context"

	"github.com/bloeys/gglm/gglm"
	xlate "github.com/richinsley/goglib/translator"
)

// FromWebGL translates WebGL2 sources to desktop GLSL and builds a program
// from them. Uniforms keep their source names on the returned Program.
func FromWebGL(ctx context.Context, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := xlate.Translate(ctx, vertexSource, "vertex")
	if err != nil {
		return nil, err
	}
	fs, err := xlate.Translate(ctx, fragmentSource, "fragment")
	if err != nil {
		return nil, err
	}

	p, err := build(vs.Code, fs.Code, "webgl", "webgl")
	if err != nil {
		return nil, err
	}
	p.mapped = mergeUniforms(vs.Uniforms, fs.Uniforms)

	// WebGL has no uniform initializers, start the transforms at identity.
	id := gglm.NewTrMatId()
	for _, name := range []string{"model", "view", "proj"} {
		if p.UniformLocation(name) != -1 {
			p.SetMat4(name, &id.Mat4)
		}
	}
	return p, nil
}

func mergeUniforms(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
