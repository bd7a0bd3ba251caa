package main

import (
	"context"
	"errors"

	"github.com/bloeys/gglm/gglm"
	"github.com/richinsley/goglib/input"
	"github.com/richinsley/goglib/mesh"
	"github.com/richinsley/goglib/mesh/model"
	renderer "github.com/richinsley/goglib/renderer"
	shader "github.com/richinsley/goglib/shader"
	texture "github.com/richinsley/goglib/texture"
)

// sceneAssets are the optional files a scene may load.
type sceneAssets struct {
	Texture  *string
	Model    *string
	Vertex   *string
	Fragment *string
}

type scene struct {
	build func(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (render func(), cleanup func(), err error)
}

var scenes = map[string]scene{
	"triangle": {build: triangleScene},
	"quad":     {build: quadScene},
	"texture":  {build: textureScene},
	"uniform":  {build: uniformScene},
	"mouse":    {build: mouseScene},
	"model":    {build: modelScene},
	"webgl":    {build: webglScene},
}

const timeVertexSource = `#version 330 core
layout (location = 0) in vec3 pos;
layout (location = 1) in vec4 col;
layout (location = 2) in vec2 tex_coord;

uniform float time;

out vec4 b_col;

void main() {
    b_col = col;
    float s = sin(time), c = cos(time);
    gl_Position = vec4(mat2(c, s, -s, c) * pos.xy, pos.z, 1.0);
}
`

const timeFragmentSource = `#version 330 core
in vec4 b_col;

uniform float time;

out vec4 FragColor;

void main() {
    FragColor = vec4(b_col.rgb * (0.75 + 0.25 * sin(time * 2.0)), b_col.a);
}
`

const mouseFragmentSource = `#version 330 core
in vec4 b_col;

uniform float time;
uniform float mouse_x;
uniform float mouse_y;

out vec4 FragColor;

void main() {
    vec2 m = vec2(mouse_x, mouse_y) * 0.5 + 0.5;
    FragColor = vec4(m, 0.5 + 0.5 * sin(time), 1.0) * b_col;
}
`

const webglFragmentSource = `#version 300 es
precision highp float;

in vec4 b_col;
in vec2 b_tex_coord;

uniform float time;

out vec4 fragColor;

void main() {
    vec2 uv = b_tex_coord * 0.5 + 0.5;
    fragColor = vec4(uv, 0.5 + 0.5 * sin(time), 1.0) * b_col;
}
`

// program loads the shader files given on the command line, or falls back to
// the scene's built-in sources.
func program(assets *sceneAssets, vertexSource, fragmentSource string) (*shader.Program, error) {
	if *assets.Vertex != "" && *assets.Fragment != "" {
		return shader.FromFiles(*assets.Vertex, *assets.Fragment)
	}
	return shader.FromMemory(vertexSource, fragmentSource)
}

func triangleScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	vertices := []float32{
		0.0, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 0.5, 1.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 1.0, 0.0, 0.0,
	}
	obj, err := mesh.Create(vertices, []uint32{0, 1, 2})
	if err != nil {
		return nil, nil, err
	}
	return obj.Draw, obj.Delete, nil
}

func quadScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	p, err := program(assets, timeVertexSource, timeFragmentSource)
	if err != nil {
		return nil, nil, err
	}
	obj, err := mesh.QuadColor(mesh.Vec2(-0.5, 0.5), mesh.Vec2(0.5, 0.5), mesh.Vec2(0.5, -0.5), mesh.Vec2(-0.5, -0.5), 0x6666BBFF)
	if err != nil {
		p.Delete()
		return nil, nil, err
	}
	render := func() {
		p.Use()
		p.SetFloat("time", float32(r.Time()))
		obj.Draw()
	}
	return render, func() { obj.Delete(); p.Delete() }, nil
}

func textureScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	tex := r.DefaultTexture()
	owned := false
	if *assets.Texture != "" {
		t, err := texture.Load(*assets.Texture, false)
		if err != nil {
			return nil, nil, err
		}
		tex, owned = t, true
	}
	obj, err := mesh.Triangle(mesh.Vec2(0, 0.5), mesh.Vec2(0.5, -0.5), mesh.Vec2(-0.5, -0.5))
	if err != nil {
		if owned {
			tex.Delete()
		}
		return nil, nil, err
	}
	render := func() {
		tex.Use(texture.Slot0)
		obj.Draw()
	}
	cleanup := func() {
		obj.Delete()
		if owned {
			tex.Delete()
		}
	}
	return render, cleanup, nil
}

func uniformScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	p, err := program(assets, timeVertexSource, timeFragmentSource)
	if err != nil {
		return nil, nil, err
	}
	v, idx := mesh.TriangleVertices(mesh.Vec2(0, 0.5), mesh.Vec2(0.5, -0.5), mesh.Vec2(-0.5, -0.5), 0xFF8000FF)
	obj, err := mesh.Create(v, idx)
	if err != nil {
		p.Delete()
		return nil, nil, err
	}
	render := func() {
		p.Use()
		p.SetFloat("time", float32(r.Time()))
		obj.Draw()
	}
	return render, func() { obj.Delete(); p.Delete() }, nil
}

func mouseScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	p, err := program(assets, shader.DefaultVertexSource, mouseFragmentSource)
	if err != nil {
		return nil, nil, err
	}
	obj, err := mesh.QuadColor(mesh.Vec2(-0.5, 0.5), mesh.Vec2(0.5, 0.5), mesh.Vec2(0.5, -0.5), mesh.Vec2(-0.5, -0.5), 0x6666BBFF)
	if err != nil {
		p.Delete()
		return nil, nil, err
	}
	in := r.Input()
	render := func() {
		// Hold W to see the outline.
		if in.IsKeyPressed(input.KeyW) {
			r.WiredDraw()
		} else {
			r.FilledDraw()
		}

		p.Use()
		p.SetFloat("time", float32(r.Time()))
		if in.IsMousePressed(input.MouseButtonLeft) {
			p.SetFloat("mouse_x", in.MouseX())
			// Cursor y grows downwards.
			p.SetFloat("mouse_y", -in.MouseY())
		}
		obj.Draw()
	}
	return render, func() { obj.Delete(); p.Delete() }, nil
}

func modelScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	if *assets.Model == "" {
		return nil, nil, errors.New("the model example needs -model")
	}
	obj, err := model.LoadOBJ(*assets.Model)
	if err != nil {
		return nil, nil, err
	}
	p := r.DefaultShader()

	pos := gglm.NewVec3(0, 1, 3)
	target := gglm.NewVec3(0, 0, 0)
	up := gglm.NewVec3(0, 1, 0)
	view := gglm.LookAtRH(&pos, &target, &up)
	p.SetMat4("view", &view.Mat4)

	render := func() {
		w, h := r.Input().WindowSize()
		if h > 0 {
			proj := gglm.Perspective(45*gglm.Deg2Rad, float32(w)/float32(h), 0.1, 100)
			p.SetMat4("proj", &proj)
		}
		spin := gglm.NewTrMatId()
		spin.Rotate(float32(r.Time())*30*gglm.Deg2Rad, 0, 1, 0)
		p.SetMat4("model", &spin.Mat4)
		obj.Draw()
	}
	cleanup := func() {
		id := gglm.NewTrMatId()
		for _, name := range []string{"model", "view", "proj"} {
			p.SetMat4(name, &id.Mat4)
		}
		obj.Delete()
	}
	return render, cleanup, nil
}

func webglScene(ctx context.Context, r *renderer.Renderer, assets *sceneAssets) (func(), func(), error) {
	p, err := shader.FromWebGL(ctx, shader.WebGLVertexSource, webglFragmentSource)
	if err != nil {
		return nil, nil, err
	}
	obj, err := mesh.Quad(mesh.Vec2(-0.75, 0.75), mesh.Vec2(0.75, 0.75), mesh.Vec2(0.75, -0.75), mesh.Vec2(-0.75, -0.75))
	if err != nil {
		p.Delete()
		return nil, nil, err
	}
	render := func() {
		p.Use()
		p.SetFloat("time", float32(r.Time()))
		obj.Draw()
	}
	return render, func() { obj.Delete(); p.Delete() }, nil
}
