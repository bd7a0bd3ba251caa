package shader

// ────────────────────────────────── Desktop GL ──────────────────────────────────

// DefaultVertexSource passes color and texture coordinates through and
// transforms positions by model, view and proj, which start as identity.
const DefaultVertexSource = `#version 330 core
layout (location = 0) in vec3 pos;
layout (location = 1) in vec4 col;
layout (location = 2) in vec2 tex_coord;

uniform mat4 model = mat4(1.0);
uniform mat4 view  = mat4(1.0);
uniform mat4 proj  = mat4(1.0);

out vec4 b_col;
out vec2 b_tex_coord;

void main() {
    b_col = col;
    b_tex_coord = tex_coord;
    gl_Position = proj * view * model * vec4(pos, 1.0);
}
`

// DefaultFragmentSource modulates the texture on unit 0 by the vertex color.
const DefaultFragmentSource = `#version 330 core
in vec4 b_col;
in vec2 b_tex_coord;

uniform sampler2D tex0;

out vec4 FragColor;

void main() {
    FragColor = texture(tex0, b_tex_coord) * b_col;
}
`

// ──────────────────────────────────── WebGL2 ────────────────────────────────────

// WebGLVertexSource is the WebGL2 counterpart of DefaultVertexSource, for use
// with FromWebGL.
const WebGLVertexSource = `#version 300 es
layout (location = 0) in vec3 pos;
layout (location = 1) in vec4 col;
layout (location = 2) in vec2 tex_coord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;

out vec4 b_col;
out vec2 b_tex_coord;

void main() {
    b_col = col;
    b_tex_coord = tex_coord;
    gl_Position = proj * view * model * vec4(pos, 1.0);
}
`
