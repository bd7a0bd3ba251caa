package shader

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked shader program. Uniform setters write straight to the
// program object, so they work whether or not the program is in use.
type Program struct {
	id uint32
	// source uniform name to the name the driver sees, set for translated programs
	mapped    map[string]string
	locations map[string]int32
}

func newProgram(id uint32, mapped map[string]string) *Program {
	return &Program{
		id:        id,
		mapped:    mapped,
		locations: make(map[string]int32),
	}
}

func (p *Program) ID() uint32 {
	return p.id
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program. It is safe to call more than once.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
	p.locations = make(map[string]int32)
}

// MappedName returns the name a uniform was given by translation, or name
// itself when the program was not translated.
func (p *Program) MappedName(name string) string {
	if n, ok := p.mapped[name]; ok && n != "" {
		return n
	}
	return name
}

// UniformLocation returns -1 when name is not an active uniform.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(p.MappedName(name)+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetInt(name string, v int32) {
	gl.ProgramUniform1i(p.id, p.UniformLocation(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.ProgramUniform1f(p.id, p.UniformLocation(name), v)
}

func (p *Program) SetDouble(name string, v float64) {
	gl.ProgramUniform1d(p.id, p.UniformLocation(name), v)
}

func (p *Program) SetVec2(name string, v *gglm.Vec2) {
	gl.ProgramUniform2fv(p.id, p.UniformLocation(name), 1, &v.Data[0])
}

func (p *Program) SetVec3(name string, v *gglm.Vec3) {
	gl.ProgramUniform3fv(p.id, p.UniformLocation(name), 1, &v.Data[0])
}

func (p *Program) SetVec4(name string, v *gglm.Vec4) {
	gl.ProgramUniform4fv(p.id, p.UniformLocation(name), 1, &v.Data[0])
}

func (p *Program) SetMat4(name string, m *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(p.id, p.UniformLocation(name), 1, false, &m.Data[0][0])
}

// SetTextureSlot points a sampler uniform at a texture unit.
func (p *Program) SetTextureSlot(name string, slot int32) {
	p.SetInt(name, slot)
}
