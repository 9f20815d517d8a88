package points

import (
	"simplescene/internal/graphics"
	"simplescene/internal/graphics/renderer"
	"simplescene/internal/graphics/vertexdata"
	"simplescene/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec4 aPosSize;
layout(location = 1) in vec4 aColor;
uniform mat4 view;
uniform mat4 projection;
uniform float pointScale;
out vec4 vColor;
void main() {
	vec4 viewPos = view * vec4(aPosSize.xyz, 1.0);
	gl_Position = projection * viewPos;
	gl_PointSize = max(1.0, pointScale * aPosSize.w / -viewPos.z);
	vColor = aColor;
}`

const fragmentSrc = `#version 410 core
in vec4 vColor;
out vec4 fragColor;
void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	if (dot(d, d) > 0.25) discard;
	fragColor = vColor;
}`

// Points draws every particle system of the scene as round point sprites
type Points struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	buf      []float32
	scratch  []float32
	capacity int // floats the VBO can hold
}

var _ renderer.Renderable = (*Points)(nil)

func NewPoints() *Points {
	return &Points{}
}

func (p *Points) Init() error {
	var err error
	p.shader, err = graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)

	stride := int32(vertexdata.ParticleStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(4*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (p *Points) Render(ctx renderer.RenderContext) {
	defer profiling.Track("points.Render")()

	p.pack(ctx)
	if len(p.buf) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	if len(p.buf) > p.capacity {
		// grow with headroom so steady-state frames only sub-upload
		p.capacity = len(p.buf) * 2
		gl.BufferData(gl.ARRAY_BUFFER, p.capacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.buf)*4, gl.Ptr(p.buf))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	p.shader.Use()
	p.shader.SetMatrix4("view", &ctx.View[0])
	p.shader.SetMatrix4("projection", &ctx.Proj[0])
	p.shader.SetFloat("pointScale", 40)

	gl.DepthMask(false)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(len(p.buf)/vertexdata.ParticleStride))
	gl.BindVertexArray(0)
	gl.DepthMask(true)
}

// pack concatenates the vertices of every particle system into p.buf
func (p *Points) pack(ctx renderer.RenderContext) {
	p.buf = p.buf[:0]
	for _, ps := range ctx.Scene.Particles {
		p.scratch = vertexdata.PackParticles(p.scratch, ps.Particles())
		p.buf = append(p.buf, p.scratch...)
	}
}

func (p *Points) Dispose() {
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	if p.shader != nil {
		p.shader.Delete()
	}
}
