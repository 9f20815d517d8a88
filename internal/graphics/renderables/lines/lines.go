package lines

import (
	"simplescene/internal/config"
	"simplescene/internal/graphics"
	"simplescene/internal/graphics/renderer"
	"simplescene/internal/graphics/vertexdata"
	"simplescene/internal/profiling"
	"simplescene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
uniform mat4 view;
uniform mat4 projection;
out vec3 vColor;
void main() {
	gl_Position = projection * view * vec4(aPos, 1.0);
	vColor = aColor;
}`

const fragmentSrc = `#version 410 core
in vec3 vColor;
out vec4 fragColor;
void main() {
	fragColor = vec4(vColor, 1.0);
}`

var (
	boneColor   = mgl32.Vec3{0.9, 0.9, 0.3}
	jointColor  = mgl32.Vec3{0.3, 0.9, 0.9}
	objectColor = mgl32.Vec3{1.0, 0.3, 0.3}
	gridColor   = mgl32.Vec3{0.25, 0.25, 0.3}
)

// Lines draws a ground grid, skeleton bones and markers for scene objects
type Lines struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32

	segs     []vertexdata.Segment
	joints   []mgl32.Vec3
	buf      []float32
	capacity int
}

var _ renderer.Renderable = (*Lines)(nil)

func NewLines() *Lines {
	return &Lines{}
}

func (l *Lines) Init() error {
	var err error
	l.shader, err = graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &l.vao)
	gl.GenBuffers(1, &l.vbo)
	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)

	stride := int32(vertexdata.LineStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (l *Lines) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lines.Render")()

	l.collect(ctx.Scene)
	l.buf = vertexdata.PackLines(l.buf, l.segs)
	if len(l.buf) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	if len(l.buf) > l.capacity {
		l.capacity = len(l.buf) * 2
		gl.BufferData(gl.ARRAY_BUFFER, l.capacity*4, nil, gl.STREAM_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(l.buf)*4, gl.Ptr(l.buf))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	l.shader.Use()
	l.shader.SetMatrix4("view", &ctx.View[0])
	l.shader.SetMatrix4("projection", &ctx.Proj[0])

	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, int32(len(l.buf)/vertexdata.LineStride))
	gl.BindVertexArray(0)
}

func (l *Lines) collect(s *scene.Scene) {
	l.segs = l.segs[:0]

	const half = 6
	for i := -half; i <= half; i++ {
		f := float32(i)
		l.segs = append(l.segs,
			vertexdata.Segment{From: mgl32.Vec3{f, 0, -half}, To: mgl32.Vec3{f, 0, half}, Color: gridColor},
			vertexdata.Segment{From: mgl32.Vec3{-half, 0, f}, To: mgl32.Vec3{half, 0, f}, Color: gridColor},
		)
	}

	for _, o := range s.Objects {
		l.segs = vertexdata.Cross(l.segs, o.Pos, 0.25, objectColor)
	}

	if !config.GetSkeletonDebugDraw() {
		return
	}
	for _, m := range s.Meshes {
		l.joints = m.JointWorldPositions(l.joints[:0])
		for i, j := range m.Skeleton.Joints() {
			l.segs = vertexdata.Cross(l.segs, l.joints[i], 0.05, jointColor)
			if j.Parent == nil {
				continue
			}
			// Joints() lists parents first, so the parent's slot is already filled
			for k, pj := range m.Skeleton.Joints()[:i] {
				if pj == j.Parent {
					l.segs = append(l.segs, vertexdata.Segment{From: l.joints[k], To: l.joints[i], Color: boneColor})
					break
				}
			}
		}
	}
}

func (l *Lines) Dispose() {
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	if l.shader != nil {
		l.shader.Delete()
	}
}
