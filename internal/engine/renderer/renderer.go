// Package renderer executes instanced draws. Renderer is the OpenGL backend;
// LogSubmitter is a headless stand-in.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

const mat4Size = int(unsafe.Sizeof(math.Mat4{}))

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type meshBuffers struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Renderer draws batches with glDrawElementsInstanced. All per-instance
// matrices go through one shared stream buffer.
type Renderer struct {
	config Config

	program     uint32
	locViewProj int32
	locColor    int32
	locLightDir int32

	lineProgram     uint32
	lineLocViewProj int32
	lineLocColor    int32
	lineVAO         uint32
	lineVBO         uint32

	instanceVBO uint32

	meshes    map[scene.MeshID]*meshBuffers
	materials map[scene.MaterialID][4]float32

	// Per-frame counters
	DrawCalls int
	Instances int
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		meshes:    make(map[scene.MeshID]*meshBuffers),
		materials: make(map[scene.MaterialID][4]float32),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = compileProgram(instancedVertexShader, instancedFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("instanced shader: %w", err)
	}
	r.locViewProj = uniform(r.program, "uViewProj")
	r.locColor = uniform(r.program, "uColor")
	r.locLightDir = uniform(r.program, "uLightDir")

	r.lineProgram, err = compileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("line shader: %w", err)
	}
	r.lineLocViewProj = uniform(r.lineProgram, "uViewProj")
	r.lineLocColor = uniform(r.lineProgram, "uColor")

	gl.GenBuffers(1, &r.instanceVBO)

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return r, nil
}

// RegisterScene uploads geometry for every mesh and records material
// colors.
func (r *Renderer) RegisterScene(s *scene.Scene) {
	for _, mesh := range s.Meshes {
		r.RegisterMesh(mesh)
	}
	for _, mat := range s.Materials {
		r.materials[mat.ID] = mat.Color
	}
}

// RegisterMesh uploads the stand-in box geometry for mesh.
func (r *Renderer) RegisterMesh(mesh *scene.Mesh) {
	if _, ok := r.meshes[mesh.ID]; ok {
		return
	}
	vertices, indices := BoxGeometry(mesh.LocalBounds)
	stride := int32(unsafe.Sizeof(BoxVertex{}))

	mb := &meshBuffers{indexCount: int32(len(indices))}
	gl.GenVertexArrays(1, &mb.vao)
	gl.BindVertexArray(mb.vao)

	gl.GenBuffers(1, &mb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &mb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Model matrix: four vec4 columns, advanced once per instance.
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	for col := uint32(0); col < 4; col++ {
		loc := 2 + col
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, int32(mat4Size), uintptr(col*16))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	r.meshes[mesh.ID] = mb

	logger.Debug("mesh uploaded",
		zap.String("mesh", string(mesh.ID)),
		zap.Uint32("vao", mb.vao),
	)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Begin clears the frame and binds the view-projection for every draw.
func (r *Renderer) Begin(viewProj math.Mat4) {
	r.DrawCalls = 0
	r.Instances = 0

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locLightDir, -0.3, -1.0, -0.4)
}

// SubmitInstanced implements instancing.Submitter. Unknown meshes are
// skipped with a warning.
func (r *Renderer) SubmitInstanced(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4) {
	mb, ok := r.meshes[mesh]
	if !ok {
		logger.Warn("draw for unregistered mesh skipped", zap.String("mesh", string(mesh)))
		return
	}
	if len(matrices) == 0 {
		return
	}

	color, ok := r.materials[material]
	if !ok {
		color = [4]float32{1, 0, 1, 1}
	}
	gl.Uniform4f(r.locColor, color[0], color[1], color[2], color[3])

	// Orphan and refill the stream buffer for this batch.
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(matrices)*mat4Size, gl.Ptr(matrices), gl.STREAM_DRAW)

	gl.BindVertexArray(mb.vao)
	gl.DrawElementsInstanced(gl.TRIANGLES, mb.indexCount, gl.UNSIGNED_INT, nil, int32(len(matrices)))
	gl.BindVertexArray(0)

	r.DrawCalls++
	r.Instances += len(matrices)
}

// DrawLines draws debug line vertices ([x, y, z] pairs) in a flat color.
func (r *Renderer) DrawLines(viewProj math.Mat4, vertices []float32, color [4]float32) {
	if len(vertices) == 0 {
		return
	}
	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.lineLocViewProj, 1, false, viewProj.Ptr())
	gl.Uniform4f(r.lineLocColor, color[0], color[1], color[2], color[3])

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(vertices)/3))
	gl.BindVertexArray(0)

	gl.UseProgram(r.program)
}

// Close releases GL resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, mb := range r.meshes {
		gl.DeleteVertexArrays(1, &mb.vao)
		gl.DeleteBuffers(1, &mb.vbo)
		gl.DeleteBuffers(1, &mb.ebo)
	}
	clear(r.meshes)
	if r.instanceVBO != 0 {
		gl.DeleteBuffers(1, &r.instanceVBO)
	}
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
}
