// Package renderer draws session frames with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/engine/shader"
	"github.com/Faultbox/heliscene/internal/session"
	"github.com/Faultbox/heliscene/pkg/geometry"
)

// SkyColor is the clear colour.
var SkyColor = [4]float32{135.0 / 255, 206.0 / 255, 235.0 / 255, 1}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type gpuMesh struct {
	vao, vbo, nbo, ebo uint32
	indexCount         int32
}

// Renderer uploads the primitive meshes once and draws frames with a
// single shader program.
type Renderer struct {
	config  Config
	log     *zap.Logger
	program *shader.Program
	meshes  map[geometry.Kind]*gpuMesh
}

// New creates a renderer that draws with program.
// Must be called after the OpenGL context exists.
func New(cfg Config, program *shader.Program, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		config:  cfg,
		log:     log,
		program: program,
		meshes:  make(map[geometry.Kind]*gpuMesh),
	}

	log.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(SkyColor[0], SkyColor[1], SkyColor[2], SkyColor[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	for _, kind := range []geometry.Kind{geometry.KindCube, geometry.KindQuad} {
		mesh, err := geometry.ForKind(kind)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.meshes[kind] = upload(mesh)
		log.Debug("mesh uploaded",
			zap.String("kind", string(kind)),
			zap.Int("vertices", mesh.VertexCount()),
			zap.Int("indices", len(mesh.Indices)),
		)
	}

	return r, nil
}

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return nil
}

func upload(mesh geometry.Mesh) *gpuMesh {
	m := &gpuMesh{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Positions)*4, unsafe.Pointer(&mesh.Positions[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &m.nbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.nbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*4, unsafe.Pointer(&mesh.Normals[0]), gl.STATIC_DRAW)

	// Normal attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for kind, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.nbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.meshes, kind)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the framebuffer and draws every item of f.
func (r *Renderer) Draw(f session.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uView", f.View.Ptr())
	r.program.SetMat4("uProj", f.Projection.Ptr())
	r.program.SetVec3("uSunDir", f.Sun.Direction.X, f.Sun.Direction.Y, f.Sun.Direction.Z)
	r.program.SetFloat("uAmbient", f.Sun.Ambient)

	for i := range f.Items {
		it := &f.Items[i]
		m, ok := r.meshes[it.Mesh]
		if !ok {
			r.log.Warn("no mesh for draw item", zap.String("item", it.Name), zap.String("mesh", string(it.Mesh)))
			continue
		}

		r.program.SetMat4("uModel", it.Model.Ptr())
		r.program.SetVec4("uColor", it.Color)
		r.program.SetBool("checkerboard", it.Checkerboard)

		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the back buffer as bottom-up RGBA.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}
