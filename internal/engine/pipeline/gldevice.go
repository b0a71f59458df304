package pipeline

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/hexlab/stlglitch/internal/engine/buffer"
	"github.com/hexlab/stlglitch/internal/engine/framebuffer"
	"github.com/hexlab/stlglitch/internal/engine/shader"
)

// GLDevice is the OpenGL implementation of Device. It owns the shader
// program, the mesh buffers and the low-resolution framebuffer.
type GLDevice struct {
	program uint32
	buffers *buffer.BufferSet
	target  *framebuffer.Framebuffer

	locProjection int32
	locModelView  int32
	locNormal     int32
	locTime       int32
	locResolution int32
}

// NewGLDevice wraps a linked program and uploaded buffers. It resolves all
// required attribute and uniform locations up front and fails if any is
// missing, so a bad program can never reach the render loop.
func NewGLDevice(program uint32, buffers *buffer.BufferSet) (*GLDevice, error) {
	d := &GLDevice{
		program: program,
		buffers: buffers,
	}

	for name, loc := range map[string]int32{
		"position": buffer.PositionLocation,
		"normal":   buffer.NormalLocation,
	} {
		got, err := shader.LookupAttrib(program, name)
		if err != nil {
			return nil, err
		}
		if got != loc {
			return nil, fmt.Errorf("attribute %q bound at %d, expected %d", name, got, loc)
		}
	}

	var err error
	if d.locProjection, err = shader.LookupUniform(program, "projectionMatrix"); err != nil {
		return nil, err
	}
	if d.locModelView, err = shader.LookupUniform(program, "modelViewMatrix"); err != nil {
		return nil, err
	}
	if d.locNormal, err = shader.LookupUniform(program, "normalMatrix"); err != nil {
		return nil, err
	}
	if d.locTime, err = shader.LookupUniform(program, "time"); err != nil {
		return nil, err
	}
	if d.locResolution, err = shader.LookupUniform(program, "resolution"); err != nil {
		return nil, err
	}

	return d, nil
}

// ConfigureTarget creates or resizes the offscreen render target.
func (d *GLDevice) ConfigureTarget(width, height int32) error {
	if d.target == nil {
		fb, err := framebuffer.New(width, height)
		if err != nil {
			return err
		}
		d.target = fb
		return nil
	}
	d.target.Resize(width, height)
	return nil
}

// BeginFrame binds the target and clears it to opaque black.
func (d *GLDevice) BeginFrame() {
	d.target.Bind()
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Submit pushes the frame uniforms and draws the triangle list.
func (d *GLDevice) Submit(frame Frame) {
	gl.UseProgram(d.program)
	d.buffers.Bind()

	gl.UniformMatrix4fv(d.locProjection, 1, false, frame.Projection.Ptr())
	gl.UniformMatrix4fv(d.locModelView, 1, false, frame.ModelView.Ptr())
	gl.UniformMatrix4fv(d.locNormal, 1, false, frame.Normal.Ptr())
	gl.Uniform1f(d.locTime, frame.Time)
	gl.Uniform2f(d.locResolution, float32(frame.Width), float32(frame.Height))

	gl.DrawArrays(gl.TRIANGLES, 0, frame.VertexCount)

	gl.BindVertexArray(0)
}

// Present blits the low-resolution target over the window surface.
func (d *GLDevice) Present(displayWidth, displayHeight int32) {
	d.target.BlitToScreen(displayWidth, displayHeight)
}

// Release frees the program, buffers and target. Idempotent.
func (d *GLDevice) Release() {
	if d.target != nil {
		d.target.Destroy()
		d.target = nil
	}
	if d.buffers != nil {
		d.buffers.Release()
		d.buffers = nil
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
}
