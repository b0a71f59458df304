package pipeline

import "github.com/hexlab/stlglitch/pkg/math"

// Frame carries everything the device needs to draw one frame.
type Frame struct {
	Projection math.Mat4
	ModelView  math.Mat4
	Normal     math.Mat4

	// Time is wall-clock seconds since the loop started.
	Time float32

	// Width and Height are the render-target dimensions in pixels.
	Width, Height int32

	// VertexCount is the number of vertices in the triangle-list draw.
	VertexCount int32
}

// Device is the GPU side of the render loop. Separating it from the tick
// state machine keeps resize detection and uniform composition testable
// without a display.
type Device interface {
	// ConfigureTarget (re)sizes the render target. Called only when the
	// target dimensions actually change.
	ConfigureTarget(width, height int32) error

	// BeginFrame binds the render target and clears color and depth.
	BeginFrame()

	// Submit binds the program and vertex buffers, pushes the frame's
	// uniforms and issues the draw call.
	Submit(frame Frame)

	// Present displays the rendered target on a display surface of the
	// given size.
	Present(displayWidth, displayHeight int32)

	// Release frees all GPU resources owned by the device. Must be
	// idempotent.
	Release()
}
