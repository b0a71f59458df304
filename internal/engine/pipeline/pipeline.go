// Package pipeline drives the per-frame render loop: adaptive render-target
// sizing, transform composition, uniform updates and the draw call.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/hexlab/stlglitch/pkg/math"
)

// Defaults for the loop constants. Downscale divides the display size to get
// the render-target size; RotationStep is added to the model angle each tick.
const (
	DefaultDownscale    = 8
	DefaultRotationStep = 0.005

	fovY = 45 * math32.Pi / 180
	near = 0.1
	far  = 100.0

	// Camera distance along -Z.
	cameraDistance = 6
)

// State is the lifecycle state of the pipeline.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateRendering
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateRendering:
		return "rendering"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Pipeline errors.
var (
	ErrNotReady = errors.New("pipeline is not ready")
	ErrStopped  = errors.New("pipeline is stopped")
)

// Options tune the loop constants. Zero values select the defaults.
type Options struct {
	Downscale    int
	RotationStep float32
}

// Pipeline is the render-loop state machine. It owns the per-frame state
// (rotation angle, current target size) and is the only writer of it.
type Pipeline struct {
	device      Device
	vertexCount int32

	downscale    int32
	rotationStep float32

	state State

	// Per-frame state, mutated once per tick.
	angle            float32
	targetW, targetH int32
}

// New creates a pipeline over a configured device. The device must already
// hold a linked program and uploaded vertex buffers; vertexCount is the
// number of vertices to draw per frame.
func New(device Device, vertexCount int, opts Options) (*Pipeline, error) {
	if device == nil {
		return nil, fmt.Errorf("%w: no device", ErrNotReady)
	}
	if vertexCount <= 0 || vertexCount%3 != 0 {
		return nil, fmt.Errorf("%w: vertex count %d is not whole triangles", ErrNotReady, vertexCount)
	}

	downscale := opts.Downscale
	if downscale <= 0 {
		downscale = DefaultDownscale
	}
	step := opts.RotationStep
	if step == 0 {
		step = DefaultRotationStep
	}

	return &Pipeline{
		device:       device,
		vertexCount:  int32(vertexCount),
		downscale:    int32(downscale),
		rotationStep: step,
		state:        StateReady,
	}, nil
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State {
	return p.state
}

// TargetSize returns the render-target dimensions configured by the last
// tick.
func (p *Pipeline) TargetSize() (int32, int32) {
	return p.targetW, p.targetH
}

// Angle returns the accumulated rotation angle in radians.
func (p *Pipeline) Angle() float32 {
	return p.angle
}

// Tick renders one frame. displayWidth/displayHeight is the current surface
// size in pixels, now is wall-clock seconds since the loop started.
func (p *Pipeline) Tick(displayWidth, displayHeight int, now float64) error {
	switch p.state {
	case StateStopped:
		return ErrStopped
	case StateUninitialized:
		return ErrNotReady
	case StateReady:
		p.state = StateRendering
	}

	// 1. Adaptive resize: render target is a fixed fraction of the display.
	// Reconfigure only when the result actually changes.
	tw := int32(displayWidth) / p.downscale
	th := int32(displayHeight) / p.downscale
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	if tw != p.targetW || th != p.targetH {
		if err := p.device.ConfigureTarget(tw, th); err != nil {
			return fmt.Errorf("configuring render target: %w", err)
		}
		p.targetW, p.targetH = tw, th
	}

	// 2. Clear.
	p.device.BeginFrame()

	// 3. Transforms. The aspect ratio follows the display surface, not the
	// downscaled target (both have the same proportions up to rounding).
	aspect := float32(displayWidth) / float32(displayHeight)
	projection := math.Perspective(fovY, aspect, near, far)
	modelView := math.Translate(0, 0, -cameraDistance).Mul(math.RotateY(p.angle))
	// Computed generally even though the inverse-transpose of a pure
	// rotation+translation is the rotation itself.
	normal := modelView.NormalMatrix()

	// Fixed step per tick, so rotation speed follows the refresh rate.
	p.angle += p.rotationStep

	// 4-5. Uniforms and draw.
	p.device.Submit(Frame{
		Projection:  projection,
		ModelView:   modelView,
		Normal:      normal,
		Time:        float32(now),
		Width:       tw,
		Height:      th,
		VertexCount: p.vertexCount,
	})

	// 6. Upscale to the display.
	p.device.Present(int32(displayWidth), int32(displayHeight))

	return nil
}

// Stop halts the loop and releases GPU resources. Idempotent: only the first
// call reaches the device, and any tick after Stop is rejected before it can
// touch released resources.
func (p *Pipeline) Stop() {
	if p.state == StateStopped {
		return
	}
	p.state = StateStopped
	p.device.Release()
}
