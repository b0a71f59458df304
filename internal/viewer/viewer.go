// Package viewer wires the window, decoded model and render pipeline into
// the running application.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/hexlab/stlglitch/internal/assets"
	"github.com/hexlab/stlglitch/internal/config"
	"github.com/hexlab/stlglitch/internal/engine/buffer"
	"github.com/hexlab/stlglitch/internal/engine/geometry"
	"github.com/hexlab/stlglitch/internal/engine/input"
	"github.com/hexlab/stlglitch/internal/engine/pipeline"
	"github.com/hexlab/stlglitch/internal/engine/pipeline/shaders"
	"github.com/hexlab/stlglitch/internal/engine/shader"
	"github.com/hexlab/stlglitch/internal/engine/window"
	"github.com/hexlab/stlglitch/internal/logger"
	"github.com/hexlab/stlglitch/pkg/stl"
)

// Viewer owns the window, input pump and render pipeline.
type Viewer struct {
	window   *window.Window
	input    *input.Input
	pipeline *pipeline.Pipeline
	running  bool
}

// New creates the viewer: window and GL context first, then the full load
// chain (fetch, decode, normalize, upload, compile). Any failure aborts
// before the render loop can start, with the failing stage in the error.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "stlglitch",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		v.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	p, err := buildPipeline(cfg)
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.pipeline = p
	v.input = input.New()

	return v, nil
}

// buildPipeline runs the load chain up to a ready pipeline.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	loader := assets.NewLoader()
	data, err := loader.Load(cfg.Viewer.Model)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	mesh, err := stl.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding model %s: %w", cfg.Viewer.Model, err)
	}
	logger.Info("model decoded",
		zap.String("path", cfg.Viewer.Model),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("vertices", mesh.VertexCount()),
	)

	if err := geometry.Normalize(mesh.Positions); err != nil {
		return nil, fmt.Errorf("normalizing model: %w", err)
	}

	buffers, err := buffer.Upload(mesh.Positions, mesh.Normals)
	if err != nil {
		return nil, fmt.Errorf("uploading model: %w", err)
	}

	program, err := shader.CompileProgram(shaders.GlitchVertexShader, shaders.GlitchFragmentShader)
	if err != nil {
		buffers.Release()
		return nil, fmt.Errorf("compiling shader: %w", err)
	}

	device, err := pipeline.NewGLDevice(program, buffers)
	if err != nil {
		buffers.Release()
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("binding shader contract: %w", err)
	}

	p, err := pipeline.New(device, mesh.VertexCount(), pipeline.Options{
		Downscale:    cfg.Viewer.Downscale,
		RotationStep: cfg.Viewer.RotationStep,
	})
	if err != nil {
		device.Release()
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}
	return p, nil
}

// Run drives the render loop until quit is requested.
func (v *Viewer) Run() error {
	v.running = true
	start := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			switch event.Type {
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					v.running = false
				}
			case input.EventWindowResize:
				// The tick re-reads the window size; nothing to do here.
			}
		}
		if !v.running {
			break
		}

		w, h := v.window.GetSize()
		if err := v.pipeline.Tick(w, h, time.Since(start).Seconds()); err != nil {
			return fmt.Errorf("render tick: %w", err)
		}

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("frames", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close stops the pipeline and destroys the window. Safe to call after a
// failed Run.
func (v *Viewer) Close() {
	if v.pipeline != nil {
		v.pipeline.Stop()
	}
	if v.window != nil {
		v.window.Close()
	}
}
