package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains frame configuration
type Config struct {
	Width        int       // Image width in pixels
	Height       int       // Image height in pixels
	FOV          float64   // Vertical field of view in radians
	NumWorkers   int       // Number of parallel workers (0 = use CPU count)
	CameraOrigin core.Vec3 // Camera position; the camera looks down -z
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     768,
		FOV:        1.0,
		NumWorkers: 0,
	}
}

// Validate checks that the configuration describes a renderable frame
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < math.Pi) {
		return fmt.Errorf("field of view must be in (0, pi), got %g", c.FOV)
	}
	return nil
}

// Renderer drives a full frame through the tracer
type Renderer struct {
	tracer *Tracer
	camera *Camera
	config Config
	logger core.Logger
}

// NewRenderer validates the scene and configuration and creates a renderer.
// A nil logger discards output.
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &Renderer{
		tracer: NewTracer(s),
		camera: NewCamera(config.CameraOrigin, config.Width, config.Height, config.FOV),
		config: config,
		logger: logger,
	}, nil
}

// Tracer returns the renderer's tracer
func (r *Renderer) Tracer() *Tracer {
	return r.tracer
}

// Render traces every pixel of the frame. Cancelling ctx stops the render
// between rows and returns the context error.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()
	fb := NewFramebuffer(r.config.Width, r.config.Height)
	pool := NewWorkerPool(r.tracer, r.camera, fb, r.config.NumWorkers)

	r.logger.Printf("Rendering %dx%d frame (using %d workers)...\n",
		r.config.Width, r.config.Height, pool.GetNumWorkers())

	pool.Start(ctx)
	for j := 0; j < fb.Height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	var renderErr error
	for i := 0; i < fb.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = errors.New("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.TotalRows++
		stats.TotalPixels += result.Pixels
	}
	pool.Stop()

	stats.Elapsed = time.Since(startTime)
	if renderErr != nil {
		return nil, stats, fmt.Errorf("render stopped after %d of %d rows: %w", stats.TotalRows, fb.Height, renderErr)
	}

	r.logger.Printf("Frame completed in %v (%.0f pixels/s)\n", stats.Elapsed, stats.PixelsPerSecond())
	return fb, stats, nil
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}
