// Package postprocess provides the post-import processing pipeline: a set
// of steps that transform an in-memory scene in place after parsing.
package postprocess

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/scene"
)

// Flags selects which processing steps run.
type Flags uint32

// Processing flags.
const (
	// FlagTransformUVCoords enables resolution of per-texture UV transforms
	// into dedicated UV channels.
	FlagTransformUVCoords Flags = 1 << iota
)

// Properties carries stage-specific configuration, read once per run by
// each active step before it executes.
type Properties struct {
	// MergeTolerance overrides the component-wise epsilon used when
	// deduplicating UV transform setups. Zero keeps the default.
	MergeTolerance float32 `yaml:"merge_tolerance"`

	// ForceBaking disables UV channel sharing: every transformed setup
	// gets its own destination channel and baked coordinates.
	ForceBaking bool `yaml:"force_baking"`
}

// Step is one scene transformation stage.
type Step interface {
	// Name identifies the step in logs.
	Name() string

	// IsActive reports whether the flag set enables this step.
	IsActive(flags Flags) bool

	// SetupProperties reads stage configuration before Execute.
	SetupProperties(props *Properties)

	// Execute transforms the scene in place. Recoverable per-item
	// failures are logged, not returned.
	Execute(s *scene.Scene) error
}

// ErrNilScene is returned when Run is given no scene.
var ErrNilScene = errors.New("nil scene")

// Runner executes registered steps in order.
type Runner struct {
	steps []Step
	props Properties
}

// NewRunner creates a runner with the given properties.
func NewRunner(props Properties) *Runner {
	return &Runner{props: props}
}

// Register appends a step. Steps run in registration order.
func (r *Runner) Register(step Step) {
	r.steps = append(r.steps, step)
}

// Run executes all steps enabled by flags over the scene.
func (r *Runner) Run(s *scene.Scene, flags Flags) error {
	if s == nil {
		return ErrNilScene
	}

	for _, step := range r.steps {
		if !step.IsActive(flags) {
			logger.Debug("step skipped", zap.String("step", step.Name()))
			continue
		}

		step.SetupProperties(&r.props)

		start := time.Now()
		if err := step.Execute(s); err != nil {
			return err
		}
		logger.Debug("step finished",
			zap.String("step", step.Name()),
			zap.Duration("took", time.Since(start)))
	}
	return nil
}
