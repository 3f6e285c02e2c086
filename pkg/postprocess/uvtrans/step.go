package uvtrans

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/postprocess"
	"github.com/Faultbox/scenepost/pkg/scene"
)

// Step is the UV transform resolution stage. Zero value is usable;
// SetupProperties applies any configured overrides before Execute.
type Step struct {
	mergeTolerance float32
	forceBaking    bool
}

// New creates the step.
func New() *Step {
	return &Step{}
}

// Name identifies the step in logs.
func (st *Step) Name() string {
	return "TransformUVCoords"
}

// IsActive reports whether the flag set enables this step.
func (st *Step) IsActive(flags postprocess.Flags) bool {
	return flags&postprocess.FlagTransformUVCoords != 0
}

// SetupProperties reads the stage configuration.
func (st *Step) SetupProperties(props *postprocess.Properties) {
	st.mergeTolerance = props.MergeTolerance
	st.forceBaking = props.ForceBaking
}

// Execute resolves all material UV transforms in the scene. Phase 1 walks
// every material texture slot and merges equivalent transform setups in
// the registry. Phase 2 assigns destination channels. Phase 3 rewrites
// the materials' UV-index properties and bakes transformed coordinates,
// meshes in parallel: the registry is frozen by then and meshes are
// disjoint.
func (st *Step) Execute(sc *scene.Scene) error {
	if sc == nil {
		return postprocess.ErrNilScene
	}

	reg := newRegistry(st.mergeTolerance, st.forceBaking)

	candidates := 0
	for mi, mat := range sc.Materials {
		for i := range mat.Textures {
			slot := &mat.Textures[i]
			reg.add(newSetup(slot), materialRef{
				mat:      mat,
				matIndex: mi,
				semantic: slot.Semantic,
				index:    slot.Index,
				shortcut: &slot.UVChannel,
			})
			candidates++
		}
	}

	resolveChannels(sc, reg, st.forceBaking)

	for _, s := range reg.setups {
		applySetup(s)
	}

	perMesh := make([][]*setup, len(sc.Meshes))
	for _, s := range reg.setups {
		if s.state != stateResolved {
			continue
		}
		for _, mi := range meshesOf(sc, s) {
			perMesh[mi] = append(perMesh[mi], s)
		}
	}

	baked := make([]int, len(sc.Meshes))
	var wg sync.WaitGroup
	for mi := range sc.Meshes {
		if len(perMesh[mi]) == 0 {
			continue
		}
		wg.Add(1)
		go func(mi int) {
			defer wg.Done()
			for _, s := range perMesh[mi] {
				if bakeSetup(sc.Meshes[mi], s) {
					baked[mi]++
				}
			}
		}(mi)
	}
	wg.Wait()

	totalBaked := 0
	for _, n := range baked {
		totalBaked += n
	}
	overflowed := 0
	for _, s := range reg.setups {
		if s.state == stateOverflow {
			overflowed++
		}
	}

	logger.Info("UV transforms resolved",
		zap.Int("candidates", candidates),
		zap.Int("unique", reg.transformed()),
		zap.Int("overflowed", overflowed),
		zap.Int("bakes", totalBaked))
	return nil
}
