package uvtrans

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/scene"
)

// applySetup writes the resolved channel into every referencing slot's
// UV-index property, via the direct shortcut when one was captured and a
// keyed write through the material interface otherwise. The slot's stored
// transform metadata is reset to the defaults at the same time: the
// transform is about to be baked into coordinates, so afterwards the slot
// is untransformed and re-running the step does nothing. Identity and
// overflow setups keep their original index untouched.
func applySetup(s *setup) {
	if s.state != stateResolved {
		return
	}

	ch := uint32(s.channel)
	for i := range s.refs {
		ref := &s.refs[i]

		if ref.shortcut != nil {
			*ref.shortcut = ch
		} else {
			// Slower path, not an error.
			logger.Debug("no direct shortcut, keyed UV-index write",
				zap.String("material", ref.mat.Name),
				zap.String("semantic", ref.semantic.String()),
				zap.Int("slot", ref.index))
			if err := ref.mat.SetUVIndex(ref.semantic, ref.index, ch); err != nil {
				logger.Warn("failed to update UV index", zap.Error(err))
				continue
			}
		}

		if slot, ok := ref.mat.Slot(ref.semantic, ref.index); ok {
			slot.Transform = scene.DefaultUVTransform()
			slot.UVSource = s.channel
		}
	}
}
