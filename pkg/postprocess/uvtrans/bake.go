package uvtrans

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/scene"
)

// bakeSetup writes the transformed coordinates for one resolved setup into
// the mesh. A setup that reused its source channel is transformed in
// place; otherwise the destination channel is created with the source's
// vertex count and filled from it. Identity and overflow setups are
// no-ops. Reports whether any coordinates were written.
func bakeSetup(mesh *scene.Mesh, s *setup) bool {
	if s.state != stateResolved {
		return false
	}

	if !mesh.HasUVChannel(s.srcChannel) {
		logger.Warn("source UV channel missing, skipping bake",
			zap.String("mesh", mesh.Name),
			zap.Int("channel", s.srcChannel))
		return false
	}

	m := s.matrix()
	src := mesh.UV[s.srcChannel]

	if s.channel == s.srcChannel {
		for i := range src {
			src[i] = m.MulVec2(src[i])
		}
		return true
	}

	dst, err := mesh.EnsureUVChannel(s.channel, len(src))
	if err != nil {
		logger.Warn("cannot create destination UV channel", zap.Error(err))
		return false
	}
	for i := range src {
		dst[i] = m.MulVec2(src[i])
	}
	return true
}
