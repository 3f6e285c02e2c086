package uvtrans

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
	"github.com/Faultbox/scenepost/pkg/scene"
)

// resolveChannels assigns every unresolved setup a destination UV channel,
// in discovery order so channel indices are reproducible across runs.
//
// A setup that is the sole claimant of its source channel on every mesh it
// touches reuses that channel in place. Otherwise the lowest channel index
// free on all of its meshes is allocated; when none is left below the mesh
// channel limit the setup overflows and its materials keep their original,
// untransformed coordinates.
//
// With forceBaking the reuse shortcut is skipped and every setup gets a
// freshly allocated channel.
func resolveChannels(sc *scene.Scene, reg *registry, forceBaking bool) {
	// Channels occupied per mesh: everything already present, plus
	// destinations allocated below. Existing channels are never treated
	// as free even when no setup draws from them.
	used := make([]map[int]bool, len(sc.Meshes))
	// Number of setups (identity included) drawing from each channel.
	srcClaims := make([]map[int]int, len(sc.Meshes))
	for i, m := range sc.Meshes {
		used[i] = make(map[int]bool)
		srcClaims[i] = make(map[int]int)
		for c := range m.UV {
			if m.UV[c] != nil {
				used[i][c] = true
			}
		}
	}

	for _, s := range reg.setups {
		for _, mi := range meshesOf(sc, s) {
			srcClaims[mi][s.srcChannel]++
		}
	}

	for _, s := range reg.setups {
		if s.state != stateUnresolved {
			continue
		}
		meshes := meshesOf(sc, s)
		if len(meshes) == 0 {
			// No mesh draws from this material; there is nothing to
			// allocate or bake.
			continue
		}

		if !forceBaking {
			reuse := true
			for _, mi := range meshes {
				if srcClaims[mi][s.srcChannel] != 1 || !sc.Meshes[mi].HasUVChannel(s.srcChannel) {
					reuse = false
					break
				}
			}
			if reuse {
				s.state = stateResolved
				s.channel = s.srcChannel
				continue
			}
		}

		dest := -1
		for n := 0; n < scene.MaxUVChannels; n++ {
			free := true
			for _, mi := range meshes {
				if used[mi][n] {
					free = false
					break
				}
			}
			if free {
				dest = n
				break
			}
		}
		if dest < 0 {
			s.state = stateOverflow
			warnOverflow(sc, s, meshes)
			continue
		}

		for _, mi := range meshes {
			used[mi][dest] = true
		}
		s.state = stateResolved
		s.channel = dest
	}
}

// meshesOf returns the sorted indices of all meshes whose material is
// referenced by the setup.
func meshesOf(sc *scene.Scene, s *setup) []int {
	seen := make(map[int]bool)
	var out []int
	for _, ref := range s.refs {
		for _, mi := range sc.MeshesUsingMaterial(ref.matIndex) {
			if !seen[mi] {
				seen[mi] = true
				out = append(out, mi)
			}
		}
	}
	sort.Ints(out)
	return out
}

func warnOverflow(sc *scene.Scene, s *setup, meshes []int) {
	names := make([]string, 0, len(meshes))
	for _, mi := range meshes {
		names = append(names, sc.Meshes[mi].Name)
	}
	for _, ref := range s.refs {
		logger.Warn("no free UV channel for transformed texture, leaving it untransformed",
			zap.String("material", ref.mat.Name),
			zap.String("semantic", ref.semantic.String()),
			zap.Int("slot", ref.index),
			zap.Strings("meshes", names))
	}
}
