// Package uvtrans resolves per-texture UV transforms stored as material
// metadata: equivalent setups are merged, each surviving setup is assigned
// a destination UV channel within the mesh channel limit, referencing
// materials are rewired to that channel, and the transformed coordinates
// are baked into the mesh.
package uvtrans

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/scenepost/pkg/math"
	"github.com/Faultbox/scenepost/pkg/scene"
)

const (
	// rotationEpsilon is the angle below which a rotation counts as none
	// (0.5 degrees).
	rotationEpsilon = 0.5 * math32.Pi / 180

	// defaultMergeEpsilon is the component-wise tolerance for merging
	// two transform setups.
	defaultMergeEpsilon float32 = 0.05
)

// resolution is the lifecycle state of a transform setup. Phase 1 assigns
// Identity, phase 2 assigns Resolved or Overflow; a terminal state is
// never changed.
type resolution int

const (
	stateUnresolved resolution = iota
	stateIdentity              // within tolerance of the identity, keeps its source channel
	stateResolved              // assigned a destination channel
	stateOverflow              // no free channel, left untransformed
)

func (r resolution) String() string {
	switch r {
	case stateUnresolved:
		return "unresolved"
	case stateIdentity:
		return "identity"
	case stateResolved:
		return "resolved"
	case stateOverflow:
		return "overflow"
	default:
		return "invalid"
	}
}

// materialRef is one material's dependency on a transform setup. shortcut
// points directly at the slot's UV-index property when it was captured
// during discovery; otherwise the propagator falls back to a keyed write
// through the material interface.
type materialRef struct {
	mat      *scene.Material
	matIndex int
	semantic scene.TextureSemantic
	index    int
	shortcut *uint32
}

// setup is one unique (or not yet merged) UV transform configuration and
// the list of material slots referencing it.
type setup struct {
	scale       math.Vec2
	rotation    float32
	translation math.Vec2
	srcChannel  int
	mapU, mapV  scene.MapMode

	state   resolution
	channel int // destination channel, valid in stateResolved

	refs []materialRef
}

// newSetup builds a candidate from a material texture slot.
func newSetup(slot *scene.TextureSlot) setup {
	return setup{
		scale:       slot.Transform.Scale,
		rotation:    slot.Transform.Rotation,
		translation: slot.Transform.Translation,
		srcChannel:  slot.UVSource,
		mapU:        slot.MapU,
		mapV:        slot.MapV,
		state:       stateUnresolved,
	}
}

// finite reports whether all transform components are finite.
func (s *setup) finite() bool {
	for _, f := range []float32{s.scale.X, s.scale.Y, s.rotation, s.translation.X, s.translation.Y} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// reset replaces the transform components with the no-op defaults.
func (s *setup) reset() {
	s.scale = math.Vec2{X: 1, Y: 1}
	s.rotation = 0
	s.translation = math.Vec2{}
}

// normalize folds the rotation into [0,2pi) and, per axis under wrap
// mapping, reduces the translation to its fractional part: sampling is
// periodic there, so the visible result is unchanged and merges hit more
// often.
func (s *setup) normalize() {
	const twoPi float32 = 2 * math32.Pi
	s.rotation = math32.Mod(s.rotation, twoPi)
	if s.rotation < 0 {
		s.rotation += twoPi
	}

	if s.mapU == scene.MapWrap {
		s.translation.X -= math32.Floor(s.translation.X)
	}
	if s.mapV == scene.MapWrap {
		s.translation.Y -= math32.Floor(s.translation.Y)
	}
}

// untransformed reports whether the setup is the identity transform:
// unit scale, zero translation, rotation below the angular epsilon.
func (s *setup) untransformed() bool {
	return s.scale.X == 1 && s.scale.Y == 1 &&
		s.translation.X == 0 && s.translation.Y == 0 &&
		s.rotation < rotationEpsilon
}

// matches reports whether two setups are equal within eps, component-wise
// on scale, translation and rotation. Mapping modes and source channels
// are deliberately not compared here; the registry handles both.
func (s *setup) matches(other *setup, eps float32) bool {
	if math32.Abs(s.translation.X-other.translation.X) > eps ||
		math32.Abs(s.translation.Y-other.translation.Y) > eps {
		return false
	}
	if math32.Abs(s.scale.X-other.scale.X) > eps ||
		math32.Abs(s.scale.Y-other.scale.Y) > eps {
		return false
	}
	return math32.Abs(s.rotation-other.rotation) <= eps
}

// matrix composes the 3x3 UV transform matrix.
func (s *setup) matrix() math.Mat3 {
	return math.ComposeUV(s.scale, s.rotation, s.translation)
}
