package uvtrans

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/scenepost/pkg/scene"
)

func refFor(mat *scene.Material, slot *scene.TextureSlot) materialRef {
	return materialRef{
		mat:      mat,
		semantic: slot.Semantic,
		index:    slot.Index,
		shortcut: &slot.UVChannel,
	}
}

func addCandidate(reg *registry, mat *scene.Material, slot *scene.TextureSlot) *setup {
	return reg.add(newSetup(slot), refFor(mat, slot))
}

func TestRegistryIdentityCandidate(t *testing.T) {
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		{Semantic: scene.TexDiffuse, Transform: scene.DefaultUVTransform()},
	}}
	reg := newRegistry(0, false)

	entry := addCandidate(reg, mat, &mat.Textures[0])
	if entry.state != stateIdentity {
		t.Errorf("state = %v, want identity", entry.state)
	}
	if reg.transformed() != 0 {
		t.Errorf("transformed() = %d, want 0", reg.transformed())
	}
}

func TestRegistryMergeWithinTolerance(t *testing.T) {
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		transformedSlot(scene.TexDiffuse, 0, 0.30),
		transformedSlot(scene.TexNormals, 0, 0.34),
	}}
	reg := newRegistry(0, false)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])

	if a != b {
		t.Fatal("setups within tolerance on the same source channel must merge")
	}
	if len(a.refs) != 2 {
		t.Errorf("merged setup has %d refs, want 2", len(a.refs))
	}
}

func TestRegistryChainIsNotTransitive(t *testing.T) {
	// A matches B and B matches C, but A does not match C. The registry
	// compares against representatives in discovery order, so B merges
	// into A and C becomes a second representative.
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		transformedSlot(scene.TexDiffuse, 0, 0.30),
		transformedSlot(scene.TexNormals, 0, 0.345),
		transformedSlot(scene.TexSpecular, 0, 0.39),
	}}
	reg := newRegistry(0, false)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])
	c := addCandidate(reg, mat, &mat.Textures[2])

	if a != b {
		t.Error("B should merge into representative A")
	}
	if c == a {
		t.Error("C drifted outside A's tolerance and must become its own setup")
	}
	if got := reg.transformed(); got != 2 {
		t.Errorf("transformed() = %d, want 2", got)
	}
	if len(a.refs) != 2 || len(c.refs) != 1 {
		t.Errorf("refs split = %d/%d, want 2/1", len(a.refs), len(c.refs))
	}
}

func TestRegistryDifferentSourceChannelsNeverMerge(t *testing.T) {
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		transformedSlot(scene.TexDiffuse, 0, 0.30),
		transformedSlot(scene.TexNormals, 1, 0.30),
	}}
	reg := newRegistry(0, false)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])

	if a == b {
		t.Error("identical parameters on different source channels must not merge")
	}
}

func TestRegistryKeepsFirstSeenMappingMode(t *testing.T) {
	first := transformedSlot(scene.TexDiffuse, 0, 0.30)
	first.MapU, first.MapV = scene.MapMirror, scene.MapClamp
	second := transformedSlot(scene.TexNormals, 0, 0.31)
	second.MapU, second.MapV = scene.MapClamp, scene.MapDecal

	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{first, second}}
	reg := newRegistry(0, false)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])

	if a != b {
		t.Fatal("mapping mode differences must not block a merge")
	}
	if a.mapU != scene.MapMirror || a.mapV != scene.MapClamp {
		t.Errorf("merged modes = %v/%v, want first-seen mirror/clamp", a.mapU, a.mapV)
	}
}

func TestRegistryToleranceOverride(t *testing.T) {
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		transformedSlot(scene.TexDiffuse, 0, 0.30),
		transformedSlot(scene.TexNormals, 0, 0.45),
	}}
	reg := newRegistry(0.2, false)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])
	if a != b {
		t.Error("widened tolerance should merge rotations 0.30 and 0.45")
	}
}

func TestRegistryNoMerge(t *testing.T) {
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{
		transformedSlot(scene.TexDiffuse, 0, 0.30),
		transformedSlot(scene.TexNormals, 0, 0.30),
	}}
	reg := newRegistry(0, true)

	a := addCandidate(reg, mat, &mat.Textures[0])
	b := addCandidate(reg, mat, &mat.Textures[1])
	if a == b {
		t.Error("noMerge registry must keep identical setups separate")
	}
	if got := reg.transformed(); got != 2 {
		t.Errorf("transformed() = %d, want 2", got)
	}
}

func TestRegistryMalformedCandidateDegradesToIdentity(t *testing.T) {
	logs := observeWarnings(t)

	slot := transformedSlot(scene.TexDiffuse, 0, 0.5)
	slot.Transform.Scale.X = math32.NaN()
	mat := &scene.Material{Name: "m", Textures: []scene.TextureSlot{slot}}

	reg := newRegistry(0, false)
	entry := addCandidate(reg, mat, &mat.Textures[0])

	if entry.state != stateIdentity {
		t.Errorf("state = %v, want identity", entry.state)
	}
	if entry.scale.X != 1 || entry.rotation != 0 {
		t.Errorf("malformed candidate not reset: %+v", entry)
	}
	if logs.FilterMessage("UV transform has non-finite components, ignoring it").Len() != 1 {
		t.Error("expected a malformed-transform warning")
	}
}
