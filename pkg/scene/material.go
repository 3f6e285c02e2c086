package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenepost/pkg/math"
)

// Material errors.
var (
	ErrSlotNotFound = errors.New("texture slot not found")
)

// TextureSemantic identifies what a texture contributes to a material.
type TextureSemantic int

// Texture semantics.
const (
	TexDiffuse TextureSemantic = iota
	TexSpecular
	TexAmbient
	TexEmissive
	TexHeight
	TexNormals
	TexShininess
	TexOpacity
	TexLightmap
	TexReflection
)

// String returns a human-readable semantic name.
func (s TextureSemantic) String() string {
	switch s {
	case TexDiffuse:
		return "diffuse"
	case TexSpecular:
		return "specular"
	case TexAmbient:
		return "ambient"
	case TexEmissive:
		return "emissive"
	case TexHeight:
		return "height"
	case TexNormals:
		return "normals"
	case TexShininess:
		return "shininess"
	case TexOpacity:
		return "opacity"
	case TexLightmap:
		return "lightmap"
	case TexReflection:
		return "reflection"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MapMode is the sampling behavior for UV coordinates outside [0,1].
type MapMode int

// Mapping modes.
const (
	MapWrap MapMode = iota
	MapClamp
	MapMirror
	MapDecal
)

// String returns a human-readable mapping mode name.
func (m MapMode) String() string {
	switch m {
	case MapWrap:
		return "wrap"
	case MapClamp:
		return "clamp"
	case MapMirror:
		return "mirror"
	case MapDecal:
		return "decal"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// UVTransform is the raw per-texture UV transform an importer stores as
// material metadata.
type UVTransform struct {
	Scale       math.Vec2 `yaml:"scale"`
	Rotation    float32   `yaml:"rotation"` // radians, counter-clockwise
	Translation math.Vec2 `yaml:"translation"`
}

// DefaultUVTransform returns the no-op transform.
func DefaultUVTransform() UVTransform {
	return UVTransform{Scale: math.Vec2{X: 1, Y: 1}}
}

// TextureSlot is one texture reference within a material.
type TextureSlot struct {
	Semantic  TextureSemantic `yaml:"semantic"`
	Index     int             `yaml:"index"` // slot index within the semantic
	Path      string          `yaml:"path,omitempty"`
	UVSource  int             `yaml:"uv_source"` // source UV channel in mesh data
	UVChannel uint32          `yaml:"uv_channel"`
	Transform UVTransform     `yaml:"transform"`
	MapU      MapMode         `yaml:"map_u"`
	MapV      MapMode         `yaml:"map_v"`
}

// Material is a collection of texture slots. Slot lookup is keyed by
// (semantic, index); UVChannel is the per-slot UV-index property the
// post-processing pipeline rewrites.
type Material struct {
	Name     string        `yaml:"name"`
	Textures []TextureSlot `yaml:"textures"`
}

// Slot returns the texture slot for the given semantic and index.
func (m *Material) Slot(semantic TextureSemantic, index int) (*TextureSlot, bool) {
	for i := range m.Textures {
		t := &m.Textures[i]
		if t.Semantic == semantic && t.Index == index {
			return t, true
		}
	}
	return nil, false
}

// UVIndex returns the UV-index property of the given slot.
func (m *Material) UVIndex(semantic TextureSemantic, index int) (uint32, bool) {
	t, ok := m.Slot(semantic, index)
	if !ok {
		return 0, false
	}
	return t.UVChannel, true
}

// SetUVIndex writes the UV-index property of the given slot.
func (m *Material) SetUVIndex(semantic TextureSemantic, index int, channel uint32) error {
	t, ok := m.Slot(semantic, index)
	if !ok {
		return fmt.Errorf("material %q %s[%d]: %w", m.Name, semantic, index, ErrSlotNotFound)
	}
	t.UVChannel = channel
	return nil
}
