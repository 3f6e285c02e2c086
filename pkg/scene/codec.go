package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scene description from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a scene description from YAML bytes.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &s, nil
}

// Save writes a scene description to a YAML file.
func Save(path string, s *Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene %s: %w", path, err)
	}
	return nil
}

// ParseTextureSemantic converts a semantic name to its enum value.
func ParseTextureSemantic(name string) (TextureSemantic, error) {
	for s := TexDiffuse; s <= TexReflection; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown texture semantic %q", name)
}

// ParseMapMode converts a mapping mode name to its enum value.
func ParseMapMode(name string) (MapMode, error) {
	for m := MapWrap; m <= MapDecal; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mapping mode %q", name)
}

// MarshalYAML encodes the semantic as its name.
func (s TextureSemantic) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a semantic name.
func (s *TextureSemantic) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTextureSemantic(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the mapping mode as its name.
func (m MapMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mapping mode name.
func (m *MapMode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseMapMode(name)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML decodes a UV transform, leaving omitted fields at their
// no-op defaults (scale stays at (1,1) when absent).
func (t *UVTransform) UnmarshalYAML(value *yaml.Node) error {
	type raw UVTransform
	out := raw(DefaultUVTransform())
	if err := value.Decode(&out); err != nil {
		return err
	}
	*t = UVTransform(out)
	return nil
}
