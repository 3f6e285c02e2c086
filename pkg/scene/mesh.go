package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/scenepost/pkg/math"
)

// MaxUVChannels is the platform limit on UV channels per mesh.
const MaxUVChannels = 8

// Mesh errors.
var (
	ErrChannelOutOfRange = errors.New("UV channel index out of range")
)

// Mesh holds per-vertex UV coordinate channels for one mesh.
// Channel slots above the highest populated index are absent; absent
// channels below a populated one hold a nil slice.
type Mesh struct {
	Name          string        `yaml:"name"`
	MaterialIndex int           `yaml:"material"`
	UV            [][]math.Vec2 `yaml:"uv"`
}

// UVChannelCount returns the number of channel slots present.
func (m *Mesh) UVChannelCount() int {
	return len(m.UV)
}

// HasUVChannel reports whether channel n is present and populated.
func (m *Mesh) HasUVChannel(n int) bool {
	return n >= 0 && n < len(m.UV) && m.UV[n] != nil
}

// EnsureUVChannel returns channel n, creating it with vertexCount zeroed
// coordinates if absent. Fails when n is at or above MaxUVChannels.
func (m *Mesh) EnsureUVChannel(n, vertexCount int) ([]math.Vec2, error) {
	if n < 0 || n >= MaxUVChannels {
		return nil, fmt.Errorf("mesh %q channel %d: %w", m.Name, n, ErrChannelOutOfRange)
	}
	for len(m.UV) <= n {
		m.UV = append(m.UV, nil)
	}
	if m.UV[n] == nil {
		m.UV[n] = make([]math.Vec2, vertexCount)
	}
	return m.UV[n], nil
}
