// Package scene provides the in-memory scene model produced by an importer
// and consumed by the post-processing pipeline.
package scene

// Scene holds all materials and meshes of one imported scene.
type Scene struct {
	Materials []*Material `yaml:"materials"`
	Meshes    []*Mesh     `yaml:"meshes"`
}

// MeshesUsingMaterial returns the indices of all meshes referencing the
// material at matIndex.
func (s *Scene) MeshesUsingMaterial(matIndex int) []int {
	var out []int
	for i, m := range s.Meshes {
		if m.MaterialIndex == matIndex {
			out = append(out, i)
		}
	}
	return out
}
