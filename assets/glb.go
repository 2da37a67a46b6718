package assets

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

// ModelBounds is the axis-aligned extent of every mesh position in a model,
// in model space.
type ModelBounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ParseModelBounds decodes a .glb or .gltf file and returns the union of the
// POSITION accessor bounds. glTF requires POSITION accessors to carry min and
// max, so vertex data is never read.
func ParseModelBounds(data []byte) (ModelBounds, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return ModelBounds{}, fmt.Errorf("gltf: decode: %w", err)
	}

	b := ModelBounds{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	found := false
	for mi, mesh := range doc.Meshes {
		if mesh == nil {
			continue
		}
		for pi, prim := range mesh.Primitives {
			if prim == nil {
				continue
			}
			pos, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			idx := int(pos)
			if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
				return ModelBounds{}, fmt.Errorf("gltf: mesh %d primitive %d: accessor %d out of range", mi, pi, idx)
			}
			acc := doc.Accessors[idx]
			if len(acc.Min) != 3 || len(acc.Max) != 3 {
				return ModelBounds{}, fmt.Errorf("gltf: accessor %d: POSITION without min/max", idx)
			}
			for axis := 0; axis < 3; axis++ {
				b.Min[axis] = math.Min(b.Min[axis], acc.Min[axis])
				b.Max[axis] = math.Max(b.Max[axis], acc.Max[axis])
			}
			found = true
		}
	}
	if !found {
		return ModelBounds{}, fmt.Errorf("gltf: no mesh positions")
	}
	return b, nil
}

// Scaled returns the bounds scaled about the model origin and moved to at.
func (b ModelBounds) Scaled(scale float64, at mgl64.Vec3) ModelBounds {
	return ModelBounds{Min: b.Min.Mul(scale).Add(at), Max: b.Max.Mul(scale).Add(at)}
}

func isModelPath(path string) bool {
	p := strings.ToLower(path)
	return strings.HasSuffix(p, ".glb") || strings.HasSuffix(p, ".gltf")
}
