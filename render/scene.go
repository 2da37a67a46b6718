package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/assets"
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/world"
)

const (
	coinRadius = 0.2
	eyeRadius  = 0.1

	ambient     = 0.4
	directional = 0.8
)

var eyeOffset = mgl64.Vec3{0.3, 0.2, 0.5}

type Palette struct {
	Background color.Color
	Player     color.Color
	Eyes       color.Color
	Coin       color.Color
	Platform   color.Color
	Goal       color.Color
	Model      color.Color
}

type itemKind int

const (
	itemFace itemKind = iota
	itemDisc
	itemLine
)

// item is one thing to draw, already projected.
type item struct {
	kind  itemKind
	depth float64
	pts   [4]mgl64.Vec2
	// shade scales the base color; 1 is fully lit.
	shade    float64
	clr      color.Color
	textured bool
	radius   float64
}

// box faces as corner indices into world.Box.Corners, with outward normals.
var boxFaces = [6]struct {
	idx    [4]int
	normal mgl64.Vec3
}{
	{[4]int{0, 1, 2, 3}, mgl64.Vec3{0, -1, 0}},
	{[4]int{4, 5, 6, 7}, mgl64.Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, mgl64.Vec3{0, 0, -1}},
	{[4]int{3, 2, 6, 7}, mgl64.Vec3{0, 0, 1}},
	{[4]int{0, 3, 7, 4}, mgl64.Vec3{-1, 0, 0}},
	{[4]int{1, 2, 6, 5}, mgl64.Vec3{1, 0, 0}},
}

// Scene turns a world state into a back-to-front list of draw items.
type Scene struct {
	Palette Palette

	proj  *Projector
	light mgl64.Vec3
	model *assets.ModelBounds
	items []item
}

func NewScene(proj *Projector, palette Palette) *Scene {
	return &Scene{
		Palette: palette,
		proj:    proj,
		light:   mgl64.Vec3{5, 10, 5}.Normalize(),
	}
}

// SetModel places the model's world-space bounds in the scene.
func (s *Scene) SetModel(b assets.ModelBounds) {
	s.model = &b
}

// Build projects the state from its camera. The returned slice is reused by
// the next call.
func (s *Scene) Build(st world.State) []item {
	s.items = s.items[:0]
	if !s.proj.LookAt(st.Camera) {
		return s.items
	}

	if s.model != nil {
		s.addWireBox(world.Box{Min: s.model.Min, Max: s.model.Max}, s.Palette.Model)
	}
	for _, p := range st.Platforms {
		if p.Goal {
			s.addBox(p.Bounds(), s.Palette.Goal, false)
		} else {
			s.addBox(p.Bounds(), s.Palette.Platform, true)
		}
	}
	s.addBox(st.Player.Bounds(), s.Palette.Player, false)
	s.addDisc(st.Player.Position.Add(eyeOffset), eyeRadius, s.Palette.Eyes)
	for _, c := range st.Coins {
		s.addDisc(c.Position, coinRadius, s.Palette.Coin)
	}

	slices.SortStableFunc(s.items, func(a, b item) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return s.items
}

func (s *Scene) addBox(b world.Box, clr color.Color, textured bool) {
	corners := b.Corners()
	eye := s.proj.Eye()
	for _, f := range boxFaces {
		var center mgl64.Vec3
		for _, i := range f.idx {
			center = center.Add(corners[i])
		}
		center = center.Mul(0.25)
		if f.normal.Dot(eye.Sub(center)) <= 0 {
			continue
		}

		it := item{kind: itemFace, clr: clr, textured: textured, shade: s.shade(f.normal)}
		visible := true
		for k, i := range f.idx {
			pt, depth, ok := s.proj.Project(corners[i])
			if !ok {
				visible = false
				break
			}
			it.pts[k] = pt
			it.depth += depth / 4
		}
		if visible {
			s.items = append(s.items, it)
		}
	}
}

func (s *Scene) addDisc(at mgl64.Vec3, r float64, clr color.Color) {
	pt, depth, ok := s.proj.Project(at)
	if !ok {
		return
	}
	s.items = append(s.items, item{
		kind:   itemDisc,
		depth:  depth,
		pts:    [4]mgl64.Vec2{pt},
		clr:    clr,
		shade:  1,
		radius: s.proj.ScreenRadius(r, depth),
	})
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (s *Scene) addWireBox(b world.Box, clr color.Color) {
	corners := b.Corners()
	for _, e := range boxEdges {
		a, da, okA := s.proj.Project(corners[e[0]])
		c, dc, okC := s.proj.Project(corners[e[1]])
		if !okA || !okC {
			continue
		}
		s.items = append(s.items, item{
			kind:  itemLine,
			depth: (da + dc) / 2,
			pts:   [4]mgl64.Vec2{a, c},
			clr:   clr,
			shade: 1,
		})
	}
}

// shade is the ambient plus directional light reaching a face.
func (s *Scene) shade(normal mgl64.Vec3) float64 {
	return common.Clamp(ambient+directional*max(0, normal.Dot(s.light)), 0, 1)
}
