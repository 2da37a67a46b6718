package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer3d/assets"
	"github.com/milk9111/platformer3d/world"
)

// Renderer is the ebiten side of a Scene. Platforms use the texture once one
// is set and the platform color until then.
type Renderer struct {
	Projector *Projector
	Scene     *Scene

	white   *ebiten.Image
	texture *ebiten.Image
	verts   []ebiten.Vertex
	indices []uint16
}

func NewRenderer(palette Palette) *Renderer {
	proj := NewProjector()
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		Projector: proj,
		Scene:     NewScene(proj, palette),
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetViewport recomputes aspect and output size; it reports whether anything
// changed.
func (r *Renderer) SetViewport(w, h int) bool {
	return r.Projector.SetViewport(w, h)
}

func (r *Renderer) SetTexture(img *ebiten.Image) {
	r.texture = img
}

func (r *Renderer) SetModel(b assets.ModelBounds) {
	r.Scene.SetModel(b)
}

func (r *Renderer) Draw(screen *ebiten.Image, st world.State) {
	screen.Fill(r.Scene.Palette.Background)

	for _, it := range r.Scene.Build(st) {
		switch it.kind {
		case itemFace:
			r.drawFace(screen, it)
		case itemDisc:
			vector.FillCircle(screen, float32(it.pts[0].X()), float32(it.pts[0].Y()), float32(it.radius), it.clr, true)
		case itemLine:
			vector.StrokeLine(screen, float32(it.pts[0].X()), float32(it.pts[0].Y()), float32(it.pts[1].X()), float32(it.pts[1].Y()), 1.5, it.clr, true)
		}
	}
}

func (r *Renderer) drawFace(screen *ebiten.Image, it item) {
	src := r.white
	var sw, sh float32 = 1, 1
	cr, cg, cb, ca := colorFloats(it.clr)
	if it.textured && r.texture != nil {
		src = r.texture
		b := src.Bounds()
		sw, sh = float32(b.Dx()), float32(b.Dy())
		cr, cg, cb = 1, 1, 1
	}
	shade := float32(it.shade)

	uv := [4][2]float32{{0, 0}, {sw, 0}, {sw, sh}, {0, sh}}
	if src == r.white {
		uv = [4][2]float32{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	}

	r.verts = r.verts[:0]
	for k, pt := range it.pts {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(pt.X()),
			DstY:   float32(pt.Y()),
			SrcX:   uv[k][0],
			SrcY:   uv[k][1],
			ColorR: cr * shade,
			ColorG: cg * shade,
			ColorB: cb * shade,
			ColorA: ca,
		})
	}
	r.indices = append(r.indices[:0], 0, 1, 2, 0, 2, 3)

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(r.verts, r.indices, src, op)
}

func colorFloats(c color.Color) (float32, float32, float32, float32) {
	if c == nil {
		return 1, 1, 1, 1
	}
	r, g, b, a := c.RGBA()
	return float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff
}
