package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jakobmina/quasar-pro/internal/platform/scene"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// paint rasterizes a scene onto the window.
func paint(dst *ebiten.Image, sc *scene.Scene) {
	dst.Fill(sc.Background)
	for i := range sc.Shapes {
		sh := &sc.Shapes[i]
		switch sh.Kind {
		case scene.KindDisc:
			vector.DrawFilledCircle(dst, float32(sh.A.X), float32(sh.A.Y), float32(sh.R), sh.Color, true)
		case scene.KindRing:
			vector.StrokeCircle(dst, float32(sh.A.X), float32(sh.A.Y), float32(sh.R), float32(sh.Width), sh.Color, true)
		case scene.KindLine:
			vector.StrokeLine(dst, float32(sh.A.X), float32(sh.A.Y), float32(sh.B.X), float32(sh.B.Y), float32(sh.Width), sh.Color, true)
		case scene.KindRect:
			vector.DrawFilledRect(dst, float32(sh.A.X), float32(sh.A.Y), float32(sh.B.X), float32(sh.B.Y), sh.Color, false)
		case scene.KindTriangle:
			triangle(dst, sh)
		case scene.KindText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(sh.A.X, sh.A.Y)
			op.ColorScale.ScaleWithColor(sh.Color)
			text.Draw(dst, sh.Text, hudFace, op)
		}
	}
}

func triangle(dst *ebiten.Image, sh *scene.Shape) {
	n := color.NRGBAModel.Convert(sh.Color).(color.NRGBA)
	r, g, b, a := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff

	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range [...]struct{ X, Y float64 }{{sh.A.X, sh.A.Y}, {sh.B.X, sh.B.Y}, {sh.C.X, sh.C.Y}} {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, whiteSubImage, op)
}
