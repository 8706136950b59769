//go:build !headless

// Package window shows a rendered plot in a desktop window.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until it is closed.
func Show(img image.Image, title string) error {
	b := img.Bounds()
	g := &plotGame{src: img, w: b.Dx(), h: b.Dy()}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type plotGame struct {
	src  image.Image
	w, h int
	img  *ebiten.Image
}

func (g *plotGame) Update() error {
	return nil
}

func (g *plotGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *plotGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
