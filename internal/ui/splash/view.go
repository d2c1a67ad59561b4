package splash

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewView builds the loading screen from the splash artwork.
func NewView(art fyne.Resource) fyne.CanvasObject {
	background := canvas.NewRectangle(color.NRGBA{A: 255})
	image := canvas.NewImageFromResource(art)
	image.FillMode = canvas.ImageFillContain
	return container.NewStack(background, image)
}

// Present shows the loading screen in window and swaps in next once the gate opens.
func Present(window fyne.Window, gate *Gate, art fyne.Resource, next fyne.CanvasObject) {
	window.SetContent(NewView(art))
	gate.Start(func() {
		fyne.Do(func() {
			window.SetContent(next)
		})
	})
}
