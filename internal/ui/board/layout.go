package board

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	numberHeightFraction = float32(0.40)
	colorHeightFraction  = float32(0.28)
	minTextSize          = float32(24)
	textGap              = float32(12)
)

// displayLayout stacks the number and color name in the middle of the
// screen, sizing both texts from the available height.
type displayLayout struct{}

func (layout *displayLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	number, okNumber := objects[0].(*canvas.Text)
	name, okName := objects[1].(*canvas.Text)
	if !okNumber || !okName {
		return
	}

	resizeText(number, size.Height*numberHeightFraction)
	resizeText(name, size.Height*colorHeightFraction)

	var total float32
	visible := make([]*canvas.Text, 0, 2)
	for _, text := range []*canvas.Text{number, name} {
		if !text.Visible() {
			continue
		}
		if len(visible) > 0 {
			total += textGap
		}
		total += text.MinSize().Height
		visible = append(visible, text)
	}

	y := (size.Height - total) / 2
	if y < 0 {
		y = 0
	}
	for _, text := range visible {
		height := text.MinSize().Height
		text.Move(fyne.NewPos(0, y))
		text.Resize(fyne.NewSize(size.Width, height))
		y += height + textGap
	}
}

func (layout *displayLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(minTextSize*4, minTextSize*2+textGap)
}

func resizeText(text *canvas.Text, target float32) {
	if target < minTextSize {
		target = minTextSize
	}
	if text.TextSize == target {
		return
	}
	text.TextSize = target
	text.Refresh()
}
