package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	modalMaxWidth  = 520
	modalMargin    = 20
	modalPadding   = 16
	modalHeader    = 24
	modalFontSize  = 18
	modalLineGap   = 6
	modalButtonW   = 110
	modalButtonH   = 30
	modalExitLabel = "Cerrar"
)

// Layout places the modal window centered on a screen of the given size and
// returns its bounds along with the wrapped body lines.
func (m *Modal) Layout(screenW, screenH int32, measure func(string) int32) (rl.Rectangle, []string) {
	width := float32(modalMaxWidth)
	if avail := float32(screenW - 2*modalMargin); avail < width {
		width = avail
	}
	lines := WrapText(m.Body, int32(width)-2*modalPadding, measure)
	height := float32(modalHeader + 2*modalPadding + modalButtonH + modalPadding)
	height += float32(len(lines) * (modalFontSize + modalLineGap))

	return rl.Rectangle{
		X:      (float32(screenW) - width) / 2,
		Y:      (float32(screenH) - height) / 2,
		Width:  width,
		Height: height,
	}, lines
}

// Contains reports whether a screen point falls on the visible modal.
func (m *Modal) Contains(p rl.Vector2) bool {
	if !m.Visible {
		return false
	}
	bounds, _ := m.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), measureText)
	return rl.CheckCollisionPointRec(p, bounds)
}

// Draw renders the modal with raygui. The title bar close button and the
// exit button both hide it.
func (m *Modal) Draw() {
	if !m.Visible {
		return
	}
	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.35))

	bounds, lines := m.Layout(screenW, screenH, measureText)
	if gui.WindowBox(bounds, m.Title) {
		m.Hide()
		return
	}

	y := bounds.Y + modalHeader + modalPadding
	for _, line := range lines {
		rl.DrawText(line, int32(bounds.X)+modalPadding, int32(y), modalFontSize, rl.DarkGray)
		y += modalFontSize + modalLineGap
	}

	button := rl.Rectangle{
		X:      bounds.X + bounds.Width - modalPadding - modalButtonW,
		Y:      bounds.Y + bounds.Height - modalPadding - modalButtonH,
		Width:  modalButtonW,
		Height: modalButtonH,
	}
	if gui.Button(button, modalExitLabel) {
		m.Hide()
	}
}

func measureText(s string) int32 {
	return rl.MeasureText(s, modalFontSize)
}

// WrapText breaks text on spaces so that no line measures wider than
// maxWidth. A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth int32, measure func(string) int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
