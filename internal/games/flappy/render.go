package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for terminal rendering
const (
	BodyChar      = '█'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CoinChar      = '●'
	StarChar      = '·'
	GrassChar     = '▀'
)

// Background layer geometry in world units. starSpacing divides the
// default background wrap so the layer repeats seamlessly.
const (
	starSpacing = 125.0
	stripeWidth = 24.0
)

var starRows = []float64{70, 190, 310, 430}

// Draw renders a snapshot onto a character screen, stretching the playfield
// to the full screen. The screen is cleared first.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if snap.Width <= 0 || snap.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	sx := float64(dst.Width()) / snap.Width
	sy := float64(dst.Height()) / snap.Height

	drawBackground(dst, snap, sx, sy)
	drawGround(dst, snap, sx, sy)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, sx, sy)
	}
	for _, c := range snap.Coins {
		dst.FillRect(c.Box().Scale(sx, sy), CoinChar, core.ColorBrightYellow)
	}
	drawBody(dst, snap, sx, sy)
	drawHUD(dst, snap)
}

func drawBackground(dst *core.Screen, snap Snapshot, sx, sy float64) {
	shift := math.Mod(snap.Background, starSpacing)
	for i, y := range starRows {
		if y >= snap.GroundY {
			break
		}
		// Stagger rows so the stars do not line up vertically.
		start := float64(i%2)*starSpacing/2 - shift
		for x := start; x < snap.Width; x += starSpacing {
			if x < 0 {
				continue
			}
			dst.SetColor(int(x*sx), int(y*sy), StarChar, core.ColorGray)
		}
	}
}

func drawGround(dst *core.Screen, snap Snapshot, sx, sy float64) {
	top := int(snap.GroundY * sy)
	for cx := 0; cx < dst.Width(); cx++ {
		dst.SetColor(cx, top, GrassChar, core.ColorBrightGreen)

		worldX := float64(cx)/sx + snap.Ground
		r := '░'
		if int(worldX/stripeWidth)%2 == 0 {
			r = '▒'
		}
		for cy := top + 1; cy < dst.Height(); cy++ {
			dst.SetColor(cx, cy, r, core.ColorOrange)
		}
	}
}

func drawObstacle(dst *core.Screen, o Obstacle, sx, sy float64) {
	r := o.Box().Scale(sx, sy)
	dst.FillRect(r, PipeChar, core.ColorGreen)
	if r.H == 0 {
		return
	}
	if o.Upper {
		dst.FillRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1), PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.FillRect(core.NewRect(r.X, r.Y, r.W, 1), PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBody(dst *core.Screen, snap Snapshot, sx, sy float64) {
	r := snap.Body.Scale(sx, sy)
	color := core.ColorYellow
	if snap.Impact || snap.Ended {
		color = core.ColorRed
	}
	dst.FillRect(r, BodyChar, color)

	eye := 'o'
	if snap.Impact || snap.Ended {
		eye = 'x'
	}
	dst.SetColor(r.Right()-1, r.Y, eye, core.ColorBrightWhite)
	dst.SetColor(r.Right(), beakRow(r, snap.Rotation), '>', core.ColorOrange)
}

// beakRow tilts the beak with the body rotation.
func beakRow(r core.Rect, rotation float64) int {
	switch {
	case rotation < 0:
		return r.Y
	case rotation > 45:
		return r.Bottom() - 1
	default:
		return r.Y + r.H/2
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColor(dst.Width()-len(best)-2, 0, best, core.ColorGray)

	switch {
	case snap.Phase == PhaseNotStarted:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Space to flap  |  Q to quit")
	case snap.Phase == PhaseEnded:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  R to restart", snap.Score, snap.Best))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawFrame(box, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
