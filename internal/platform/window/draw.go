package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Palette
var (
	skyColor     = colornames.Skyblue
	cloudColor   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	pipeColor    = colornames.Forestgreen
	pipeCapColor = colornames.Darkgreen
	groundColor  = colornames.Sandybrown
	stripeColor  = colornames.Peru
	grassColor   = colornames.Limegreen
	coinColor    = colornames.Gold
	coinRimColor = colornames.Darkgoldenrod
	bodyColor    = colornames.Yellow
	crashColor   = colornames.Crimson
	beakColor    = colornames.Orange
	hudColor     = colornames.White
	overlayColor = color.RGBA{A: 150}
)

// Decoration geometry in world units
const (
	pipeCapHeight = 24.0
	cloudSpacing  = 250.0
	stripeWidth   = 24.0
)

var face = text.NewGoXFace(basicfont.Face7x13)

// painter draws snapshots. It caches the body sprite between frames.
type painter struct {
	body      *ebiten.Image
	bodyW     int
	bodyH     int
	bodyColor color.Color
}

func (p *painter) draw(screen *ebiten.Image, snap flappy.Snapshot) {
	screen.Fill(skyColor)
	drawClouds(screen, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(screen, o)
	}
	drawGround(screen, snap)
	for _, c := range snap.Coins {
		drawCoin(screen, c)
	}
	p.drawBody(screen, snap)
	drawHUD(screen, snap)
}

func fillBox(dst *ebiten.Image, b core.Box, clr color.Color) {
	vector.FillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
}

func drawClouds(dst *ebiten.Image, snap flappy.Snapshot) {
	shift := math.Mod(snap.Background, cloudSpacing)
	for i, y := range []float64{90, 220, 360} {
		start := float64(i%2)*cloudSpacing/2 - shift
		for x := start - cloudSpacing; x < snap.Width+cloudSpacing; x += cloudSpacing {
			vector.FillCircle(dst, float32(x), float32(y), 22, cloudColor, true)
			vector.FillCircle(dst, float32(x+26), float32(y-8), 28, cloudColor, true)
			vector.FillCircle(dst, float32(x+54), float32(y), 20, cloudColor, true)
		}
	}
}

func drawObstacle(dst *ebiten.Image, o flappy.Obstacle) {
	b := o.Box()
	fillBox(dst, b, pipeColor)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, pipeCapColor, false)

	capH := math.Min(pipeCapHeight, b.H)
	capBox := core.NewBox(b.X-4, b.Y, b.W+8, capH)
	if o.Upper {
		capBox.Y = b.Bottom() - capH
	}
	fillBox(dst, capBox, pipeCapColor)
}

func drawGround(dst *ebiten.Image, snap flappy.Snapshot) {
	fillBox(dst, core.NewBox(0, snap.GroundY, snap.Width, snap.Height-snap.GroundY), groundColor)

	shift := math.Mod(snap.Ground, 2*stripeWidth)
	for x := -shift; x < snap.Width; x += 2 * stripeWidth {
		fillBox(dst, core.NewBox(x, snap.GroundY+12, stripeWidth, snap.Height-snap.GroundY-12), stripeColor)
	}
	fillBox(dst, core.NewBox(0, snap.GroundY, snap.Width, 12), grassColor)
}

func drawCoin(dst *ebiten.Image, c flappy.Coin) {
	b := c.Box()
	cx, cy := float32(b.X+b.W/2), float32(b.Y+b.H/2)
	r := float32(math.Min(b.W, b.H) / 2)
	vector.FillCircle(dst, cx, cy, r, coinColor, true)
	vector.StrokeCircle(dst, cx, cy, r, 3, coinRimColor, true)
}

func (p *painter) drawBody(dst *ebiten.Image, snap flappy.Snapshot) {
	w, h := int(math.Ceil(snap.Body.W)), int(math.Ceil(snap.Body.H))
	if w <= 0 || h <= 0 {
		return
	}
	clr := color.Color(bodyColor)
	if snap.Impact || snap.Ended {
		clr = crashColor
	}
	if p.body == nil || p.bodyW != w || p.bodyH != h || p.bodyColor != clr {
		p.body = bodySprite(w, h, clr)
		p.bodyW, p.bodyH, p.bodyColor = w, h, clr
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(snap.Rotation * math.Pi / 180)
	op.GeoM.Translate(snap.Body.X+snap.Body.W/2, snap.Body.Y+snap.Body.H/2)
	dst.DrawImage(p.body, op)
}

// bodySprite renders the unrotated body: a filled box with an eye and a beak.
func bodySprite(w, h int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)

	fw, fh := float32(w), float32(h)
	vector.FillCircle(img, fw*0.7, fh*0.3, fh*0.15, hudColor, true)
	vector.FillCircle(img, fw*0.74, fh*0.3, fh*0.07, color.Black, true)
	vector.FillRect(img, fw*0.8, fh*0.5, fw*0.2, fh*0.2, beakColor, false)
	return img
}

func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, width, y float64) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, (width-w)/2, y, hudColor)
}

func drawHUD(dst *ebiten.Image, snap flappy.Snapshot) {
	drawText(dst, fmt.Sprintf("Score: %d", snap.Score), 12, 12, hudColor)
	best := fmt.Sprintf("Best: %d", snap.Best)
	w, _ := text.Measure(best, face, 0)
	drawText(dst, best, snap.Width-w-12, 12, hudColor)

	var title, subtitle string
	switch {
	case snap.Phase == flappy.PhaseNotStarted:
		title, subtitle = "FLAPPY BIRD", "Space or click to flap"
	case snap.Phase == flappy.PhaseEnded:
		title, subtitle = "GAME OVER", fmt.Sprintf("Score %d  Best %d  -  R to restart", snap.Score, snap.Best)
	case snap.Paused:
		title, subtitle = "PAUSED", "P to resume"
	default:
		return
	}

	mid := snap.Height / 2
	fillBox(dst, core.NewBox(0, mid-40, snap.Width, 80), overlayColor)
	drawCentered(dst, title, snap.Width, mid-20)
	drawCentered(dst, subtitle, snap.Width, mid+6)
}
