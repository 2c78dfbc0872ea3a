package game

import (
	"image/color"
	"math"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/gameplay/interact"
	"chosenoffset.com/wanderer/internal/render"
)

var (
	floorColor  = color.RGBA{28, 32, 30, 255}
	gridColor   = color.RGBA{45, 50, 48, 255}
	wallColor   = color.RGBA{120, 120, 110, 255}
	playerColor = color.RGBA{90, 170, 255, 255}
	npcColor    = color.RGBA{255, 200, 90, 255}
	propColor   = color.RGBA{170, 130, 90, 255}
	heldColor   = color.RGBA{230, 190, 140, 255}
	coneColor   = color.RGBA{90, 170, 255, 90}
	focusColor  = color.RGBA{255, 255, 255, 200}
)

// view maps level units to screen pixels.
type view struct {
	scale  float64
	offX   float64
	offY   float64
	margin float64
}

func (g *Game) view() view {
	v := view{margin: 20}
	w := float64(g.ScreenWidth) - 2*v.margin
	h := float64(g.ScreenHeight) - 2*v.margin
	v.scale = math.Min(w/g.Level.Width, h/g.Level.Height)
	v.offX = v.margin + (w-g.Level.Width*v.scale)/2
	v.offY = v.margin + (h-g.Level.Height*v.scale)/2
	return v
}

func (v view) point(p geom.Vec2) (float32, float32) {
	return float32(v.offX + p.X*v.scale), float32(v.offY + p.Y*v.scale)
}

// Draw renders the scene: the level map, the interaction prompt, the
// dialogue box and the crosshair.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.Black)
	g.drawLevel(screen)
	g.drawProps(screen)
	g.drawNPCs(screen)
	g.drawPlayer(screen)

	g.Prompt.Draw(screen, g.Renderer)
	g.Dialogue.Draw(screen, g.Renderer)
	g.Reticle.Draw(screen, g.Renderer)
	g.drawHUD(screen)
	g.drawMessages(screen)
}

func (g *Game) drawLevel(screen render.Image) {
	r := g.Renderer
	v := g.view()
	x, y := v.point(geom.Vec2{})
	w, h := float32(g.Level.Width*v.scale), float32(g.Level.Height*v.scale)
	r.FillRect(screen, x, y, w, h, floorColor)
	for i := 1; i < int(g.Level.Width); i++ {
		gx, _ := v.point(geom.Vec2{X: float64(i)})
		r.StrokeLine(screen, gx, y, gx, y+h, 1, gridColor)
	}
	for j := 1; j < int(g.Level.Height); j++ {
		_, gy := v.point(geom.Vec2{Y: float64(j)})
		r.StrokeLine(screen, x, gy, x+w, gy, 1, gridColor)
	}
	r.StrokeRect(screen, x, y, w, h, 2, wallColor)
}

func (g *Game) drawProps(screen render.Image) {
	v := g.view()
	focused, hasFocus := g.Prompt.Current()
	held := g.Pickup.Held()
	for i, p := range g.Pickup.Props() {
		size := float32(math.Max(0.3, math.Sqrt(p.Mass)*0.15) * v.scale)
		x, y := v.point(p.Pos)
		clr := propColor
		if p == held {
			clr = heldColor
		}
		g.Renderer.FillRect(screen, x-size/2, y-size/2, size, size, clr)
		if hasFocus && focused.Kind == interact.KindPickup && focused.Index == i {
			g.Renderer.StrokeRect(screen, x-size/2-2, y-size/2-2, size+4, size+4, 1, focusColor)
		}
	}
}

func (g *Game) drawNPCs(screen render.Image) {
	v := g.view()
	radius := float32(0.35 * v.scale)
	for _, n := range g.NPCs.NPCs {
		x, y := v.point(n.Pos)
		g.Renderer.FillCircle(screen, x, y, radius, npcColor)
		tw, _ := g.Renderer.MeasureText(n.Name, 1)
		g.Renderer.DrawText(screen, n.Name, int(x)-tw/2, int(y+radius)+4, npcColor, 1)
	}
}

// drawPlayer draws the player, the horizontal field of view and the
// interaction reach.
func (g *Game) drawPlayer(screen render.Image) {
	v := g.view()
	p := g.Player
	x, y := v.point(p.Pos)

	fov := 90.0
	if g.Settings != nil {
		fov = g.Settings.Camera.FOV
	}
	half := geom.Deg(fov / 2)
	reach := 3.0 * v.scale
	for _, a := range []float64{p.Yaw - half, p.Yaw + half} {
		d := geom.FromAngle(a)
		g.Renderer.StrokeLine(screen, x, y, x+float32(d.X*reach), y+float32(d.Y*reach), 1, coneColor)
	}
	g.Renderer.StrokeCircle(screen, x, y, float32(interact.Reach*v.scale), 1, coneColor)
	fwd := p.Forward()
	g.Renderer.FillCircle(screen, x, y, float32(0.3*v.scale), playerColor)
	g.Renderer.StrokeLine(screen, x, y, x+float32(fwd.X*0.6*v.scale), y+float32(fwd.Y*0.6*v.scale), 2, playerColor)
}

func (g *Game) drawHUD(screen render.Image) {
	if held := g.Pickup.Held(); held != nil {
		g.Renderer.DrawText(screen, "Holding "+held.Name+"  [E/Q] drop  [Click] throw", 10, g.ScreenHeight-24, color.White, 1)
	}
}

func (g *Game) drawMessages(screen render.Image) {
	y := 10
	for _, msg := range g.Messages {
		alpha := uint8(255)
		if msg.MaxTime > 0 && msg.TimeLeft < 1 {
			alpha = uint8(255 * msg.TimeLeft)
		}
		g.Renderer.DrawText(screen, msg.Text, 10, y, color.RGBA{255, 255, 255, alpha}, 1)
		y += 20
	}
}
