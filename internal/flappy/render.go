package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '▶'
	PlayerBody    = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// backdrop repeats every Background.Width columns; longer patterns are cut.
var backdrop = [...]string{
	"   .        *      .       ",
	"        ~~~          ~~    ",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	ground := s.GroundY()

	g.drawBackground(dst)
	dst.DrawHLine(0, ground, dst.Width(), GroundChar, core.ColorYellow)

	for _, o := range s.Obstacles() {
		drawPipe(dst, o, ground)
	}
	g.drawAgent(dst)

	hud := s.HUD()
	switch hud.Panel() {
	case PanelMenu:
		drawCenteredMessage(dst, "FLAPPY BIRD", "SPACE to flap  |  Q to quit", core.ColorBrightYellow)
	case PanelGameplay:
		dst.DrawTextCentered(0, " "+hud.ScoreText()+" ", core.ColorWhite)
		if g.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorCyan)
		}
	case PanelGameOver:
		drawCenteredMessage(dst, "GAME OVER", hud.FinalScoreText()+"  |  R to restart", core.ColorRed)
	}
}

func (g *Game) drawBackground(dst *core.Screen) {
	s := g.session
	width := int(s.Background().Width)
	if width <= 0 {
		return
	}
	shift := int(s.Background().Offset())
	rows := []int{2, s.GroundY() - 3}

	for i, row := range rows {
		pattern := []rune(backdrop[i])
		for x := 0; x < dst.Width(); x++ {
			idx := ((x-shift)%width + width) % width
			if idx >= len(pattern) || pattern[idx] == ' ' {
				continue
			}
			dst.SetColored(x, row, pattern[idx], core.ColorGray)
		}
	}
}

func (g *Game) drawAgent(dst *core.Screen) {
	s := g.session
	p := s.Config().Player
	r := s.Agent().Rect(p)

	color := core.ColorBrightYellow
	if !s.Agent().Alive {
		color = core.ColorRed
	}
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			ch := PlayerBody
			if dx == r.W-1 && dy == 0 {
				ch = PlayerChar
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, color)
		}
	}
}

// drawPipe renders both halves of an obstacle with caps facing the gap.
func drawPipe(dst *core.Screen, o Obstacle, ground int) {
	top := o.TopRect()
	bottom := o.BottomRect(ground)

	dst.DrawRect(top, PipeChar, core.ColorGreen)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	}
	dst.DrawRect(bottom, PipeChar, core.ColorGreen)
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleLen)/2, box.Y+1, title, c)
	dst.DrawTextColored(box.X+(boxW-subLen)/2, box.Y+3, subtitle, core.ColorWhite)
}
