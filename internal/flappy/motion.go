package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Vec2 is a position or velocity in world cells (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Agent is the player-controlled bird.
type Agent struct {
	Pos   Vec2
	Vel   Vec2
	Alive bool // Cleared exactly once, on the first terminal collision
}

// NewAgent places a live agent at rest.
func NewAgent(x, y float64) Agent {
	return Agent{Pos: Vec2{X: x, Y: y}, Alive: true}
}

// Flap overwrites the vertical velocity with the impulse.
func (a *Agent) Flap(impulse float64) {
	a.Vel.Y = impulse
}

// Step integrates gravity and moves the agent.
// Only called while the session is active, so the agent hovers at the menu.
func (a *Agent) Step(dt float64, phys config.FlappyPhysics) {
	a.Vel.Y += phys.Gravity * dt
	if a.Vel.Y > phys.MaxFallSpeed {
		a.Vel.Y = phys.MaxFallSpeed
	}
	a.Pos.Y += a.Vel.Y * dt
}

// Rect returns the agent's hitbox on the cell grid.
func (a Agent) Rect(p config.FlappyPlayer) core.Rect {
	return core.RectAt(a.Pos.X, a.Pos.Y, p.Width, p.Height)
}

// Obstacle is a pipe pair; Pos.Y is the top row of its gap.
type Obstacle struct {
	ID      int
	Pos     Vec2
	Speed   float64 // Fixed when spawned
	Width   int
	GapSize int
	Scored  bool // Set once the agent has entered the gap
}

// Step moves the obstacle left at its own speed.
func (o *Obstacle) Step(dt float64) {
	o.Pos.X -= o.Speed * dt
}

// Gone reports whether the obstacle has left the play area.
func (o Obstacle) Gone(despawnX float64) bool {
	return o.Pos.X < despawnX
}

// GapRect is the scoring zone between the two pipes.
func (o Obstacle) GapRect() core.Rect {
	return core.RectAt(o.Pos.X, o.Pos.Y, o.Width, o.GapSize)
}

// TopRect is the upper pipe body, from the ceiling down to the gap.
func (o Obstacle) TopRect() core.Rect {
	gap := o.GapRect()
	return core.NewRect(gap.X, 0, o.Width, gap.Y)
}

// BottomRect is the lower pipe body, from the gap down to the ground.
func (o Obstacle) BottomRect(groundY int) core.Rect {
	gap := o.GapRect()
	return core.NewRect(gap.X, gap.Bottom(), o.Width, groundY-gap.Bottom())
}

// Background scrolls a repeating pattern. Offset stays in [0, Width).
type Background struct {
	Speed   float64
	Width   float64
	elapsed float64
	offset  float64
}

// NewBackground creates a background at its start position.
func NewBackground(cfg config.FlappyBackground) Background {
	return Background{Speed: cfg.Speed, Width: float64(cfg.Width)}
}

// Step advances the scroll by dt seconds of active play.
func (b *Background) Step(dt float64) {
	b.elapsed += dt
	b.offset = core.Repeat(-b.elapsed*b.Speed, b.Width)
}

// Offset returns the current horizontal shift of the pattern.
func (b Background) Offset() float64 {
	return b.offset
}

// Reset returns the background to its start position.
func (b *Background) Reset() {
	b.elapsed = 0
	b.offset = 0
}
