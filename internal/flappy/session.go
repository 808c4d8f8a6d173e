package flappy

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Inputs are the player signals sampled for one tick.
type Inputs struct {
	Flap    bool // Flap pressed this tick
	Restart bool // Restart requested (honoured after game over)
}

// Session owns one play session: state, score, display and entities.
// It is single-threaded; every mutation happens inside Update or a hook.
type Session struct {
	cfg    config.FlappyConfig
	width  int
	height int

	hud   *HUD
	score *ScoreCounter
	state *GameState

	agent      Agent
	obstacles  []Obstacle
	spawner    *SpawnTimer
	background Background
	difficulty *config.DifficultyManager

	ticks   int
	pending []core.Event
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession builds a session in the menu phase for a width x height playfield.
// The bottom row is the ground.
func NewSession(cfg config.FlappyConfig, width, height int, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if height < cfg.Player.Height+2 {
		return nil, fmt.Errorf("flappy: playfield height %d too small for player height %d", height, cfg.Player.Height)
	}

	hud := NewHUD()
	score, err := NewScoreCounter(hud)
	if err != nil {
		return nil, err
	}
	state, err := NewGameState(hud, score)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		width:      width,
		height:     height,
		hud:        hud,
		score:      score,
		state:      state,
		background: NewBackground(cfg.Background),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	minY, maxY := s.gapBand(cfg.Obstacles.GapSize)
	s.spawner = NewSpawnTimer(cfg.Obstacles.SpawnInterval, minY, maxY, s.spawnX(), seed)
	s.agent = s.newAgent()

	return s, nil
}

// maxSubstep bounds the simulated time between two collision checks so an
// obstacle moves at most a few cells between them.
const maxSubstep = 0.05

// Update advances the session by dt seconds.
// Order per tick: motion and spawning, collision detection, then input.
// Motion and collisions only run while playing. A dt longer than
// maxSubstep is split into sub-steps, each followed by collision detection.
func (s *Session) Update(dt float64, in Inputs) []core.Event {
	if s.state.Active() {
		s.ticks++
		for remaining := dt; remaining > 1e-9 && s.state.Active(); remaining -= maxSubstep {
			s.advance(min(remaining, maxSubstep))
			s.detectCollisions()
		}
	}
	s.handleInput(in)

	events := s.pending
	s.pending = nil
	return events
}

// handleInput applies flap and restart requests for the current phase.
func (s *Session) handleInput(in Inputs) {
	switch s.state.Phase() {
	case PhaseMenu:
		if in.Flap {
			if s.state.Start() {
				s.logger.Debug("session started")
				s.emit(core.EventStarted)
			}
			s.flap()
		}
	case PhasePlaying:
		if in.Flap {
			s.flap()
		}
	case PhaseOver:
		if in.Restart {
			s.ResetSession()
		}
	}
}

func (s *Session) flap() {
	if !s.agent.Alive {
		return
	}
	s.agent.Flap(s.cfg.Physics.FlapImpulse)
	s.emit(core.EventFlap)
}

// advance moves every entity and runs the spawner.
func (s *Session) advance(dt float64) {
	s.agent.Step(dt, s.cfg.Physics)

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Step(dt)
		if !o.Gone(s.cfg.Obstacles.DespawnX) {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	value := s.score.Value()
	speed := s.difficulty.Speed(s.cfg.Obstacles.Speed, value, s.ticks)
	gap := s.difficulty.GapSize(s.cfg.Obstacles.GapSize, value, s.ticks)
	s.spawner.SetInterval(s.difficulty.SpawnInterval(s.cfg.Obstacles.SpawnInterval, value, s.ticks))
	s.spawner.SetBand(s.gapBand(gap))

	if o, ok := s.spawner.Tick(dt, speed, s.cfg.Obstacles.Width, gap); ok {
		s.obstacles = append(s.obstacles, o)
	}

	s.background.Step(dt)
}

// detectCollisions stands in for the physics engine's contact callbacks.
func (s *Session) detectCollisions() {
	ground := s.GroundY()
	body := s.agent.Rect(s.cfg.Player)

	if s.agent.Pos.Y < 0 || body.Bottom() > ground {
		s.OnTerminalCollision()
		return
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if body.Intersects(o.TopRect()) || body.Intersects(o.BottomRect(ground)) {
			s.OnTerminalCollision()
			return
		}
	}

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Scored && body.Intersects(o.GapRect()) {
			o.Scored = true
			s.OnScoreTrigger()
		}
	}
}

// OnTerminalCollision ends the session. Only the first call while playing
// has any effect; the agent's Alive flag guards the rest.
func (s *Session) OnTerminalCollision() {
	if !s.state.Active() || !s.agent.Alive {
		return
	}
	s.agent.Alive = false
	if s.state.End() {
		s.logger.Debug("session over", "score", s.score.Value(), "ticks", s.ticks)
		s.emit(core.EventGameOver)
	}
}

// OnScoreTrigger counts a passed obstacle. Ignored outside gameplay.
func (s *Session) OnScoreTrigger() {
	if !s.state.Active() {
		return
	}
	s.score.Increment()
	s.emit(core.EventScored)
}

// ResetSession returns state, score, agent, obstacles, spawner and
// background to their initial conditions and shows the menu.
func (s *Session) ResetSession() {
	s.state.Restart()

	s.agent = s.newAgent()
	s.obstacles = nil
	s.spawner.Reset()
	s.background.Reset()
	s.ticks = 0

	s.logger.Debug("session reset")
	s.emit(core.EventRestarted)
}

// Resize adapts the playfield without resetting the session.
func (s *Session) Resize(width, height int) {
	if height < s.cfg.Player.Height+2 {
		height = s.cfg.Player.Height + 2
	}
	s.width = width
	s.height = height
	s.spawner.SetSpawnX(s.spawnX())
	s.spawner.SetBand(s.gapBand(s.cfg.Obstacles.GapSize))
	if s.state.Phase() == PhaseMenu {
		s.agent = s.newAgent()
	}
}

func (s *Session) emit(t core.EventType) {
	s.pending = append(s.pending, core.Event{Type: t, Score: s.score.Value()})
}

func (s *Session) newAgent() Agent {
	y := float64(s.GroundY()-s.cfg.Player.Height) / 2
	return NewAgent(float64(s.cfg.Player.X), y)
}

// gapBand returns the range for the gap's top row so the whole gap stays
// within the margins above the ground.
func (s *Session) gapBand(gap int) (float64, float64) {
	minY := float64(s.cfg.Obstacles.TopMargin)
	maxY := float64(s.GroundY() - s.cfg.Obstacles.BottomMargin - gap)
	return minY, maxY
}

func (s *Session) spawnX() float64 {
	return float64(s.width) + s.cfg.Obstacles.SpawnOffset
}

// GroundY is the row of the ground line.
func (s *Session) GroundY() int { return s.height - 1 }

// Width returns the playfield width.
func (s *Session) Width() int { return s.width }

// Config returns the session's configuration.
func (s *Session) Config() config.FlappyConfig { return s.cfg }

// State returns the phase flags.
func (s *Session) State() *GameState { return s.state }

// Score returns the score counter.
func (s *Session) Score() *ScoreCounter { return s.score }

// HUD returns the display state.
func (s *Session) HUD() *HUD { return s.hud }

// Agent returns a copy of the agent.
func (s *Session) Agent() Agent { return s.agent }

// Obstacles returns the live obstacles, oldest first.
func (s *Session) Obstacles() []Obstacle { return s.obstacles }

// Background returns the background scroll state.
func (s *Session) Background() Background { return s.background }

// Ticks returns the number of active ticks in this session.
func (s *Session) Ticks() int { return s.ticks }
