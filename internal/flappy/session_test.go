package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const testDT = 1.0 / 60.0

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultFlappyConfig(), 80, 24, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// hover pins the agent mid-screen so a test can run ticks without crashing.
func hover(s *Session) {
	s.agent.Pos.Y = 10
	s.agent.Vel.Y = 0
}

func eventTypes(events []core.Event) []core.EventType {
	types := make([]core.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func countEvents(events []core.Event, t core.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestSessionIdleAtMenu(t *testing.T) {
	s := newTestSession(t)
	start := s.Agent()

	for i := 0; i < 300; i++ {
		if events := s.Update(testDT, Inputs{}); len(events) != 0 {
			t.Fatalf("tick %d emitted %v at the menu", i, eventTypes(events))
		}
	}

	if s.Agent() != start {
		t.Errorf("agent moved at the menu: %+v -> %+v", start, s.Agent())
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles spawned at the menu: %d", len(s.Obstacles()))
	}
	if s.Background().Offset() != 0 {
		t.Errorf("background scrolled at the menu: %v", s.Background().Offset())
	}
	if s.HUD().Panel() != PanelMenu {
		t.Errorf("Panel() = %v, expected menu", s.HUD().Panel())
	}
}

func TestFirstFlapStartsSession(t *testing.T) {
	s := newTestSession(t)

	events := s.Update(testDT, Inputs{Flap: true})

	types := eventTypes(events)
	if len(types) != 2 || types[0] != core.EventStarted || types[1] != core.EventFlap {
		t.Fatalf("events = %v, expected [started flap]", types)
	}
	if s.State().Phase() != PhasePlaying {
		t.Errorf("Phase() = %v, expected playing", s.State().Phase())
	}
	if s.HUD().Panel() != PanelGameplay || s.HUD().ScoreText() != "0" {
		t.Errorf("HUD = %v %q, expected gameplay \"0\"", s.HUD().Panel(), s.HUD().ScoreText())
	}
	if got := s.Agent().Vel.Y; got != s.Config().Physics.FlapImpulse {
		t.Errorf("Vel.Y = %v, expected flap impulse %v", got, s.Config().Physics.FlapImpulse)
	}
}

func TestExampleScenario(t *testing.T) {
	s := newTestSession(t)

	s.Update(testDT, Inputs{Flap: true})
	if s.Agent().Vel.Y != -14 {
		t.Fatalf("Vel.Y = %v, expected -14", s.Agent().Vel.Y)
	}

	for i := 0; i < 3; i++ {
		s.OnScoreTrigger()
	}
	if s.Score().Value() != 3 {
		t.Errorf("Value() = %d, expected 3", s.Score().Value())
	}
	if s.HUD().ScoreText() != "3" {
		t.Errorf("ScoreText() = %q, expected \"3\"", s.HUD().ScoreText())
	}

	s.OnTerminalCollision()
	if s.HUD().Panel() != PanelGameOver {
		t.Fatalf("Panel() = %v, expected game_over", s.HUD().Panel())
	}
	if s.HUD().FinalScoreText() != "Score: 3" {
		t.Errorf("FinalScoreText() = %q, expected \"Score: 3\"", s.HUD().FinalScoreText())
	}

	s.ResetSession()
	if s.HUD().ScoreText() != "0" {
		t.Errorf("ScoreText() after restart = %q, expected \"0\"", s.HUD().ScoreText())
	}
	if s.State().Started() || s.State().Over() {
		t.Errorf("state after restart = {%v, %v}, expected {false, false}", s.State().Started(), s.State().Over())
	}
	if s.Score().Value() != 0 {
		t.Errorf("score after restart = %d", s.Score().Value())
	}
}

func TestTerminalCollisionFiresOnce(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})
	s.OnScoreTrigger()

	for i := 0; i < 5; i++ {
		s.OnTerminalCollision()
		s.OnScoreTrigger()
	}
	events := s.Update(testDT, Inputs{Flap: true})

	if n := countEvents(events, core.EventGameOver); n != 1 {
		t.Errorf("game over emitted %d times, expected 1", n)
	}
	if n := countEvents(events, core.EventScored); n != 1 {
		t.Errorf("scored %d times, expected only the trigger before the crash", n)
	}
	if n := countEvents(events, core.EventFlap); n != 0 {
		t.Error("a dead agent should not flap")
	}
	if !s.State().Over() || s.Agent().Alive {
		t.Error("session should be over with a dead agent")
	}
	if s.Score().Value() != 1 {
		t.Errorf("score = %d, expected 1", s.Score().Value())
	}
}

func TestHooksIgnoredAtMenu(t *testing.T) {
	s := newTestSession(t)

	s.OnTerminalCollision()
	s.OnScoreTrigger()

	if s.State().Phase() != PhaseMenu || !s.Agent().Alive || s.Score().Value() != 0 {
		t.Fatal("hooks should not act before the session starts")
	}

	events := s.Update(testDT, Inputs{Flap: true})
	if countEvents(events, core.EventFlap) != 1 {
		t.Errorf("agent should still flap after ignored hooks, events %v", eventTypes(events))
	}
}

func TestRestartInputOnlyAfterGameOver(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Restart: true})
	if s.State().Phase() != PhaseMenu {
		t.Fatal("restart at the menu should do nothing")
	}

	s.Update(testDT, Inputs{Flap: true})
	s.Update(testDT, Inputs{Restart: true})
	if s.State().Phase() != PhasePlaying {
		t.Fatal("restart while playing should do nothing")
	}

	s.OnTerminalCollision()
	events := s.Update(testDT, Inputs{Restart: true})
	if countEvents(events, core.EventRestarted) != 1 {
		t.Errorf("events = %v, expected restarted", eventTypes(events))
	}
	if s.State().Phase() != PhaseMenu || s.HUD().Panel() != PanelMenu {
		t.Errorf("after restart phase=%v panel=%v, expected menu", s.State().Phase(), s.HUD().Panel())
	}
}

func TestGroundCollisionEndsSession(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})

	var all []core.Event
	for i := 0; i < 600 && !s.State().Over(); i++ {
		all = append(all, s.Update(testDT, Inputs{})...)
	}

	if !s.State().Over() {
		t.Fatal("falling agent should hit the ground")
	}
	if countEvents(all, core.EventGameOver) != 1 {
		t.Errorf("game over emitted %d times", countEvents(all, core.EventGameOver))
	}
	if bottom := s.Agent().Rect(s.Config().Player).Bottom(); bottom <= s.GroundY() {
		t.Errorf("agent bottom %d should overlap ground row %d", bottom, s.GroundY())
	}
}

func TestCeilingCollisionEndsSession(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 200 && !s.State().Over(); i++ {
		s.Update(testDT, Inputs{Flap: true})
	}

	if !s.State().Over() {
		t.Fatal("agent flapping every tick should hit the ceiling")
	}
	if s.Agent().Pos.Y >= 0 {
		t.Errorf("Pos.Y = %v, expected above the ceiling", s.Agent().Pos.Y)
	}
}

func TestObstaclesSpawnAndMove(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})

	for i := 0; i < 125; i++ {
		hover(s)
		s.Update(testDT, Inputs{})
	}

	obs := s.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected exactly one obstacle after ~2s, got %d", len(obs))
	}
	o := obs[0]
	if o.ID != 1 || o.Speed != 20 || o.GapSize != 8 || o.Width != 5 {
		t.Errorf("unexpected obstacle %+v", o)
	}
	if o.Pos.X >= 80 || o.Pos.X < 75 {
		t.Errorf("Pos.X = %v, expected slightly left of the spawn point", o.Pos.X)
	}
	minY, maxY := s.gapBand(8)
	if o.Pos.Y < minY || o.Pos.Y > maxY {
		t.Errorf("Pos.Y = %v outside [%v, %v]", o.Pos.Y, minY, maxY)
	}
	if s.State().Over() {
		t.Error("hovering agent should still be alive")
	}
}

func TestObstacleRemovedPastThreshold(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})
	s.obstacles = append(s.obstacles, Obstacle{ID: 42, Pos: Vec2{X: -9.9, Y: 5}, Speed: 20, Width: 5, GapSize: 8})

	hover(s)
	s.Update(testDT, Inputs{})

	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacle past despawn_x should be removed, have %+v", s.Obstacles())
	}
}

func TestScoringOncePerObstacle(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})
	// Gap rows 8..15 around the hovering agent (rows 10..11).
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Pos: Vec2{X: 10, Y: 8}, Speed: 0, Width: 5, GapSize: 8})

	var all []core.Event
	for i := 0; i < 10; i++ {
		hover(s)
		all = append(all, s.Update(testDT, Inputs{})...)
	}

	if s.State().Over() {
		t.Fatal("agent inside the gap should not crash")
	}
	if s.Score().Value() != 1 || countEvents(all, core.EventScored) != 1 {
		t.Errorf("score = %d, scored events = %d, expected 1 each", s.Score().Value(), countEvents(all, core.EventScored))
	}
	if !s.Obstacles()[0].Scored {
		t.Error("obstacle should be marked scored")
	}
}

func TestPipeCollisionEndsSession(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{Flap: true})
	// Gap rows 14..21; the top pipe covers the agent.
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Pos: Vec2{X: 10, Y: 14}, Speed: 0, Width: 5, GapSize: 8})

	hover(s)
	events := s.Update(testDT, Inputs{})

	if !s.State().Over() || countEvents(events, core.EventGameOver) != 1 {
		t.Error("agent inside the top pipe should end the session")
	}
	if s.Score().Value() != 0 {
		t.Errorf("crash should not score, got %d", s.Score().Value())
	}
}

func TestResetSessionRestoresInitialConditions(t *testing.T) {
	s := newTestSession(t)
	initial := s.Agent()

	s.Update(testDT, Inputs{Flap: true})
	for i := 0; i < 130; i++ {
		hover(s)
		s.Update(testDT, Inputs{})
	}
	s.OnScoreTrigger()
	s.OnTerminalCollision()

	s.ResetSession()

	if s.Agent() != initial {
		t.Errorf("agent = %+v, expected %+v", s.Agent(), initial)
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("obstacles survived reset: %d", len(s.Obstacles()))
	}
	if s.Ticks() != 0 || s.Background().Offset() != 0 {
		t.Errorf("ticks=%d offset=%v, expected zero", s.Ticks(), s.Background().Offset())
	}
	if s.State().Phase() != PhaseMenu || s.Score().Value() != 0 {
		t.Error("state and score should be back to the menu")
	}

	// A new session plays normally.
	if events := s.Update(testDT, Inputs{Flap: true}); countEvents(events, core.EventStarted) != 1 {
		t.Errorf("restart should allow a new start, events %v", eventTypes(events))
	}
}

func TestBackgroundScrollsOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(t)
	s.Update(testDT, Inputs{})
	if s.Background().Offset() != 0 {
		t.Fatal("background should not scroll at the menu")
	}

	s.Update(testDT, Inputs{Flap: true})
	s.Update(testDT, Inputs{})
	if s.Background().Offset() == 0 {
		t.Error("background should scroll while playing")
	}

	s.OnTerminalCollision()
	frozen := s.Background().Offset()
	s.Update(testDT, Inputs{})
	if s.Background().Offset() != frozen {
		t.Error("background should freeze after game over")
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Obstacles.SpawnInterval = 0

	if _, err := NewSession(cfg, 80, 24, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, expected ErrInvalidConfig", err)
	}
	if _, err := NewSession(config.DefaultFlappyConfig(), 80, 2, 1); err == nil {
		t.Error("a two-row playfield should be rejected")
	}
}

func TestDifficultyRaisesObstacleSpeed(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 1}
	s, err := NewSession(cfg, 80, 24, 1)
	if err != nil {
		t.Fatal(err)
	}

	s.Update(testDT, Inputs{Flap: true})
	s.OnScoreTrigger()
	for i := 0; i < 125 && len(s.Obstacles()) == 0; i++ {
		hover(s)
		s.Update(testDT, Inputs{})
	}

	if len(s.Obstacles()) == 0 {
		t.Fatal("expected an obstacle")
	}
	if got := s.Obstacles()[0].Speed; got != 40 {
		t.Errorf("Speed = %v, expected 40 at max difficulty", got)
	}
	if got := s.Obstacles()[0].GapSize; got != 5 {
		t.Errorf("GapSize = %d, expected 5 at max difficulty", got)
	}
}

func newFloatingSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	s, err := NewSession(cfg, 80, 24, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Update(testDT, Inputs{Flap: true})
	s.agent.Vel.Y = 0
	return s
}

func TestLargeStepStillCollides(t *testing.T) {
	s := newFloatingSession(t)
	// Gap rows 15..22; the top pipe covers the agent (rows 10..11).
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Pos: Vec2{X: 15, Y: 15}, Speed: 20, Width: 5, GapSize: 8})

	events := s.Update(0.5, Inputs{})

	if !s.State().Over() || countEvents(events, core.EventGameOver) != 1 {
		t.Fatalf("a pipe sweeping past the agent in one tick should end the session, events %v", eventTypes(events))
	}
	if s.Ticks() != 1 {
		t.Errorf("Ticks() = %d, a split tick still counts once", s.Ticks())
	}
}

func TestLargeStepStillScores(t *testing.T) {
	s := newFloatingSession(t)
	// Gap rows 8..15 around the agent.
	s.obstacles = append(s.obstacles, Obstacle{ID: 1, Pos: Vec2{X: 15, Y: 8}, Speed: 20, Width: 5, GapSize: 8})

	events := s.Update(0.5, Inputs{})

	if s.State().Over() {
		t.Fatal("agent inside the gap should not crash")
	}
	if countEvents(events, core.EventScored) != 1 || s.Score().Value() != 1 {
		t.Errorf("score = %d, scored events = %d, expected 1 each", s.Score().Value(), countEvents(events, core.EventScored))
	}
	if x := s.Obstacles()[0].Pos.X; x > 5.001 || x < 4.999 {
		t.Errorf("Pos.X = %v, expected the full 10-cell move", x)
	}
}

func TestLargeStepMatchesSmallSteps(t *testing.T) {
	big := newFloatingSession(t)
	small := newFloatingSession(t)

	big.Update(0.5, Inputs{})
	for i := 0; i < 10; i++ {
		small.Update(0.05, Inputs{})
	}

	if big.Agent() != small.Agent() {
		t.Errorf("agent differs: %+v vs %+v", big.Agent(), small.Agent())
	}
	if big.Background().Offset()-small.Background().Offset() > 1e-9 ||
		small.Background().Offset()-big.Background().Offset() > 1e-9 {
		t.Errorf("background differs: %v vs %v", big.Background().Offset(), small.Background().Offset())
	}
}
