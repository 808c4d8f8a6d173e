package flappy

import (
	"math/rand"
)

// SpawnTimer emits one obstacle every interval seconds of active play.
// Gap positions are drawn uniformly from [minY, maxY].
type SpawnTimer struct {
	interval float64
	minY     float64
	maxY     float64
	spawnX   float64
	rng      *rand.Rand
	acc      float64
	nextID   int
}

// NewSpawnTimer creates a timer seeded for deterministic spawns.
func NewSpawnTimer(interval, minY, maxY, spawnX float64, seed int64) *SpawnTimer {
	st := &SpawnTimer{
		interval: interval,
		spawnX:   spawnX,
		rng:      rand.New(rand.NewSource(seed)),
	}
	st.SetBand(minY, maxY)
	return st
}

// SetBand changes the vertical range for future spawns.
// A band where maxY < minY collapses to minY.
func (st *SpawnTimer) SetBand(minY, maxY float64) {
	if maxY < minY {
		maxY = minY
	}
	st.minY = minY
	st.maxY = maxY
}

// Band returns the current vertical spawn range.
func (st *SpawnTimer) Band() (minY, maxY float64) {
	return st.minY, st.maxY
}

// SetInterval changes the time between spawns.
func (st *SpawnTimer) SetInterval(interval float64) {
	st.interval = interval
}

// SetSpawnX changes the horizontal spawn point.
func (st *SpawnTimer) SetSpawnX(x float64) {
	st.spawnX = x
}

// Tick accumulates dt. When the accumulator reaches the interval it returns
// a new obstacle and resets the accumulator to zero.
func (st *SpawnTimer) Tick(dt, speed float64, width, gap int) (Obstacle, bool) {
	st.acc += dt
	if st.acc < st.interval {
		return Obstacle{}, false
	}
	st.acc = 0

	st.nextID++
	return Obstacle{
		ID:      st.nextID,
		Pos:     Vec2{X: st.spawnX, Y: st.SampleY()},
		Speed:   speed,
		Width:   width,
		GapSize: gap,
	}, true
}

// SampleY draws a vertical offset uniformly from the band.
func (st *SpawnTimer) SampleY() float64 {
	if st.maxY <= st.minY {
		return st.minY
	}
	return st.minY + st.rng.Float64()*(st.maxY-st.minY)
}

// Reset clears the accumulator for a new session. The RNG keeps its stream,
// so consecutive sessions see different layouts.
func (st *SpawnTimer) Reset() {
	st.acc = 0
}
