package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
)

// AnimationConfig tunes the spring driving the viewport and the indicator.
type AnimationConfig struct {
	FPS         int
	Frequency   float64
	Damping     float64
	SettleDelay time.Duration // idle time after a drag before snapping to a page
}

// DefaultAnimationConfig returns a critically damped spring at 60 fps.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{FPS: 60, Frequency: 7, Damping: 1, SettleDelay: 250 * time.Millisecond}
}

func (c AnimationConfig) spring() harmonica.Spring {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return harmonica.NewSpring(harmonica.FPS(fps), c.Frequency, c.Damping)
}

func (c AnimationConfig) frame() time.Duration {
	if c.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FPS)
}

// frameMsg advances running animations by one frame.
type frameMsg time.Time

// settleMsg fires SettleDelay after the last drag; stale generations are ignored.
type settleMsg struct{ gen int }

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func settleCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

// restEpsilon is how close (in columns, and columns per frame) an axis must be to rest.
const restEpsilon = 0.5

// axis is one spring-animated coordinate in terminal columns.
type axis struct {
	pos, vel, target float64
}

func (a *axis) jump(x float64) {
	a.pos, a.vel, a.target = x, 0, x
}

func (a *axis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.target)
	if a.atRest() {
		a.pos, a.vel = a.target, 0
	}
}

func (a axis) atRest() bool {
	return math.Abs(a.pos-a.target) < restEpsilon && math.Abs(a.vel) < restEpsilon
}
