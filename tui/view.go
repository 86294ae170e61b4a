// Package tui is an interactive terminal front end for a model.Grid. It
// draws every cell as two screen columns, turns mouse drags into SetAlive
// calls and drives the generation loop from a ticker.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-agelife/model"
)

// Action tells the loop what to do after an event was handled
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionQuit
)

const defaultFrameRate = 150 * time.Millisecond

var (
	styleDead   = tcell.StyleDefault.Background(tcell.ColorGray)
	styleFresh  = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleMature = tcell.StyleDefault.Background(tcell.ColorDarkGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

func styleFor(s model.Style) tcell.Style {
	switch s {
	case model.StyleFresh:
		return styleFresh
	case model.StyleMature:
		return styleMature
	default:
		return styleDead
	}
}

// View renders a grid to a tcell screen and translates input into grid mutations
type View struct {
	screen tcell.Screen
	pool   *model.SnapshotPool
	paused bool
}

// New wraps an initialized screen
func New(screen tcell.Screen, pool *model.SnapshotPool) *View {
	return &View{screen: screen, pool: pool}
}

// NewTerminal opens the controlling terminal with mouse support
func NewTerminal(pool *model.SnapshotPool) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to initialize screen")
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return New(screen, pool), nil
}

// Close restores the terminal
func (v *View) Close() {
	v.screen.Fini()
}

// Paused reports whether the ticker is currently ignored
func (v *View) Paused() bool {
	return v.paused
}

// Draw pulls a snapshot of g and paints it with a status line underneath
func (v *View) Draw(g *model.Grid) {
	snapshot := model.TakeSnapshot(g, v.pool)
	defer model.SnapshotToPool(snapshot, v.pool)

	living := 0
	for row, cells := range snapshot {
		for col, cell := range cells {
			if cell.Alive {
				living++
			}
			style := styleFor(model.StyleOf(cell))
			v.screen.SetContent(row*2, col, ' ', nil, style)
			v.screen.SetContent(row*2+1, col, ' ', nil, style)
		}
	}

	status := fmt.Sprintf("Gen: %d | Living: %d", g.Generation(), living)
	if v.paused {
		status += " | Paused"
	}
	v.drawStatus(g.Height(), status)
	v.screen.Show()
}

func (v *View) drawStatus(y int, text string) {
	width, _ := v.screen.Size()
	x := 0
	for _, r := range text {
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// HandleEvent applies a single input event to g
func (v *View) HandleEvent(g *model.Grid, ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return ActionNone
		}
		x, y := ev.Position()
		// Gestures outside the grid are ignored
		if err := g.SetAlive(x/2, y); err != nil {
			return ActionNone
		}
		return ActionRedraw

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
		default:
			return ActionNone
		}

		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case ' ':
			v.paused = !v.paused
		case 'c':
			g.Clear()
		case 'r':
			g.SeedRandom()
		case 'n':
			g.AdvanceGeneration()
		default:
			return ActionNone
		}
		return ActionRedraw

	case *tcell.EventResize:
		v.screen.Sync()
		return ActionRedraw
	}
	return ActionNone
}

// Run advances g every frameRate until ctx is done or the user quits. The
// loop is the only goroutine touching g; input is forwarded to it over a
// channel so mutations never overlap a generation.
func (v *View) Run(ctx context.Context, g *model.Grid, frameRate time.Duration) {
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	v.Draw(g)
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch v.HandleEvent(g, ev) {
			case ActionQuit:
				return
			case ActionRedraw:
				v.Draw(g)
			}
		case <-ticker.C:
			if v.paused {
				continue
			}
			g.AdvanceGeneration()
			v.Draw(g)
		}
	}
}
