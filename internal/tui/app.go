package tui

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"sweeper/internal/config"
	"sweeper/internal/mines"
	"sweeper/internal/scores"
)

type menu int

const (
	menuNone menu = iota
	menuHelp
	menuConfirmNew
	menuDifficulty
	menuWon
	menuLost
)

// App owns the terminal session: one Field at a time, the cursor, the
// menu overlay and the game clock. All mutation happens on the event
// loop goroutine.
type App struct {
	log    *logrus.Logger
	cfg    config.Config
	scores *scores.Store // nil when the score file could not be opened
	rnd    *rand.Rand

	screen tcell.Screen

	params mines.GameParams
	field  *mines.Field
	cursor mines.Point
	clock  *gameClock

	menu         menu
	menuOpenedAt time.Time
	highlighted  []mines.Point

	// victory menu extras
	newRecord bool
	bestTime  string
}

func New(
	log *logrus.Logger,
	cfg config.Config,
	params mines.GameParams,
	store *scores.Store,
	rnd *rand.Rand,
) *App {
	return &App{
		log:    log,
		cfg:    cfg,
		scores: store,
		rnd:    rnd,
		params: params,
		clock:  newGameClock(),
	}
}

// Run drives the event loop until the player quits or ctx is cancelled.
// The tcell poll goroutine and the clock ticker both feed the single
// select; the field only ever mutates here.
func (a *App) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	a.screen = screen

	if err := a.newGame(a.params); err != nil {
		return err
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / 4)
	defer ticker.Stop()

	a.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quit := a.apply(translateKey(e)); quit {
					return nil
				}
			}
			a.render()
		case <-ticker.C:
			a.render() // keeps the clock moving
		}
	}
}

func (a *App) newGame(params mines.GameParams) error {
	field, err := mines.NewField(params, a.rnd)
	if err != nil {
		return err
	}
	a.params = params
	a.field = field
	a.cursor = mines.Point{X: params.Width / 2, Y: params.Height / 2}
	a.clock = newGameClock()
	a.highlighted = nil
	a.newRecord = false
	a.bestTime = ""
	a.log.WithFields(logrus.Fields{"seed": params.Seed()}).Info("new game")
	return nil
}

// apply mutates app state for one command and reports whether to quit.
func (a *App) apply(cmd command) bool {
	if cmd == cmdQuit {
		return true
	}
	a.highlighted = nil

	if a.menu != menuNone {
		a.applyInMenu(cmd)
		return false
	}

	switch cmd {
	case cmdHelp:
		a.openMenu(menuHelp)
	case cmdNewGame:
		if a.field.Status() == mines.InProgress && a.clock.running() {
			a.openMenu(menuConfirmNew)
		} else {
			a.openMenu(menuDifficulty)
		}
	case cmdMoveUp:
		a.moveCursor(0, -1)
	case cmdMoveDown:
		a.moveCursor(0, 1)
	case cmdMoveLeft:
		a.moveCursor(-1, 0)
	case cmdMoveRight:
		a.moveCursor(1, 0)
	case cmdOpen:
		a.openAtCursor()
	case cmdFlag:
		a.field.FlagCell(a.cursor.X, a.cursor.Y)
	}
	return false
}

func (a *App) applyInMenu(cmd command) {
	switch {
	case cmd == cmdCloseMenu:
		a.closeMenu()
	case cmd == cmdNewGame && a.menu == menuConfirmNew:
		a.menu = menuDifficulty
	case cmd == cmdNewGame && (a.menu == menuWon || a.menu == menuLost):
		a.menu = menuDifficulty
	case a.menu == menuDifficulty:
		var params mines.GameParams
		switch cmd {
		case cmdPickBeginner:
			params = mines.Beginner
		case cmdPickIntermediate:
			params = mines.Intermediate
		case cmdPickExpert:
			params = mines.Expert
		default:
			return
		}
		params.SafeStart = a.cfg.SafeStart
		a.menu = menuNone
		if err := a.newGame(params); err != nil {
			a.log.WithError(err).Error("could not start a new game")
		}
	}
}

// moveCursor clamps to the field bounds; the engine never sees an
// out-of-range coordinate.
func (a *App) moveCursor(dx, dy int) {
	x, y := a.cursor.X+dx, a.cursor.Y+dy
	if a.field.PointInBounds(x, y) {
		a.cursor = mines.Point{X: x, Y: y}
	}
}

// openAtCursor reveals a covered cell or chords an open one, the way the
// single "open" key works on a physical minesweeper.
func (a *App) openAtCursor() {
	if a.field.Status() != mines.InProgress {
		return
	}
	a.clock.start()

	snapshot := a.field.Snapshot()
	state := snapshot[a.cursor.Y*a.params.Width+a.cursor.X]
	if state.Open() {
		a.highlighted = a.field.ChordCell(a.cursor.X, a.cursor.Y)
	} else {
		a.field.OpenCell(a.cursor.X, a.cursor.Y)
	}

	switch a.field.Status() {
	case mines.Won:
		a.clock.stop()
		a.submitScore()
		a.openMenu(menuWon)
	case mines.Lost:
		a.clock.stop()
		a.field.RevealRemaining()
		a.openMenu(menuLost)
	}
}

func (a *App) submitScore() {
	elapsed := a.clock.elapsed()
	a.log.WithFields(logrus.Fields{
		"seed": a.params.Seed(),
		"time": elapsed.Round(time.Second).String(),
	}).Info("game won")
	if a.scores == nil {
		return
	}
	improved, err := a.scores.Submit(a.params.Seed(), elapsed)
	if err != nil {
		a.log.WithError(err).Error("could not submit best time")
		return
	}
	a.newRecord = improved
	if best, err := a.scores.Best(a.params.Seed()); err == nil {
		a.bestTime = best.String()
	}
}

func (a *App) openMenu(m menu) {
	a.menu = m
	a.menuOpenedAt = time.Now()
}

// closeMenu returns to the field and deducts the time the menu was up
// from the game clock.
func (a *App) closeMenu() {
	if a.menu == menuNone {
		return
	}
	a.menu = menuNone
	if !a.menuOpenedAt.IsZero() {
		a.clock.addStoppage(time.Since(a.menuOpenedAt))
		a.menuOpenedAt = time.Time{}
	}
}
