package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Game runs a session in the terminal.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance on a fresh terminal screen.
func New(cfg Config, catalog *gamedata.Catalog) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, catalog), nil
}

func newGame(screen *ui.Screen, cfg Config, catalog *gamedata.Catalog) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  NewSession(cfg, catalog),
		running:  true,
	}
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	ctx, initSpan := telemetry.Tracer("game").Start(ctx, "game.init")
	if err := g.session.Start(ctx); err != nil {
		telemetry.Fail(initSpan, err)
		initSpan.End()
		return err
	}
	if d := g.session.Dungeon(); d != nil {
		initSpan.SetAttributes(
			attribute.Int("dungeon.stage", d.Stage),
			attribute.Int("dungeon.rooms", d.Graph.Len()),
		)
	}
	initSpan.End()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.View{
		Dungeon:   s.Dungeon(),
		Current:   s.Current(),
		Party:     s.Party(),
		StageName: s.StageName(),
		Status:    s.State().String(),
		Messages:  s.Messages(),
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyRune:
	default:
		return
	}

	var err error
	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		g.running = false
	case r >= '1' && r <= '9':
		err = g.session.UseDoor(ctx, int(r-'0'))
	case r == 'k' || r == 'K':
		err = g.session.PickUpKey(ctx)
	case r == 'f' || r == 'F':
		err = g.session.FightBoss(ctx)
	case r == 'p' || r == 'P':
		err = g.session.TakePortal(ctx)
	}

	if err != nil && !errors.Is(err, world.ErrDoorLocked) {
		telemetry.Logger(ctx).Debug("action rejected", "err", err)
		g.session.addMessage(actionHint(err))
	}
}

// actionHint turns a rejected action into a player-facing message.
func actionHint(err error) string {
	switch {
	case errors.Is(err, ErrNoSuchDoor):
		return "There is no door with that number."
	case errors.Is(err, ErrNoKeyHere):
		return "There is no key here."
	case errors.Is(err, ErrNotBossRoom):
		return "Nothing here worth fighting."
	case errors.Is(err, ErrBossDefeated):
		return "The boss is already dead."
	case errors.Is(err, ErrNoPortal):
		return "There is no portal here."
	case errors.Is(err, ErrRunOver):
		return "The run is over. Press q to leave."
	default:
		return err.Error()
	}
}
