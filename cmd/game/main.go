// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-state-container/internal/app"
	"go-state-container/internal/config"
	"go-state-container/internal/event"
	"go-state-container/internal/logger"
	"go-state-container/internal/observability"
	"go-state-container/internal/state"
	"go-state-container/internal/ui"
	"go-state-container/pkg/statemachine"
)

type AppGame struct {
	cfg          config.Config
	stateMachine *statemachine.StateMachine
	clock        *app.Clock
	indicator    *ui.StateIndicator
}

func (a *AppGame) Update() error {
	a.clock.Tick(time.Now())
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	if cur, ok := a.stateMachine.Current(); ok {
		if d, ok := cur.(state.Drawer); ok {
			d.Draw(screen)
		}
	}
	a.indicator.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("service", "game")),
	), nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	slog.SetDefault(log)

	dispatcher := event.NewDispatcher()
	indicator := ui.NewStateIndicator(
		float32(cfg.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
	)
	indicator.Subscribe(dispatcher)

	clock := app.NewClock(time.Now(), cfg.MaxDeltaTime)
	sm, err := statemachine.NewStateMachineFrom(
		state.Parameters(clock, cfg.ScreenWidth, cfg.ScreenHeight, cfg.StartState),
		statemachine.WithObserver(observability.NewSlogObserver(log, "game")),
		statemachine.WithObserver(event.NewTransitionPublisher(dispatcher)),
	)
	if err != nil {
		return fmt.Errorf("register states: %w", err)
	}
	log.Info("starting", "start_state", cfg.StartState, "states", sm.Len())

	game := &AppGame{
		cfg:          cfg,
		stateMachine: sm,
		clock:        clock,
		indicator:    indicator,
	}
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(cfg.TPS)

	err = ebiten.RunGame(game)
	sm.Exit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("game stopped", "error", err)
		os.Exit(1)
	}
}
