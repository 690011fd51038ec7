package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial-go/internal/dependencies/random"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/services/spectate"
)

// SimulatorConfig holds configuration for the demo game loop
type SimulatorConfig struct {
	TickInterval time.Duration // how often snapshots advance
	Games        int           // how many concurrent fake games to run
	GridWidth    int
	GridHeight   int
}

// DefaultSimulatorConfig returns default simulator configuration
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		TickInterval: 500 * time.Millisecond,
		Games:        3,
		GridWidth:    20,
		GridHeight:   20,
	}
}

var demoPlayers = []struct {
	username string
	mode     model.GameMode
}{
	{"SnakeMaster", model.ModeWalls},
	{"PixelViper", model.ModePassThrough},
	{"NeonNoodle", model.ModeWalls},
	{"LoopLord", model.ModePassThrough},
	{"GridGlider", model.ModeWalls},
}

// Simulator is a demo game loop that stands in for real game clients.
// It drives a handful of fake snake games and publishes their state into
// the spectate registry on every tick.
type Simulator struct {
	spectate *spectate.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	cfg      SimulatorConfig

	games   []*simGame
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	ticks atomic.Int64
}

// simGame is the private state behind one published ActivePlayer snapshot
type simGame struct {
	player model.ActivePlayer
}

// NewSimulator creates a new Simulator
func NewSimulator(spectateService *spectate.Service, clk clock.Clock, rnd random.Random, cfg SimulatorConfig, logger *slog.Logger) *Simulator {
	def := DefaultSimulatorConfig()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.Games <= 0 {
		cfg.Games = def.Games
	}
	if cfg.Games > len(demoPlayers) {
		cfg.Games = len(demoPlayers)
	}
	if cfg.GridWidth <= 0 {
		cfg.GridWidth = def.GridWidth
	}
	if cfg.GridHeight <= 0 {
		cfg.GridHeight = def.GridHeight
	}

	return &Simulator{
		spectate: spectateService,
		clock:    clk,
		random:   rnd,
		logger:   logger,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

// Start seeds the fake games, publishes their initial snapshots and begins
// the tick loop
func (s *Simulator) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New("simulator already running")
	}

	for i := 0; i < s.cfg.Games; i++ {
		game := s.newGame(i)
		s.games = append(s.games, game)
		if err := s.publish(ctx, game); err != nil {
			return err
		}
	}

	s.logger.Info("simulator started",
		slog.Int("games", len(s.games)),
		slog.Duration("tick", s.cfg.TickInterval),
	)

	s.wg.Add(1)
	go s.loop(ctx)
	return nil
}

// Stop terminates the tick loop and waits for it to finish
func (s *Simulator) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("simulator stopped", slog.Int64("ticks", s.ticks.Load()))
}

// Ticks reports how many ticks have been processed
func (s *Simulator) Ticks() int64 {
	return s.ticks.Load()
}

func (s *Simulator) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick advances every fake game by one step and publishes the new snapshots
func (s *Simulator) tick(ctx context.Context) {
	s.ticks.Add(1)
	for _, game := range s.games {
		s.advance(game)
		if err := s.publish(ctx, game); err != nil {
			s.logger.Warn("failed to publish snapshot",
				slog.String("player_id", game.player.ID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Simulator) newGame(i int) *simGame {
	demo := demoPlayers[i%len(demoPlayers)]

	headX := s.random.Intn(s.cfg.GridWidth)
	headY := s.random.Intn(s.cfg.GridHeight)

	return &simGame{
		player: model.ActivePlayer{
			ID:       s.random.ID("ap_"),
			Username: demo.username,
			Score:    0,
			Mode:     demo.mode,
			Snake: []model.Position{
				{X: headX, Y: headY},
			},
			Food:      s.randomPosition(),
			Direction: s.randomDirection(),
			StartedAt: s.clock.Now(),
		},
	}
}

// advance moves the snake one cell, handling turns, food and wall collisions
func (s *Simulator) advance(game *simGame) {
	p := &game.player

	// Turn roughly every fifth tick
	if s.random.Intn(5) == 0 {
		p.Direction = s.turn(p.Direction)
	}

	head := p.Snake[0]
	next := step(head, p.Direction)

	if next.X < 0 || next.X >= s.cfg.GridWidth || next.Y < 0 || next.Y >= s.cfg.GridHeight {
		if p.Mode == model.ModePassThrough {
			next.X = (next.X + s.cfg.GridWidth) % s.cfg.GridWidth
			next.Y = (next.Y + s.cfg.GridHeight) % s.cfg.GridHeight
		} else {
			// Wall hit ends the run; restart in place with a fresh snake
			p.Score = 0
			p.Snake = []model.Position{s.randomPosition()}
			p.Food = s.randomPosition()
			p.Direction = s.randomDirection()
			p.StartedAt = s.clock.Now()
			return
		}
	}

	grow := next == p.Food
	if grow {
		p.Score += 10
		p.Food = s.randomPosition()
	}

	body := make([]model.Position, 0, len(p.Snake)+1)
	body = append(body, next)
	if grow {
		body = append(body, p.Snake...)
	} else {
		body = append(body, p.Snake[:len(p.Snake)-1]...)
	}
	p.Snake = body
}

func (s *Simulator) publish(ctx context.Context, game *simGame) error {
	snapshot := game.player
	snapshot.Snake = make([]model.Position, len(game.player.Snake))
	copy(snapshot.Snake, game.player.Snake)
	return s.spectate.PublishSnapshot(ctx, &snapshot)
}

func (s *Simulator) randomPosition() model.Position {
	return model.Position{
		X: s.random.Intn(s.cfg.GridWidth),
		Y: s.random.Intn(s.cfg.GridHeight),
	}
}

func (s *Simulator) randomDirection() model.Direction {
	directions := []model.Direction{
		model.DirectionUp,
		model.DirectionDown,
		model.DirectionLeft,
		model.DirectionRight,
	}
	return directions[s.random.Intn(len(directions))]
}

// turn picks a perpendicular direction so the snake never reverses into itself
func (s *Simulator) turn(d model.Direction) model.Direction {
	var options []model.Direction
	switch d {
	case model.DirectionUp, model.DirectionDown:
		options = []model.Direction{model.DirectionLeft, model.DirectionRight}
	default:
		options = []model.Direction{model.DirectionUp, model.DirectionDown}
	}
	return options[s.random.Intn(len(options))]
}

func step(p model.Position, d model.Direction) model.Position {
	switch d {
	case model.DirectionUp:
		p.Y--
	case model.DirectionDown:
		p.Y++
	case model.DirectionLeft:
		p.X--
	case model.DirectionRight:
		p.X++
	}
	return p
}
