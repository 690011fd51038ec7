package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/mocks"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/services/spectate"
	"github.com/snakesocial/snakesocial-go/internal/storage/memory"
	"github.com/snakesocial/snakesocial-go/internal/testutil"
)

type SimulatorSuite struct {
	suite.Suite
	storage  *memory.Storage
	spectate *spectate.Service
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	ctx      context.Context
}

func TestSimulatorSuite(t *testing.T) {
	suite.Run(t, new(SimulatorSuite))
}

func (s *SimulatorSuite) SetupTest() {
	s.storage = memory.New()
	s.spectate = spectate.New(s.storage, testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.ctx = context.Background()
}

func (s *SimulatorSuite) newSimulator(cfg SimulatorConfig) *Simulator {
	return NewSimulator(s.spectate, s.clock, s.random, cfg, testutil.NopLogger())
}

func (s *SimulatorSuite) TestStartPublishesInitialSnapshots() {
	sim := s.newSimulator(SimulatorConfig{TickInterval: time.Hour, Games: 2})

	err := sim.Start(s.ctx)
	s.Require().NoError(err)
	defer sim.Stop()

	players, err := s.spectate.ListActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal("SnakeMaster", players[0].Username)
	s.Equal("PixelViper", players[1].Username)
	s.Equal(s.clock.Now(), players[0].StartedAt)
	s.Len(players[0].Snake, 1)
}

func (s *SimulatorSuite) TestStartTwiceFails() {
	sim := s.newSimulator(SimulatorConfig{TickInterval: time.Hour, Games: 1})

	s.Require().NoError(sim.Start(s.ctx))
	defer sim.Stop()

	s.Error(sim.Start(s.ctx))
}

func (s *SimulatorSuite) TestTickLoopPublishesUpdates() {
	sim := s.newSimulator(SimulatorConfig{TickInterval: 5 * time.Millisecond, Games: 1})

	s.Require().NoError(sim.Start(s.ctx))

	s.Eventually(func() bool {
		return sim.Ticks() >= 3
	}, time.Second, 5*time.Millisecond)

	sim.Stop()

	players, err := s.spectate.ListActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 1)
}

func (s *SimulatorSuite) TestStopTerminatesCleanly() {
	sim := s.newSimulator(SimulatorConfig{TickInterval: 5 * time.Millisecond, Games: 1})

	s.Require().NoError(sim.Start(s.ctx))
	sim.Stop()

	ticksAfterStop := sim.Ticks()
	time.Sleep(25 * time.Millisecond)
	s.Equal(ticksAfterStop, sim.Ticks())

	// Stop is safe to call again
	sim.Stop()
}

func (s *SimulatorSuite) TestAdvanceMovesSnake() {
	sim := s.newSimulator(SimulatorConfig{GridWidth: 20, GridHeight: 20})
	game := &simGame{
		player: model.ActivePlayer{
			Snake:     []model.Position{{X: 5, Y: 5}},
			Food:      model.Position{X: 15, Y: 15},
			Direction: model.DirectionRight,
			Mode:      model.ModeWalls,
		},
	}

	s.random.QueueIntn(1) // skip turn
	sim.advance(game)

	s.Equal(model.Position{X: 6, Y: 5}, game.player.Snake[0])
	s.Len(game.player.Snake, 1)
	s.Equal(0, game.player.Score)
}

func (s *SimulatorSuite) TestAdvanceEatsFoodAndGrows() {
	sim := s.newSimulator(SimulatorConfig{GridWidth: 20, GridHeight: 20})
	game := &simGame{
		player: model.ActivePlayer{
			Snake:     []model.Position{{X: 4, Y: 5}},
			Food:      model.Position{X: 5, Y: 5},
			Direction: model.DirectionRight,
			Mode:      model.ModeWalls,
		},
	}

	s.random.QueueIntn(1, 9, 9) // skip turn, then new food position
	sim.advance(game)

	s.Equal(10, game.player.Score)
	s.Require().Len(game.player.Snake, 2)
	s.Equal(model.Position{X: 5, Y: 5}, game.player.Snake[0])
	s.Equal(model.Position{X: 4, Y: 5}, game.player.Snake[1])
	s.Equal(model.Position{X: 9, Y: 9}, game.player.Food)
}

func (s *SimulatorSuite) TestAdvanceWrapsInPassThroughMode() {
	sim := s.newSimulator(SimulatorConfig{GridWidth: 20, GridHeight: 20})
	game := &simGame{
		player: model.ActivePlayer{
			Snake:     []model.Position{{X: 0, Y: 5}},
			Food:      model.Position{X: 15, Y: 15},
			Direction: model.DirectionLeft,
			Mode:      model.ModePassThrough,
		},
	}

	s.random.QueueIntn(1) // skip turn
	sim.advance(game)

	s.Equal(model.Position{X: 19, Y: 5}, game.player.Snake[0])
}

func (s *SimulatorSuite) TestAdvanceResetsOnWallHit() {
	sim := s.newSimulator(SimulatorConfig{GridWidth: 20, GridHeight: 20})
	game := &simGame{
		player: model.ActivePlayer{
			Score:     120,
			Snake:     []model.Position{{X: 0, Y: 5}, {X: 1, Y: 5}},
			Food:      model.Position{X: 15, Y: 15},
			Direction: model.DirectionLeft,
			Mode:      model.ModeWalls,
		},
	}

	s.random.QueueIntn(1, 3, 4, 7, 8, 2) // skip turn; new head, food, direction
	sim.advance(game)

	s.Equal(0, game.player.Score)
	s.Require().Len(game.player.Snake, 1)
	s.Equal(model.Position{X: 3, Y: 4}, game.player.Snake[0])
	s.Equal(model.Position{X: 7, Y: 8}, game.player.Food)
}
