package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/snakesocial/snakesocial-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:        "u_1",
		Username:  "SnakeMaster",
		Email:     "master@snake.io",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	user := &model.User{ID: "u_1", Username: "SnakeMaster", Email: "master@snake.io"}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByEmail(s.ctx, "master@snake.io")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetUserByEmailNotFound() {
	_, err := s.storage.GetUserByEmail(s.ctx, "nobody@snake.io")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{ID: "u_1", Username: "SnakeMaster", Email: "master@snake.io"}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "SnakeMaster")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "Nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Credential tests

func (s *StorageSuite) TestSaveAndGetCredential() {
	cred := &model.Credential{
		UserID:       "u_1",
		Email:        "master@snake.io",
		PasswordHash: "$2a$10$hash",
	}

	err := s.storage.SaveCredential(s.ctx, cred)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredentialByEmail(s.ctx, "master@snake.io")
	s.Require().NoError(err)
	s.Equal(cred.UserID, retrieved.UserID)
	s.Equal(cred.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetCredentialNotFound() {
	_, err := s.storage.GetCredentialByEmail(s.ctx, "nobody@snake.io")
	s.ErrorIs(err, model.ErrCredentialNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    "u_1",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(session.UserID, retrieved.UserID)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "sess_unknown")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{Token: "sess_abc", UserID: "u_1"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionUnknownTokenIsNoop() {
	err := s.storage.DeleteSession(s.ctx, "sess_never_existed")
	s.NoError(err)
}

// Leaderboard tests

func (s *StorageSuite) TestLeaderboardEmptyByDefault() {
	entries, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestSaveAndGetLeaderboard() {
	entries := []*model.LeaderboardEntry{
		{ID: "e_1", Rank: 1, Username: "SnakeMaster", Score: 2450, Mode: model.ModeWalls},
		{ID: "e_2", Rank: 2, Username: "PixelViper", Score: 2100, Mode: model.ModePassThrough},
	}

	err := s.storage.SaveLeaderboard(s.ctx, entries)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("e_1", retrieved[0].ID)
	s.Equal("e_2", retrieved[1].ID)
}

func (s *StorageSuite) TestSaveLeaderboardReplacesWholeList() {
	_ = s.storage.SaveLeaderboard(s.ctx, []*model.LeaderboardEntry{
		{ID: "e_1", Rank: 1, Score: 100},
	})
	_ = s.storage.SaveLeaderboard(s.ctx, []*model.LeaderboardEntry{
		{ID: "e_2", Rank: 1, Score: 200},
		{ID: "e_3", Rank: 2, Score: 150},
	})

	retrieved, err := s.storage.GetLeaderboard(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(retrieved, 2)
	s.Equal("e_2", retrieved[0].ID)
}

func (s *StorageSuite) TestGetLeaderboardReturnsCopy() {
	_ = s.storage.SaveLeaderboard(s.ctx, []*model.LeaderboardEntry{
		{ID: "e_1", Rank: 1, Score: 100},
	})

	first, _ := s.storage.GetLeaderboard(s.ctx)
	first[0] = &model.LeaderboardEntry{ID: "mutated"}

	second, _ := s.storage.GetLeaderboard(s.ctx)
	s.Equal("e_1", second[0].ID)
}

func (s *StorageSuite) TestGetLeaderboardEntriesAreIsolated() {
	saved := []*model.LeaderboardEntry{
		{ID: "e_1", Rank: 1, Score: 100},
	}
	_ = s.storage.SaveLeaderboard(s.ctx, saved)

	// Mutating the slice handed to save must not reach stored state
	saved[0].Rank = 99

	first, _ := s.storage.GetLeaderboard(s.ctx)
	s.Equal(1, first[0].Rank)

	// Mutating a fetched entry must not be visible to later readers
	first[0].Rank = 42

	second, _ := s.storage.GetLeaderboard(s.ctx)
	s.Equal(1, second[0].Rank)
}

// High-score tests

func (s *StorageSuite) TestSaveAndGetHighScore() {
	hs := &model.HighScore{UserID: "u_1", Mode: model.ModeWalls, Score: 150}

	err := s.storage.SaveHighScore(s.ctx, hs)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetHighScore(s.ctx, "u_1", model.ModeWalls)
	s.Require().NoError(err)
	s.Equal(150, retrieved.Score)
}

func (s *StorageSuite) TestGetHighScoreNotFound() {
	_, err := s.storage.GetHighScore(s.ctx, "u_1", model.ModeWalls)
	s.ErrorIs(err, model.ErrHighScoreNotFound)
}

func (s *StorageSuite) TestHighScoresAreKeyedPerMode() {
	_ = s.storage.SaveHighScore(s.ctx, &model.HighScore{UserID: "u_1", Mode: model.ModeWalls, Score: 150})
	_ = s.storage.SaveHighScore(s.ctx, &model.HighScore{UserID: "u_1", Mode: model.ModePassThrough, Score: 300})

	walls, err := s.storage.GetHighScore(s.ctx, "u_1", model.ModeWalls)
	s.Require().NoError(err)
	s.Equal(150, walls.Score)

	passThrough, err := s.storage.GetHighScore(s.ctx, "u_1", model.ModePassThrough)
	s.Require().NoError(err)
	s.Equal(300, passThrough.Score)
}

// Active-player tests

func (s *StorageSuite) TestSaveAndGetActivePlayer() {
	player := &model.ActivePlayer{
		ID:        "u_1",
		Username:  "SnakeMaster",
		Score:     40,
		Mode:      model.ModeWalls,
		Snake:     []model.Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Food:      model.Position{X: 10, Y: 10},
		Direction: model.DirectionRight,
	}

	err := s.storage.SaveActivePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetActivePlayer(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(40, retrieved.Score)
	s.Len(retrieved.Snake, 2)
}

func (s *StorageSuite) TestGetActivePlayerNotFound() {
	_, err := s.storage.GetActivePlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrActivePlayerNotFound)
}

func (s *StorageSuite) TestListActivePlayersPreservesInsertionOrder() {
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_1", Username: "SnakeMaster"})
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_2", Username: "PixelViper"})
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_3", Username: "NeonNoodle"})

	players, err := s.storage.ListActivePlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("u_1", players[0].ID)
	s.Equal("u_2", players[1].ID)
	s.Equal("u_3", players[2].ID)
}

func (s *StorageSuite) TestSaveActivePlayerOverwritesSnapshot() {
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_1", Score: 10})
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_1", Score: 20})

	retrieved, err := s.storage.GetActivePlayer(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal(20, retrieved.Score)

	players, _ := s.storage.ListActivePlayers(s.ctx)
	s.Len(players, 1)
}

func (s *StorageSuite) TestDeleteActivePlayer() {
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_1"})
	_ = s.storage.SaveActivePlayer(s.ctx, &model.ActivePlayer{ID: "u_2"})

	err := s.storage.DeleteActivePlayer(s.ctx, "u_1")
	s.Require().NoError(err)

	_, err = s.storage.GetActivePlayer(s.ctx, "u_1")
	s.ErrorIs(err, model.ErrActivePlayerNotFound)

	players, _ := s.storage.ListActivePlayers(s.ctx)
	s.Require().Len(players, 1)
	s.Equal("u_2", players[0].ID)
}

func (s *StorageSuite) TestDeleteActivePlayerUnknownIDIsNoop() {
	err := s.storage.DeleteActivePlayer(s.ctx, "nonexistent")
	s.NoError(err)
}
