package memory

import (
	"context"
	"sync"

	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	emailIndex    map[string]model.UserID
	usernameIndex map[string]model.UserID
	credentials   map[string]*model.Credential // keyed by email
	sessions      map[string]*model.Session    // keyed by token
	leaderboard   []model.LeaderboardEntry
	highScores    map[highScoreKey]*model.HighScore
	activePlayers map[string]*model.ActivePlayer
	activeOrder   []string // insertion order for stable listing
}

type highScoreKey struct {
	userID model.UserID
	mode   model.GameMode
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		emailIndex:    make(map[string]model.UserID),
		usernameIndex: make(map[string]model.UserID),
		credentials:   make(map[string]*model.Credential),
		sessions:      make(map[string]*model.Session),
		highScores:    make(map[highScoreKey]*model.HighScore),
		activePlayers: make(map[string]*model.ActivePlayer),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.emailIndex[user.Email] = user.ID
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByIndex(s.emailIndex, email)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByIndex(s.usernameIndex, username)
}

// userByIndex resolves a secondary index entry; callers must hold the lock
func (s *Storage) userByIndex(index map[string]model.UserID, key string) (*model.User, error) {
	id, ok := index[key]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentials[cred.Email] = cred
	return nil
}

func (s *Storage) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.credentials[email]
	if !ok {
		return nil, model.ErrCredentialNotFound
	}
	return cred, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Leaderboard operations

// SaveLeaderboard stores entries by value so callers that keep mutating
// their copies (re-ranking in particular) can never reach stored state.
// The redis backend gets the same isolation from its JSON round-trip.
func (s *Storage) SaveLeaderboard(ctx context.Context, entries []*model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaderboard = make([]model.LeaderboardEntry, len(entries))
	for i, e := range entries {
		s.leaderboard[i] = *e
	}
	return nil
}

func (s *Storage) GetLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.LeaderboardEntry, len(s.leaderboard))
	for i := range s.leaderboard {
		entry := s.leaderboard[i]
		result[i] = &entry
	}
	return result, nil
}

// High-score operations

func (s *Storage) SaveHighScore(ctx context.Context, hs *model.HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highScores[highScoreKey{userID: hs.UserID, mode: hs.Mode}] = hs
	return nil
}

func (s *Storage) GetHighScore(ctx context.Context, userID model.UserID, mode model.GameMode) (*model.HighScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hs, ok := s.highScores[highScoreKey{userID: userID, mode: mode}]
	if !ok {
		return nil, model.ErrHighScoreNotFound
	}
	return hs, nil
}

// Active-player operations

func (s *Storage) SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activePlayers[player.ID]; !ok {
		s.activeOrder = append(s.activeOrder, player.ID)
	}
	s.activePlayers[player.ID] = player
	return nil
}

func (s *Storage) GetActivePlayer(ctx context.Context, id string) (*model.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.activePlayers[id]
	if !ok {
		return nil, model.ErrActivePlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.ActivePlayer, 0, len(s.activePlayers))
	for _, id := range s.activeOrder {
		if player, ok := s.activePlayers[id]; ok {
			result = append(result, player)
		}
	}
	return result, nil
}

func (s *Storage) DeleteActivePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activePlayers[id]; !ok {
		return nil
	}
	delete(s.activePlayers, id)
	for i, existing := range s.activeOrder {
		if existing == id {
			s.activeOrder = append(s.activeOrder[:i], s.activeOrder[i+1:]...)
			break
		}
	}
	return nil
}
