package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/hexconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/hexconnect-backend/internal/entity"
	"github.com/rocketscienceinc/hexconnect-backend/internal/hex"
	"github.com/rocketscienceinc/hexconnect-backend/internal/metrics"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

// liveSession pairs an in-memory game with its per-session lock. The lock
// serializes moves within one session; distinct sessions never contend.
type liveSession struct {
	mu      sync.Mutex
	id      string
	game    *hex.Game
	players []*entity.Participant
}

func (that *liveSession) snapshot() *entity.Snapshot {
	snapshot := that.game.Snapshot()
	snapshot.ID = that.id
	snapshot.Players = that.players

	return &snapshot
}

// SessionManager hosts concurrent game sessions. Each session owns its board,
// tracker and state exclusively; the manager only adds identity (uuid),
// per-session serialization and snapshot persistence, so independent games
// proceed fully in parallel.
type SessionManager struct {
	logger           *slog.Logger
	repo             sessionRepo
	defaultBoardSize int

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

func NewSessionManager(logger *slog.Logger, repo sessionRepo, defaultBoardSize int) *SessionManager {
	return &SessionManager{
		logger:           logger.With("component", "session_manager"),
		repo:             repo,
		defaultBoardSize: defaultBoardSize,

		sessions: make(map[string]*liveSession),
	}
}

// NewSession creates an empty game. A boardSize of 0 selects the configured
// default.
func (that *SessionManager) NewSession(ctx context.Context, boardSize int) (*entity.Snapshot, error) {
	if boardSize == 0 {
		boardSize = that.defaultBoardSize
	}

	game, err := hex.NewGame(boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session := &liveSession{
		id:   uuid.NewString(),
		game: game,
		players: []*entity.Participant{
			{ID: uuid.NewString(), Color: entity.PlayerRed, Kind: entity.KindHuman},
			{ID: uuid.NewString(), Color: entity.PlayerBlue, Kind: entity.KindHuman},
		},
	}

	snapshot := session.snapshot()
	if err = that.repo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	that.mu.Lock()
	that.sessions[session.id] = session
	that.mu.Unlock()

	metrics.SessionsStarted.Inc()
	that.logger.Info("session created", "session_id", session.id, "board_size", boardSize)

	return snapshot, nil
}

// ApplyMove validates and commits one move. On rejection the session is
// untouched and the typed error is returned to the caller.
func (that *SessionManager) ApplyMove(ctx context.Context, sessionID string, player entity.Player, coord entity.Coordinate) (*entity.Snapshot, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if _, err = session.game.ApplyMove(player, coord); err != nil {
		metrics.MovesRejected.WithLabelValues(rejectionReason(err)).Inc()

		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	snapshot := session.snapshot()
	if err = that.repo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	metrics.MovesAccepted.Inc()

	if snapshot.IsFinished() {
		metrics.GamesWon.WithLabelValues(string(snapshot.Winner)).Inc()
		that.logger.Info("game won", "session_id", sessionID, "winner", snapshot.Winner)
	}

	return snapshot, nil
}

// CurrentState is a pure read of the latest snapshot.
func (that *SessionManager) CurrentState(ctx context.Context, sessionID string) (*entity.Snapshot, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	return session.snapshot(), nil
}

// DeleteSession discards the live state and the persisted snapshot.
func (that *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	delete(that.sessions, sessionID)
	that.mu.Unlock()

	if err := that.repo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session deleted", "session_id", sessionID)

	return nil
}

// LiveSessions reports how many sessions are held in memory.
func (that *SessionManager) LiveSessions() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}

// getSession returns the live session, restoring it from the repository by
// replaying its move history when this process has no in-memory copy yet.
func (that *SessionManager) getSession(ctx context.Context, sessionID string) (*liveSession, error) {
	that.mu.RLock()
	session, ok := that.sessions[sessionID]
	that.mu.RUnlock()

	if ok {
		return session, nil
	}

	snapshot, err := that.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}

	game, err := hex.Replay(snapshot.Size, snapshot.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	session = &liveSession{
		id:      snapshot.ID,
		game:    game,
		players: snapshot.Players,
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	// another goroutine may have restored it in the meantime
	if existing, ok := that.sessions[sessionID]; ok {
		return existing, nil
	}

	that.sessions[sessionID] = session
	that.logger.Debug("session restored from storage", "session_id", sessionID, "moves", len(snapshot.Moves))

	return session, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		return "game_finished"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, apperror.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "cell_occupied"
	default:
		return "other"
	}
}
