// Package session wires a game to score persistence and logging.
// Frontends drive a Session instead of the bare game so that both the
// terminal and the window build record scores the same way.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// ScoreStore is the persistence a session needs. *storage.Store implements it.
type ScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) (int, error)
	SaveScore(e storage.ScoreEntry) (int64, error)
}

var _ ScoreStore = (*storage.Store)(nil)

// Session owns one game and its score bookkeeping.
type Session struct {
	game   *invasion.Game
	store  ScoreStore
	logger *log.Logger

	savedHigh int // High score as last read from or written to the store
	closed    bool
}

// New creates a session. store may be nil to play without persistence;
// a nil logger discards output.
func New(game *invasion.Game, store ScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{game: game, store: store, logger: logger}
}

// Game returns the underlying game for rendering.
func (s *Session) Game() *invasion.Game {
	return s.game
}

// Start resets the game to the menu and loads the persisted high score.
// A missing or unreadable store means a high score of 0.
func (s *Session) Start(runtime core.RuntimeConfig) {
	s.game.Reset(runtime)
	s.closed = false

	if s.store != nil {
		high, err := s.store.HighScore(storage.GameID)
		if err != nil {
			s.logger.Warn("could not load high score", "error", err)
			high = 0
		}
		s.savedHigh = high
		s.game.SetHighScore(high)
	}

	s.logger.Info("session started",
		"tick_rate", runtime.TickRate,
		"difficulty", s.game.State().Difficulty,
		"high_score", s.savedHigh,
	)
}

// Step advances the game one tick and reacts to what happened.
// Finished runs are recorded when the game ends.
func (s *Session) Step(events []core.Event) invasion.StepResult {
	res := s.game.Step(events)

	for _, tr := range res.Transitions {
		switch tr.Kind {
		case invasion.TransitionStart:
			s.logger.Info("game started", "difficulty", tr.Difficulty)
		case invasion.TransitionLevelUp:
			s.logger.Info("level up", "level", tr.Level, "score", tr.Score)
		case invasion.TransitionShipHit:
			s.logger.Info("ship hit", "ships_left", tr.ShipsLeft, "level", tr.Level)
		case invasion.TransitionGameOver:
			s.logger.Info("game over", "score", tr.Score, "level", tr.Level, "difficulty", tr.Difficulty)
			s.recordRun(tr)
		}
	}

	return res
}

// recordRun stores a finished run. Zero-score runs are not kept.
func (s *Session) recordRun(tr invasion.Transition) {
	if s.store == nil || tr.Score <= 0 {
		return
	}
	_, err := s.store.SaveScore(storage.ScoreEntry{
		GameID:     storage.GameID,
		Difficulty: string(tr.Difficulty),
		Score:      tr.Score,
		Level:      tr.Level,
	})
	if err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}

// Close persists the high score if it improved during the session.
// Calling it more than once is safe.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	high := s.game.State().HighScore
	defer s.logger.Info("session ended", "high_score", high)

	if s.store == nil || high <= s.savedHigh {
		return nil
	}
	saved, err := s.store.SaveHighScore(storage.GameID, high)
	if err != nil {
		s.logger.Error("could not save high score", "score", high, "error", err)
		return err
	}
	s.savedHigh = saved
	return nil
}
