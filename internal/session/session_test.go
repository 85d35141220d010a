package session

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// memStore is an in-memory ScoreStore.
type memStore struct {
	high     int
	runs     []storage.ScoreEntry
	highSave int // SaveHighScore calls
	failLoad bool
	failSave bool
}

func (m *memStore) HighScore(string) (int, error) {
	if m.failLoad {
		return 0, errors.New("disk on fire")
	}
	return m.high, nil
}

func (m *memStore) SaveHighScore(_ string, score int) (int, error) {
	m.highSave++
	if m.failSave {
		return 0, errors.New("read-only")
	}
	m.high = max(m.high, score)
	return m.high, nil
}

func (m *memStore) SaveScore(e storage.ScoreEntry) (int64, error) {
	m.runs = append(m.runs, e)
	return int64(len(m.runs)), nil
}

var testRuntime = core.RuntimeConfig{TickRate: 60}

func newSession(t *testing.T, store ScoreStore) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Prefix: "test"})
	game := invasion.New(config.NewSettings(config.DefaultInvasionConfig()))
	s := New(game, store, logger)
	s.Start(testRuntime)
	return s, &buf
}

// playToGameOver starts a game and loses every ship.
func playToGameOver(t *testing.T, s *Session) {
	t.Helper()
	s.Step([]core.Event{core.KeyDown(core.KeyStart)})
	for i := 0; s.Game().State().Phase == invasion.PhaseActive; i++ {
		require.Less(t, i, 100000, "game never ended")
		s.Step(nil)
	}
}

func TestStartLoadsHighScore(t *testing.T) {
	store := &memStore{high: 3200}
	s, buf := newSession(t, store)

	assert.Equal(t, 3200, s.Game().State().HighScore)
	assert.Contains(t, buf.String(), "session started")
}

func TestStartLoadFailureMeansZero(t *testing.T) {
	store := &memStore{high: 3200, failLoad: true}
	s, buf := newSession(t, store)

	assert.Equal(t, 0, s.Game().State().HighScore)
	assert.Contains(t, buf.String(), "could not load high score")
}

func TestGameOverRecordsRun(t *testing.T) {
	store := &memStore{}
	s, buf := newSession(t, store)

	// Shoot nothing; the fleet eventually reaches the bottom three times
	playToGameOver(t, s)

	assert.Equal(t, invasion.PhaseGameOver, s.Game().State().Phase)
	assert.Empty(t, store.runs, "zero-score runs are not recorded")
	assert.Contains(t, buf.String(), "game over")
	assert.Contains(t, buf.String(), "ship hit")
}

func TestGameOverRecordsScoredRun(t *testing.T) {
	store := &memStore{}
	s, _ := newSession(t, store)

	// Fire constantly from the start position to score some hits
	s.Step([]core.Event{core.KeyDown(core.KeyStart)})
	for i := 0; s.Game().State().Phase == invasion.PhaseActive; i++ {
		require.Less(t, i, 100000, "game never ended")
		s.Step([]core.Event{core.KeyDown(core.KeyFire)})
	}

	require.Len(t, store.runs, 1)
	run := store.runs[0]
	assert.Equal(t, storage.GameID, run.GameID)
	assert.Equal(t, "easy", run.Difficulty)
	assert.Positive(t, run.Score)
	assert.Equal(t, s.Game().State().Score, run.Score)
}

func TestCloseSavesImprovedHighScore(t *testing.T) {
	store := &memStore{high: 100}
	s, _ := newSession(t, store)

	s.Game().SetHighScore(900)
	require.NoError(t, s.Close())
	assert.Equal(t, 900, store.high)

	// Second close is a no-op
	require.NoError(t, s.Close())
	assert.Equal(t, 1, store.highSave)
}

func TestCloseSkipsUnchangedHighScore(t *testing.T) {
	store := &memStore{high: 500}
	s, _ := newSession(t, store)

	require.NoError(t, s.Close())
	assert.Zero(t, store.highSave)
}

func TestCloseReportsSaveFailure(t *testing.T) {
	store := &memStore{failSave: true}
	s, buf := newSession(t, store)

	s.Game().SetHighScore(50)
	assert.Error(t, s.Close())
	assert.Contains(t, buf.String(), "could not save high score")
}

func TestNilStore(t *testing.T) {
	s, _ := newSession(t, nil)
	s.Game().SetHighScore(50)
	assert.NoError(t, s.Close())
}

func TestHighScoreRoundTripThroughSQLite(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	s, _ := newSession(t, store)
	s.Game().SetHighScore(1250)
	require.NoError(t, s.Close())

	s2, _ := newSession(t, store)
	assert.Equal(t, 1250, s2.Game().State().HighScore)
}
