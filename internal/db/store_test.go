package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftstats/internal/config"
	"riftstats/internal/mapper"
	"riftstats/internal/model"
	"riftstats/internal/testing/fixtures"
)

// newTestStore opens a migrated in-memory sqlite store private to the test
func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	store, err := Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(ctx))
	return store
}

// seedMatch maps a fixture match with a timeline of frames and stores every record
func seedMatch(t *testing.T, store *Store, gameID int64, frames int) *mapper.Bundle {
	t.Helper()
	ctx := context.Background()

	b, err := mapper.New().MapMatchBundle(fixtures.Match(gameID), fixtures.Timeline(frames))
	require.NoError(t, err)

	require.NoError(t, store.InsertMatch(ctx, &b.Match))
	for i := range b.Teams {
		require.NoError(t, store.InsertTeam(ctx, &b.Teams[i]))
	}
	for i := range b.Stats {
		require.NoError(t, store.InsertStat(ctx, &b.Stats[i]))
	}
	for i := range b.Timelines {
		require.NoError(t, store.InsertTimeline(ctx, &b.Timelines[i]))
	}
	for i := range b.Participants {
		require.NoError(t, store.InsertParticipant(ctx, &b.Participants[i]))
	}
	for i := range b.Frames {
		require.NoError(t, store.InsertParticipantFrame(ctx, &b.Frames[i]))
	}
	for i := range b.Events {
		require.NoError(t, store.InsertEvent(ctx, &b.Events[i]))
	}
	return b
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Migrate(context.Background()))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConnection))
}

func TestSummonerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	fixed := time.Date(2021, 3, 14, 15, 9, 26, 535000000, time.UTC)
	m := mapper.New(mapper.WithClock(mapper.ClockFunc(func() time.Time { return fixed })))
	summoner := m.MapSummoner(fixtures.Summoner("acc-1", "Player One"))

	require.NoError(t, store.InsertSummoner(ctx, &summoner))

	got, err := store.SelectSummoner(ctx, "Player One")
	require.NoError(t, err)
	assert.Equal(t, summoner.AccountID, got.AccountID)
	assert.Equal(t, summoner.PUUID, got.PUUID)
	assert.Equal(t, summoner.Level, got.Level)
	assert.True(t, fixed.Equal(got.Timestamp), "timestamp %v != %v", got.Timestamp, fixed)

	byAccount, err := store.SelectSummonerByAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, got, byAccount)
}

func TestStatRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	stat := mapper.New().MapStat(fixtures.Stats(3))
	require.NoError(t, store.InsertStat(ctx, &stat))

	got, err := store.SelectStat(ctx, stat.StatID)
	require.NoError(t, err)
	assert.Equal(t, stat, *got)
}

func TestTimelineRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tl := mapper.New().MapTimeline(fixtures.Participant(2).Timeline)
	require.NoError(t, store.InsertTimeline(ctx, &tl))

	got, err := store.SelectTimeline(ctx, tl.TimelineID)
	require.NoError(t, err)
	assert.Equal(t, tl, *got)
	assert.NotEqual(t, got.CSDiffPerMinDeltas, got.GoldPerMinDeltas)
}

func TestChampionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	champ := model.Champion{ChampionID: 266, Name: "Aatrox", Classes: []string{"Fighter", "Tank"}}
	require.NoError(t, store.InsertChampion(ctx, &champ))

	got, err := store.SelectChampion(ctx, 266)
	require.NoError(t, err)
	assert.Equal(t, champ, *got)
}

func TestDuplicateInsertIsConstraintViolation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	summoner := mapper.New().MapSummoner(fixtures.Summoner("acc-1", "Player One"))
	require.NoError(t, store.InsertSummoner(ctx, &summoner))

	err := store.InsertSummoner(ctx, &summoner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstraintViolation))

	var storeErr *Error
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "InsertSummoner", storeErr.Op)
	assert.Equal(t, KindConstraint, storeErr.Kind)

	// the failed transaction was rolled back; the store keeps working
	other := mapper.New().MapSummoner(fixtures.Summoner("acc-2", "Player Two"))
	require.NoError(t, store.InsertSummoner(ctx, &other))

	all, err := store.SelectAllSummoners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDuplicateSummonerMatch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	link := model.SummonerMatch{AccountID: "acc-1", GameID: 4001}
	require.NoError(t, store.InsertSummonerMatch(ctx, &link))
	assert.True(t, errors.Is(store.InsertSummonerMatch(ctx, &link), ErrConstraintViolation))

	count, err := store.CountSummonerMatches(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestParticipantRequiresStoredReferences(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	p := model.Participant{
		ParticipantID: uuid.NewString(),
		GameID:        4001,
		AccountID:     "acc-1",
		StatID:        "missing-stat",
		TimelineID:    "missing-timeline",
	}
	err := store.InsertParticipant(ctx, &p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstraintViolation))
}

func TestSelectNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.SelectSummoner(ctx, "nobody")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.SelectMatch(ctx, 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = store.SelectParticipantTeam(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConstraintViolation))

	// empty lists are not an error
	frames, err := store.SelectParticipantFrames(ctx, "nope")
	assert.NoError(t, err)
	assert.Empty(t, frames)

	exists, err := store.MatchExists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestPostgresStore runs the round trips against a real server when
// TEST_DATABASE_URL is set, e.g. postgres://postgres@localhost:5432/riftstats_test
func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("Skipping: TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	sqlDB, err := sql.Open(config.DriverPgx, url)
	require.NoError(t, err)
	store := New(sqlDB, Postgres)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	stat := mapper.New().MapStat(fixtures.Stats(4))
	require.NoError(t, store.InsertStat(ctx, &stat))
	got, err := store.SelectStat(ctx, stat.StatID)
	require.NoError(t, err)
	assert.Equal(t, stat, *got)

	err = store.InsertStat(ctx, &stat)
	assert.True(t, errors.Is(err, ErrConstraintViolation))

	exists, err := store.MatchExists(ctx, -1)
	require.NoError(t, err)
	assert.False(t, exists)
}
