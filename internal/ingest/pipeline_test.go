package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftstats/internal/config"
	"riftstats/internal/db"
	"riftstats/internal/mapper"
	"riftstats/internal/model"
	"riftstats/internal/riot"
	"riftstats/internal/storage"
	"riftstats/internal/testing/fixtures"
)

// records of one fixture match: match, 2 teams, 10 stats, 10 timelines, 10 participants
const matchRecords = 33

// a 3-frame fixture timeline adds 30 snapshots and 14 events
const timelineRecords = 44

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newStore(t *testing.T) *db.Store {
	t.Helper()
	ctx := context.Background()

	store, err := db.Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))
	return store
}

type fakeSource struct {
	summoner  *riot.SummonerDTO
	list      *riot.MatchlistDTO
	matches   map[int64]*riot.MatchDTO
	timelines map[int64]*riot.MatchTimelineDTO

	matchCalls int
}

func (f *fakeSource) GetSummonerByName(ctx context.Context, name string) (*riot.SummonerDTO, error) {
	if f.summoner == nil || f.summoner.Name != name {
		return nil, riot.ErrNotFound
	}
	return f.summoner, nil
}

func (f *fakeSource) GetMatchlist(ctx context.Context, accountID string, count int) (*riot.MatchlistDTO, error) {
	return f.list, nil
}

func (f *fakeSource) GetMatch(ctx context.Context, gameID int64) (*riot.MatchDTO, error) {
	f.matchCalls++
	m, ok := f.matches[gameID]
	if !ok {
		return nil, riot.ErrNotFound
	}
	return m, nil
}

func (f *fakeSource) GetTimeline(ctx context.Context, gameID int64) (*riot.MatchTimelineDTO, error) {
	tl, ok := f.timelines[gameID]
	if !ok {
		return nil, riot.ErrNotFound
	}
	return tl, nil
}

// newFakeSource serves games 1..3: game 2 is missing and game 3 has no timeline
func newFakeSource() *fakeSource {
	return &fakeSource{
		summoner: fixtures.Summoner("acc-1", "Player 1"),
		list:     fixtures.Matchlist(1, 2, 3),
		matches: map[int64]*riot.MatchDTO{
			1: fixtures.Match(1),
			3: fixtures.Match(3),
		},
		timelines: map[int64]*riot.MatchTimelineDTO{
			1: fixtures.Timeline(3),
		},
	}
}

func TestIngestMatchStoresEveryRecord(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p := New(store, WithLogger(quiet))

	rep, err := p.IngestMatch(ctx, fixtures.Match(1), fixtures.Timeline(3))
	require.NoError(t, err)
	assert.Equal(t, Report{Matches: 1, Inserted: matchRecords + timelineRecords}, rep)

	count, err := store.CountParticipants(ctx)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Participants, count)

	events, err := store.SelectGameEvents(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, events, 14)
}

func TestIngestMatchWithoutTimeline(t *testing.T) {
	p := New(newStore(t), WithLogger(quiet))

	rep, err := p.IngestMatch(context.Background(), fixtures.Match(1), nil)
	require.NoError(t, err)
	assert.Equal(t, Report{Matches: 1, Inserted: matchRecords}, rep)
}

func TestIngestMatchSkipsSeenGames(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p := New(store, WithLogger(quiet))

	_, err := p.IngestMatch(ctx, fixtures.Match(1), nil)
	require.NoError(t, err)

	// remembered by the filter
	rep, err := p.IngestMatch(ctx, fixtures.Match(1), nil)
	require.NoError(t, err)
	assert.Equal(t, Report{Skipped: 1}, rep)

	// a fresh pipeline finds it in the store
	fresh := New(store, WithLogger(quiet), WithExpectedMatches(100))
	rep, err = fresh.IngestMatch(ctx, fixtures.Match(1), nil)
	require.NoError(t, err)
	assert.Equal(t, Report{Skipped: 1}, rep)

	count, err := store.CountMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIngestMatchMappingFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p := New(store, WithLogger(quiet))

	match := fixtures.Match(1)
	match.ParticipantIdentities = match.ParticipantIdentities[:9]

	rep, err := p.IngestMatch(ctx, match, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapper.ErrMissingReference))
	assert.Equal(t, Report{Failed: 1}, rep)

	count, err := store.CountMatches(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = p.IngestMatch(ctx, nil, nil)
	assert.Error(t, err)
}

func constantIDs() mapper.Option {
	return mapper.WithIDGenerator(mapper.IDGeneratorFunc(func() string { return "dup" }))
}

func TestIngestMatchContinuesPastRejectedRecords(t *testing.T) {
	p := New(newStore(t), WithLogger(quiet), WithMapper(mapper.New(constantIDs())))

	rep, err := p.IngestMatch(context.Background(), fixtures.Match(1), nil)
	require.NoError(t, err)
	// one stat, timeline and participant row fit; the other nine of each collide
	assert.Equal(t, Report{Matches: 1, Inserted: 6, Rejected: 27}, rep)
}

func TestIngestMatchStopOnError(t *testing.T) {
	p := New(newStore(t), WithLogger(quiet), WithStopOnError(), WithMapper(mapper.New(constantIDs())))

	rep, err := p.IngestMatch(context.Background(), fixtures.Match(1), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrConstraintViolation))
	assert.Contains(t, err.Error(), "stat 1")
	assert.Equal(t, Report{Inserted: 4, Rejected: 1}, rep)
}

func TestIngestSummoner(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p := New(store, WithLogger(quiet))

	rep, err := p.IngestSummoner(ctx, fixtures.Summoner("acc-1", "Player 1"), fixtures.Matchlist(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Report{Inserted: 3}, rep)

	n, err := store.CountSummonerMatches(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// the profile is already there, the links are new
	rep, err = p.IngestSummoner(ctx, fixtures.Summoner("acc-1", "Player 1"), fixtures.Matchlist(3))
	require.NoError(t, err)
	assert.Equal(t, Report{Inserted: 1, Rejected: 1}, rep)

	_, err = p.IngestSummoner(ctx, nil, nil)
	assert.Error(t, err)
}

func TestRunArchivesAndReplays(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()

	rotator, err := storage.NewFileRotator(base, storage.WithLogger(quiet))
	require.NoError(t, err)

	src := newFakeSource()
	fetched := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	p := New(newStore(t), WithLogger(quiet), WithArchive(rotator))
	p.now = func() time.Time { return fetched }

	rep, err := p.Run(ctx, src, "Player 1", 3)
	require.NoError(t, err)
	assert.Equal(t, Report{
		Matches:  2,
		Inserted: 1 + 3 + 2*matchRecords + timelineRecords,
		Failed:   1,
	}, rep)

	// seen games are not fetched again
	rep, err = p.Run(ctx, src, "Player 1", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Skipped)
	assert.Equal(t, 4, src.matchCalls)

	require.NoError(t, rotator.Close())
	files, err := storage.ArchiveFiles(base)
	require.NoError(t, err)
	require.Len(t, files, 1)

	var archived []*storage.ArchivedMatch
	require.NoError(t, storage.ReadArchive(files[0], func(m *storage.ArchivedMatch) error {
		archived = append(archived, m)
		return nil
	}))
	require.Len(t, archived, 2)
	assert.Equal(t, int64(1), archived[0].GameID)
	assert.NotNil(t, archived[0].Timeline)
	assert.Nil(t, archived[1].Timeline)
	assert.True(t, fetched.Equal(archived[0].FetchedAt))

	replayStore := newStore(t)
	replay := New(replayStore, WithLogger(quiet))
	rep, err = replay.Replay(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, Report{Matches: 2, Inserted: 2*matchRecords + timelineRecords}, rep)

	rep, err = replay.Replay(ctx, files[0])
	require.NoError(t, err)
	assert.Equal(t, Report{Skipped: 2}, rep)
}

func TestRunUnknownSummoner(t *testing.T) {
	p := New(newStore(t), WithLogger(quiet))

	_, err := p.Run(context.Background(), newFakeSource(), "Nobody", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, riot.ErrNotFound))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(newStore(t), WithLogger(quiet))

	_, err := p.Run(ctx, newFakeSource(), "Player 1", 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReplayCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json\n"), 0644))
	p := New(newStore(t), WithLogger(quiet))

	rep, err := p.Replay(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, Report{Failed: 1}, rep)

	_, err = p.Replay(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadChampions(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	p := New(store, WithLogger(quiet))

	rep, err := p.LoadChampions(ctx, []model.Champion{
		{ChampionID: 266, Name: "Aatrox", Classes: []string{"Fighter", "Tank"}},
		{ChampionID: 103, Name: "Ahri", Classes: []string{"Mage", "Assassin"}},
		{ChampionID: 266, Name: "Aatrox", Classes: []string{"Fighter"}},
	})
	require.NoError(t, err)
	assert.Equal(t, Report{Inserted: 2, Rejected: 1}, rep)

	got, err := store.SelectChampion(ctx, 103)
	require.NoError(t, err)
	assert.Equal(t, "Ahri", got.Name)
}

func TestReportAdd(t *testing.T) {
	r := Report{Matches: 1, Inserted: 5}
	r.Add(Report{Matches: 2, Skipped: 1, Rejected: 3, Failed: 4})
	assert.Equal(t, Report{Matches: 3, Skipped: 1, Inserted: 5, Rejected: 3, Failed: 4}, r)
}
