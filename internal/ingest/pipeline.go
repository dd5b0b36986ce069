// Package ingest drives the mapper and the store: it fetches raw payloads,
// optionally archives them, maps them to records and writes every record.
//
// Records are written one by one. A failed insert is logged and counted and
// the remaining records are still attempted, unless the pipeline was built
// with WithStopOnError.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"

	"riftstats/internal/db"
	"riftstats/internal/mapper"
	"riftstats/internal/model"
	"riftstats/internal/riot"
	"riftstats/internal/storage"
)

const (
	// Bloom filter sizing for seen game ids
	DefaultExpectedMatches = 500000
	DefaultFalsePositive   = 0.001
)

// Source fetches raw payloads. *riot.Client satisfies it.
type Source interface {
	GetSummonerByName(ctx context.Context, name string) (*riot.SummonerDTO, error)
	GetMatchlist(ctx context.Context, accountID string, count int) (*riot.MatchlistDTO, error)
	GetMatch(ctx context.Context, gameID int64) (*riot.MatchDTO, error)
	GetTimeline(ctx context.Context, gameID int64) (*riot.MatchTimelineDTO, error)
}

// Report counts what a pipeline call did
type Report struct {
	Matches  int // matches mapped and written
	Skipped  int // matches already stored
	Inserted int // records written
	Rejected int // records refused by a key or reference constraint
	Failed   int // records or matches that failed for any other reason
}

// Add accumulates o into r
func (r *Report) Add(o Report) {
	r.Matches += o.Matches
	r.Skipped += o.Skipped
	r.Inserted += o.Inserted
	r.Rejected += o.Rejected
	r.Failed += o.Failed
}

// Pipeline ingests matches into a store
type Pipeline struct {
	store   *db.Store
	mapper  *mapper.Mapper
	archive *storage.FileRotator
	logger  *slog.Logger
	now     func() time.Time

	stopOnError bool

	visitedMu sync.Mutex
	visited   *bloom.BloomFilter
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithMapper replaces the default mapper
func WithMapper(m *mapper.Mapper) Option {
	return func(p *Pipeline) {
		p.mapper = m
	}
}

// WithArchive writes every fetched payload to the rotator before ingesting it
func WithArchive(r *storage.FileRotator) Option {
	return func(p *Pipeline) {
		p.archive = r
	}
}

// WithLogger sets the pipeline's logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithStopOnError aborts a call at the first failed record
func WithStopOnError() Option {
	return func(p *Pipeline) {
		p.stopOnError = true
	}
}

// WithExpectedMatches sizes the seen-game filter
func WithExpectedMatches(n uint) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.visited = bloom.NewWithEstimates(n, DefaultFalsePositive)
		}
	}
}

// New creates a pipeline writing to store
func New(store *db.Store, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:   store,
		mapper:  mapper.New(),
		logger:  slog.Default(),
		now:     time.Now,
		visited: bloom.NewWithEstimates(DefaultExpectedMatches, DefaultFalsePositive),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IngestSummoner stores a summoner profile and, when list is non-nil, one
// summoner_matches link per match reference
func (p *Pipeline) IngestSummoner(ctx context.Context, summoner *riot.SummonerDTO, list *riot.MatchlistDTO) (Report, error) {
	var rep Report
	if summoner == nil {
		return rep, errors.New("nil summoner")
	}

	s := p.mapper.MapSummoner(summoner)
	if err := insertAll(ctx, p, &rep, "summoner", []model.Summoner{s}, p.store.InsertSummoner); err != nil {
		return rep, err
	}
	if list == nil {
		return rep, nil
	}

	links := p.mapper.MapSummonerMatches(list, summoner.AccountID)
	if err := insertAll(ctx, p, &rep, "summoner_match", links, p.store.InsertSummonerMatch); err != nil {
		return rep, err
	}

	p.logger.Info("summoner ingested", "account", summoner.AccountID, "name", summoner.Name, "links", len(links))
	return rep, nil
}

// IngestMatch maps and stores one match with its optional timeline. Game ids
// seen earlier by this pipeline or already present in the store are skipped.
//
// The error is non-nil when the match could not be mapped, when the store
// could not be queried, or when a record failed under WithStopOnError.
func (p *Pipeline) IngestMatch(ctx context.Context, match *riot.MatchDTO, timeline *riot.MatchTimelineDTO) (Report, error) {
	var rep Report
	if match == nil {
		return rep, errors.New("nil match")
	}

	seen, err := p.seen(ctx, match.GameID)
	if err != nil {
		return rep, err
	}
	if seen {
		rep.Skipped++
		p.logger.Debug("match already stored", "game", match.GameID)
		return rep, nil
	}
	return p.ingest(ctx, match, timeline)
}

func (p *Pipeline) ingest(ctx context.Context, match *riot.MatchDTO, timeline *riot.MatchTimelineDTO) (Report, error) {
	var rep Report

	b, err := p.mapper.MapMatchBundle(match, timeline)
	if b == nil {
		rep.Failed++
		return rep, fmt.Errorf("failed to map game %d: %w", match.GameID, err)
	}
	if err != nil {
		p.logger.Warn("timeline partially mapped", "game", match.GameID, "error", err)
	}

	// referenced rows go first: participants point at the match, stats and
	// timelines; frames and events point at participants
	if err := insertAll(ctx, p, &rep, "match", []model.Match{b.Match}, p.store.InsertMatch); err != nil {
		return rep, err
	}
	if rep.Inserted == 1 {
		p.markSeen(match.GameID)
	}

	steps := []func() error{
		func() error { return insertAll(ctx, p, &rep, "team", b.Teams, p.store.InsertTeam) },
		func() error { return insertAll(ctx, p, &rep, "stat", b.Stats, p.store.InsertStat) },
		func() error { return insertAll(ctx, p, &rep, "timeline", b.Timelines, p.store.InsertTimeline) },
		func() error { return insertAll(ctx, p, &rep, "participant", b.Participants, p.store.InsertParticipant) },
		func() error { return insertAll(ctx, p, &rep, "participant_frame", b.Frames, p.store.InsertParticipantFrame) },
		func() error { return insertAll(ctx, p, &rep, "event", b.Events, p.store.InsertEvent) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return rep, err
		}
	}

	rep.Matches++
	p.logger.Info("match ingested",
		"game", match.GameID,
		"inserted", rep.Inserted,
		"rejected", rep.Rejected,
		"failed", rep.Failed)
	return rep, nil
}

// insertAll writes records in order and tallies each outcome in rep
func insertAll[T any](ctx context.Context, p *Pipeline, rep *Report, kind string, records []T, insert func(context.Context, *T) error) error {
	for i := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := insert(ctx, &records[i])
		switch {
		case err == nil:
			rep.Inserted++
			continue
		case errors.Is(err, db.ErrConstraintViolation):
			rep.Rejected++
			p.logger.Debug("record rejected", "kind", kind, "index", i, "error", err)
		default:
			rep.Failed++
			p.logger.Warn("record failed", "kind", kind, "index", i, "error", err)
		}

		if p.stopOnError {
			return fmt.Errorf("failed to insert %s %d: %w", kind, i, err)
		}
	}
	return nil
}

// seen reports whether gameID was ingested earlier. The bloom filter only
// remembers this process; the store is asked on a filter miss.
func (p *Pipeline) seen(ctx context.Context, gameID int64) (bool, error) {
	key := strconv.FormatInt(gameID, 10)

	p.visitedMu.Lock()
	hit := p.visited.TestString(key)
	p.visitedMu.Unlock()
	if hit {
		return true, nil
	}

	exists, err := p.store.MatchExists(ctx, gameID)
	if err != nil {
		return false, fmt.Errorf("failed to check game %d: %w", gameID, err)
	}
	if exists {
		p.markSeen(gameID)
	}
	return exists, nil
}

func (p *Pipeline) markSeen(gameID int64) {
	p.visitedMu.Lock()
	p.visited.AddString(strconv.FormatInt(gameID, 10))
	p.visitedMu.Unlock()
}

// LoadChampions stores a champion catalog
func (p *Pipeline) LoadChampions(ctx context.Context, champions []model.Champion) (Report, error) {
	var rep Report
	err := insertAll(ctx, p, &rep, "champion", champions, p.store.InsertChampion)
	p.logger.Info("champions loaded", "inserted", rep.Inserted, "rejected", rep.Rejected, "failed", rep.Failed)
	return rep, err
}

// fatal reports whether a per-match error should end a batch
func (p *Pipeline) fatal(ctx context.Context, err error) bool {
	return p.stopOnError || ctx.Err() != nil || errors.Is(err, db.ErrConnection)
}
