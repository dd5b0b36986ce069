package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"riftstats/internal/storage"
)

// Run fetches a summoner and its last count matches from src, archives the
// raw payloads when an archive is configured, and ingests everything.
// A match that cannot be fetched or mapped is logged and counted; the run
// goes on with the next one.
func (p *Pipeline) Run(ctx context.Context, src Source, name string, count int) (Report, error) {
	var total Report

	summoner, err := src.GetSummonerByName(ctx, name)
	if err != nil {
		return total, fmt.Errorf("failed to fetch summoner %q: %w", name, err)
	}
	list, err := src.GetMatchlist(ctx, summoner.AccountID, count)
	if err != nil {
		return total, fmt.Errorf("failed to fetch matchlist for %s: %w", summoner.AccountID, err)
	}

	rep, err := p.IngestSummoner(ctx, summoner, list)
	total.Add(rep)
	if err != nil {
		return total, err
	}

	for i, ref := range list.Matches {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		rep, err := p.fetchAndIngest(ctx, src, ref.GameID)
		total.Add(rep)
		if err != nil {
			if p.fatal(ctx, err) {
				return total, err
			}
			p.logger.Warn("match not ingested", "game", ref.GameID, "error", err)
		}
		p.logger.Debug("progress", "done", i+1, "of", len(list.Matches))
	}

	p.logger.Info("run complete",
		"summoner", name,
		"matches", total.Matches,
		"skipped", total.Skipped,
		"inserted", total.Inserted,
		"rejected", total.Rejected,
		"failed", total.Failed)
	return total, nil
}

func (p *Pipeline) fetchAndIngest(ctx context.Context, src Source, gameID int64) (Report, error) {
	var rep Report

	seen, err := p.seen(ctx, gameID)
	if err != nil {
		return rep, err
	}
	if seen {
		rep.Skipped++
		return rep, nil
	}

	match, err := src.GetMatch(ctx, gameID)
	if err != nil {
		rep.Failed++
		return rep, fmt.Errorf("failed to fetch match %d: %w", gameID, err)
	}

	// matches keep their value without a timeline
	timeline, err := src.GetTimeline(ctx, gameID)
	if err != nil {
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
		p.logger.Warn("timeline unavailable", "game", gameID, "error", err)
		timeline = nil
	}

	if p.archive != nil {
		archived := &storage.ArchivedMatch{
			GameID:    gameID,
			Platform:  match.PlatformID,
			FetchedAt: p.now().UTC(),
			Match:     match,
			Timeline:  timeline,
		}
		if err := p.archive.Write(archived); err != nil {
			p.logger.Warn("failed to archive match", "game", gameID, "error", err)
		}
	}

	return p.ingest(ctx, match, timeline)
}

// Replay ingests archived payloads. path is either one archive file or an
// archive base directory, in which case its warm and cold files are read in
// order. Matches already stored are skipped.
func (p *Pipeline) Replay(ctx context.Context, path string) (Report, error) {
	var total Report

	info, err := os.Stat(path)
	if err != nil {
		return total, fmt.Errorf("failed to open replay source: %w", err)
	}
	files := []string{path}
	if info.IsDir() {
		if files, err = storage.ArchiveFiles(path); err != nil {
			return total, fmt.Errorf("failed to list archive files: %w", err)
		}
	}

	for _, file := range files {
		err := storage.ReadArchive(file, func(m *storage.ArchivedMatch) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := p.IngestMatch(ctx, m.Match, m.Timeline)
			total.Add(rep)
			if err != nil {
				if p.fatal(ctx, err) {
					return err
				}
				p.logger.Warn("archived match not ingested", "file", filepath.Base(file), "game", m.GameID, "error", err)
			}
			return nil
		})
		if err != nil {
			if p.fatal(ctx, err) {
				return total, fmt.Errorf("failed to replay %s: %w", file, err)
			}
			total.Failed++
			p.logger.Warn("archive file unreadable", "file", filepath.Base(file), "error", err)
			continue
		}
		p.logger.Info("archive replayed", "file", filepath.Base(file))
	}

	p.logger.Info("replay complete",
		"files", len(files),
		"matches", total.Matches,
		"skipped", total.Skipped,
		"failed", total.Failed)
	return total, nil
}
