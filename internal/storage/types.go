package storage

import (
	"time"

	"riftstats/internal/riot"
)

// ArchivedMatch is one JSONL line of the archive: the raw payloads of a match
// as fetched, so ingestion can be replayed without calling the API again.
type ArchivedMatch struct {
	GameID    int64                  `json:"gameId"`
	Platform  string                 `json:"platform"`
	FetchedAt time.Time              `json:"fetchedAt"`
	Match     *riot.MatchDTO         `json:"match"`
	Timeline  *riot.MatchTimelineDTO `json:"timeline,omitempty"`
}
