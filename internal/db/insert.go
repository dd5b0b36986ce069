package db

import (
	"context"

	"riftstats/internal/model"
)

var (
	insertSummonerSQL         = insertStatement("summoners", summonerColumns)
	insertMatchSQL            = insertStatement("matches", matchColumns)
	insertSummonerMatchSQL    = insertStatement("summoner_matches", []string{"account_id", "game_id"})
	insertTeamSQL             = insertStatement("teams", teamColumns)
	insertChampionSQL         = insertStatement("champions", championColumns)
	insertTimelineSQL         = insertStatement("timelines", timelineColumns)
	insertStatSQL             = insertStatement("stats", statColumns)
	insertParticipantSQL      = insertStatement("participants", participantColumns)
	insertEventSQL            = insertStatement("events", eventColumns)
	insertParticipantFrameSQL = insertStatement("participant_frame", frameColumns)
)

// InsertSummoner inserts a summoner profile
func (s *Store) InsertSummoner(ctx context.Context, summoner *model.Summoner) error {
	return s.exec(ctx, "InsertSummoner", insertSummonerSQL, summonerArgs(summoner)...)
}

// InsertMatch inserts the scalar part of a match
func (s *Store) InsertMatch(ctx context.Context, m *model.Match) error {
	return s.exec(ctx, "InsertMatch", insertMatchSQL, matchArgs(m)...)
}

// InsertSummonerMatch links a summoner to a match
func (s *Store) InsertSummonerMatch(ctx context.Context, sm *model.SummonerMatch) error {
	return s.exec(ctx, "InsertSummonerMatch", insertSummonerMatchSQL, sm.AccountID, sm.GameID)
}

// InsertTeam inserts one side of a match
func (s *Store) InsertTeam(ctx context.Context, t *model.Team) error {
	args, err := teamArgs(t)
	if err != nil {
		return newError("InsertTeam", err)
	}
	return s.exec(ctx, "InsertTeam", insertTeamSQL, args...)
}

// InsertChampion inserts a champion catalog entry
func (s *Store) InsertChampion(ctx context.Context, c *model.Champion) error {
	classes, err := toJSON(c.Classes)
	if err != nil {
		return newError("InsertChampion", err)
	}
	return s.exec(ctx, "InsertChampion", insertChampionSQL, c.ChampionID, c.Name, classes)
}

// InsertTimeline inserts a participant's delta series
func (s *Store) InsertTimeline(ctx context.Context, t *model.Timeline) error {
	args, err := timelineArgs(t)
	if err != nil {
		return newError("InsertTimeline", err)
	}
	return s.exec(ctx, "InsertTimeline", insertTimelineSQL, args...)
}

// InsertStat inserts a participant's post-game statistics
func (s *Store) InsertStat(ctx context.Context, stat *model.Stat) error {
	args, err := statArgs(stat)
	if err != nil {
		return newError("InsertStat", err)
	}
	return s.exec(ctx, "InsertStat", insertStatSQL, args...)
}

// InsertParticipant inserts a participant. Its stat, timeline and match must
// already be stored.
func (s *Store) InsertParticipant(ctx context.Context, p *model.Participant) error {
	return s.exec(ctx, "InsertParticipant", insertParticipantSQL, participantArgs(p)...)
}

// InsertEvent inserts a timeline event
func (s *Store) InsertEvent(ctx context.Context, e *model.Event) error {
	args, err := eventArgs(e)
	if err != nil {
		return newError("InsertEvent", err)
	}
	return s.exec(ctx, "InsertEvent", insertEventSQL, args...)
}

// InsertParticipantFrame inserts a participant snapshot
func (s *Store) InsertParticipantFrame(ctx context.Context, f *model.ParticipantFrame) error {
	return s.exec(ctx, "InsertParticipantFrame", insertParticipantFrameSQL, frameArgs(f)...)
}
