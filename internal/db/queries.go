package db

import (
	"context"
	"database/sql"

	"riftstats/internal/model"
)

// SelectSummoner returns the summoner with the given name
func (s *Store) SelectSummoner(ctx context.Context, name string) (*model.Summoner, error) {
	var summoner model.Summoner
	err := s.queryRow(ctx, "SelectSummoner",
		`SELECT `+columns("", summonerColumns)+` FROM summoners WHERE name = $1 LIMIT 1`,
		[]any{name}, summonerDest(&summoner)...)
	if err != nil {
		return nil, err
	}
	return &summoner, nil
}

// SelectSummonerByAccount returns the summoner with the given account id
func (s *Store) SelectSummonerByAccount(ctx context.Context, accountID string) (*model.Summoner, error) {
	var summoner model.Summoner
	err := s.queryRow(ctx, "SelectSummonerByAccount",
		`SELECT `+columns("", summonerColumns)+` FROM summoners WHERE account_id = $1`,
		[]any{accountID}, summonerDest(&summoner)...)
	if err != nil {
		return nil, err
	}
	return &summoner, nil
}

// SelectAllSummoners returns every stored summoner
func (s *Store) SelectAllSummoners(ctx context.Context) ([]model.Summoner, error) {
	var summoners []model.Summoner
	err := s.query(ctx, "SelectAllSummoners",
		`SELECT `+columns("", summonerColumns)+` FROM summoners ORDER BY name`,
		nil, func(rows *sql.Rows) error {
			var summoner model.Summoner
			if err := rows.Scan(summonerDest(&summoner)...); err != nil {
				return err
			}
			summoners = append(summoners, summoner)
			return nil
		})
	return summoners, err
}

// CountSummonerMatches returns how many matches are linked to an account
func (s *Store) CountSummonerMatches(ctx context.Context, accountID string) (int, error) {
	var count int
	err := s.queryRow(ctx, "CountSummonerMatches",
		`SELECT COUNT(*) FROM summoner_matches WHERE account_id = $1`,
		[]any{accountID}, &count)
	return count, err
}

// SelectMatch returns the match with the given game id
func (s *Store) SelectMatch(ctx context.Context, gameID int64) (*model.Match, error) {
	var m model.Match
	err := s.queryRow(ctx, "SelectMatch",
		`SELECT `+columns("", matchColumns)+` FROM matches WHERE game_id = $1`,
		[]any{gameID}, matchDest(&m)...)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MatchExists checks if a match already exists in the database
func (s *Store) MatchExists(ctx context.Context, gameID int64) (bool, error) {
	var exists bool
	err := s.queryRow(ctx, "MatchExists",
		`SELECT EXISTS(SELECT 1 FROM matches WHERE game_id = $1)`,
		[]any{gameID}, &exists)
	return exists, err
}

// CountMatches returns the total number of matches
func (s *Store) CountMatches(ctx context.Context) (int, error) {
	var count int
	err := s.queryRow(ctx, "CountMatches", `SELECT COUNT(*) FROM matches`, nil, &count)
	return count, err
}

// CountParticipants returns the total number of participants
func (s *Store) CountParticipants(ctx context.Context) (int, error) {
	var count int
	err := s.queryRow(ctx, "CountParticipants", `SELECT COUNT(*) FROM participants`, nil, &count)
	return count, err
}

// SelectTeam returns one side of a match
func (s *Store) SelectTeam(ctx context.Context, gameID int64, teamID int) (*model.Team, error) {
	var t model.Team
	err := s.queryRow(ctx, "SelectTeam",
		`SELECT `+columns("", teamColumns)+` FROM teams WHERE game_id = $1 AND team_id = $2`,
		[]any{gameID, teamID}, teamDest(&t)...)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SelectChampion returns a champion catalog entry
func (s *Store) SelectChampion(ctx context.Context, championID int) (*model.Champion, error) {
	var c model.Champion
	err := s.queryRow(ctx, "SelectChampion",
		`SELECT `+columns("", championColumns)+` FROM champions WHERE champion_id = $1`,
		[]any{championID}, &c.ChampionID, &c.Name, &jsonColumn{&c.Classes})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SelectStat returns the statistics with the given id
func (s *Store) SelectStat(ctx context.Context, statID string) (*model.Stat, error) {
	var stat model.Stat
	err := s.queryRow(ctx, "SelectStat",
		`SELECT `+columns("", statColumns)+` FROM stats WHERE stat_id = $1`,
		[]any{statID}, statDest(&stat)...)
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// SelectStatIDsForAccount returns the stat id of every participation of an account
func (s *Store) SelectStatIDsForAccount(ctx context.Context, accountID string) ([]string, error) {
	var ids []string
	err := s.query(ctx, "SelectStatIDsForAccount",
		`SELECT stat_id FROM participants WHERE account_id = $1 ORDER BY game_id`,
		[]any{accountID}, func(rows *sql.Rows) error {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
			return nil
		})
	return ids, err
}

// SelectTimeline returns the delta series with the given id
func (s *Store) SelectTimeline(ctx context.Context, timelineID string) (*model.Timeline, error) {
	var t model.Timeline
	err := s.queryRow(ctx, "SelectTimeline",
		`SELECT `+columns("", timelineColumns)+` FROM timelines WHERE timeline_id = $1`,
		[]any{timelineID}, timelineDest(&t)...)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) selectParticipant(ctx context.Context, op, where string, args ...any) (*model.Participant, error) {
	var p model.Participant
	err := s.queryRow(ctx, op,
		`SELECT `+columns("", participantColumns)+` FROM participants WHERE `+where+` LIMIT 1`,
		args, participantDest(&p)...)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SelectParticipant returns the participant with the given id
func (s *Store) SelectParticipant(ctx context.Context, participantID string) (*model.Participant, error) {
	return s.selectParticipant(ctx, "SelectParticipant", `participant_id = $1`, participantID)
}

// SelectParticipantByStat returns the participant owning a stat row
func (s *Store) SelectParticipantByStat(ctx context.Context, statID string) (*model.Participant, error) {
	return s.selectParticipant(ctx, "SelectParticipantByStat", `stat_id = $1`, statID)
}

// SelectParticipantInGame returns an account's participation in a game
func (s *Store) SelectParticipantInGame(ctx context.Context, accountID string, gameID int64) (*model.Participant, error) {
	return s.selectParticipant(ctx, "SelectParticipantInGame", `game_id = $1 AND account_id = $2`, gameID, accountID)
}

// SelectOpponent returns the other participant of a game playing the same lane and role
func (s *Store) SelectOpponent(ctx context.Context, participantID string, gameID int64, lane, role string) (*model.Participant, error) {
	return s.selectParticipant(ctx, "SelectOpponent",
		`game_id = $1 AND lane = $2 AND role = $3 AND participant_id <> $4`,
		gameID, lane, role, participantID)
}

// SelectParticipantIDInGame returns the participant id of an account in a game
func (s *Store) SelectParticipantIDInGame(ctx context.Context, gameID int64, accountID string) (string, error) {
	var id string
	err := s.queryRow(ctx, "SelectParticipantIDInGame",
		`SELECT participant_id FROM participants WHERE game_id = $1 AND account_id = $2 LIMIT 1`,
		[]any{gameID, accountID}, &id)
	return id, err
}

// SelectTeamIDInGame returns the team an account played on in a game
func (s *Store) SelectTeamIDInGame(ctx context.Context, gameID int64, accountID string) (int, error) {
	var teamID int
	err := s.queryRow(ctx, "SelectTeamIDInGame",
		`SELECT team_id FROM participants WHERE game_id = $1 AND account_id = $2 LIMIT 1`,
		[]any{gameID, accountID}, &teamID)
	return teamID, err
}

// SelectParticipantTeam returns the team of a participant
func (s *Store) SelectParticipantTeam(ctx context.Context, participantID string) (int, error) {
	var teamID int
	err := s.queryRow(ctx, "SelectParticipantTeam",
		`SELECT team_id FROM participants WHERE participant_id = $1`,
		[]any{participantID}, &teamID)
	return teamID, err
}

// SelectParticipantFrames returns a participant's snapshots in time order
func (s *Store) SelectParticipantFrames(ctx context.Context, participantID string) ([]model.ParticipantFrame, error) {
	var frames []model.ParticipantFrame
	err := s.query(ctx, "SelectParticipantFrames",
		`SELECT `+columns("", frameColumns)+` FROM participant_frame WHERE participant_id = $1 ORDER BY timestamp`,
		[]any{participantID}, func(rows *sql.Rows) error {
			var f model.ParticipantFrame
			if err := rows.Scan(frameDest(&f)...); err != nil {
				return err
			}
			frames = append(frames, f)
			return nil
		})
	return frames, err
}

// SelectParticipantGold returns a participant's total gold per snapshot in time order
func (s *Store) SelectParticipantGold(ctx context.Context, participantID string) ([]int, error) {
	var gold []int
	err := s.query(ctx, "SelectParticipantGold",
		`SELECT total_gold FROM participant_frame WHERE participant_id = $1 ORDER BY timestamp`,
		[]any{participantID}, func(rows *sql.Rows) error {
			var g int
			if err := rows.Scan(&g); err != nil {
				return err
			}
			gold = append(gold, g)
			return nil
		})
	return gold, err
}

// SelectPositions returns a participant's map positions in time order.
// Snapshots without a position are skipped.
func (s *Store) SelectPositions(ctx context.Context, participantID string) ([]model.Position, error) {
	var positions []model.Position
	err := s.query(ctx, "SelectPositions",
		`SELECT position FROM participant_frame WHERE participant_id = $1 ORDER BY timestamp`,
		[]any{participantID}, func(rows *sql.Rows) error {
			var p *model.Position
			if err := rows.Scan(positionColumn{&p}); err != nil {
				return err
			}
			if p != nil {
				positions = append(positions, *p)
			}
			return nil
		})
	return positions, err
}

// GameFrame is a participant snapshot together with the participant it belongs to
type GameFrame struct {
	Frame       model.ParticipantFrame
	Participant model.Participant
}

// SelectGameFrames returns every snapshot of a game in time order
func (s *Store) SelectGameFrames(ctx context.Context, gameID int64) ([]GameFrame, error) {
	var frames []GameFrame
	err := s.query(ctx, "SelectGameFrames",
		`SELECT `+columns("f", frameColumns)+`, `+columns("p", participantColumns)+`
		FROM participant_frame f
		JOIN participants p ON p.participant_id = f.participant_id
		WHERE p.game_id = $1
		ORDER BY f.timestamp, p.team_id, f.participant_id`,
		[]any{gameID}, func(rows *sql.Rows) error {
			var gf GameFrame
			dest := append(frameDest(&gf.Frame), participantDest(&gf.Participant)...)
			if err := rows.Scan(dest...); err != nil {
				return err
			}
			frames = append(frames, gf)
			return nil
		})
	return frames, err
}

func (s *Store) selectEvents(ctx context.Context, op, where string, args ...any) ([]model.Event, error) {
	var events []model.Event
	err := s.query(ctx, op,
		`SELECT `+columns("e", eventColumns)+`
		FROM events e
		JOIN participants p ON p.participant_id = e.participant_id
		WHERE `+where+`
		ORDER BY e.timestamp`,
		args, func(rows *sql.Rows) error {
			var e model.Event
			if err := rows.Scan(eventDest(&e)...); err != nil {
				return err
			}
			events = append(events, e)
			return nil
		})
	return events, err
}

// SelectGameEvents returns every event of a game in time order. Events with no
// participant reference cannot be tied to a game and are not returned.
func (s *Store) SelectGameEvents(ctx context.Context, gameID int64) ([]model.Event, error) {
	return s.selectEvents(ctx, "SelectGameEvents", `p.game_id = $1`, gameID)
}

// SelectObjectives returns the building and elite monster kills of a game
func (s *Store) SelectObjectives(ctx context.Context, gameID int64) ([]model.Event, error) {
	return s.selectEvents(ctx, "SelectObjectives",
		`p.game_id = $1 AND (e.type = $2 OR e.type = $3)`,
		gameID, model.EventBuildingKill, model.EventEliteMonsterKill)
}
