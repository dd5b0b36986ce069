package db

import (
	"context"
	"database/sql"

	"riftstats/internal/model"
)

// GameSide is one account's participation in a game
type GameSide struct {
	AccountID     string `json:"accountId"`
	ParticipantID string `json:"participantId"`
	StatID        string `json:"statId"`
	TeamID        int    `json:"teamId"`
	Role          string `json:"role"`
	Lane          string `json:"lane"`
}

// CommonGame is a game two accounts played on the same team
type CommonGame struct {
	GameID int64    `json:"gameId"`
	First  GameSide `json:"first"`
	Second GameSide `json:"second"`
	Win    string   `json:"win"`
}

// SelectCommonGames returns the games where both accounts played on the same team
func (s *Store) SelectCommonGames(ctx context.Context, first, second string) ([]CommonGame, error) {
	var games []CommonGame
	err := s.query(ctx, "SelectCommonGames", `
		SELECT DISTINCT s1.game_id,
			s1.account_id, p1.participant_id, p1.stat_id, p1.team_id, p1.role, p1.lane,
			s2.account_id, p2.participant_id, p2.stat_id, p2.team_id, p2.role, p2.lane,
			t.win
		FROM summoner_matches s1
		JOIN summoner_matches s2 ON s1.game_id = s2.game_id
		JOIN participants p1 ON p1.account_id = s1.account_id AND p1.game_id = s1.game_id
		JOIN participants p2 ON p2.account_id = s2.account_id AND p2.game_id = s2.game_id
		JOIN teams t ON t.team_id = p1.team_id AND t.game_id = s1.game_id
		WHERE s1.account_id = $1 AND s2.account_id = $2 AND p1.team_id = p2.team_id
		ORDER BY s1.game_id
	`, []any{first, second}, func(rows *sql.Rows) error {
		var g CommonGame
		if err := rows.Scan(
			&g.GameID,
			&g.First.AccountID, &g.First.ParticipantID, &g.First.StatID, &g.First.TeamID, &g.First.Role, &g.First.Lane,
			&g.Second.AccountID, &g.Second.ParticipantID, &g.Second.StatID, &g.Second.TeamID, &g.Second.Role, &g.Second.Lane,
			&g.Win,
		); err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	return games, err
}

// SideStats is one account's line in a common game
type SideStats struct {
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	TotalMinionsKilled int    `json:"totalMinionsKilled"`
	Role               string `json:"role"`
	Lane               string `json:"lane"`
	ChampionID         int    `json:"championId"`
}

// CommonGameStats is a common game with both accounts' lines
type CommonGameStats struct {
	GameID int64     `json:"gameId"`
	First  SideStats `json:"first"`
	Second SideStats `json:"second"`
	Win    string    `json:"win"`
}

// SelectCommonGameStats returns the lines of both accounts in every game they played together
func (s *Store) SelectCommonGameStats(ctx context.Context, first, second string) ([]CommonGameStats, error) {
	var games []CommonGameStats
	err := s.query(ctx, "SelectCommonGameStats", `
		SELECT DISTINCT s1.game_id,
			st1.kills, st1.deaths, st1.assists, st1.total_minions_killed, p1.role, p1.lane, p1.champion_id,
			st2.kills, st2.deaths, st2.assists, st2.total_minions_killed, p2.role, p2.lane, p2.champion_id,
			t.win
		FROM summoner_matches s1
		JOIN summoner_matches s2 ON s1.game_id = s2.game_id
		JOIN participants p1 ON p1.account_id = s1.account_id AND p1.game_id = s1.game_id
		JOIN participants p2 ON p2.account_id = s2.account_id AND p2.game_id = s2.game_id
		JOIN teams t ON t.team_id = p1.team_id AND t.game_id = s1.game_id
		JOIN stats st1 ON st1.stat_id = p1.stat_id
		JOIN stats st2 ON st2.stat_id = p2.stat_id
		WHERE s1.account_id = $1 AND s2.account_id = $2 AND p1.team_id = p2.team_id
		ORDER BY s1.game_id
	`, []any{first, second}, func(rows *sql.Rows) error {
		var g CommonGameStats
		if err := rows.Scan(
			&g.GameID,
			&g.First.Kills, &g.First.Deaths, &g.First.Assists, &g.First.TotalMinionsKilled,
			&g.First.Role, &g.First.Lane, &g.First.ChampionID,
			&g.Second.Kills, &g.Second.Deaths, &g.Second.Assists, &g.Second.TotalMinionsKilled,
			&g.Second.Role, &g.Second.Lane, &g.Second.ChampionID,
			&g.Win,
		); err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	return games, err
}

// PlayedGame is an account's participation in a stored game
type PlayedGame struct {
	GameID int64    `json:"gameId"`
	Side   GameSide `json:"side"`
	Win    string   `json:"win"`
}

// SelectAllGames returns every linked participation across all accounts
func (s *Store) SelectAllGames(ctx context.Context) ([]PlayedGame, error) {
	var games []PlayedGame
	err := s.query(ctx, "SelectAllGames", `
		SELECT DISTINCT s1.game_id,
			s1.account_id, p1.participant_id, p1.stat_id, p1.team_id, p1.role, p1.lane,
			t.win
		FROM summoner_matches s1
		JOIN participants p1 ON p1.account_id = s1.account_id AND p1.game_id = s1.game_id
		JOIN teams t ON t.team_id = p1.team_id AND t.game_id = s1.game_id
		ORDER BY s1.game_id, s1.account_id
	`, nil, func(rows *sql.Rows) error {
		var g PlayedGame
		if err := rows.Scan(
			&g.GameID,
			&g.Side.AccountID, &g.Side.ParticipantID, &g.Side.StatID, &g.Side.TeamID, &g.Side.Role, &g.Side.Lane,
			&g.Win,
		); err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	return games, err
}

// SummonerGame is the outcome of one game for an account
type SummonerGame struct {
	AccountID string `json:"accountId"`
	GameID    int64  `json:"gameId"`
	Win       string `json:"win"`
}

// SelectSummonerGames returns the outcome of every stored game of an account
func (s *Store) SelectSummonerGames(ctx context.Context, accountID string) ([]SummonerGame, error) {
	var games []SummonerGame
	err := s.query(ctx, "SelectSummonerGames", `
		SELECT s.account_id, p.game_id, t.win
		FROM participants p
		JOIN summoners s ON s.account_id = p.account_id
		JOIN teams t ON t.team_id = p.team_id AND t.game_id = p.game_id
		WHERE s.account_id = $1
		ORDER BY p.game_id
	`, []any{accountID}, func(rows *sql.Rows) error {
		var g SummonerGame
		if err := rows.Scan(&g.AccountID, &g.GameID, &g.Win); err != nil {
			return err
		}
		games = append(games, g)
		return nil
	})
	return games, err
}

// ParticipantStat is a participant joined with its statistics
type ParticipantStat struct {
	Participant model.Participant `json:"participant"`
	Stat        model.Stat        `json:"stat"`
}

// SelectAllParticipants returns every participant with its statistics
func (s *Store) SelectAllParticipants(ctx context.Context) ([]ParticipantStat, error) {
	var out []ParticipantStat
	err := s.query(ctx, "SelectAllParticipants",
		`SELECT `+columns("p", participantColumns)+`, `+columns("s", statColumns)+`
		FROM stats s
		JOIN participants p ON s.stat_id = p.stat_id
		ORDER BY p.game_id, p.team_id, p.participant_id`,
		nil, func(rows *sql.Rows) error {
			var ps ParticipantStat
			dest := append(participantDest(&ps.Participant), statDest(&ps.Stat)...)
			if err := rows.Scan(dest...); err != nil {
				return err
			}
			out = append(out, ps)
			return nil
		})
	return out, err
}

// Kill is a champion kill with the team of the participant it was recorded for
type Kill struct {
	ParticipantID           string          `json:"participantId"`
	Timestamp               int64           `json:"timestamp"`
	Position                *model.Position `json:"position,omitempty"`
	KillerID                *string         `json:"killerId,omitempty"`
	VictimID                *string         `json:"victimId,omitempty"`
	TeamID                  int             `json:"teamId"`
	AssistingParticipantIDs []string        `json:"assistingParticipantIds"`
}

func (s *Store) selectKills(ctx context.Context, op, where string, args ...any) ([]Kill, error) {
	var kills []Kill
	err := s.query(ctx, op, `
		SELECT p.participant_id, e.timestamp, e.position, e.killer_id, e.victim_id, p.team_id,
			e.assisting_participant_ids
		FROM events e
		JOIN participants p ON e.participant_id = p.participant_id
		WHERE e.type = '`+model.EventChampionKill+`' AND `+where+`
		ORDER BY e.timestamp
	`, args, func(rows *sql.Rows) error {
		var k Kill
		if err := rows.Scan(
			&k.ParticipantID, &k.Timestamp, positionColumn{&k.Position}, &k.KillerID, &k.VictimID, &k.TeamID,
			&jsonColumn{&k.AssistingParticipantIDs},
		); err != nil {
			return err
		}
		kills = append(kills, k)
		return nil
	})
	return kills, err
}

// SelectKillTimeline returns the champion kills recorded for one team, in time order
func (s *Store) SelectKillTimeline(ctx context.Context, gameID int64, teamID int) ([]Kill, error) {
	return s.selectKills(ctx, "SelectKillTimeline", `p.game_id = $1 AND p.team_id = $2`, gameID, teamID)
}

// SelectAllKillTimeline returns every champion kill of a game, in time order
func (s *Store) SelectAllKillTimeline(ctx context.Context, gameID int64) ([]Kill, error) {
	return s.selectKills(ctx, "SelectAllKillTimeline", `p.game_id = $1`, gameID)
}

// KillTotals sums kills, deaths and assists over a team
type KillTotals struct {
	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`
}

// SelectOverallKillInformation returns a team's summed kills, deaths and assists.
// A team with no stored participants yields zeros.
func (s *Store) SelectOverallKillInformation(ctx context.Context, gameID int64, teamID int) (KillTotals, error) {
	var totals KillTotals
	err := s.queryRow(ctx, "SelectOverallKillInformation", `
		SELECT CAST(COALESCE(SUM(s.kills), 0) AS BIGINT),
			CAST(COALESCE(SUM(s.deaths), 0) AS BIGINT),
			CAST(COALESCE(SUM(s.assists), 0) AS BIGINT)
		FROM stats s
		JOIN participants p ON p.stat_id = s.stat_id
		WHERE p.game_id = $1 AND p.team_id = $2
	`, []any{gameID, teamID}, &totals.Kills, &totals.Deaths, &totals.Assists)
	return totals, err
}

// SelectTeamGold returns a team's summed gold earned
func (s *Store) SelectTeamGold(ctx context.Context, gameID int64, teamID int) (int, error) {
	var gold int
	err := s.queryRow(ctx, "SelectTeamGold", `
		SELECT CAST(COALESCE(SUM(s.gold_earned), 0) AS BIGINT)
		FROM stats s
		JOIN participants p ON p.stat_id = s.stat_id
		WHERE p.game_id = $1 AND p.team_id = $2
	`, []any{gameID, teamID}, &gold)
	return gold, err
}

// SelectTeamCS returns a team's creep score: lane minions plus both jungles
func (s *Store) SelectTeamCS(ctx context.Context, gameID int64, teamID int) (int, error) {
	var cs int
	err := s.queryRow(ctx, "SelectTeamCS", `
		SELECT CAST(COALESCE(SUM(s.total_minions_killed + s.neutral_minions_killed_team_jungle
			+ s.neutral_minions_killed_enemy_jungle), 0) AS BIGINT)
		FROM stats s
		JOIN participants p ON p.stat_id = s.stat_id
		WHERE p.game_id = $1 AND p.team_id = $2
	`, []any{gameID, teamID}, &cs)
	return cs, err
}
