package db

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"riftstats/internal/model"
)

// columns renders a column list, optionally qualified by a table alias
func columns(alias string, names []string) string {
	if alias == "" {
		return strings.Join(names, ", ")
	}
	qualified := make([]string, len(names))
	for i, name := range names {
		qualified[i] = alias + "." + name
	}
	return strings.Join(qualified, ", ")
}

// placeholders renders $1, ..., $n
func placeholders(n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(p, ", ")
}

func insertStatement(table string, names []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, columns("", names), placeholders(len(names)))
}

// jsonColumn scans JSON text into v
type jsonColumn struct {
	v any
}

func (j *jsonColumn) Scan(src any) error {
	switch s := src.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(s), j.v)
	case []byte:
		return json.Unmarshal(s, j.v)
	}
	return fmt.Errorf("cannot scan %T into JSON column", src)
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode JSON column: %w", err)
	}
	return string(data), nil
}

// positionColumn scans "x,y" text; NULL leaves the position nil
type positionColumn struct {
	p **model.Position
}

func (c positionColumn) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*c.p = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into position", src)
	}
	pos, err := model.ParsePosition(s)
	if err != nil {
		return err
	}
	*c.p = &pos
	return nil
}

func positionArg(p *model.Position) any {
	if p == nil {
		return nil
	}
	return p.String()
}

// millisColumn scans epoch milliseconds into a UTC time
type millisColumn struct {
	t *time.Time
}

func (c millisColumn) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*c.t = time.UnixMilli(v).UTC()
	case int32:
		*c.t = time.UnixMilli(int64(v)).UTC()
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
	return nil
}

// nullable dereferences optional values so every driver sees a plain value or NULL
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Summoners

var summonerColumns = []string{
	"account_id", "summoner_id", "puuid", "name", "summoner_level",
	"profile_icon_id", "revision_date", "timestamp",
}

func summonerArgs(s *model.Summoner) []any {
	return []any{
		s.AccountID, s.SummonerID, s.PUUID, s.Name, s.Level,
		s.ProfileIconID, s.RevisionDate, s.Timestamp.UnixMilli(),
	}
}

func summonerDest(s *model.Summoner) []any {
	return []any{
		&s.AccountID, &s.SummonerID, &s.PUUID, &s.Name, &s.Level,
		&s.ProfileIconID, &s.RevisionDate, millisColumn{&s.Timestamp},
	}
}

// Matches

var matchColumns = []string{
	"game_id", "platform_id", "game_creation", "game_duration", "queue_id",
	"map_id", "season_id", "game_version", "game_mode", "game_type",
}

func matchArgs(m *model.Match) []any {
	return []any{
		m.GameID, m.PlatformID, m.GameCreation, m.GameDuration, m.QueueID,
		m.MapID, m.SeasonID, m.GameVersion, m.GameMode, m.GameType,
	}
}

func matchDest(m *model.Match) []any {
	return []any{
		&m.GameID, &m.PlatformID, &m.GameCreation, &m.GameDuration, &m.QueueID,
		&m.MapID, &m.SeasonID, &m.GameVersion, &m.GameMode, &m.GameType,
	}
}

// Teams

var teamColumns = []string{
	"team_id", "game_id", "win",
	"first_blood", "first_tower", "first_inhibitor", "first_baron", "first_dragon", "first_rift_herald",
	"tower_kills", "inhibitor_kills", "baron_kills", "dragon_kills", "rift_herald_kills",
	"bans",
}

func teamArgs(t *model.Team) ([]any, error) {
	bans, err := toJSON(t.Bans)
	if err != nil {
		return nil, err
	}
	return []any{
		t.TeamID, t.GameID, t.Win,
		boolToInt(t.FirstBlood), boolToInt(t.FirstTower), boolToInt(t.FirstInhibitor),
		boolToInt(t.FirstBaron), boolToInt(t.FirstDragon), boolToInt(t.FirstRiftHerald),
		t.TowerKills, t.InhibitorKills, t.BaronKills, t.DragonKills, t.RiftHeraldKills,
		bans,
	}, nil
}

func teamDest(t *model.Team) []any {
	return []any{
		&t.TeamID, &t.GameID, &t.Win,
		&t.FirstBlood, &t.FirstTower, &t.FirstInhibitor, &t.FirstBaron, &t.FirstDragon, &t.FirstRiftHerald,
		&t.TowerKills, &t.InhibitorKills, &t.BaronKills, &t.DragonKills, &t.RiftHeraldKills,
		&jsonColumn{&t.Bans},
	}
}

// Champions

var championColumns = []string{"champion_id", "name", "classes"}

// Timelines

var timelineColumns = []string{
	"timeline_id",
	"creeps_per_min_deltas", "xp_per_min_deltas", "gold_per_min_deltas",
	"cs_diff_per_min_deltas", "xp_diff_per_min_deltas",
	"damage_taken_per_min_deltas", "damage_taken_diff_per_min_deltas",
}

func timelineArgs(t *model.Timeline) ([]any, error) {
	args := []any{t.TimelineID}
	for _, series := range []model.Deltas{
		t.CreepsPerMinDeltas, t.XPPerMinDeltas, t.GoldPerMinDeltas,
		t.CSDiffPerMinDeltas, t.XPDiffPerMinDeltas,
		t.DamageTakenPerMinDeltas, t.DamageTakenDiffPerMinDeltas,
	} {
		encoded, err := toJSON(series)
		if err != nil {
			return nil, err
		}
		args = append(args, encoded)
	}
	return args, nil
}

func timelineDest(t *model.Timeline) []any {
	return []any{
		&t.TimelineID,
		&jsonColumn{&t.CreepsPerMinDeltas}, &jsonColumn{&t.XPPerMinDeltas}, &jsonColumn{&t.GoldPerMinDeltas},
		&jsonColumn{&t.CSDiffPerMinDeltas}, &jsonColumn{&t.XPDiffPerMinDeltas},
		&jsonColumn{&t.DamageTakenPerMinDeltas}, &jsonColumn{&t.DamageTakenDiffPerMinDeltas},
	}
}

// Participants

var participantColumns = []string{
	"participant_id", "game_id", "account_id", "champion_id", "stat_id",
	"team_id", "timeline_id", "spell1_id", "spell2_id", "role", "lane",
}

func participantArgs(p *model.Participant) []any {
	return []any{
		p.ParticipantID, p.GameID, p.AccountID, p.ChampionID, p.StatID,
		p.TeamID, p.TimelineID, p.Spell1ID, p.Spell2ID, p.Role, p.Lane,
	}
}

func participantDest(p *model.Participant) []any {
	return []any{
		&p.ParticipantID, &p.GameID, &p.AccountID, &p.ChampionID, &p.StatID,
		&p.TeamID, &p.TimelineID, &p.Spell1ID, &p.Spell2ID, &p.Role, &p.Lane,
	}
}

// Participant frames

var frameColumns = []string{
	"participant_id", "timestamp", "minions_killed", "team_score", "total_gold",
	"level", "xp", "current_gold", "position", "jungle_minions_killed",
}

func frameArgs(f *model.ParticipantFrame) []any {
	return []any{
		f.ParticipantID, f.Timestamp, f.MinionsKilled, f.TeamScore, f.TotalGold,
		f.Level, f.XP, f.CurrentGold, positionArg(f.Position), f.JungleMinionsKilled,
	}
}

func frameDest(f *model.ParticipantFrame) []any {
	return []any{
		&f.ParticipantID, &f.Timestamp, &f.MinionsKilled, &f.TeamScore, &f.TotalGold,
		&f.Level, &f.XP, &f.CurrentGold, positionColumn{&f.Position}, &f.JungleMinionsKilled,
	}
}

// Events

var eventColumns = []string{
	"participant_id", "timestamp", "lane_type", "skill_slot", "ascended_type",
	"creator_id", "after_id", "event_type", "type", "level_up_type",
	"ward_type", "tower_type", "item_id", "before_id", "monster_type",
	"monster_sub_type", "team_id", "position", "killer_id", "assisting_participant_ids",
	"building_type", "victim_id",
}

func eventArgs(e *model.Event) ([]any, error) {
	assisting, err := toJSON(e.AssistingParticipantIDs)
	if err != nil {
		return nil, err
	}
	return []any{
		nullable(e.ParticipantID), e.Timestamp, nullable(e.LaneType), nullable(e.SkillSlot), nullable(e.AscendedType),
		nullable(e.CreatorID), nullable(e.AfterID), nullable(e.EventType), e.Type, nullable(e.LevelUpType),
		nullable(e.WardType), nullable(e.TowerType), nullable(e.ItemID), nullable(e.BeforeID), nullable(e.MonsterType),
		nullable(e.MonsterSubType), nullable(e.TeamID), positionArg(e.Position), nullable(e.KillerID), assisting,
		nullable(e.BuildingType), nullable(e.VictimID),
	}, nil
}

func eventDest(e *model.Event) []any {
	return []any{
		&e.ParticipantID, &e.Timestamp, &e.LaneType, &e.SkillSlot, &e.AscendedType,
		&e.CreatorID, &e.AfterID, &e.EventType, &e.Type, &e.LevelUpType,
		&e.WardType, &e.TowerType, &e.ItemID, &e.BeforeID, &e.MonsterType,
		&e.MonsterSubType, &e.TeamID, positionColumn{&e.Position}, &e.KillerID, &jsonColumn{&e.AssistingParticipantIDs},
		&e.BuildingType, &e.VictimID,
	}
}
