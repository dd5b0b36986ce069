// Package mapper converts nested API payloads into the flat records of the
// model package. It assigns synthetic ids to stat, timeline and participant
// rows and rewrites per-match participant indexes into those ids.
package mapper

import (
	"sort"

	"riftstats/internal/model"
	"riftstats/internal/riot"
)

// Mapper translates API DTOs into model records
type Mapper struct {
	ids   IDGenerator
	clock Clock
}

// Option configures a Mapper
type Option func(*Mapper)

// WithIDGenerator sets the synthetic id source
func WithIDGenerator(g IDGenerator) Option {
	return func(m *Mapper) {
		m.ids = g
	}
}

// WithClock sets the clock used to stamp summoner records
func WithClock(c Clock) Option {
	return func(m *Mapper) {
		m.clock = c
	}
}

// New creates a Mapper with UUID ids and the system clock unless overridden
func New(opts ...Option) *Mapper {
	m := &Mapper{
		ids:   UUIDGenerator{},
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MapSummoner copies a summoner profile and stamps it with the current time
func (m *Mapper) MapSummoner(dto *riot.SummonerDTO) model.Summoner {
	return model.Summoner{
		AccountID:     dto.AccountID,
		SummonerID:    dto.ID,
		PUUID:         dto.PUUID,
		Name:          dto.Name,
		Level:         dto.SummonerLevel,
		ProfileIconID: dto.ProfileIconID,
		RevisionDate:  dto.RevisionDate,
		Timestamp:     m.clock.Now(),
	}
}

// MapMatch copies the scalar match fields
func (m *Mapper) MapMatch(dto *riot.MatchDTO) model.Match {
	return model.Match{
		GameID:       dto.GameID,
		PlatformID:   dto.PlatformID,
		GameCreation: dto.GameCreation,
		GameDuration: dto.GameDuration,
		QueueID:      dto.QueueID,
		MapID:        dto.MapID,
		SeasonID:     dto.SeasonID,
		GameVersion:  dto.GameVersion,
		GameMode:     dto.GameMode,
		GameType:     dto.GameType,
	}
}

// MapSummonerMatches emits one link per match reference in the list
func (m *Mapper) MapSummonerMatches(dto *riot.MatchlistDTO, accountID string) []model.SummonerMatch {
	matches := make([]model.SummonerMatch, 0, len(dto.Matches))
	for _, ref := range dto.Matches {
		matches = append(matches, model.SummonerMatch{
			AccountID: accountID,
			GameID:    ref.GameID,
		})
	}
	return matches
}

// MapTeams emits one team per team entry of the match
func (m *Mapper) MapTeams(dto *riot.MatchDTO) []model.Team {
	teams := make([]model.Team, 0, len(dto.Teams))
	for _, team := range dto.Teams {
		teams = append(teams, m.MapTeam(team, dto.GameID))
	}
	return teams
}

// MapTeam maps a single team. Bans are ordered by pick turn.
func (m *Mapper) MapTeam(dto riot.TeamStatsDTO, gameID int64) model.Team {
	bans := make([]riot.TeamBansDTO, len(dto.Bans))
	copy(bans, dto.Bans)
	sort.SliceStable(bans, func(i, j int) bool {
		return bans[i].PickTurn < bans[j].PickTurn
	})

	banIDs := make([]int, 0, len(bans))
	for _, ban := range bans {
		banIDs = append(banIDs, ban.ChampionID)
	}

	return model.Team{
		TeamID:          dto.TeamID,
		GameID:          gameID,
		Win:             dto.Win,
		FirstBlood:      dto.FirstBlood,
		FirstTower:      dto.FirstTower,
		FirstInhibitor:  dto.FirstInhibitor,
		FirstBaron:      dto.FirstBaron,
		FirstDragon:     dto.FirstDragon,
		FirstRiftHerald: dto.FirstRiftHerald,
		TowerKills:      dto.TowerKills,
		InhibitorKills:  dto.InhibitorKills,
		BaronKills:      dto.BaronKills,
		DragonKills:     dto.DragonKills,
		RiftHeraldKills: dto.RiftHeraldKills,
		Bans:            banIDs,
	}
}

// MapTimeline assigns a new timeline id and copies the seven delta series
func (m *Mapper) MapTimeline(dto riot.ParticipantTimelineDTO) model.Timeline {
	return model.Timeline{
		TimelineID:                  m.ids.NewID(),
		CreepsPerMinDeltas:          copyDeltas(dto.CreepsPerMinDeltas),
		XPPerMinDeltas:              copyDeltas(dto.XPPerMinDeltas),
		GoldPerMinDeltas:            copyDeltas(dto.GoldPerMinDeltas),
		CSDiffPerMinDeltas:          copyDeltas(dto.CSDiffPerMinDeltas),
		XPDiffPerMinDeltas:          copyDeltas(dto.XPDiffPerMinDeltas),
		DamageTakenPerMinDeltas:     copyDeltas(dto.DamageTakenPerMinDeltas),
		DamageTakenDiffPerMinDeltas: copyDeltas(dto.DamageTakenDiffPerMinDeltas),
	}
}

// copyDeltas never returns nil so the stored JSON is always an object
func copyDeltas(src map[string]float64) model.Deltas {
	d := make(model.Deltas, len(src))
	for k, v := range src {
		d[k] = v
	}
	return d
}

// MapParticipants emits one participant per participant entry. The id maps are
// keyed by the per-match participant index (1..10). Any missing identity or map
// entry fails the whole call.
func (m *Mapper) MapParticipants(
	dto *riot.MatchDTO,
	statIDs map[int]string,
	timelineIDs map[int]string,
	roles map[int]string,
	lanes map[int]string,
) ([]model.Participant, error) {
	identities := make(map[int]riot.ParticipantIdentityDTO, len(dto.ParticipantIdentities))
	for _, identity := range dto.ParticipantIdentities {
		identities[identity.ParticipantID] = identity
	}

	participants := make([]model.Participant, 0, len(dto.Participants))
	for _, p := range dto.Participants {
		idx := p.ParticipantID

		identity, ok := identities[idx]
		if !ok {
			return nil, missing("identity", idx)
		}
		statID, ok := statIDs[idx]
		if !ok {
			return nil, missing("stat", idx)
		}
		timelineID, ok := timelineIDs[idx]
		if !ok {
			return nil, missing("timeline", idx)
		}
		role, ok := roles[idx]
		if !ok {
			return nil, missing("role", idx)
		}
		lane, ok := lanes[idx]
		if !ok {
			return nil, missing("lane", idx)
		}

		participants = append(participants, model.Participant{
			ParticipantID: m.ids.NewID(),
			GameID:        dto.GameID,
			AccountID:     identity.Player.AccountID,
			ChampionID:    p.ChampionID,
			StatID:        statID,
			TeamID:        p.TeamID,
			TimelineID:    timelineID,
			Spell1ID:      p.Spell1ID,
			Spell2ID:      p.Spell2ID,
			Role:          role,
			Lane:          lane,
		})
	}
	return participants, nil
}
