package mapper

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riftstats/internal/riot"
	"riftstats/internal/testing/fixtures"
)

func newTestMapper() *Mapper {
	fixed := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	return New(
		WithIDGenerator(&SequenceGenerator{Prefix: "id"}),
		WithClock(ClockFunc(func() time.Time { return fixed })),
	)
}

func TestMapSummoner(t *testing.T) {
	m := newTestMapper()
	s := m.MapSummoner(fixtures.Summoner("acc-1", "Player One"))

	assert.Equal(t, "acc-1", s.AccountID)
	assert.Equal(t, "sum-acc-1", s.SummonerID)
	assert.Equal(t, "puuid-acc-1", s.PUUID)
	assert.Equal(t, "Player One", s.Name)
	assert.Equal(t, 187, s.Level)
	assert.Equal(t, int64(1609459200000), s.RevisionDate)
	assert.Equal(t, time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC), s.Timestamp)
}

func TestMapSummonerMatches(t *testing.T) {
	m := newTestMapper()
	links := m.MapSummonerMatches(fixtures.Matchlist(11, 12, 13), "acc-1")

	require.Len(t, links, 3)
	for i, want := range []int64{11, 12, 13} {
		assert.Equal(t, "acc-1", links[i].AccountID)
		assert.Equal(t, want, links[i].GameID)
	}

	// empty list maps to no links
	assert.Empty(t, m.MapSummonerMatches(fixtures.Matchlist(), "acc-1"))
}

func TestMapTeamOrdersBansByPickTurn(t *testing.T) {
	m := newTestMapper()
	dto := riot.TeamStatsDTO{
		TeamID: 100,
		Win:    "Win",
		Bans: []riot.TeamBansDTO{
			{ChampionID: 20, PickTurn: 2},
			{ChampionID: 10, PickTurn: 1},
			{ChampionID: 30, PickTurn: 3},
		},
	}

	team := m.MapTeam(dto, 4001)

	assert.Equal(t, []int{10, 20, 30}, team.Bans)
	assert.Equal(t, int64(4001), team.GameID)
	assert.Equal(t, "Win", team.Win)
	// input untouched
	assert.Equal(t, 20, dto.Bans[0].ChampionID)
}

func TestMapTeamsCopiesFlags(t *testing.T) {
	m := newTestMapper()
	teams := m.MapTeams(fixtures.Match(4001))

	require.Len(t, teams, 2)
	blue, red := teams[0], teams[1]
	assert.Equal(t, 100, blue.TeamID)
	assert.True(t, blue.FirstBlood)
	assert.True(t, blue.FirstDragon)
	assert.False(t, blue.FirstRiftHerald)
	assert.Equal(t, 9, blue.TowerKills)
	assert.Equal(t, []int{555, 350, 157, 11, 84}, blue.Bans)

	assert.Equal(t, 200, red.TeamID)
	assert.Equal(t, "Fail", red.Win)
	assert.True(t, red.FirstRiftHerald)
	assert.Equal(t, []int{64, 238, 7, 266, 412}, red.Bans)
}

func TestMapTimelineKeepsSeriesApart(t *testing.T) {
	m := newTestMapper()
	dto := riot.ParticipantTimelineDTO{
		CreepsPerMinDeltas:          map[string]float64{"0-10": 1},
		XPPerMinDeltas:              map[string]float64{"0-10": 2},
		GoldPerMinDeltas:            map[string]float64{"0-10": 3},
		CSDiffPerMinDeltas:          map[string]float64{"0-10": 4},
		XPDiffPerMinDeltas:          map[string]float64{"0-10": 5},
		DamageTakenPerMinDeltas:     map[string]float64{"0-10": 6},
		DamageTakenDiffPerMinDeltas: map[string]float64{"0-10": 7},
	}

	tl := m.MapTimeline(dto)

	assert.Equal(t, "id-1", tl.TimelineID)
	assert.Equal(t, 1.0, tl.CreepsPerMinDeltas["0-10"])
	assert.Equal(t, 2.0, tl.XPPerMinDeltas["0-10"])
	assert.Equal(t, 3.0, tl.GoldPerMinDeltas["0-10"])
	assert.Equal(t, 4.0, tl.CSDiffPerMinDeltas["0-10"])
	assert.Equal(t, 5.0, tl.XPDiffPerMinDeltas["0-10"])
	assert.Equal(t, 6.0, tl.DamageTakenPerMinDeltas["0-10"])
	assert.Equal(t, 7.0, tl.DamageTakenDiffPerMinDeltas["0-10"])
}

func TestMapTimelineEmptySeries(t *testing.T) {
	m := newTestMapper()
	tl := m.MapTimeline(riot.ParticipantTimelineDTO{})

	assert.NotNil(t, tl.GoldPerMinDeltas)
	assert.Empty(t, tl.GoldPerMinDeltas)
}

func TestMapStat(t *testing.T) {
	m := newTestMapper()
	dto := fixtures.Stats(3)

	stat := m.MapStat(dto)

	assert.Equal(t, "id-1", stat.StatID)
	assert.Equal(t, []int{3006, 3031, 3094, 3036, 0, 1055}, stat.Items)
	assert.Len(t, stat.Items, 6)
	assert.True(t, stat.Win)
	assert.Equal(t, 3, stat.Kills)
	assert.Equal(t, 7, stat.Deaths)
	assert.Equal(t, 6, stat.Assists)
	assert.True(t, stat.FirstTowerKill)
	assert.False(t, stat.FirstBloodKill)
	assert.Equal(t, 8005, stat.Perk0)
	assert.Equal(t, 5002, stat.StatPerk2)
	assert.Equal(t, 203+8+4, stat.CreepScore())
}

func TestMapStatIssuesFreshIDs(t *testing.T) {
	m := New()
	dto := fixtures.Stats(1)

	a := m.MapStat(dto)
	b := m.MapStat(dto)

	assert.NotEqual(t, a.StatID, b.StatID)
	a.StatID, b.StatID = "", ""
	assert.Equal(t, a, b)
}

func TestMapParticipants(t *testing.T) {
	m := newTestMapper()
	match := fixtures.Match(4001)

	statIDs := map[int]string{}
	timelineIDs := map[int]string{}
	roles := map[int]string{}
	lanes := map[int]string{}
	for idx := 1; idx <= fixtures.Participants; idx++ {
		statIDs[idx] = "S" + fixtures.AccountID(idx)
		timelineIDs[idx] = "T" + fixtures.AccountID(idx)
		roles[idx] = "ROLE"
		lanes[idx] = "LANE"
	}

	participants, err := m.MapParticipants(match, statIDs, timelineIDs, roles, lanes)
	require.NoError(t, err)
	require.Len(t, participants, fixtures.Participants)

	seen := map[string]bool{}
	for i, p := range participants {
		idx := i + 1
		assert.False(t, seen[p.ParticipantID], "duplicate participant id %s", p.ParticipantID)
		seen[p.ParticipantID] = true

		assert.Equal(t, int64(4001), p.GameID)
		assert.Equal(t, fixtures.AccountID(idx), p.AccountID)
		assert.Equal(t, statIDs[idx], p.StatID)
		assert.Equal(t, timelineIDs[idx], p.TimelineID)
		assert.Equal(t, fixtures.TeamOf(idx), p.TeamID)
		assert.Equal(t, idx*10, p.ChampionID)
		assert.Equal(t, "ROLE", p.Role)
		assert.Equal(t, "LANE", p.Lane)
	}
}

func TestMapParticipantsMissingIdentity(t *testing.T) {
	m := newTestMapper()
	match := fixtures.Match(4001)
	match.ParticipantIdentities = match.ParticipantIdentities[:9]

	ids := map[int]string{}
	for idx := 1; idx <= fixtures.Participants; idx++ {
		ids[idx] = "x"
	}

	participants, err := m.MapParticipants(match, ids, ids, ids, ids)
	assert.Nil(t, participants)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingReference))

	var ref *MissingReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, "identity", ref.Kind)
	assert.Equal(t, 10, ref.Index)
}

func TestMapParticipantsMissingStat(t *testing.T) {
	m := newTestMapper()
	match := fixtures.Match(4001)

	ids := map[int]string{}
	for idx := 1; idx <= fixtures.Participants; idx++ {
		ids[idx] = "x"
	}
	stats := map[int]string{1: "s1"}

	_, err := m.MapParticipants(match, stats, ids, ids, ids)

	var ref *MissingReferenceError
	require.True(t, errors.As(err, &ref))
	assert.Equal(t, "stat", ref.Kind)
	assert.Equal(t, 2, ref.Index)
}
