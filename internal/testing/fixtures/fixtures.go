// Package fixtures provides API payload factories for tests.
//
// Payloads follow the v4 match shape: ten participants, indexes 1..5 on team
// 100 and 6..10 on team 200, account ids "acc-<index>".
//
// Usage:
//
//	match := fixtures.Match(4001)
//	timeline := fixtures.Timeline(3)
//	summoner := fixtures.Summoner("acc-1", "Player One")
package fixtures

import (
	"fmt"
	"strconv"

	"riftstats/internal/riot"
)

// Participants is the number of participants in a fixture match
const Participants = 10

// AccountID returns the account id fixtures use for a participant index
func AccountID(index int) string {
	return fmt.Sprintf("acc-%d", index)
}

// TeamOf returns the team id of a participant index
func TeamOf(index int) int {
	if index <= Participants/2 {
		return 100
	}
	return 200
}

var (
	lanes = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "BOTTOM"}
	roles = []string{"SOLO", "NONE", "SOLO", "DUO_CARRY", "DUO_SUPPORT"}
)

// Summoner returns a summoner profile
func Summoner(accountID, name string) *riot.SummonerDTO {
	return &riot.SummonerDTO{
		AccountID:     accountID,
		ProfileIconID: 4568,
		RevisionDate:  1609459200000,
		Name:          name,
		ID:            "sum-" + accountID,
		PUUID:         "puuid-" + accountID,
		SummonerLevel: 187,
	}
}

// Matchlist returns a match list referencing the given games
func Matchlist(gameIDs ...int64) *riot.MatchlistDTO {
	ml := &riot.MatchlistDTO{
		StartIndex: 0,
		EndIndex:   len(gameIDs),
		TotalGames: len(gameIDs),
	}
	for i, id := range gameIDs {
		ml.Matches = append(ml.Matches, riot.MatchReferenceDTO{
			GameID:     id,
			PlatformID: "EUW1",
			Queue:      420,
			Season:     13,
			Lane:       lanes[i%len(lanes)],
			Role:       roles[i%len(roles)],
			Timestamp:  1609459200000 + int64(i)*3600000,
		})
	}
	return ml
}

// Match returns a ranked match with ten participants. Team 100 wins.
func Match(gameID int64) *riot.MatchDTO {
	m := &riot.MatchDTO{
		GameID:       gameID,
		PlatformID:   "EUW1",
		GameCreation: 1609459200000,
		GameDuration: 1834,
		QueueID:      420,
		MapID:        11,
		SeasonID:     13,
		GameVersion:  "10.25.348.1797",
		GameMode:     "CLASSIC",
		GameType:     "MATCHED_GAME",
		Teams: []riot.TeamStatsDTO{
			{
				TeamID: 100, Win: "Win",
				FirstBlood: true, FirstTower: true, FirstDragon: true,
				TowerKills: 9, InhibitorKills: 2, BaronKills: 1, DragonKills: 3, RiftHeraldKills: 1,
				// deliberately out of pick order
				Bans: []riot.TeamBansDTO{
					{ChampionID: 157, PickTurn: 3},
					{ChampionID: 555, PickTurn: 1},
					{ChampionID: 84, PickTurn: 5},
					{ChampionID: 350, PickTurn: 2},
					{ChampionID: 11, PickTurn: 4},
				},
			},
			{
				TeamID: 200, Win: "Fail",
				FirstInhibitor: false, FirstBaron: false, FirstRiftHerald: true,
				TowerKills: 2, DragonKills: 1,
				Bans: []riot.TeamBansDTO{
					{ChampionID: 64, PickTurn: 6},
					{ChampionID: 238, PickTurn: 7},
					{ChampionID: 7, PickTurn: 8},
					{ChampionID: 266, PickTurn: 9},
					{ChampionID: 412, PickTurn: 10},
				},
			},
		},
	}

	for idx := 1; idx <= Participants; idx++ {
		m.ParticipantIdentities = append(m.ParticipantIdentities, riot.ParticipantIdentityDTO{
			ParticipantID: idx,
			Player: riot.PlayerDTO{
				AccountID:    AccountID(idx),
				SummonerName: fmt.Sprintf("Player %d", idx),
				SummonerID:   "sum-" + AccountID(idx),
				PlatformID:   "EUW1",
			},
		})
		m.Participants = append(m.Participants, Participant(idx))
	}
	return m
}

// Participant returns the participant entry for an index
func Participant(idx int) riot.ParticipantDTO {
	slot := (idx - 1) % len(lanes)
	return riot.ParticipantDTO{
		ParticipantID: idx,
		ChampionID:    idx * 10,
		TeamID:        TeamOf(idx),
		Spell1ID:      4,
		Spell2ID:      14,
		Stats:         Stats(idx),
		Timeline: riot.ParticipantTimelineDTO{
			ParticipantID:               idx,
			Role:                        roles[slot],
			Lane:                        lanes[slot],
			CreepsPerMinDeltas:          map[string]float64{"0-10": 6.5, "10-20": 7.25},
			XPPerMinDeltas:              map[string]float64{"0-10": 420.1, "10-20": 510.3},
			GoldPerMinDeltas:            map[string]float64{"0-10": 250, "10-20": 410.5},
			CSDiffPerMinDeltas:          map[string]float64{"0-10": 0.8, "10-20": -0.3},
			XPDiffPerMinDeltas:          map[string]float64{"0-10": 12.5, "10-20": -40},
			DamageTakenPerMinDeltas:     map[string]float64{"0-10": 300.2, "10-20": 620},
			DamageTakenDiffPerMinDeltas: map[string]float64{"0-10": -22.5, "10-20": 14},
		},
	}
}

// Stats returns distinct, deterministic statistics for a participant index
func Stats(idx int) riot.ParticipantStatsDTO {
	win := TeamOf(idx) == 100
	return riot.ParticipantStatsDTO{
		ParticipantID: idx,
		Win:           win,
		Item0:         3006, Item1: 3031, Item2: 3094, Item3: 3036, Item4: 0, Item5: 1055, Item6: 3363,

		Kills: idx, Deaths: 10 - idx, Assists: idx * 2,
		LargestKillingSpree: 3, LargestMultiKill: 2, KillingSprees: 1, LongestTimeSpentLiving: 612,
		DoubleKills: 1, TripleKills: 0, QuadraKills: 0, PentaKills: 0,

		TotalDamageDealt: 150000 + idx, MagicDamageDealt: 20000, PhysicalDamageDealt: 125000, TrueDamageDealt: 5000 + idx,
		LargestCriticalStrike: 980, TotalDamageDealtToChampions: 24000 + idx*100,
		MagicDamageDealtToChampions: 3000, PhysicalDamageDealtToChampions: 20000, TrueDamageDealtToChampions: 1000,
		TotalHeal: 4200, TotalUnitsHealed: 3, DamageSelfMitigated: 9000,
		DamageDealtToObjectives: 11000, DamageDealtToTurrets: 7000, VisionScore: 30 + idx, TimeCCingOthers: 12,
		TotalDamageTaken: 19000, MagicalDamageTaken: 6000, PhysicalDamageTaken: 12000, TrueDamageTaken: 1000,

		GoldEarned: 12000 + idx*100, GoldSpent: 11500, TurretKills: 2, InhibitorKills: 1,
		TotalMinionsKilled: 200 + idx, NeutralMinionsKilled: 12,
		NeutralMinionsKilledTeamJungle: 8, NeutralMinionsKilledEnemyJungle: 4,
		TotalTimeCrowdControlDealt: 240, ChampLevel: 16,
		VisionWardsBoughtInGame: 2, SightWardsBoughtInGame: 0, WardsPlaced: 11, WardsKilled: 3,

		FirstBloodKill: idx == 1, FirstBloodAssist: idx == 2,
		FirstTowerKill: idx == 3, FirstTowerAssist: idx == 4,
		FirstInhibitorKill: false, FirstInhibitorAssist: idx == 5,

		TotalScoreRank: idx,

		Perk0: 8005, Perk0Var1: 1510, Perk0Var2: 302, Perk0Var3: 0,
		Perk1: 9111, Perk1Var1: 900, Perk1Var2: 200, Perk1Var3: 0,
		Perk2: 9104, Perk2Var1: 14, Perk2Var2: 10, Perk2Var3: 0,
		Perk3: 8014, Perk3Var1: 400, Perk3Var2: 0, Perk3Var3: 0,
		Perk4: 8139, Perk4Var1: 1100, Perk4Var2: 0, Perk4Var3: 0,
		Perk5: 8135, Perk5Var1: 2000, Perk5Var2: 5, Perk5Var3: 0,
		PerkPrimaryStyle: 8000, PerkSubStyle: 8100,
		StatPerk0: 5005, StatPerk1: 5008, StatPerk2: 5002,
	}
}

func intp(v int) *int { return &v }

// Timeline returns a frame timeline with frames one minute apart. Every frame
// has a snapshot per participant; frame 1 and later carry one event of each
// kind the queries care about.
func Timeline(frames int) *riot.MatchTimelineDTO {
	tl := &riot.MatchTimelineDTO{FrameInterval: 60000}

	for f := 0; f < frames; f++ {
		ts := int64(f) * 60000
		frame := riot.MatchFrameDTO{
			Timestamp:         ts,
			ParticipantFrames: make(map[string]riot.MatchParticipantFrameDTO, Participants),
		}
		for idx := 1; idx <= Participants; idx++ {
			frame.ParticipantFrames[strconv.Itoa(idx)] = riot.MatchParticipantFrameDTO{
				ParticipantID:       idx,
				MinionsKilled:       f * 7,
				TotalGold:           500 + f*400 + idx,
				Level:               1 + f,
				XP:                  f * 450,
				CurrentGold:         500 + f*10,
				Position:            &riot.MatchPositionDTO{X: 500 + idx*100, Y: 14000 - idx*100},
				JungleMinionsKilled: f,
			}
		}

		if f > 0 {
			frame.Events = append(frame.Events,
				riot.MatchEventDTO{
					Type: "ITEM_PURCHASED", Timestamp: ts + 1000,
					ParticipantID: intp(1), ItemID: intp(1055),
				},
				riot.MatchEventDTO{
					Type: "SKILL_LEVEL_UP", Timestamp: ts + 2000,
					ParticipantID: intp(6), SkillSlot: intp(1), LevelUpType: "NORMAL",
				},
				riot.MatchEventDTO{
					Type: "WARD_PLACED", Timestamp: ts + 3000,
					CreatorID: intp(5), WardType: "YELLOW_TRINKET",
				},
				riot.MatchEventDTO{
					Type: "CHAMPION_KILL", Timestamp: ts + 4000,
					KillerID: intp(1), VictimID: intp(6),
					AssistingParticipantIDs: []int{2, 3},
					Position:                &riot.MatchPositionDTO{X: 7000, Y: 7100},
				},
				riot.MatchEventDTO{
					Type: "CHAMPION_KILL", Timestamp: ts + 5000,
					KillerID: intp(7), VictimID: intp(2),
					Position: &riot.MatchPositionDTO{X: 2000, Y: 12000},
				},
				riot.MatchEventDTO{
					Type: "BUILDING_KILL", Timestamp: ts + 6000,
					KillerID: intp(3), TeamID: intp(200),
					BuildingType: "TOWER_BUILDING", LaneType: "MID_LANE", TowerType: "OUTER_TURRET",
					Position: &riot.MatchPositionDTO{X: 8955, Y: 8510},
				},
				riot.MatchEventDTO{
					Type: "ELITE_MONSTER_KILL", Timestamp: ts + 7000,
					KillerID: intp(2), MonsterType: "DRAGON", MonsterSubType: "FIRE_DRAGON",
					Position: &riot.MatchPositionDTO{X: 9866, Y: 4414},
				},
			)
		}
		tl.Frames = append(tl.Frames, frame)
	}
	return tl
}
