// Package model holds the flat records persisted by the store. Records are
// created once at ingestion time and never updated.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Summoner represents a player profile
type Summoner struct {
	AccountID     string    `json:"accountId"`
	SummonerID    string    `json:"summonerId"`
	PUUID         string    `json:"puuid"`
	Name          string    `json:"name"`
	Level         int       `json:"summonerLevel"`
	ProfileIconID int       `json:"profileIconId"`
	RevisionDate  int64     `json:"revisionDate"`
	Timestamp     time.Time `json:"timestamp"`
}

// Match represents the scalar part of a match. Teams and participants are
// linked by GameID.
type Match struct {
	GameID       int64  `json:"gameId"`
	PlatformID   string `json:"platformId"`
	GameCreation int64  `json:"gameCreation"`
	GameDuration int64  `json:"gameDuration"`
	QueueID      int    `json:"queueId"`
	MapID        int    `json:"mapId"`
	SeasonID     int    `json:"seasonId"`
	GameVersion  string `json:"gameVersion"`
	GameMode     string `json:"gameMode"`
	GameType     string `json:"gameType"`
}

// SummonerMatch links a summoner to a match they played
type SummonerMatch struct {
	AccountID string `json:"accountId"`
	GameID    int64  `json:"gameId"`
}

// Team represents one side of a match. (TeamID, GameID) is the key.
type Team struct {
	TeamID          int    `json:"teamId"`
	GameID          int64  `json:"gameId"`
	Win             string `json:"win"` // "Win" or "Fail"
	FirstBlood      bool   `json:"firstBlood"`
	FirstTower      bool   `json:"firstTower"`
	FirstInhibitor  bool   `json:"firstInhibitor"`
	FirstBaron      bool   `json:"firstBaron"`
	FirstDragon     bool   `json:"firstDragon"`
	FirstRiftHerald bool   `json:"firstRiftHerald"`
	TowerKills      int    `json:"towerKills"`
	InhibitorKills  int    `json:"inhibitorKills"`
	BaronKills      int    `json:"baronKills"`
	DragonKills     int    `json:"dragonKills"`
	RiftHeraldKills int    `json:"riftHeraldKills"`
	Bans            []int  `json:"bans"` // champion ids in pick-turn order
}

// Champion is an entry of the static champion catalog
type Champion struct {
	ChampionID int      `json:"championId"`
	Name       string   `json:"name"`
	Classes    []string `json:"classes"`
}

// Deltas maps a minute bucket label ("0-10", "10-20", ...) to a per-minute value
type Deltas map[string]float64

// Timeline holds the per-minute delta series of one participant
type Timeline struct {
	TimelineID                  string `json:"timelineId"`
	CreepsPerMinDeltas          Deltas `json:"creepsPerMinDeltas"`
	XPPerMinDeltas              Deltas `json:"xpPerMinDeltas"`
	GoldPerMinDeltas            Deltas `json:"goldPerMinDeltas"`
	CSDiffPerMinDeltas          Deltas `json:"csDiffPerMinDeltas"`
	XPDiffPerMinDeltas          Deltas `json:"xpDiffPerMinDeltas"`
	DamageTakenPerMinDeltas     Deltas `json:"damageTakenPerMinDeltas"`
	DamageTakenDiffPerMinDeltas Deltas `json:"damageTakenDiffPerMinDeltas"`
}

// Participant is one player's presence in one match
type Participant struct {
	ParticipantID string `json:"participantId"`
	GameID        int64  `json:"gameId"`
	AccountID     string `json:"accountId"`
	ChampionID    int    `json:"championId"`
	StatID        string `json:"statId"`
	TeamID        int    `json:"teamId"`
	TimelineID    string `json:"timelineId"`
	Spell1ID      int    `json:"spell1Id"`
	Spell2ID      int    `json:"spell2Id"`
	Role          string `json:"role"`
	Lane          string `json:"lane"`
}

// Position is a map coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String encodes the position as "x,y", the stored form
func (p Position) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// ParsePosition decodes an "x,y" string
func ParsePosition(s string) (Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Position{}, fmt.Errorf("invalid position %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position x %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Position{}, fmt.Errorf("invalid position y %q: %w", s, err)
	}
	return Position{X: x, Y: y}, nil
}

// ParticipantFrame is a snapshot of one participant at a timeline tick
type ParticipantFrame struct {
	ParticipantID       string    `json:"participantId"`
	Timestamp           int64     `json:"timestamp"`
	MinionsKilled       int       `json:"minionsKilled"`
	TeamScore           int       `json:"teamScore"`
	TotalGold           int       `json:"totalGold"`
	Level               int       `json:"level"`
	XP                  int       `json:"xp"`
	CurrentGold         int       `json:"currentGold"`
	Position            *Position `json:"position,omitempty"`
	JungleMinionsKilled int       `json:"jungleMinionsKilled"`
}

// Event types the queries filter on
const (
	EventChampionKill     = "CHAMPION_KILL"
	EventBuildingKill     = "BUILDING_KILL"
	EventEliteMonsterKill = "ELITE_MONSTER_KILL"
)

// Event is a discrete in-game occurrence. Participant references are global
// participant ids; nil means the source carried no reference.
type Event struct {
	ParticipantID           *string   `json:"participantId,omitempty"`
	Timestamp               int64     `json:"timestamp"`
	LaneType                *string   `json:"laneType,omitempty"`
	SkillSlot               *int      `json:"skillSlot,omitempty"`
	AscendedType            *string   `json:"ascendedType,omitempty"`
	CreatorID               *int      `json:"creatorId,omitempty"` // raw per-match index
	AfterID                 *int      `json:"afterId,omitempty"`
	EventType               *string   `json:"eventType,omitempty"`
	Type                    string    `json:"type"`
	LevelUpType             *string   `json:"levelUpType,omitempty"`
	WardType                *string   `json:"wardType,omitempty"`
	TowerType               *string   `json:"towerType,omitempty"`
	ItemID                  *int      `json:"itemId,omitempty"`
	BeforeID                *int      `json:"beforeId,omitempty"`
	MonsterType             *string   `json:"monsterType,omitempty"`
	MonsterSubType          *string   `json:"monsterSubType,omitempty"`
	TeamID                  *int      `json:"teamId,omitempty"`
	Position                *Position `json:"position,omitempty"`
	KillerID                *string   `json:"killerId,omitempty"`
	AssistingParticipantIDs []string  `json:"assistingParticipantIds"`
	BuildingType            *string   `json:"buildingType,omitempty"`
	VictimID                *string   `json:"victimId,omitempty"`
}
