package riot

// SummonerDTO represents the response from /lol/summoner/v4/summoners/by-name/{name}
type SummonerDTO struct {
	AccountID     string `json:"accountId"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	Name          string `json:"name"`
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	SummonerLevel int    `json:"summonerLevel"`
}

// MatchlistDTO represents the response from /lol/match/v4/matchlists/by-account/{accountId}
type MatchlistDTO struct {
	StartIndex int                 `json:"startIndex"`
	TotalGames int                 `json:"totalGames"`
	EndIndex   int                 `json:"endIndex"`
	Matches    []MatchReferenceDTO `json:"matches"`
}

type MatchReferenceDTO struct {
	GameID     int64  `json:"gameId"`
	Role       string `json:"role"`
	Season     int    `json:"season"`
	PlatformID string `json:"platformId"`
	Champion   int    `json:"champion"`
	Queue      int    `json:"queue"`
	Lane       string `json:"lane"`
	Timestamp  int64  `json:"timestamp"`
}

// MatchDTO represents the response from /lol/match/v4/matches/{matchId}
type MatchDTO struct {
	GameID                int64                    `json:"gameId"`
	ParticipantIdentities []ParticipantIdentityDTO `json:"participantIdentities"`
	QueueID               int                      `json:"queueId"`
	GameType              string                   `json:"gameType"`
	GameDuration          int64                    `json:"gameDuration"`
	Teams                 []TeamStatsDTO           `json:"teams"`
	PlatformID            string                   `json:"platformId"`
	GameCreation          int64                    `json:"gameCreation"`
	SeasonID              int                      `json:"seasonId"`
	GameVersion           string                   `json:"gameVersion"`
	MapID                 int                      `json:"mapId"`
	GameMode              string                   `json:"gameMode"`
	Participants          []ParticipantDTO         `json:"participants"`
}

type ParticipantIdentityDTO struct {
	ParticipantID int       `json:"participantId"`
	Player        PlayerDTO `json:"player"`
}

type PlayerDTO struct {
	ProfileIcon       int    `json:"profileIcon"`
	AccountID         string `json:"accountId"`
	MatchHistoryURI   string `json:"matchHistoryUri"`
	CurrentAccountID  string `json:"currentAccountId"`
	CurrentPlatformID string `json:"currentPlatformId"`
	SummonerName      string `json:"summonerName"`
	SummonerID        string `json:"summonerId"`
	PlatformID        string `json:"platformId"`
}

type TeamStatsDTO struct {
	TowerKills           int           `json:"towerKills"`
	RiftHeraldKills      int           `json:"riftHeraldKills"`
	FirstBlood           bool          `json:"firstBlood"`
	InhibitorKills       int           `json:"inhibitorKills"`
	Bans                 []TeamBansDTO `json:"bans"`
	FirstBaron           bool          `json:"firstBaron"`
	FirstDragon          bool          `json:"firstDragon"`
	DominionVictoryScore int           `json:"dominionVictoryScore"`
	DragonKills          int           `json:"dragonKills"`
	BaronKills           int           `json:"baronKills"`
	FirstInhibitor       bool          `json:"firstInhibitor"`
	FirstTower           bool          `json:"firstTower"`
	VilemawKills         int           `json:"vilemawKills"`
	FirstRiftHerald      bool          `json:"firstRiftHerald"`
	TeamID               int           `json:"teamId"` // 100 = blue, 200 = red
	Win                  string        `json:"win"`    // "Win" or "Fail"
}

type TeamBansDTO struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type ParticipantDTO struct {
	ParticipantID             int                    `json:"participantId"`
	ChampionID                int                    `json:"championId"`
	Stats                     ParticipantStatsDTO    `json:"stats"`
	TeamID                    int                    `json:"teamId"`
	Timeline                  ParticipantTimelineDTO `json:"timeline"`
	Spell1ID                  int                    `json:"spell1Id"`
	Spell2ID                  int                    `json:"spell2Id"`
	HighestAchievedSeasonTier string                 `json:"highestAchievedSeasonTier"`
}

type ParticipantTimelineDTO struct {
	ParticipantID               int                `json:"participantId"`
	CSDiffPerMinDeltas          map[string]float64 `json:"csDiffPerMinDeltas"`
	DamageTakenPerMinDeltas     map[string]float64 `json:"damageTakenPerMinDeltas"`
	Role                        string             `json:"role"` // SOLO, DUO, DUO_CARRY, DUO_SUPPORT, NONE
	DamageTakenDiffPerMinDeltas map[string]float64 `json:"damageTakenDiffPerMinDeltas"`
	XPPerMinDeltas              map[string]float64 `json:"xpPerMinDeltas"`
	XPDiffPerMinDeltas          map[string]float64 `json:"xpDiffPerMinDeltas"`
	Lane                        string             `json:"lane"` // TOP, JUNGLE, MIDDLE, BOTTOM
	CreepsPerMinDeltas          map[string]float64 `json:"creepsPerMinDeltas"`
	GoldPerMinDeltas            map[string]float64 `json:"goldPerMinDeltas"`
}

type ParticipantStatsDTO struct {
	ParticipantID int  `json:"participantId"`
	Win           bool `json:"win"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // Trinket

	Kills                  int `json:"kills"`
	Deaths                 int `json:"deaths"`
	Assists                int `json:"assists"`
	LargestKillingSpree    int `json:"largestKillingSpree"`
	LargestMultiKill       int `json:"largestMultiKill"`
	KillingSprees          int `json:"killingSprees"`
	LongestTimeSpentLiving int `json:"longestTimeSpentLiving"`
	DoubleKills            int `json:"doubleKills"`
	TripleKills            int `json:"tripleKills"`
	QuadraKills            int `json:"quadraKills"`
	PentaKills             int `json:"pentaKills"`
	UnrealKills            int `json:"unrealKills"`

	TotalDamageDealt               int `json:"totalDamageDealt"`
	MagicDamageDealt               int `json:"magicDamageDealt"`
	PhysicalDamageDealt            int `json:"physicalDamageDealt"`
	TrueDamageDealt                int `json:"trueDamageDealt"`
	LargestCriticalStrike          int `json:"largestCriticalStrike"`
	TotalDamageDealtToChampions    int `json:"totalDamageDealtToChampions"`
	MagicDamageDealtToChampions    int `json:"magicDamageDealtToChampions"`
	PhysicalDamageDealtToChampions int `json:"physicalDamageDealtToChampions"`
	TrueDamageDealtToChampions     int `json:"trueDamageDealtToChampions"`
	TotalHeal                      int `json:"totalHeal"`
	TotalUnitsHealed               int `json:"totalUnitsHealed"`
	DamageSelfMitigated            int `json:"damageSelfMitigated"`
	DamageDealtToObjectives        int `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int `json:"damageDealtToTurrets"`
	VisionScore                    int `json:"visionScore"`
	TimeCCingOthers                int `json:"timeCCingOthers"`
	TotalDamageTaken               int `json:"totalDamageTaken"`
	MagicalDamageTaken             int `json:"magicalDamageTaken"`
	PhysicalDamageTaken            int `json:"physicalDamageTaken"`
	TrueDamageTaken                int `json:"trueDamageTaken"`

	GoldEarned                      int `json:"goldEarned"`
	GoldSpent                       int `json:"goldSpent"`
	TurretKills                     int `json:"turretKills"`
	InhibitorKills                  int `json:"inhibitorKills"`
	TotalMinionsKilled              int `json:"totalMinionsKilled"`
	NeutralMinionsKilled            int `json:"neutralMinionsKilled"`
	NeutralMinionsKilledTeamJungle  int `json:"neutralMinionsKilledTeamJungle"`
	NeutralMinionsKilledEnemyJungle int `json:"neutralMinionsKilledEnemyJungle"`
	TotalTimeCrowdControlDealt      int `json:"totalTimeCrowdControlDealt"`
	ChampLevel                      int `json:"champLevel"`
	VisionWardsBoughtInGame         int `json:"visionWardsBoughtInGame"`
	SightWardsBoughtInGame          int `json:"sightWardsBoughtInGame"`
	WardsPlaced                     int `json:"wardsPlaced"`
	WardsKilled                     int `json:"wardsKilled"`

	FirstBloodKill       bool `json:"firstBloodKill"`
	FirstBloodAssist     bool `json:"firstBloodAssist"`
	FirstTowerKill       bool `json:"firstTowerKill"`
	FirstTowerAssist     bool `json:"firstTowerAssist"`
	FirstInhibitorKill   bool `json:"firstInhibitorKill"`
	FirstInhibitorAssist bool `json:"firstInhibitorAssist"`

	CombatPlayerScore    int `json:"combatPlayerScore"`
	ObjectivePlayerScore int `json:"objectivePlayerScore"`
	TotalPlayerScore     int `json:"totalPlayerScore"`
	TotalScoreRank       int `json:"totalScoreRank"`

	Perk0            int `json:"perk0"`
	Perk0Var1        int `json:"perk0Var1"`
	Perk0Var2        int `json:"perk0Var2"`
	Perk0Var3        int `json:"perk0Var3"`
	Perk1            int `json:"perk1"`
	Perk1Var1        int `json:"perk1Var1"`
	Perk1Var2        int `json:"perk1Var2"`
	Perk1Var3        int `json:"perk1Var3"`
	Perk2            int `json:"perk2"`
	Perk2Var1        int `json:"perk2Var1"`
	Perk2Var2        int `json:"perk2Var2"`
	Perk2Var3        int `json:"perk2Var3"`
	Perk3            int `json:"perk3"`
	Perk3Var1        int `json:"perk3Var1"`
	Perk3Var2        int `json:"perk3Var2"`
	Perk3Var3        int `json:"perk3Var3"`
	Perk4            int `json:"perk4"`
	Perk4Var1        int `json:"perk4Var1"`
	Perk4Var2        int `json:"perk4Var2"`
	Perk4Var3        int `json:"perk4Var3"`
	Perk5            int `json:"perk5"`
	Perk5Var1        int `json:"perk5Var1"`
	Perk5Var2        int `json:"perk5Var2"`
	Perk5Var3        int `json:"perk5Var3"`
	PerkPrimaryStyle int `json:"perkPrimaryStyle"`
	PerkSubStyle     int `json:"perkSubStyle"`
	StatPerk0        int `json:"statPerk0"`
	StatPerk1        int `json:"statPerk1"`
	StatPerk2        int `json:"statPerk2"`
}

// MatchTimelineDTO represents the response from /lol/match/v4/timelines/by-match/{matchId}
type MatchTimelineDTO struct {
	Frames        []MatchFrameDTO `json:"frames"`
	FrameInterval int64           `json:"frameInterval"`
}

type MatchFrameDTO struct {
	ParticipantFrames map[string]MatchParticipantFrameDTO `json:"participantFrames"` // keyed by "1".."10"
	Events            []MatchEventDTO                     `json:"events"`
	Timestamp         int64                               `json:"timestamp"`
}

type MatchParticipantFrameDTO struct {
	ParticipantID       int               `json:"participantId"`
	MinionsKilled       int               `json:"minionsKilled"`
	TeamScore           int               `json:"teamScore"`
	DominionScore       int               `json:"dominionScore"`
	TotalGold           int               `json:"totalGold"`
	Level               int               `json:"level"`
	XP                  int               `json:"xp"`
	CurrentGold         int               `json:"currentGold"`
	Position            *MatchPositionDTO `json:"position,omitempty"`
	JungleMinionsKilled int               `json:"jungleMinionsKilled"`
}

type MatchPositionDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MatchEventDTO is a timeline event. Which fields are set depends on Type;
// absent numeric fields decode to nil.
type MatchEventDTO struct {
	LaneType                string            `json:"laneType,omitempty"`
	SkillSlot               *int              `json:"skillSlot,omitempty"`
	AscendedType            string            `json:"ascendedType,omitempty"`
	CreatorID               *int              `json:"creatorId,omitempty"`
	AfterID                 *int              `json:"afterId,omitempty"`
	EventType               string            `json:"eventType,omitempty"`
	Type                    string            `json:"type"`
	LevelUpType             string            `json:"levelUpType,omitempty"`
	WardType                string            `json:"wardType,omitempty"`
	ParticipantID           *int              `json:"participantId,omitempty"`
	TowerType               string            `json:"towerType,omitempty"`
	ItemID                  *int              `json:"itemId,omitempty"`
	BeforeID                *int              `json:"beforeId,omitempty"`
	PointCaptured           string            `json:"pointCaptured,omitempty"`
	MonsterType             string            `json:"monsterType,omitempty"`
	MonsterSubType          string            `json:"monsterSubType,omitempty"`
	TeamID                  *int              `json:"teamId,omitempty"`
	Position                *MatchPositionDTO `json:"position,omitempty"`
	KillerID                *int              `json:"killerId,omitempty"`
	Timestamp               int64             `json:"timestamp"`
	AssistingParticipantIDs []int             `json:"assistingParticipantIds,omitempty"`
	BuildingType            string            `json:"buildingType,omitempty"`
	VictimID                *int              `json:"victimId,omitempty"`
}
