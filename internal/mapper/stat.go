package mapper

import (
	"riftstats/internal/model"
	"riftstats/internal/riot"
)

// MapStat assigns a new stat id and copies the participant statistics.
// item0..item5 are collapsed into Items in slot order; the trinket is dropped.
func (m *Mapper) MapStat(dto riot.ParticipantStatsDTO) model.Stat {
	return model.Stat{
		StatID: m.ids.NewID(),
		Win:    dto.Win,
		Items:  []int{dto.Item0, dto.Item1, dto.Item2, dto.Item3, dto.Item4, dto.Item5},

		Kills:                  dto.Kills,
		Deaths:                 dto.Deaths,
		Assists:                dto.Assists,
		LargestKillingSpree:    dto.LargestKillingSpree,
		LargestMultiKill:       dto.LargestMultiKill,
		KillingSprees:          dto.KillingSprees,
		LongestTimeSpentLiving: dto.LongestTimeSpentLiving,
		DoubleKills:            dto.DoubleKills,
		TripleKills:            dto.TripleKills,
		QuadraKills:            dto.QuadraKills,
		PentaKills:             dto.PentaKills,

		TotalDamageDealt:               dto.TotalDamageDealt,
		MagicDamageDealt:               dto.MagicDamageDealt,
		PhysicalDamageDealt:            dto.PhysicalDamageDealt,
		TrueDamageDealt:                dto.TrueDamageDealt,
		LargestCriticalStrike:          dto.LargestCriticalStrike,
		TotalDamageDealtToChampions:    dto.TotalDamageDealtToChampions,
		MagicDamageDealtToChampions:    dto.MagicDamageDealtToChampions,
		PhysicalDamageDealtToChampions: dto.PhysicalDamageDealtToChampions,
		TrueDamageDealtToChampions:     dto.TrueDamageDealtToChampions,
		TotalHeal:                      dto.TotalHeal,
		TotalUnitsHealed:               dto.TotalUnitsHealed,
		DamageSelfMitigated:            dto.DamageSelfMitigated,
		DamageDealtToObjectives:        dto.DamageDealtToObjectives,
		DamageDealtToTurrets:           dto.DamageDealtToTurrets,
		VisionScore:                    dto.VisionScore,
		TimeCCingOthers:                dto.TimeCCingOthers,
		TotalDamageTaken:               dto.TotalDamageTaken,
		MagicalDamageTaken:             dto.MagicalDamageTaken,
		PhysicalDamageTaken:            dto.PhysicalDamageTaken,
		TrueDamageTaken:                dto.TrueDamageTaken,

		GoldEarned:                      dto.GoldEarned,
		GoldSpent:                       dto.GoldSpent,
		TurretKills:                     dto.TurretKills,
		InhibitorKills:                  dto.InhibitorKills,
		TotalMinionsKilled:              dto.TotalMinionsKilled,
		NeutralMinionsKilledTeamJungle:  dto.NeutralMinionsKilledTeamJungle,
		NeutralMinionsKilledEnemyJungle: dto.NeutralMinionsKilledEnemyJungle,
		TotalTimeCrowdControlDealt:      dto.TotalTimeCrowdControlDealt,
		ChampLevel:                      dto.ChampLevel,
		VisionWardsBoughtInGame:         dto.VisionWardsBoughtInGame,
		SightWardsBoughtInGame:          dto.SightWardsBoughtInGame,
		WardsPlaced:                     dto.WardsPlaced,
		WardsKilled:                     dto.WardsKilled,

		FirstBloodKill:       dto.FirstBloodKill,
		FirstBloodAssist:     dto.FirstBloodAssist,
		FirstTowerKill:       dto.FirstTowerKill,
		FirstTowerAssist:     dto.FirstTowerAssist,
		FirstInhibitorKill:   dto.FirstInhibitorKill,
		FirstInhibitorAssist: dto.FirstInhibitorAssist,

		CombatPlayerScore:    dto.CombatPlayerScore,
		ObjectivePlayerScore: dto.ObjectivePlayerScore,
		TotalPlayerScore:     dto.TotalPlayerScore,
		TotalScoreRank:       dto.TotalScoreRank,

		Perk0:            dto.Perk0,
		Perk0Var1:        dto.Perk0Var1,
		Perk0Var2:        dto.Perk0Var2,
		Perk0Var3:        dto.Perk0Var3,
		Perk1:            dto.Perk1,
		Perk1Var1:        dto.Perk1Var1,
		Perk1Var2:        dto.Perk1Var2,
		Perk1Var3:        dto.Perk1Var3,
		Perk2:            dto.Perk2,
		Perk2Var1:        dto.Perk2Var1,
		Perk2Var2:        dto.Perk2Var2,
		Perk2Var3:        dto.Perk2Var3,
		Perk3:            dto.Perk3,
		Perk3Var1:        dto.Perk3Var1,
		Perk3Var2:        dto.Perk3Var2,
		Perk3Var3:        dto.Perk3Var3,
		Perk4:            dto.Perk4,
		Perk4Var1:        dto.Perk4Var1,
		Perk4Var2:        dto.Perk4Var2,
		Perk4Var3:        dto.Perk4Var3,
		Perk5:            dto.Perk5,
		Perk5Var1:        dto.Perk5Var1,
		Perk5Var2:        dto.Perk5Var2,
		Perk5Var3:        dto.Perk5Var3,
		PerkPrimaryStyle: dto.PerkPrimaryStyle,
		PerkSubStyle:     dto.PerkSubStyle,
		StatPerk0:        dto.StatPerk0,
		StatPerk1:        dto.StatPerk1,
		StatPerk2:        dto.StatPerk2,
	}
}
