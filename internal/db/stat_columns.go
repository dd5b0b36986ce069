package db

import "riftstats/internal/model"

// statColumns lists the stats table in storage order: id, win, items, then the scalar counters
var statColumns = []string{
	"stat_id", "win", "items", "kills", "deaths",
	"assists", "largest_killing_spree", "largest_multi_kill", "killing_sprees", "longest_time_spent_living",
	"double_kills", "triple_kills", "quadra_kills", "penta_kills", "total_damage_dealt",
	"magic_damage_dealt", "physical_damage_dealt", "true_damage_dealt", "largest_critical_strike", "total_damage_dealt_to_champions",
	"magic_damage_dealt_to_champions", "physical_damage_dealt_to_champions", "true_damage_dealt_to_champions", "total_heal", "total_units_healed",
	"damage_self_mitigated", "damage_dealt_to_objectives", "damage_dealt_to_turrets", "vision_score", "time_ccing_others",
	"total_damage_taken", "magical_damage_taken", "physical_damage_taken", "true_damage_taken", "gold_earned",
	"gold_spent", "turret_kills", "inhibitor_kills", "total_minions_killed", "neutral_minions_killed_team_jungle",
	"neutral_minions_killed_enemy_jungle", "total_time_crowd_control_dealt", "champ_level", "vision_wards_bought_in_game", "sight_wards_bought_in_game",
	"wards_placed", "wards_killed", "first_blood_kill", "first_blood_assist", "first_tower_kill",
	"first_tower_assist", "first_inhibitor_kill", "first_inhibitor_assist", "combat_player_score", "objective_player_score",
	"total_player_score", "total_score_rank", "perk0", "perk0_var1", "perk0_var2",
	"perk0_var3", "perk1", "perk1_var1", "perk1_var2", "perk1_var3",
	"perk2", "perk2_var1", "perk2_var2", "perk2_var3", "perk3",
	"perk3_var1", "perk3_var2", "perk3_var3", "perk4", "perk4_var1",
	"perk4_var2", "perk4_var3", "perk5", "perk5_var1", "perk5_var2",
	"perk5_var3", "perk_primary_style", "perk_sub_style", "stat_perk0", "stat_perk1",
	"stat_perk2",
}

func statArgs(s *model.Stat) ([]any, error) {
	items, err := toJSON(s.Items)
	if err != nil {
		return nil, err
	}
	return []any{
		s.StatID, s.Win, items,
		s.Kills, s.Deaths, s.Assists, s.LargestKillingSpree, s.LargestMultiKill,
		s.KillingSprees, s.LongestTimeSpentLiving, s.DoubleKills, s.TripleKills, s.QuadraKills,
		s.PentaKills, s.TotalDamageDealt, s.MagicDamageDealt, s.PhysicalDamageDealt, s.TrueDamageDealt,
		s.LargestCriticalStrike, s.TotalDamageDealtToChampions, s.MagicDamageDealtToChampions, s.PhysicalDamageDealtToChampions, s.TrueDamageDealtToChampions,
		s.TotalHeal, s.TotalUnitsHealed, s.DamageSelfMitigated, s.DamageDealtToObjectives, s.DamageDealtToTurrets,
		s.VisionScore, s.TimeCCingOthers, s.TotalDamageTaken, s.MagicalDamageTaken, s.PhysicalDamageTaken,
		s.TrueDamageTaken, s.GoldEarned, s.GoldSpent, s.TurretKills, s.InhibitorKills,
		s.TotalMinionsKilled, s.NeutralMinionsKilledTeamJungle, s.NeutralMinionsKilledEnemyJungle, s.TotalTimeCrowdControlDealt, s.ChampLevel,
		s.VisionWardsBoughtInGame, s.SightWardsBoughtInGame, s.WardsPlaced, s.WardsKilled, s.FirstBloodKill,
		s.FirstBloodAssist, s.FirstTowerKill, s.FirstTowerAssist, s.FirstInhibitorKill, s.FirstInhibitorAssist,
		s.CombatPlayerScore, s.ObjectivePlayerScore, s.TotalPlayerScore, s.TotalScoreRank, s.Perk0,
		s.Perk0Var1, s.Perk0Var2, s.Perk0Var3, s.Perk1, s.Perk1Var1,
		s.Perk1Var2, s.Perk1Var3, s.Perk2, s.Perk2Var1, s.Perk2Var2,
		s.Perk2Var3, s.Perk3, s.Perk3Var1, s.Perk3Var2, s.Perk3Var3,
		s.Perk4, s.Perk4Var1, s.Perk4Var2, s.Perk4Var3, s.Perk5,
		s.Perk5Var1, s.Perk5Var2, s.Perk5Var3, s.PerkPrimaryStyle, s.PerkSubStyle,
		s.StatPerk0, s.StatPerk1, s.StatPerk2,
	}, nil
}

func statDest(s *model.Stat) []any {
	return []any{
		&s.StatID, &s.Win, &jsonColumn{&s.Items},
		&s.Kills, &s.Deaths, &s.Assists, &s.LargestKillingSpree, &s.LargestMultiKill,
		&s.KillingSprees, &s.LongestTimeSpentLiving, &s.DoubleKills, &s.TripleKills, &s.QuadraKills,
		&s.PentaKills, &s.TotalDamageDealt, &s.MagicDamageDealt, &s.PhysicalDamageDealt, &s.TrueDamageDealt,
		&s.LargestCriticalStrike, &s.TotalDamageDealtToChampions, &s.MagicDamageDealtToChampions, &s.PhysicalDamageDealtToChampions, &s.TrueDamageDealtToChampions,
		&s.TotalHeal, &s.TotalUnitsHealed, &s.DamageSelfMitigated, &s.DamageDealtToObjectives, &s.DamageDealtToTurrets,
		&s.VisionScore, &s.TimeCCingOthers, &s.TotalDamageTaken, &s.MagicalDamageTaken, &s.PhysicalDamageTaken,
		&s.TrueDamageTaken, &s.GoldEarned, &s.GoldSpent, &s.TurretKills, &s.InhibitorKills,
		&s.TotalMinionsKilled, &s.NeutralMinionsKilledTeamJungle, &s.NeutralMinionsKilledEnemyJungle, &s.TotalTimeCrowdControlDealt, &s.ChampLevel,
		&s.VisionWardsBoughtInGame, &s.SightWardsBoughtInGame, &s.WardsPlaced, &s.WardsKilled, &s.FirstBloodKill,
		&s.FirstBloodAssist, &s.FirstTowerKill, &s.FirstTowerAssist, &s.FirstInhibitorKill, &s.FirstInhibitorAssist,
		&s.CombatPlayerScore, &s.ObjectivePlayerScore, &s.TotalPlayerScore, &s.TotalScoreRank, &s.Perk0,
		&s.Perk0Var1, &s.Perk0Var2, &s.Perk0Var3, &s.Perk1, &s.Perk1Var1,
		&s.Perk1Var2, &s.Perk1Var3, &s.Perk2, &s.Perk2Var1, &s.Perk2Var2,
		&s.Perk2Var3, &s.Perk3, &s.Perk3Var1, &s.Perk3Var2, &s.Perk3Var3,
		&s.Perk4, &s.Perk4Var1, &s.Perk4Var2, &s.Perk4Var3, &s.Perk5,
		&s.Perk5Var1, &s.Perk5Var2, &s.Perk5Var3, &s.PerkPrimaryStyle, &s.PerkSubStyle,
		&s.StatPerk0, &s.StatPerk1, &s.StatPerk2,
	}
}
