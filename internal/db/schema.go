package db

import (
	"context"
	"fmt"
)

// schema is valid for both Postgres and SQLite. List columns and delta series
// hold JSON text; positions hold "x,y".
var schema = []string{
	`CREATE TABLE IF NOT EXISTS summoners (
		account_id TEXT PRIMARY KEY,
		summoner_id TEXT NOT NULL,
		puuid TEXT NOT NULL,
		name TEXT NOT NULL,
		summoner_level INTEGER NOT NULL,
		profile_icon_id INTEGER NOT NULL,
		revision_date BIGINT NOT NULL,
		timestamp BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		game_id BIGINT PRIMARY KEY,
		platform_id TEXT NOT NULL,
		game_creation BIGINT NOT NULL,
		game_duration BIGINT NOT NULL,
		queue_id INTEGER NOT NULL,
		map_id INTEGER NOT NULL,
		season_id INTEGER NOT NULL,
		game_version TEXT NOT NULL,
		game_mode TEXT NOT NULL,
		game_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS summoner_matches (
		account_id TEXT NOT NULL,
		game_id BIGINT NOT NULL,
		PRIMARY KEY (account_id, game_id)
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		team_id INTEGER NOT NULL,
		game_id BIGINT NOT NULL,
		win TEXT NOT NULL,
		first_blood INTEGER NOT NULL,
		first_tower INTEGER NOT NULL,
		first_inhibitor INTEGER NOT NULL,
		first_baron INTEGER NOT NULL,
		first_dragon INTEGER NOT NULL,
		first_rift_herald INTEGER NOT NULL,
		tower_kills INTEGER NOT NULL,
		inhibitor_kills INTEGER NOT NULL,
		baron_kills INTEGER NOT NULL,
		dragon_kills INTEGER NOT NULL,
		rift_herald_kills INTEGER NOT NULL,
		bans TEXT NOT NULL,
		PRIMARY KEY (game_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS champions (
		champion_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		classes TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS timelines (
		timeline_id TEXT PRIMARY KEY,
		creeps_per_min_deltas TEXT NOT NULL,
		xp_per_min_deltas TEXT NOT NULL,
		gold_per_min_deltas TEXT NOT NULL,
		cs_diff_per_min_deltas TEXT NOT NULL,
		xp_diff_per_min_deltas TEXT NOT NULL,
		damage_taken_per_min_deltas TEXT NOT NULL,
		damage_taken_diff_per_min_deltas TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stats (
		stat_id TEXT PRIMARY KEY,
		win BOOLEAN NOT NULL,
		items TEXT NOT NULL,
		kills INTEGER NOT NULL,
		deaths INTEGER NOT NULL,
		assists INTEGER NOT NULL,
		largest_killing_spree INTEGER NOT NULL,
		largest_multi_kill INTEGER NOT NULL,
		killing_sprees INTEGER NOT NULL,
		longest_time_spent_living INTEGER NOT NULL,
		double_kills INTEGER NOT NULL,
		triple_kills INTEGER NOT NULL,
		quadra_kills INTEGER NOT NULL,
		penta_kills INTEGER NOT NULL,
		total_damage_dealt INTEGER NOT NULL,
		magic_damage_dealt INTEGER NOT NULL,
		physical_damage_dealt INTEGER NOT NULL,
		true_damage_dealt INTEGER NOT NULL,
		largest_critical_strike INTEGER NOT NULL,
		total_damage_dealt_to_champions INTEGER NOT NULL,
		magic_damage_dealt_to_champions INTEGER NOT NULL,
		physical_damage_dealt_to_champions INTEGER NOT NULL,
		true_damage_dealt_to_champions INTEGER NOT NULL,
		total_heal INTEGER NOT NULL,
		total_units_healed INTEGER NOT NULL,
		damage_self_mitigated INTEGER NOT NULL,
		damage_dealt_to_objectives INTEGER NOT NULL,
		damage_dealt_to_turrets INTEGER NOT NULL,
		vision_score INTEGER NOT NULL,
		time_ccing_others INTEGER NOT NULL,
		total_damage_taken INTEGER NOT NULL,
		magical_damage_taken INTEGER NOT NULL,
		physical_damage_taken INTEGER NOT NULL,
		true_damage_taken INTEGER NOT NULL,
		gold_earned INTEGER NOT NULL,
		gold_spent INTEGER NOT NULL,
		turret_kills INTEGER NOT NULL,
		inhibitor_kills INTEGER NOT NULL,
		total_minions_killed INTEGER NOT NULL,
		neutral_minions_killed_team_jungle INTEGER NOT NULL,
		neutral_minions_killed_enemy_jungle INTEGER NOT NULL,
		total_time_crowd_control_dealt INTEGER NOT NULL,
		champ_level INTEGER NOT NULL,
		vision_wards_bought_in_game INTEGER NOT NULL,
		sight_wards_bought_in_game INTEGER NOT NULL,
		wards_placed INTEGER NOT NULL,
		wards_killed INTEGER NOT NULL,
		first_blood_kill BOOLEAN NOT NULL,
		first_blood_assist BOOLEAN NOT NULL,
		first_tower_kill BOOLEAN NOT NULL,
		first_tower_assist BOOLEAN NOT NULL,
		first_inhibitor_kill BOOLEAN NOT NULL,
		first_inhibitor_assist BOOLEAN NOT NULL,
		combat_player_score INTEGER NOT NULL,
		objective_player_score INTEGER NOT NULL,
		total_player_score INTEGER NOT NULL,
		total_score_rank INTEGER NOT NULL,
		perk0 INTEGER NOT NULL,
		perk0_var1 INTEGER NOT NULL,
		perk0_var2 INTEGER NOT NULL,
		perk0_var3 INTEGER NOT NULL,
		perk1 INTEGER NOT NULL,
		perk1_var1 INTEGER NOT NULL,
		perk1_var2 INTEGER NOT NULL,
		perk1_var3 INTEGER NOT NULL,
		perk2 INTEGER NOT NULL,
		perk2_var1 INTEGER NOT NULL,
		perk2_var2 INTEGER NOT NULL,
		perk2_var3 INTEGER NOT NULL,
		perk3 INTEGER NOT NULL,
		perk3_var1 INTEGER NOT NULL,
		perk3_var2 INTEGER NOT NULL,
		perk3_var3 INTEGER NOT NULL,
		perk4 INTEGER NOT NULL,
		perk4_var1 INTEGER NOT NULL,
		perk4_var2 INTEGER NOT NULL,
		perk4_var3 INTEGER NOT NULL,
		perk5 INTEGER NOT NULL,
		perk5_var1 INTEGER NOT NULL,
		perk5_var2 INTEGER NOT NULL,
		perk5_var3 INTEGER NOT NULL,
		perk_primary_style INTEGER NOT NULL,
		perk_sub_style INTEGER NOT NULL,
		stat_perk0 INTEGER NOT NULL,
		stat_perk1 INTEGER NOT NULL,
		stat_perk2 INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		participant_id TEXT PRIMARY KEY,
		game_id BIGINT NOT NULL REFERENCES matches (game_id),
		account_id TEXT NOT NULL,
		champion_id INTEGER NOT NULL,
		stat_id TEXT NOT NULL REFERENCES stats (stat_id),
		team_id INTEGER NOT NULL,
		timeline_id TEXT NOT NULL REFERENCES timelines (timeline_id),
		spell1_id INTEGER NOT NULL,
		spell2_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		lane TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS participant_frame (
		participant_id TEXT NOT NULL REFERENCES participants (participant_id),
		timestamp BIGINT NOT NULL,
		minions_killed INTEGER NOT NULL,
		team_score INTEGER NOT NULL,
		total_gold INTEGER NOT NULL,
		level INTEGER NOT NULL,
		xp INTEGER NOT NULL,
		current_gold INTEGER NOT NULL,
		position TEXT,
		jungle_minions_killed INTEGER NOT NULL,
		PRIMARY KEY (participant_id, timestamp)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		participant_id TEXT REFERENCES participants (participant_id),
		timestamp BIGINT NOT NULL,
		lane_type TEXT,
		skill_slot INTEGER,
		ascended_type TEXT,
		creator_id INTEGER,
		after_id INTEGER,
		event_type TEXT,
		type TEXT NOT NULL,
		level_up_type TEXT,
		ward_type TEXT,
		tower_type TEXT,
		item_id INTEGER,
		before_id INTEGER,
		monster_type TEXT,
		monster_sub_type TEXT,
		team_id INTEGER,
		position TEXT,
		killer_id TEXT,
		assisting_participant_ids TEXT NOT NULL,
		building_type TEXT,
		victim_id TEXT
	)`,
	// Indexes
	`CREATE INDEX IF NOT EXISTS idx_summoners_name ON summoners(name)`,
	`CREATE INDEX IF NOT EXISTS idx_summoner_matches_game ON summoner_matches(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_game ON participants(game_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_account ON participants(account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_participants_stat ON participants(stat_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_participant ON events(participant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_events_type ON events(type)`,
}

// Migrate creates the tables and indexes if they don't exist
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return newError("Migrate", fmt.Errorf("failed to execute query: %w", err))
		}
	}
	s.logger.Debug("schema ready", "tables", 10)
	return nil
}
