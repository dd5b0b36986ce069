package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"riftstats/internal/config"
	"riftstats/internal/db"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	summoner := flag.String("summoner", "", "Summoner name")
	with := flag.String("with", "", "Second summoner name; lists games played together")
	gameID := flag.Int64("game", 0, "Game id for team totals and kill timeline")
	teamID := flag.Int("team", 0, "Team id (100 or 200); all teams when omitted")
	flag.Parse()

	if *summoner == "" && *gameID == 0 {
		fmt.Println("Usage:")
		fmt.Println("  report -summoner='Name'                 games of a summoner")
		fmt.Println("  report -summoner='Name' -with='Other'   games played together")
		fmt.Println("  report -game=4001 [-team=100]           team totals and kills")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := db.Open(ctx, cfg.Database, db.WithLogger(logger))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	r := reporter{store: store, out: tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)}
	defer r.out.Flush()

	if *summoner != "" {
		if *with != "" {
			err = r.commonGames(ctx, *summoner, *with)
		} else {
			err = r.summonerGames(ctx, *summoner)
		}
		if err != nil {
			r.out.Flush()
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
	}

	if *gameID != 0 {
		if err := r.game(ctx, *gameID, *teamID); err != nil {
			r.out.Flush()
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
	}
}

type reporter struct {
	store *db.Store
	out   *tabwriter.Writer
}

func (r *reporter) account(ctx context.Context, name string) (string, error) {
	s, err := r.store.SelectSummoner(ctx, name)
	if errors.Is(err, db.ErrNotFound) {
		return "", fmt.Errorf("summoner %q is not stored", name)
	}
	if err != nil {
		return "", err
	}
	return s.AccountID, nil
}

func (r *reporter) summonerGames(ctx context.Context, name string) error {
	accountID, err := r.account(ctx, name)
	if err != nil {
		return err
	}
	games, err := r.store.SelectSummonerGames(ctx, accountID)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "=== %s (%s) ===\n", name, accountID)
	fmt.Fprintln(r.out, "GAME\tRESULT")
	wins := 0
	for _, g := range games {
		if g.Win == "Win" {
			wins++
		}
		fmt.Fprintf(r.out, "%d\t%s\n", g.GameID, g.Win)
	}
	if len(games) > 0 {
		fmt.Fprintf(r.out, "\n%d games, %.1f%% won\n", len(games), 100*float64(wins)/float64(len(games)))
	}
	return nil
}

func (r *reporter) commonGames(ctx context.Context, first, second string) error {
	a, err := r.account(ctx, first)
	if err != nil {
		return err
	}
	b, err := r.account(ctx, second)
	if err != nil {
		return err
	}

	games, err := r.store.SelectCommonGameStats(ctx, a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "=== %s with %s: %d games ===\n", first, second, len(games))
	fmt.Fprintln(r.out, "GAME\tRESULT\tFIRST K/D/A\tCS\tLANE\tSECOND K/D/A\tCS\tLANE")
	for _, g := range games {
		fmt.Fprintf(r.out, "%d\t%s\t%s\t%d\t%s\t%s\t%d\t%s\n",
			g.GameID, g.Win,
			kda(g.First), g.First.TotalMinionsKilled, g.First.Lane,
			kda(g.Second), g.Second.TotalMinionsKilled, g.Second.Lane)
	}
	return nil
}

func kda(s db.SideStats) string {
	return fmt.Sprintf("%d/%d/%d", s.Kills, s.Deaths, s.Assists)
}

func (r *reporter) game(ctx context.Context, gameID int64, teamID int) error {
	match, err := r.store.SelectMatch(ctx, gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "=== game %d (%s, %s, %ds) ===\n", match.GameID, match.GameMode, match.GameVersion, match.GameDuration)

	teams := []int{100, 200}
	if teamID != 0 {
		teams = []int{teamID}
	}

	fmt.Fprintln(r.out, "TEAM\tKILLS\tDEATHS\tASSISTS\tGOLD\tCS")
	for _, t := range teams {
		totals, err := r.store.SelectOverallKillInformation(ctx, gameID, t)
		if err != nil {
			return err
		}
		gold, err := r.store.SelectTeamGold(ctx, gameID, t)
		if err != nil {
			return err
		}
		cs, err := r.store.SelectTeamCS(ctx, gameID, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "%d\t%d\t%d\t%d\t%d\t%d\n", t, totals.Kills, totals.Deaths, totals.Assists, gold, cs)
	}

	var kills []db.Kill
	if teamID != 0 {
		kills, err = r.store.SelectKillTimeline(ctx, gameID, teamID)
	} else {
		kills, err = r.store.SelectAllKillTimeline(ctx, gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "\nTIME\tTEAM\tKILLER\tVICTIM\tASSISTS")
	for _, k := range kills {
		fmt.Fprintf(r.out, "%s\t%d\t%s\t%s\t%d\n",
			(time.Duration(k.Timestamp) * time.Millisecond).Round(time.Second),
			k.TeamID, deref(k.KillerID), deref(k.VictimID), len(k.AssistingParticipantIDs))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
