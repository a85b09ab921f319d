package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/santiagoventura/predraft/advisor"
	"github.com/santiagoventura/predraft/controller"
	"github.com/santiagoventura/predraft/db"
	"github.com/santiagoventura/predraft/model"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	advisorURL := os.Getenv("ADVISOR_URL")
	if advisorURL == "" {
		advisorURL = "http://localhost:8000"
	}

	if len(os.Args) < 2 {
		usage()
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	advisorClient, err := advisor.New(advisorURL)
	if err != nil {
		log.Fatalf("error creating advisor client: %v", err)
	}

	ctrl, err := controller.New(clock, advisorClient, db)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	switch os.Args[1] {
	case "score":
		runScore(ctrl, os.Args[2:])
	case "simulate":
		runSimulate(ctrl, os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [flags]

commands:
  score     calculate fantasy points for every projected player in a league
  simulate  auto-draft with advisor recommendations through a stop round
`, os.Args[0])
	os.Exit(2)
}

func runScore(ctrl controller.C, args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	leagueID := fs.Int("league", 0, "id of the league to score")
	season := fs.Int("season", time.Now().UTC().Year(), "projection season")
	source := fs.String("source", "steamer", "projection source")
	fs.Parse(args)

	if *leagueID == 0 {
		log.Fatalf("-league is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := ctrl.CalculateLeagueScores(ctx, int32(*leagueID), *season, *source, func(pct int, msg string) {
		log.Printf("[%3d%%] %s", pct, msg)
	})
	if err != nil {
		log.Fatalf("error calculating league scores: %v", err)
	}
	log.Printf("scored %d players for league %d (%d %s)", count, *leagueID, *season, *source)
}

func runSimulate(ctrl controller.C, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	draftID := fs.Int("draft", 0, "id of the draft to simulate")
	rounds := fs.Int("rounds", 1, "simulate through this round")
	fs.Parse(args)

	if *draftID == 0 {
		log.Fatalf("-draft is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	made, err := ctrl.SimulateRounds(ctx, int32(*draftID), *rounds, func(pick *model.DraftPick, playerName string) {
		log.Printf("round %d, pick %d (overall %d): %s", pick.Round, pick.PickInRound, pick.OverallPick, playerName)
	})
	if err != nil {
		log.Fatalf("error simulating draft after %d picks: %v", made, err)
	}
	log.Printf("made %d picks in draft %d", made, *draftID)
}
