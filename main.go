package main

import (
	"combat/engine"
	"combat/experiments"
	"combat/input"
	"combat/meta"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := meta.INPUT_FILE
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "experiment" {
		experiments.RunDealExperiment()
		return
	}

	if err := run(path); err != nil {
		log.Fatal().Err(err).Msg("combat failed")
	}
}

func run(path string) error {
	player1, player2, err := input.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := engine.LocalEngine(player1, player2).Run()
	if err != nil {
		return err
	}

	fmt.Printf("part 1: %d\n", result.Simple.Score)
	fmt.Printf("part 2: %d\n", result.Recursive.Score)
	return nil
}
