package experiments

import (
	"combat/engine"
	"combat/game"
	"combat/meta"
	"combat/metrics"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunDealExperiment plays both variants on seeded random deals of every size
// in meta.DEAL_SIZES and stores the game records.
func RunDealExperiment() {
	_, err := runExperiment(meta.EXPERIMENTS_DIR, "deal", meta.DEAL_SIZES, meta.GAMES_PER_SIZE)
	if err != nil {
		panic(fmt.Sprintf("deal experiment failed: %v", err))
	}
}

func runExperiment(root, name string, sizes []int, numGames int) ([]metrics.GameRecord, error) {
	gameRecords := []metrics.GameRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for si, size := range sizes {
		log.Info().Msgf("starting deck size %d of %d with %d cards per player...", si+1, len(sizes), size)

		for i := 0; i < numGames; i++ {
			seed := uint64(size*numGames + i)
			p1, p2 := game.Deal(size, seed)
			e := engine.LocalEngine(p1, p2)

			for _, play := range []func() (engine.Report, error){e.PlaySimple, e.PlayRecursive} {
				report, err := play()
				if errors.Is(err, game.ErrEndlessGame) {
					log.Warn().Msgf("skipping endless game for seed %d: %v", seed, err)
					continue
				}
				if err != nil {
					return nil, fmt.Errorf("seed %d: %w", seed, err)
				}
				gameRecords = append(gameRecords, metrics.NewGameRecord(size, seed, report.Metric))
			}
		}
		log.Info().Msgf("completed deck size %d of %d", si+1, len(sizes))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, err
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return nil, err
	}
	log.Info().Msgf("stored %d game records in %s", len(gameRecords), writer.Dir())

	return gameRecords, nil
}
