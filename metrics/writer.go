package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type GameRecord struct {
	ID       uuid.UUID
	DeckSize int // Cards per player in the initial deal
	Seed     uint64
	GameMetric
}

func NewGameRecord(deckSize int, seed uint64, metric GameMetric) GameRecord {
	return GameRecord{
		ID:         uuid.New(),
		DeckSize:   deckSize,
		Seed:       seed,
		GameMetric: metric,
	}
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"id", "deck_size", "seed", "variant", "winner", "score", "rounds",
		"sub_games", "shortcuts", "cycles", "max_depth", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID.String(),
			strconv.Itoa(record.DeckSize),
			strconv.FormatUint(record.Seed, 10),
			string(record.Variant),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.SubGames),
			strconv.Itoa(record.Shortcuts),
			strconv.Itoa(record.Cycles),
			strconv.Itoa(record.MaxDepth),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}
