// meta/meta.go
package meta

// INPUT_FILE is the deck file read when no path is given on the command line.
const INPUT_FILE = "input.txt"

// MAX_CARD_VALUE bounds the card values accepted by the engines.
const MAX_CARD_VALUE = 1 << 16

// DEAL_SIZES are the per-player deck sizes dealt by the experiment runner.
var DEAL_SIZES = []int{5, 10, 15, 25}

// GAMES_PER_SIZE defines the number of seeded deals per deck size.
const GAMES_PER_SIZE = 20

// EXPERIMENTS_DIR is where experiment records are stored.
const EXPERIMENTS_DIR = "experiments"
