// Command simulate plays seasons headlessly with a simple greedy
// policy, printing the table and the books at each season's end. Useful
// for balance soak runs.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jdlinklater/touchline/internal/config"
	"github.com/jdlinklater/touchline/internal/engine"
	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/sim/squad"
)

func main() {
	seed := flag.Int64("seed", 1, "rng seed")
	seasons := flag.Int("seasons", 3, "seasons to simulate")
	flag.Parse()

	tuning := config.Defaults()
	eng := engine.New(rng.New(*seed), tuning, nil)

	state, err := eng.NewGame(engine.NewGameOptions{
		ClubName:       "Soak Test Wanderers",
		PrimaryColor:   "red",
		SecondaryColor: "white",
	})
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	state = eng.BeginSeason(state)

	fmt.Printf("--- Simulating %d seasons, seed %d ---\n\n", *seasons, *seed)

	for state.CurrentSeason <= *seasons {
		season := state.CurrentSeason

		state = commitTasks(eng, state)

		next, notes, err := eng.AdvanceWeek(state)
		if err != nil {
			log.Fatalf("advance week %d: %v", state.CurrentWeek, err)
		}
		state = next
		for _, n := range notes {
			fmt.Printf("[%s] %s\n", n.Category, n.Title)
		}

		if state.CurrentSeason != season {
			printSeasonEnd(eng, state, season)
		}
	}
}

// commitTasks spends the week's hours top to bottom, skipping anything
// that no longer fits.
func commitTasks(eng *engine.Engine, state models.GameState) models.GameState {
	for _, t := range state.WeeklyTasks {
		next, err := eng.CompleteTask(state, t.ID)
		if err != nil {
			continue
		}
		state = next
	}
	return state
}

func printSeasonEnd(eng *engine.Engine, state models.GameState, season int) {
	fmt.Printf("\n=== End of season %d ===\n", season)

	for _, s := range state.History {
		if s.Season != season {
			continue
		}
		fmt.Printf("Finished %d in %s: P%d W%d D%d L%d, GF%d GA%d, %d pts (%s)\n",
			s.Position, s.LeagueName, s.Played, s.Won, s.Drawn, s.Lost,
			s.GoalsFor, s.GoalsAgainst, s.Points, s.Classification)
	}

	fmt.Printf("Balance: £%d over %d transactions\n", state.Ledger.Balance, len(state.Ledger.Transactions))
	fmt.Printf("Squad: %d players, average morale %d\n\n", len(state.Squad), squad.AverageMorale(state.Squad))
}
