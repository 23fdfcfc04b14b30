// Package fixtures builds the double round-robin season schedule using
// the circle method: one team stays fixed while the rest rotate each
// round, then a second pass reverses home and away.
package fixtures

import (
	"github.com/jdlinklater/touchline/internal/models"
)

type pairing struct {
	home string
	away string
}

// roundPairings returns the circle-method pairings for one round. ids
// must have even length. Home/away alternates with round and slot
// parity so no team collects a long home or away run.
func roundPairings(ids []string, round int) []pairing {
	n := len(ids)
	rotated := make([]string, 0, n)
	rotated = append(rotated, ids[0])
	for i := 0; i < n-1; i++ {
		rotated = append(rotated, ids[1+(i+round)%(n-1)])
	}

	pairs := make([]pairing, 0, n/2)
	for i := 0; i < n/2; i++ {
		a, b := rotated[i], rotated[n-1-i]
		if (round+i)%2 == 0 {
			pairs = append(pairs, pairing{home: a, away: b})
		} else {
			pairs = append(pairs, pairing{home: b, away: a})
		}
	}
	return pairs
}

// Generate produces the full season's week-blocks for the given teams.
// Odd team counts get a bye placeholder; a pairing against the
// placeholder is recorded as an already-played "BYE" for the real team.
// Round r lands on absolute week preSeasonWeeks + r + 1.
func Generate(teamIDs []string, names map[string]string, season int, competition string, preSeasonWeeks int) []models.FixtureWeek {
	if len(teamIDs) < 2 {
		return nil
	}

	ids := append([]string(nil), teamIDs...)
	if len(ids)%2 != 0 {
		ids = append(ids, models.ByeID)
	}
	rounds := len(ids) - 1

	var weeks []models.FixtureWeek
	for r := 0; r < 2*rounds; r++ {
		pairs := roundPairings(ids, r%rounds)
		secondLeg := r >= rounds
		week := preSeasonWeeks + r + 1

		block := models.FixtureWeek{
			Week:        week,
			Competition: competition,
		}
		for _, pair := range pairs {
			home, away := pair.home, pair.away
			if secondLeg {
				home, away = away, home
			}
			block.Matches = append(block.Matches, buildMatch(home, away, names, week, season, competition))
		}
		weeks = append(weeks, block)
	}
	return weeks
}

func buildMatch(home, away string, names map[string]string, week, season int, competition string) models.Match {
	m := models.Match{
		ID:          models.NewID("match"),
		Week:        week,
		Season:      season,
		Competition: competition,
	}
	if home == models.ByeID || away == models.ByeID {
		real := home
		if real == models.ByeID {
			real = away
		}
		m.HomeID = real
		m.HomeName = names[real]
		m.AwayID = models.ByeID
		m.AwayName = "Bye"
		m.Result = "BYE"
		m.Played = true
		return m
	}
	m.HomeID = home
	m.HomeName = names[home]
	m.AwayID = away
	m.AwayName = names[away]
	return m
}

// RealMatches counts the non-bye fixtures in a schedule.
func RealMatches(weeks []models.FixtureWeek) int {
	count := 0
	for _, w := range weeks {
		for _, m := range w.Matches {
			if m.Result != "BYE" {
				count++
			}
		}
	}
	return count
}
