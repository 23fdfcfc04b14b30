// Package league maintains standings: recording results into per-club
// cumulative stats, sorting the table and running the end-of-season
// placement pass. Everything here is a pure function over the club and
// league collections.
package league

import (
	"log"
	"sort"

	"github.com/jdlinklater/touchline/internal/models"
)

// Table returns the league's member clubs sorted by points, then goal
// difference, then goals for. The sort is stable so ties beyond that
// keep encounter order.
func Table(clubs []models.Club, lg models.League) []models.Club {
	members := make(map[string]bool, len(lg.ClubIDs))
	for _, id := range lg.ClubIDs {
		members[id] = true
	}

	var table []models.Club
	for _, c := range clubs {
		if members[c.ID] {
			table = append(table, c.Clone())
		}
	}

	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i].LeagueStats, table[j].LeagueStats
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	return table
}

// RecordResult folds a final score into both clubs' raw counters and
// recomputes the derived points and goal difference. Returns a new club
// collection; a missing club id logs and leaves everything unchanged.
func RecordResult(clubs []models.Club, homeID, awayID string, homeScore, awayScore int) []models.Club {
	homeIdx, awayIdx := -1, -1
	for i := range clubs {
		switch clubs[i].ID {
		case homeID:
			homeIdx = i
		case awayID:
			awayIdx = i
		}
	}
	if homeIdx < 0 || awayIdx < 0 {
		log.Printf("league: record result: unknown club (home=%q away=%q)", homeID, awayID)
		return clubs
	}

	out := make([]models.Club, len(clubs))
	for i, c := range clubs {
		out[i] = c.Clone()
	}

	home := &out[homeIdx].LeagueStats
	away := &out[awayIdx].LeagueStats

	home.Played++
	away.Played++
	home.GoalsFor += homeScore
	home.GoalsAgainst += awayScore
	away.GoalsFor += awayScore
	away.GoalsAgainst += homeScore

	switch {
	case homeScore > awayScore:
		home.Won++
		away.Lost++
	case homeScore < awayScore:
		home.Lost++
		away.Won++
	default:
		home.Drawn++
		away.Drawn++
	}

	home.RecomputeDerived()
	away.RecomputeDerived()
	return out
}

// MarkMatchPlayed stores the result string on a fixture exactly once.
// Missing league or match ids log and return the input unchanged.
func MarkMatchPlayed(leagues []models.League, leagueID, matchID, result string) []models.League {
	for li := range leagues {
		if leagues[li].ID != leagueID {
			continue
		}
		for wi := range leagues[li].Fixtures {
			for mi := range leagues[li].Fixtures[wi].Matches {
				if leagues[li].Fixtures[wi].Matches[mi].ID != matchID {
					continue
				}
				out := make([]models.League, len(leagues))
				for i, l := range leagues {
					out[i] = l.Clone()
				}
				m := &out[li].Fixtures[wi].Matches[mi]
				if m.Played {
					log.Printf("league: match %q already played", matchID)
					return leagues
				}
				m.Result = result
				m.Played = true
				return out
			}
		}
		log.Printf("league: mark played: no match %q in league %q", matchID, leagueID)
		return leagues
	}
	log.Printf("league: mark played: no league %q", leagueID)
	return leagues
}

// MatchForWeek returns the unplayed fixture involving clubID in the
// given league round week, if any.
func MatchForWeek(lg models.League, clubID string, week int) (models.Match, bool) {
	for _, fw := range lg.Fixtures {
		for _, m := range fw.Matches {
			if m.Played {
				continue
			}
			if m.Week != week {
				continue
			}
			if m.HomeID == clubID || m.AwayID == clubID {
				return m, true
			}
		}
	}
	return models.Match{}, false
}

// EndOfSeason assigns each club its final 1-based position and a
// classification flag. Promotion and relegation are flags only; clubs
// never move between tiers here.
func EndOfSeason(leagues []models.League, clubs []models.Club) []models.Club {
	out := make([]models.Club, len(clubs))
	for i, c := range clubs {
		out[i] = c.Clone()
	}
	index := make(map[string]int, len(out))
	for i := range out {
		index[out[i].ID] = i
	}

	for _, lg := range leagues {
		table := Table(out, lg)
		for rank, row := range table {
			i, ok := index[row.ID]
			if !ok {
				continue
			}
			pos := rank + 1
			out[i].FinalLeaguePosition = pos
			out[i].Classification = classify(lg, pos)
		}
	}
	return out
}

func classify(lg models.League, pos int) string {
	switch {
	case pos == 1 && lg.PromotedTeams >= 1:
		return models.ClassChampions
	case pos <= lg.PromotedTeams:
		return models.ClassPromoted
	case pos > lg.NumTeams-lg.RelegatedTeams:
		return models.ClassRelegated
	default:
		return models.ClassMidTable
	}
}

// Promoted reports whether a classification counts as going up.
func Promoted(classification string) bool {
	return classification == models.ClassChampions || classification == models.ClassPromoted
}
