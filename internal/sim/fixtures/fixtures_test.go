package fixtures

import (
	"fmt"
	"testing"

	"github.com/jdlinklater/touchline/internal/models"
)

func teamIDs(n int) ([]string, map[string]string) {
	ids := make([]string, 0, n)
	names := make(map[string]string, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("club-%d", i)
		ids = append(ids, id)
		names[id] = fmt.Sprintf("Club %d", i)
	}
	return ids, names
}

func TestGenerateTwelveTeams(t *testing.T) {
	ids, names := teamIDs(12)
	weeks := Generate(ids, names, 1, "Test League", 4)

	if len(weeks) != 22 {
		t.Fatalf("Expected 22 rounds for 12 teams, got %d", len(weeks))
	}

	seen := map[string]bool{}
	total := 0
	for i, fw := range weeks {
		wantWeek := 4 + i + 1
		if fw.Week != wantWeek {
			t.Errorf("Round %d landed on week %d, want %d", i, fw.Week, wantWeek)
		}
		if len(fw.Matches) != 6 {
			t.Errorf("Round %d has %d matches, want 6", i, len(fw.Matches))
		}

		inRound := map[string]bool{}
		for _, m := range fw.Matches {
			total++
			pair := m.HomeID + "|" + m.AwayID
			if seen[pair] {
				t.Errorf("Ordered pair %s scheduled twice", pair)
			}
			seen[pair] = true
			if inRound[m.HomeID] || inRound[m.AwayID] {
				t.Errorf("Round %d uses a team twice", i)
			}
			inRound[m.HomeID] = true
			inRound[m.AwayID] = true
		}
	}

	if total != 132 {
		t.Errorf("Expected 132 matches in a 12-team double round robin, got %d", total)
	}
	if got := RealMatches(weeks); got != 132 {
		t.Errorf("RealMatches = %d, want 132", got)
	}
}

func TestGenerateEachTeamHostsEachOpponentOnce(t *testing.T) {
	ids, names := teamIDs(6)
	weeks := Generate(ids, names, 1, "Test League", 0)

	hosted := map[string]int{}
	for _, fw := range weeks {
		for _, m := range fw.Matches {
			hosted[m.HomeID+"|"+m.AwayID]++
		}
	}
	for _, home := range ids {
		for _, away := range ids {
			if home == away {
				continue
			}
			if got := hosted[home+"|"+away]; got != 1 {
				t.Errorf("%s hosted %s %d times, want exactly once", home, away, got)
			}
		}
	}
}

func TestGenerateOddTeamCountGetsByes(t *testing.T) {
	ids, names := teamIDs(11)
	weeks := Generate(ids, names, 1, "Test League", 2)

	if len(weeks) != 22 {
		t.Fatalf("Expected 22 rounds for 11 teams with a bye, got %d", len(weeks))
	}

	byesPerTeam := map[string]int{}
	for _, fw := range weeks {
		byes := 0
		for _, m := range fw.Matches {
			if m.Result == "BYE" {
				byes++
				if !m.Played {
					t.Error("Bye fixture should be marked played")
				}
				if m.AwayID != models.ByeID {
					t.Errorf("Bye fixture away side = %q, want placeholder", m.AwayID)
				}
				byesPerTeam[m.HomeID]++
			}
		}
		if byes != 1 {
			t.Errorf("Week %d has %d byes, want 1", fw.Week, byes)
		}
	}
	for _, id := range ids {
		if byesPerTeam[id] != 2 {
			t.Errorf("%s got %d byes, want 2 over the double round robin", id, byesPerTeam[id])
		}
	}

	if got := RealMatches(weeks); got != 110 {
		t.Errorf("RealMatches = %d, want 110", got)
	}
}

func TestGenerateTooFewTeams(t *testing.T) {
	if weeks := Generate([]string{"only"}, nil, 1, "x", 0); weeks != nil {
		t.Errorf("Expected nil schedule for one team, got %d weeks", len(weeks))
	}
}
