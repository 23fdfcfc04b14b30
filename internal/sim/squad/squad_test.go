package squad

import (
	"testing"

	"github.com/jdlinklater/touchline/internal/models"
)

func testRoster() []models.Player {
	return []models.Player{
		{ID: "p1", Name: "Tom Holt", Position: models.PosGK,
			Status: models.PlayerStatus{Morale: 70, Fitness: 100, Injury: models.InjuryFit}},
		{ID: "p2", Name: "Sam Kane", Position: models.PosST,
			Status: models.PlayerStatus{Morale: 60, Fitness: 90, Injury: models.InjuryFit}},
		{ID: "p3", Name: "Dan Quinn", Position: models.PosCB,
			Status: models.PlayerStatus{Morale: 50, Fitness: 80, Injury: models.InjuryMinorKnock, InjuryWeeks: 1}},
	}
}

func TestAddStampsClubID(t *testing.T) {
	roster := Add(testRoster(), models.Player{ID: "p4", Name: "Will Ellis"}, "club-x")
	if len(roster) != 4 {
		t.Fatalf("Roster size = %d, want 4", len(roster))
	}
	if roster[3].ClubID != "club-x" {
		t.Errorf("New player club id = %q, want club-x", roster[3].ClubID)
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	roster := testRoster()
	out := Remove(roster, "nobody")
	if len(out) != len(roster) {
		t.Error("Removing an unknown id changed the roster")
	}
}

func TestRemove(t *testing.T) {
	out := Remove(testRoster(), "p2")
	if len(out) != 2 {
		t.Fatalf("Roster size = %d, want 2", len(out))
	}
	if _, ok := Get(out, "p2"); ok {
		t.Error("Removed player still present")
	}
}

func TestAdjustMoraleClamps(t *testing.T) {
	roster := testRoster()

	out := AdjustMorale(roster, "p1", 500)
	if p, _ := Get(out, "p1"); p.Status.Morale != 100 {
		t.Errorf("Morale = %d, want clamped to 100", p.Status.Morale)
	}

	out = AdjustMorale(roster, "p1", -500)
	if p, _ := Get(out, "p1"); p.Status.Morale != 0 {
		t.Errorf("Morale = %d, want clamped to 0", p.Status.Morale)
	}
}

func TestAdjustMoraleDoesNotMutateInput(t *testing.T) {
	roster := testRoster()
	_ = AdjustMorale(roster, "p1", 20)
	if roster[0].Status.Morale != 70 {
		t.Error("AdjustMorale mutated its input")
	}
}

func TestAddSeasonStats(t *testing.T) {
	out := AddSeasonStats(testRoster(), "p2", StatDeltas{Appearances: 1, Goals: 2, YellowCards: 1})
	p, _ := Get(out, "p2")
	if p.SeasonStats.Appearances != 1 || p.SeasonStats.Goals != 2 || p.SeasonStats.YellowCards != 1 {
		t.Errorf("Stats not applied: %+v", p.SeasonStats)
	}
}

func TestResetSeason(t *testing.T) {
	roster := testRoster()
	roster[1].SeasonStats = models.PlayerSeasonStats{Appearances: 20, Goals: 11}
	roster[1].Status.Suspended = true
	roster[1].Status.SuspensionGames = 1

	out := ResetSeason(roster)
	for _, p := range out {
		if p.SeasonStats != (models.PlayerSeasonStats{}) {
			t.Errorf("%s still carries season stats: %+v", p.Name, p.SeasonStats)
		}
		if p.Status.Fitness != 100 {
			t.Errorf("%s fitness = %d, want 100", p.Name, p.Status.Fitness)
		}
		if p.Status.Injury != models.InjuryFit || p.Status.InjuryWeeks != 0 {
			t.Errorf("%s still injured after reset", p.Name)
		}
		if p.Status.Suspended || p.Status.SuspensionGames != 0 {
			t.Errorf("%s still suspended after reset", p.Name)
		}
	}
}

func TestAvailableExcludesInjuredAndSuspended(t *testing.T) {
	roster := testRoster()
	roster[0].Status.Suspended = true

	fit := Available(roster)
	if len(fit) != 1 || fit[0].ID != "p2" {
		t.Errorf("Available = %v, want just p2", ids(fit))
	}
}

func TestAverageMorale(t *testing.T) {
	if got := AverageMorale(nil); got != 50 {
		t.Errorf("Empty squad morale = %d, want the neutral 50", got)
	}
	if got := AverageMorale(testRoster()); got != 60 {
		t.Errorf("AverageMorale = %d, want 60", got)
	}
}

func ids(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}
