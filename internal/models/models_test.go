package models

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleState() GameState {
	return GameState{
		PlayerClubID: "c1",
		Clubs: []Club{
			{
				ID:               "c1",
				Name:             "Testvale Wanderers",
				PlayerControlled: true,
				Facilities: map[FacilityType]Facility{
					FacilityPitch: {Type: FacilityPitch, Level: 1, Condition: 70},
				},
				Committee: []CommitteeMember{{ID: "m1", Name: "Roy Holt", Role: RoleChair}},
			},
			{ID: "c2", Name: "Beckford Rovers", OverallTeamQuality: 9},
		},
		Leagues: []League{{
			ID:      "lg",
			Name:    "District League",
			ClubIDs: []string{"c1", "c2"},
			Fixtures: []FixtureWeek{{
				Week:    5,
				Matches: []Match{{ID: "m1", Week: 5, HomeID: "c1", AwayID: "c2"}},
			}},
		}},
		Squad: []Player{{
			ID:         "p1",
			Name:       "Sam Kane",
			Position:   PosST,
			Attributes: map[Attribute]int{AttrShooting: 12},
			Status:     PlayerStatus{Morale: 70, Fitness: 100, Injury: InjuryFit},
		}},
		Ledger:        Ledger{Balance: 500},
		CurrentSeason: 1,
		CurrentWeek:   3,
		Phase:         PhaseWeeklyPlanning,
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleState()
	copied := original.Clone()

	copied.Clubs[0].Name = "Renamed"
	copied.Clubs[0].Facilities[FacilityPitch] = Facility{Type: FacilityPitch, Level: 3}
	copied.Squad[0].Attributes[AttrShooting] = 1
	copied.Leagues[0].Fixtures[0].Matches[0].Played = true
	copied.Ledger.Transactions = append(copied.Ledger.Transactions, Transaction{ID: "t1"})

	if original.Clubs[0].Name != "Testvale Wanderers" {
		t.Error("Clone shares club data with the original")
	}
	if original.Clubs[0].Facilities[FacilityPitch].Level != 1 {
		t.Error("Clone shares the facilities map")
	}
	if original.Squad[0].Attributes[AttrShooting] != 12 {
		t.Error("Clone shares player attribute maps")
	}
	if original.Leagues[0].Fixtures[0].Matches[0].Played {
		t.Error("Clone shares fixture slices")
	}
	if len(original.Ledger.Transactions) != 0 {
		t.Error("Clone shares the transaction slice")
	}
}

func TestStateAccessors(t *testing.T) {
	state := sampleState()

	if club := state.PlayerClub(); club == nil || club.ID != "c1" {
		t.Error("PlayerClub did not resolve the managed club")
	}
	if club := state.ClubByID("c2"); club == nil || club.Name != "Beckford Rovers" {
		t.Error("ClubByID did not resolve c2")
	}
	if state.ClubByID("ghost") != nil {
		t.Error("ClubByID should return nil for an unknown id")
	}
	if lg := state.HomeLeague(); lg == nil || lg.ID != "lg" {
		t.Error("HomeLeague did not find the managed club's league")
	}
}

func TestPlayerAttrDefaults(t *testing.T) {
	p := Player{Attributes: map[Attribute]int{AttrPassing: 9}}
	if got := p.Attr(AttrPassing); got != 9 {
		t.Errorf("Attr(passing) = %d, want 9", got)
	}
	if got := p.Attr(AttrShooting); got != 1 {
		t.Errorf("Attr of an unset attribute = %d, want the floor of 1", got)
	}
}

func TestPlayerStatusAvailable(t *testing.T) {
	fit := PlayerStatus{Injury: InjuryFit}
	if !fit.Available() {
		t.Error("Fit unsuspended player should be available")
	}
	if (PlayerStatus{Injury: InjuryMinorKnock}).Available() {
		t.Error("Injured player should not be available")
	}
	if (PlayerStatus{Injury: InjuryFit, Suspended: true}).Available() {
		t.Error("Suspended player should not be available")
	}
}

func TestRecomputeDerived(t *testing.T) {
	s := LeagueStats{Won: 4, Drawn: 2, Lost: 1, GoalsFor: 15, GoalsAgainst: 6}
	s.RecomputeDerived()
	if s.Points != 14 {
		t.Errorf("Points = %d, want 14", s.Points)
	}
	if s.GoalDifference != 9 {
		t.Errorf("GD = %d, want 9", s.GoalDifference)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID("x")
		if seen[id] {
			t.Fatalf("Duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	oldDir := SaveDir
	SaveDir = t.TempDir()
	defer func() { SaveDir = oldDir }()

	state := sampleState()
	if err := state.Save("slot1"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadGame("slot1")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	if loaded.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("Loaded schema version = %d, want %d", loaded.SchemaVersion, CurrentSchemaVersion)
	}
	if loaded.PlayerClubID != "c1" || len(loaded.Clubs) != 2 || len(loaded.Squad) != 1 {
		t.Errorf("Round trip lost data: %+v", loaded)
	}
	if loaded.Squad[0].Attributes[AttrShooting] != 12 {
		t.Error("Player attributes did not survive the round trip")
	}

	slots, err := ListSlots()
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(slots) != 1 || slots[0] != "slot1" {
		t.Errorf("ListSlots = %v, want [slot1]", slots)
	}
}

func TestLoadRejectsUnknownSchemaVersion(t *testing.T) {
	oldDir := SaveDir
	SaveDir = t.TempDir()
	defer func() { SaveDir = oldDir }()

	state := sampleState()
	if err := state.Save("future"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Rewrite the slot with a bumped version.
	loaded, err := LoadGame("future")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}
	loaded.SchemaVersion = CurrentSchemaVersion + 1
	writeRaw(t, *loaded, "future")

	if _, err := LoadGame("future"); err == nil {
		t.Error("Loading a newer schema version should fail")
	}
}

// writeRaw serializes by hand because Save stamps the current version.
func writeRaw(t *testing.T, state GameState, slot string) {
	t.Helper()
	data, err := yaml.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(SaveDir, slot, "state.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
