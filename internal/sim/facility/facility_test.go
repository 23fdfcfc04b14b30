package facility

import (
	"errors"
	"testing"

	"github.com/jdlinklater/touchline/internal/models"
)

func TestUpgradeCostCurve(t *testing.T) {
	cases := []struct {
		base, level, want int
	}{
		{200, 0, 200},
		{200, 1, 300},
		{200, 2, 450},
		{200, 3, 675},
		{300, 2, 675},
	}
	for _, c := range cases {
		if got := UpgradeCost(c.base, c.level); got != c.want {
			t.Errorf("UpgradeCost(%d, %d) = %d, want %d", c.base, c.level, got, c.want)
		}
	}
}

func TestGradeForLevel(t *testing.T) {
	want := []string{"N/A", "E", "D", "C", "B", "A"}
	for level, grade := range want {
		if got := GradeForLevel(level); got != grade {
			t.Errorf("GradeForLevel(%d) = %q, want %q", level, got, grade)
		}
	}
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet()
	if len(set) != len(models.FacilityTypes) {
		t.Fatalf("DefaultSet has %d entries, want %d", len(set), len(models.FacilityTypes))
	}
	if set[models.FacilityPitch].Level != 1 || set[models.FacilityChangingRooms].Level != 1 {
		t.Error("A new club starts with a pitch and changing rooms at level one")
	}
	if set[models.FacilitySnackBar].Level != 0 {
		t.Error("Snack bar should start unbuilt")
	}
	if set[models.FacilitySnackBar].Grade != "N/A" || set[models.FacilitySnackBar].Usable {
		t.Error("Unbuilt facility should be ungraded and unusable")
	}
}

func TestUpgradeAtMaxLevel(t *testing.T) {
	f := New(models.FacilityPitch, MaxLevel)
	_, err := Upgrade(f)
	if !errors.Is(err, ErrMaxLevel) {
		t.Errorf("Upgrade at max level returned %v, want ErrMaxLevel", err)
	}
}

func TestUpgradeRaisesLevelAndCondition(t *testing.T) {
	f := New(models.FacilityToilets, 1)
	f.Condition = 95

	up, err := Upgrade(f)
	if err != nil {
		t.Fatalf("Upgrade failed: %v", err)
	}
	if up.Level != 2 || up.Grade != "D" {
		t.Errorf("Upgraded to level %d grade %q, want 2/D", up.Level, up.Grade)
	}
	if up.Condition != 100 {
		t.Errorf("Condition = %d, want capped at 100", up.Condition)
	}
	if up.UpgradeCost != UpgradeCost(f.BaseUpgradeCost, 2) {
		t.Errorf("Next upgrade cost = %d, want %d", up.UpgradeCost, UpgradeCost(f.BaseUpgradeCost, 2))
	}
}

func TestAdjustConditionClampsAndTracksUsability(t *testing.T) {
	f := New(models.FacilityPitch, 2)

	f = AdjustCondition(f, -200)
	if f.Condition != 0 {
		t.Errorf("Condition = %d, want clamped to 0", f.Condition)
	}
	if f.Usable {
		t.Error("Facility below the usability threshold should be unusable")
	}

	f = AdjustCondition(f, 500)
	if f.Condition != f.MaxCondition {
		t.Errorf("Condition = %d, want clamped to max %d", f.Condition, f.MaxCondition)
	}
	if !f.Usable {
		t.Error("Facility at full condition should be usable")
	}
}

func TestAdjustConditionIgnoresUnbuilt(t *testing.T) {
	f := New(models.FacilityTurnstiles, 0)
	out := AdjustCondition(f, -50)
	if out != f {
		t.Error("Unbuilt facility should be untouched by condition changes")
	}
}

func TestDegradeGradeAfterNeglect(t *testing.T) {
	f := New(models.FacilityCoveredStand, 3)
	f.Condition = 45

	// Four straight weeks under half condition.
	for i := 0; i < DegradeWeeks; i++ {
		f = AdjustCondition(f, -10)
		f = DegradeGrade(f)
	}

	if f.Level != 2 {
		t.Errorf("Level = %d after %d weeks of neglect, want 2", f.Level, DegradeWeeks)
	}
	if f.WeeksBelow50 != 0 {
		t.Errorf("Neglect counter = %d after a degrade, want reset to 0", f.WeeksBelow50)
	}
}

func TestDegradeGradeNeverBelowLevelOne(t *testing.T) {
	f := New(models.FacilityPitch, 1)
	f.Condition = 10
	f.WeeksBelow50 = DegradeWeeks + 2
	if out := DegradeGrade(f); out.Level != 1 {
		t.Errorf("Level = %d, built facility should never degrade below 1", out.Level)
	}
}

func TestRecoveryResetsNeglectCounter(t *testing.T) {
	f := New(models.FacilityPitch, 2)
	f.Condition = 45
	f = AdjustCondition(f, -5)
	if f.WeeksBelow50 != 1 {
		t.Fatalf("Counter = %d, want 1", f.WeeksBelow50)
	}
	f = AdjustCondition(f, 30)
	if f.WeeksBelow50 != 0 {
		t.Errorf("Counter = %d after recovery, want 0", f.WeeksBelow50)
	}
}

func TestWeeklyMaintenance(t *testing.T) {
	set := DefaultSet()
	// Pitch level 1 at 12 plus changing rooms level 1 at 8.
	if got := WeeklyMaintenance(set); got != 20 {
		t.Errorf("WeeklyMaintenance = %d, want 20", got)
	}
}

func TestCapacity(t *testing.T) {
	set := DefaultSet()
	if got := Capacity(set); got != BaseCapacity {
		t.Errorf("Capacity with no stand = %d, want %d", got, BaseCapacity)
	}
	set[models.FacilityCoveredStand] = New(models.FacilityCoveredStand, 2)
	if got := Capacity(set); got != BaseCapacity+2*standCapacityPerLevel {
		t.Errorf("Capacity with level 2 stand = %d, want %d", got, BaseCapacity+2*standCapacityPerLevel)
	}
}

func TestMatchDayRevenue(t *testing.T) {
	set := DefaultSet()
	if got := MatchDayRevenue(set, 80); got != 0 {
		t.Errorf("Revenue with no bar or turnstiles = %d, want 0", got)
	}

	set[models.FacilitySnackBar] = New(models.FacilitySnackBar, 2)
	if got := MatchDayRevenue(set, 80); got != 16 {
		t.Errorf("Bar-only revenue = %d, want 16", got)
	}

	set[models.FacilityTurnstiles] = New(models.FacilityTurnstiles, 1)
	// Fanbase 80 exceeds the 50 capacity, so the gate sells out.
	if got := MatchDayRevenue(set, 80); got != 16+BaseCapacity*TicketPrice {
		t.Errorf("Full revenue = %d, want %d", got, 16+BaseCapacity*TicketPrice)
	}
}
