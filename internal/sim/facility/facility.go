// Package facility models the club's ground: per-facility level, grade
// and condition, the upgrade cost curve and grade regression.
package facility

import (
	"errors"

	"github.com/jdlinklater/touchline/internal/models"
)

// MaxLevel caps facility upgrades.
const MaxLevel = 5

// DegradeThreshold is the condition below which a facility is unusable.
const DegradeThreshold = 20

// DegradeWeeks is how many consecutive weeks below 50% condition cost a
// facility one level.
const DegradeWeeks = 4

// BaseCapacity is the ground capacity with no covered stand.
const BaseCapacity = 50

// TicketPrice is the flat gate price when turnstiles are built.
const TicketPrice = 3

// ErrMaxLevel signals an upgrade attempt on a fully developed facility.
var ErrMaxLevel = errors.New("facility already at maximum level")

// grades indexes letter grades by level; level 0 is unbuilt.
var grades = []string{"N/A", "E", "D", "C", "B", "A"}

// statusLabels gives the per-type human label for each level.
var statusLabels = map[models.FacilityType][]string{
	models.FacilityPitch: {
		"No pitch", "Rough parkland", "Mown and marked", "Well-kept grass",
		"Quality surface", "Immaculate turf",
	},
	models.FacilityChangingRooms: {
		"None", "Portacabin", "Basic block", "Heated block",
		"Modern rooms", "Pro-standard rooms",
	},
	models.FacilityToilets: {
		"None", "Portaloo", "Basic toilets", "Maintained toilets",
		"Modern facilities", "Premium facilities",
	},
	models.FacilitySnackBar: {
		"None", "Tea urn table", "Serving hatch", "Snack kiosk",
		"Catering cabin", "Full clubhouse bar",
	},
	models.FacilityCoveredStand: {
		"None", "Lean-to shelter", "Small stand", "Seated stand",
		"Covered terrace", "Main stand",
	},
	models.FacilityTurnstiles: {
		"None", "Honesty bucket", "Gate table", "Single turnstile",
		"Twin turnstiles", "Full turnstile block",
	},
}

// standCapacityPerLevel is the covered stand's capacity contribution.
const standCapacityPerLevel = 40

// baseUpgradeCosts per facility type at level 0.
var baseUpgradeCosts = map[models.FacilityType]int{
	models.FacilityPitch:         300,
	models.FacilityChangingRooms: 250,
	models.FacilityToilets:       150,
	models.FacilitySnackBar:      200,
	models.FacilityCoveredStand:  400,
	models.FacilityTurnstiles:    180,
}

// maintenanceRates per facility type, charged weekly per level.
var maintenanceRates = map[models.FacilityType]int{
	models.FacilityPitch:         12,
	models.FacilityChangingRooms: 8,
	models.FacilityToilets:       5,
	models.FacilitySnackBar:      6,
	models.FacilityCoveredStand:  10,
	models.FacilityTurnstiles:    4,
}

// GradeForLevel returns the letter grade for a level, "N/A" when unbuilt.
func GradeForLevel(level int) string {
	if level < 0 || level >= len(grades) {
		return grades[len(grades)-1]
	}
	return grades[level]
}

// StatusForLevel returns the per-type label for a level.
func StatusForLevel(ftype models.FacilityType, level int) string {
	labels, ok := statusLabels[ftype]
	if !ok || level < 0 {
		return ""
	}
	if level >= len(labels) {
		level = len(labels) - 1
	}
	return labels[level]
}

// UpgradeCost applies the shared curve: base * 1.5^level.
func UpgradeCost(base, level int) int {
	cost := float64(base)
	for i := 0; i < level; i++ {
		cost *= 1.5
	}
	return int(cost)
}

// New returns a facility of the given type at the given level.
func New(ftype models.FacilityType, level int) models.Facility {
	base := baseUpgradeCosts[ftype]
	f := models.Facility{
		Type:            ftype,
		Level:           level,
		Grade:           GradeForLevel(level),
		Status:          StatusForLevel(ftype, level),
		MaxCondition:    100,
		BaseUpgradeCost: base,
		UpgradeCost:     UpgradeCost(base, level),
		Maintenance:     maintenanceRates[ftype],
	}
	if level > 0 {
		f.Condition = 70
		f.Usable = true
	}
	return f
}

// DefaultSet is the founding ground: a pitch and changing rooms at level
// one, everything else unbuilt.
func DefaultSet() map[models.FacilityType]models.Facility {
	set := make(map[models.FacilityType]models.Facility, len(models.FacilityTypes))
	for _, ftype := range models.FacilityTypes {
		level := 0
		if ftype == models.FacilityPitch || ftype == models.FacilityChangingRooms {
			level = 1
		}
		set[ftype] = New(ftype, level)
	}
	return set
}

// Upgrade raises the level by one, recomputing grade, status label and
// cost, and grants a +20 condition bump capped at max. At MaxLevel it
// returns the facility unchanged with ErrMaxLevel.
func Upgrade(f models.Facility) (models.Facility, error) {
	if f.Level >= MaxLevel {
		return f, ErrMaxLevel
	}
	f.Level++
	f.Grade = GradeForLevel(f.Level)
	f.Status = StatusForLevel(f.Type, f.Level)
	f.UpgradeCost = UpgradeCost(f.BaseUpgradeCost, f.Level)
	f.Usable = true
	f.Condition += 20
	if f.Condition > f.MaxCondition {
		f.Condition = f.MaxCondition
	}
	return f, nil
}

// AdjustCondition applies a delta, clamping into [0, MaxCondition] and
// maintaining usability and the below-50% week counter. Unbuilt
// facilities are untouched.
func AdjustCondition(f models.Facility, delta int) models.Facility {
	if f.Level == 0 {
		return f
	}
	f.Condition += delta
	if f.Condition < 0 {
		f.Condition = 0
	}
	if f.Condition > f.MaxCondition {
		f.Condition = f.MaxCondition
	}
	f.Usable = f.Condition >= DegradeThreshold
	if f.Condition < 50 {
		f.WeeksBelow50++
	} else {
		f.WeeksBelow50 = 0
	}
	return f
}

// DegradeGrade drops a neglected facility one level once it has spent
// DegradeWeeks consecutive weeks below half condition. Level never falls
// below one for a built facility.
func DegradeGrade(f models.Facility) models.Facility {
	if f.Level <= 1 || f.WeeksBelow50 < DegradeWeeks {
		return f
	}
	f.Level--
	f.Grade = GradeForLevel(f.Level)
	f.Status = StatusForLevel(f.Type, f.Level)
	f.UpgradeCost = UpgradeCost(f.BaseUpgradeCost, f.Level)
	f.WeeksBelow50 = 0
	return f
}

// Capacity is the ground capacity: a base figure plus the covered
// stand's contribution per level.
func Capacity(set map[models.FacilityType]models.Facility) int {
	capacity := BaseCapacity
	if stand, ok := set[models.FacilityCoveredStand]; ok {
		capacity += stand.Level * standCapacityPerLevel
	}
	return capacity
}

// WeeklyMaintenance sums level x per-type rate over built facilities.
func WeeklyMaintenance(set map[models.FacilityType]models.Facility) int {
	total := 0
	for _, ftype := range models.FacilityTypes {
		f, ok := set[ftype]
		if !ok || f.Level == 0 {
			continue
		}
		total += f.Level * f.Maintenance
	}
	return total
}

// MatchDayRevenue is snack bar takings scaled by level and fanbase plus
// gate money when turnstiles are built.
func MatchDayRevenue(set map[models.FacilityType]models.Facility, fanbase int) int {
	revenue := 0
	if bar, ok := set[models.FacilitySnackBar]; ok && bar.Level > 0 {
		revenue += bar.Level * fanbase / 10
	}
	if gates, ok := set[models.FacilityTurnstiles]; ok && gates.Level > 0 {
		attendance := fanbase
		if capacity := Capacity(set); attendance > capacity {
			attendance = capacity
		}
		revenue += attendance * TicketPrice
	}
	return revenue
}
