package engine

import (
	"fmt"
	"strings"

	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/facility"
	"github.com/jdlinklater/touchline/internal/sim/finance"
	"github.com/jdlinklater/touchline/internal/sim/gen"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/sim/squad"
)

type eventFn func(e *Engine, state models.GameState) (models.GameState, Notification, bool)

// Low-drama events for a low-league club: weather, volunteers, the
// local paper, broken kit, knocks and the odd bit of luck.
var eventTable = []eventFn{
	eventStormDamage,
	eventVolunteerJoins,
	eventLocalPress,
	eventEquipmentBreakdown,
	eventPlayerKnock,
	eventWindfall,
}

// randomEvent rolls one event off the table. An event that finds no
// target this week is skipped rather than re-rolled.
func (e *Engine) randomEvent(state models.GameState, notes []Notification) (models.GameState, []Notification) {
	fn := rng.Pick(e.src, eventTable)
	out, note, ok := fn(e, state)
	if !ok {
		return state, notes
	}
	e.pushMessage(&out, "event", note.Body)
	return out, append(notes, note)
}

// eventStormDamage batters a built facility and charges an emergency
// callout.
func eventStormDamage(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	club := out.PlayerClub()
	if club == nil {
		return state, Notification{}, false
	}

	var built []models.FacilityType
	for _, ftype := range models.FacilityTypes {
		if f, ok := club.Facilities[ftype]; ok && f.Level > 0 {
			built = append(built, ftype)
		}
	}
	if len(built) == 0 {
		return state, Notification{}, false
	}

	target := rng.Pick(e.src, built)
	f := club.Facilities[target]
	damage := e.src.Between(15, 35)
	club.Facilities[target] = facility.AdjustCondition(f, -damage)

	cost := e.src.Between(10, 40)
	out.Ledger = finance.Add(out.Ledger, -cost, models.TxRepair,
		fmt.Sprintf("Storm damage to the %s", target), out.CurrentSeason, out.CurrentWeek)

	body := fmt.Sprintf("A storm rolled through overnight and battered the %s. Emergency callout cost £%d.", target, cost)
	return out, Notification{Category: "event", Title: "Storm damage", Body: body}, true
}

// eventVolunteerJoins adds a new committee member in an unfilled role.
func eventVolunteerJoins(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	club := out.PlayerClub()
	if club == nil {
		return state, Notification{}, false
	}

	filled := map[models.CommitteeRole]bool{}
	for _, m := range club.Committee {
		filled[m.Role] = true
	}
	var open []models.CommitteeRole
	for _, role := range models.CommitteeRoles {
		if !filled[role] {
			open = append(open, role)
		}
	}
	if len(open) == 0 {
		return state, Notification{}, false
	}

	member := gen.CommitteeMember(e.src, rng.Pick(e.src, open))
	club.Committee = append(club.Committee, member)

	body := fmt.Sprintf("%s turned up at training and offered to be the new %s. Welcome aboard.", member.Name, member.Role)
	return out, Notification{Category: "event", Title: "A new volunteer", Body: body}, true
}

// eventLocalPress is a coin flip between a puff piece and a hatchet job.
func eventLocalPress(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	club := out.PlayerClub()
	if club == nil {
		return state, Notification{}, false
	}

	var body string
	if e.src.Chance(50) {
		club.Reputation = clampInt(club.Reputation+e.src.Between(1, 3), 0, 100)
		club.Fanbase += e.src.Between(2, 8)
		body = "The local paper ran a glowing piece on the club. A few new faces expected at the next home game."
	} else {
		club.Reputation = clampInt(club.Reputation-e.src.Between(1, 3), 0, 100)
		body = "The local paper had a dig at the state of the ground. Not the coverage anyone wanted."
	}
	return out, Notification{Category: "event", Title: "In the paper", Body: body}, true
}

// eventEquipmentBreakdown is a small unavoidable expense.
func eventEquipmentBreakdown(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	items := []string{"the line marker", "the training goals", "the kit washing machine", "the mower"}
	item := rng.Pick(e.src, items)
	cost := e.src.Between(15, 50)
	out.Ledger = finance.Add(out.Ledger, -cost, models.TxMisc,
		fmt.Sprintf("Replacing %s", item), out.CurrentSeason, out.CurrentWeek)

	body := fmt.Sprintf("%s has given up for good. Replacement cost £%d.", capitalizeFirst(item), cost)
	return out, Notification{Category: "event", Title: "Equipment breakdown", Body: body}, true
}

// eventPlayerKnock sidelines a random fit player for a couple of weeks.
func eventPlayerKnock(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	fit := squad.Available(out.Squad)
	if len(fit) == 0 {
		return state, Notification{}, false
	}

	victim := rng.Pick(e.src, fit)
	weeks := e.src.Between(1, 2)
	for i := range out.Squad {
		if out.Squad[i].ID == victim.ID {
			out.Squad[i].Status.Injury = models.InjuryMinorKnock
			out.Squad[i].Status.InjuryWeeks = weeks
			break
		}
	}

	body := fmt.Sprintf("%s picked up a knock in training and will sit out around %d week(s).", victim.Name, weeks)
	return out, Notification{Category: "event", Title: "Training knock", Body: body}, true
}

// eventWindfall is a small one-off donation.
func eventWindfall(e *Engine, state models.GameState) (models.GameState, Notification, bool) {
	out := state
	amount := e.src.Between(20, 80)
	sources := []string{
		"An anonymous well-wisher dropped an envelope through the clubhouse door",
		"The pub quiz raised a surprise sum for the club",
		"A former player sent a donation with a nice letter",
	}
	source := rng.Pick(e.src, sources)
	out.Ledger = finance.Add(out.Ledger, amount, models.TxGrant,
		"One-off donation", out.CurrentSeason, out.CurrentWeek)

	body := fmt.Sprintf("%s. £%d to the good.", source, amount)
	return out, Notification{Category: "event", Title: "A bit of luck", Body: body}, true
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
