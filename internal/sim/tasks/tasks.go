// Package tasks generates the week's volunteer jobs from the current
// state of the club and applies their typed effects. Tasks live for one
// week only; the engine regenerates them at the end of every tick.
package tasks

import (
	"fmt"

	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/facility"
	"github.com/jdlinklater/touchline/internal/sim/finance"
	"github.com/jdlinklater/touchline/internal/sim/gen"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/sim/squad"
)

type taskDef struct {
	kind         models.TaskKind
	description  string
	baseHours    int
	requiredRole models.CommitteeRole
}

var taskDefs = map[models.TaskKind]taskDef{
	models.TaskPitchMaintenance: {
		kind:         models.TaskPitchMaintenance,
		description:  "Cut, roll and mark the pitch",
		baseHours:    6,
		requiredRole: models.RoleHeadGroundsman,
	},
	models.TaskFacilityRepair: {
		kind:         models.TaskFacilityRepair,
		description:  "Patch up the worst of the ground",
		baseHours:    8,
		requiredRole: models.RoleHeadGroundsman,
	},
	models.TaskFundraising: {
		kind:         models.TaskFundraising,
		description:  "Run a raffle and a bucket collection",
		baseHours:    5,
		requiredRole: models.RoleTreasurer,
	},
	models.TaskSponsorSearch: {
		kind:         models.TaskSponsorSearch,
		description:  "Knock on doors for a shirt sponsor",
		baseHours:    7,
		requiredRole: models.RoleTreasurer,
	},
	models.TaskCommunityOutreach: {
		kind:         models.TaskCommunityOutreach,
		description:  "Put on a community open day",
		baseHours:    6,
		requiredRole: models.RoleSocialSecretary,
	},
	models.TaskAdminPaperwork: {
		kind:         models.TaskAdminPaperwork,
		description:  "Clear the league paperwork backlog",
		baseHours:    4,
		requiredRole: models.RoleSecretary,
	},
	models.TaskRecruitPlayers: {
		kind:         models.TaskRecruitPlayers,
		description:  "Scout the local Sunday leagues for a player",
		baseHours:    8,
		requiredRole: models.RolePlayerRep,
	},
	models.TaskOrganizeSocial: {
		kind:         models.TaskOrganizeSocial,
		description:  "Organise a club social night",
		baseHours:    5,
		requiredRole: models.RoleSocialSecretary,
	},
}

// EffectiveHours reduces a task's base hours when the required committee
// role is filled, in proportion to that member's work ethic. Never
// below one hour.
func EffectiveHours(def models.WeeklyTask, committee []models.CommitteeMember) int {
	hours := def.BaseHours
	if def.RequiredRole != "" {
		for _, m := range committee {
			if m.Role == def.RequiredRole {
				hours -= def.BaseHours * m.Skills.WorkEthic / 40
				break
			}
		}
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}

func build(kind models.TaskKind) models.WeeklyTask {
	def := taskDefs[kind]
	return models.WeeklyTask{
		ID:           models.NewID("task"),
		Kind:         def.kind,
		Description:  def.description,
		BaseHours:    def.baseHours,
		RequiredRole: def.requiredRole,
	}
}

// GenerateWeekly derives this week's task list from facility condition,
// squad size and morale. Some jobs are always on the list.
func GenerateWeekly(state models.GameState) []models.WeeklyTask {
	out := []models.WeeklyTask{
		build(models.TaskPitchMaintenance),
		build(models.TaskFundraising),
		build(models.TaskAdminPaperwork),
	}

	club := state.PlayerClub()
	if club != nil {
		for _, ftype := range models.FacilityTypes {
			if f, ok := club.Facilities[ftype]; ok && f.Level > 0 && f.Condition < 50 {
				out = append(out, build(models.TaskFacilityRepair))
				break
			}
		}
	}
	out = append(out, build(models.TaskSponsorSearch), build(models.TaskCommunityOutreach))
	if len(state.Squad) < 14 {
		out = append(out, build(models.TaskRecruitPlayers))
	}
	if squad.AverageMorale(state.Squad) < 60 {
		out = append(out, build(models.TaskOrganizeSocial))
	}
	return out
}

// Apply runs one task's effect against the state and returns the new
// state plus a news message. Unknown kinds are a logged no-op upstream;
// here every kind carries its own typed effect.
func Apply(state models.GameState, task models.WeeklyTask, src *rng.Source) (models.GameState, string) {
	out := state.Clone()
	club := out.PlayerClub()
	if club == nil {
		return state, "Task skipped: no club to apply it to."
	}

	switch task.Kind {
	case models.TaskPitchMaintenance:
		boost := src.Between(15, 25)
		pitch := club.Facilities[models.FacilityPitch]
		club.Facilities[models.FacilityPitch] = facility.AdjustCondition(pitch, boost)
		return out, fmt.Sprintf("Pitch maintenance done: condition up %d points.", boost)

	case models.TaskFacilityRepair:
		worst, found := worstFacility(club)
		if !found {
			return out, "Repair crew found nothing worth fixing."
		}
		boost := src.Between(20, 30)
		cost := -src.Between(20, 60)
		club.Facilities[worst.Type] = facility.AdjustCondition(worst, boost)
		out.Ledger = finance.Add(out.Ledger, cost, models.TxRepair,
			fmt.Sprintf("Materials for %s repair", worst.Type), out.CurrentSeason, out.CurrentWeek)
		return out, fmt.Sprintf("%s repaired (+%d condition) for £%d in materials.", worst.Type, boost, -cost)

	case models.TaskFundraising:
		raised := src.Between(30, 90)
		out.Ledger = finance.Add(out.Ledger, raised, models.TxFundraising,
			"Raffle and bucket collection", out.CurrentSeason, out.CurrentWeek)
		return out, fmt.Sprintf("Fundraising brought in £%d.", raised)

	case models.TaskSponsorSearch:
		if !src.Chance(50) {
			return out, "No luck finding a sponsor this week."
		}
		amount := src.Between(50, 150)
		out.Ledger = finance.Add(out.Ledger, amount, models.TxSponsorship,
			"Local sponsorship deal", out.CurrentSeason, out.CurrentWeek)
		return out, fmt.Sprintf("A local firm signed a £%d sponsorship deal.", amount)

	case models.TaskCommunityOutreach:
		gained := src.Between(3, 10)
		club.Fanbase += gained
		club.Reputation++
		return out, fmt.Sprintf("Open day a success: %d new regulars on the touchline.", gained)

	case models.TaskAdminPaperwork:
		for i := range club.Committee {
			if club.Committee[i].Personality.Satisfaction < 20 {
				club.Committee[i].Personality.Satisfaction++
			}
		}
		return out, "League paperwork filed on time. The committee approves."

	case models.TaskRecruitPlayers:
		tier := clamp(club.Reputation/10, 1, 8)
		recruit := gen.Player(src, "", tier)
		out.Squad = squad.Add(out.Squad, recruit, club.ID)
		return out, fmt.Sprintf("Signed %s (%s) from the Sunday leagues.", recruit.Name, recruit.Position)

	case models.TaskOrganizeSocial:
		lift := src.Between(3, 8)
		out.Squad = squad.AdjustMoraleAll(out.Squad, lift)
		return out, fmt.Sprintf("Club social went down well: squad morale up %d.", lift)
	}

	return state, fmt.Sprintf("Nothing came of the %s task.", task.Kind)
}

func worstFacility(club *models.Club) (models.Facility, bool) {
	var worst models.Facility
	found := false
	for _, ftype := range models.FacilityTypes {
		f, ok := club.Facilities[ftype]
		if !ok || f.Level == 0 {
			continue
		}
		if !found || f.Condition < worst.Condition {
			worst = f
			found = true
		}
	}
	return worst, found
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
