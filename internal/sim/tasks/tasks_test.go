package tasks

import (
	"strings"
	"testing"

	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/facility"
	"github.com/jdlinklater/touchline/internal/sim/finance"
	"github.com/jdlinklater/touchline/internal/sim/gen"
	"github.com/jdlinklater/touchline/internal/sim/rng"
)

func testState() models.GameState {
	src := rng.New(1)
	club := models.Club{
		ID:               "club-1",
		Name:             "Testvale Wanderers",
		Reputation:       30,
		Fanbase:          40,
		PlayerControlled: true,
		Facilities:       facility.DefaultSet(),
	}
	for _, role := range models.FoundingRoles {
		club.Committee = append(club.Committee, gen.CommitteeMember(src, role))
	}
	return models.GameState{
		PlayerClubID:  "club-1",
		Clubs:         []models.Club{club},
		Squad:         gen.Squad(src, "club-1", 4),
		Ledger:        finance.NewLedger(500),
		CurrentSeason: 1,
		CurrentWeek:   3,
	}
}

func TestEffectiveHoursReducedByRole(t *testing.T) {
	task := models.WeeklyTask{
		Kind:         models.TaskPitchMaintenance,
		BaseHours:    6,
		RequiredRole: models.RoleHeadGroundsman,
	}

	committee := []models.CommitteeMember{{
		Role:   models.RoleHeadGroundsman,
		Skills: models.CommitteeSkills{WorkEthic: 20},
	}}

	// 6 - 6*20/40 = 3.
	if got := EffectiveHours(task, committee); got != 3 {
		t.Errorf("EffectiveHours with a keen groundsman = %d, want 3", got)
	}
	if got := EffectiveHours(task, nil); got != 6 {
		t.Errorf("EffectiveHours with no committee = %d, want the base 6", got)
	}
}

func TestEffectiveHoursNeverBelowOne(t *testing.T) {
	task := models.WeeklyTask{
		Kind:         models.TaskAdminPaperwork,
		BaseHours:    1,
		RequiredRole: models.RoleSecretary,
	}
	committee := []models.CommitteeMember{{
		Role:   models.RoleSecretary,
		Skills: models.CommitteeSkills{WorkEthic: 20},
	}}
	if got := EffectiveHours(task, committee); got < 1 {
		t.Errorf("EffectiveHours = %d, want at least 1", got)
	}
}

func TestGenerateWeeklyBaseline(t *testing.T) {
	state := testState()
	list := GenerateWeekly(state)

	kinds := map[models.TaskKind]bool{}
	for _, task := range list {
		kinds[task.Kind] = true
		if task.ID == "" || task.Description == "" || task.BaseHours < 1 {
			t.Errorf("Malformed task: %+v", task)
		}
	}

	for _, always := range []models.TaskKind{
		models.TaskPitchMaintenance, models.TaskFundraising, models.TaskAdminPaperwork,
		models.TaskSponsorSearch, models.TaskCommunityOutreach,
	} {
		if !kinds[always] {
			t.Errorf("Weekly list missing %s", always)
		}
	}
	if kinds[models.TaskRecruitPlayers] {
		t.Error("Full squad should not trigger recruitment")
	}
}

func TestGenerateWeeklyConditionalTasks(t *testing.T) {
	state := testState()

	// Run the pitch down and thin the squad out.
	club := state.PlayerClub()
	pitch := club.Facilities[models.FacilityPitch]
	pitch.Condition = 30
	club.Facilities[models.FacilityPitch] = pitch
	state.Squad = state.Squad[:10]
	for i := range state.Squad {
		state.Squad[i].Status.Morale = 30
	}

	kinds := map[models.TaskKind]bool{}
	for _, task := range GenerateWeekly(state) {
		kinds[task.Kind] = true
	}

	if !kinds[models.TaskFacilityRepair] {
		t.Error("Run-down facility should put repair on the list")
	}
	if !kinds[models.TaskRecruitPlayers] {
		t.Error("A squad of 10 should trigger recruitment")
	}
	if !kinds[models.TaskOrganizeSocial] {
		t.Error("Low morale should trigger a social")
	}
}

func TestApplyFundraisingAddsMoney(t *testing.T) {
	state := testState()
	src := rng.New(9)

	out, msg := Apply(state, models.WeeklyTask{Kind: models.TaskFundraising}, src)
	if out.Ledger.Balance <= state.Ledger.Balance {
		t.Errorf("Balance went from %d to %d, want an increase", state.Ledger.Balance, out.Ledger.Balance)
	}
	if msg == "" {
		t.Error("Apply should narrate its effect")
	}
	if state.Ledger.Balance != 500 {
		t.Error("Apply mutated its input state")
	}
}

func TestApplyPitchMaintenanceRaisesCondition(t *testing.T) {
	state := testState()
	src := rng.New(10)
	before := state.PlayerClub().Facilities[models.FacilityPitch].Condition

	out, _ := Apply(state, models.WeeklyTask{Kind: models.TaskPitchMaintenance}, src)
	after := out.PlayerClub().Facilities[models.FacilityPitch].Condition
	if after <= before {
		t.Errorf("Pitch condition went from %d to %d, want an increase", before, after)
	}
}

func TestApplyRecruitAddsPlayer(t *testing.T) {
	state := testState()
	src := rng.New(11)

	out, msg := Apply(state, models.WeeklyTask{Kind: models.TaskRecruitPlayers}, src)
	if len(out.Squad) != len(state.Squad)+1 {
		t.Fatalf("Squad grew from %d to %d, want one signing", len(state.Squad), len(out.Squad))
	}
	recruit := out.Squad[len(out.Squad)-1]
	if recruit.ClubID != "club-1" {
		t.Errorf("Recruit club id = %q, want club-1", recruit.ClubID)
	}
	if !strings.Contains(msg, recruit.Name) {
		t.Errorf("Message %q should name the signing %q", msg, recruit.Name)
	}
}

func TestApplySocialLiftsMorale(t *testing.T) {
	state := testState()
	src := rng.New(12)
	for i := range state.Squad {
		state.Squad[i].Status.Morale = 40
	}

	out, _ := Apply(state, models.WeeklyTask{Kind: models.TaskOrganizeSocial}, src)
	for i := range out.Squad {
		if out.Squad[i].Status.Morale <= 40 {
			t.Fatalf("Player %s morale = %d, want lifted above 40",
				out.Squad[i].Name, out.Squad[i].Status.Morale)
		}
	}
}

func TestApplyOutreachGrowsFanbase(t *testing.T) {
	state := testState()
	src := rng.New(13)

	out, _ := Apply(state, models.WeeklyTask{Kind: models.TaskCommunityOutreach}, src)
	if out.PlayerClub().Fanbase <= 40 {
		t.Errorf("Fanbase = %d, want growth past 40", out.PlayerClub().Fanbase)
	}
	if out.PlayerClub().Reputation != 31 {
		t.Errorf("Reputation = %d, want 31", out.PlayerClub().Reputation)
	}
}

func TestApplyWithNoClub(t *testing.T) {
	src := rng.New(14)
	state := models.GameState{PlayerClubID: "missing"}
	out, msg := Apply(state, models.WeeklyTask{Kind: models.TaskFundraising}, src)
	if out.Ledger.Balance != 0 || msg == "" {
		t.Error("Apply without a club should be a narrated no-op")
	}
}
