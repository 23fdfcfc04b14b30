// Package engine is the week/season orchestrator: it owns the game
// phase machine, runs the weekly tick pipeline and the season rollover,
// and returns the tick's notifications for the presentation layer to
// show one at a time.
package engine

import (
	"fmt"
	"log"
	"strings"

	"github.com/jdlinklater/touchline/internal/archive"
	"github.com/jdlinklater/touchline/internal/config"
	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/committee"
	"github.com/jdlinklater/touchline/internal/sim/facility"
	"github.com/jdlinklater/touchline/internal/sim/finance"
	"github.com/jdlinklater/touchline/internal/sim/fixtures"
	"github.com/jdlinklater/touchline/internal/sim/gen"
	"github.com/jdlinklater/touchline/internal/sim/league"
	"github.com/jdlinklater/touchline/internal/sim/match"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/sim/squad"
	"github.com/jdlinklater/touchline/internal/sim/tasks"
)

// Notification is one item for the TUI's modal chain.
type Notification struct {
	Category string
	Title    string
	Body     string
}

// Decider is the committee voting collaborator.
type Decider interface {
	Decide(src *rng.Source, members []models.CommitteeMember, p committee.Proposal, style committee.ArgumentStyle) committee.Outcome
}

type defaultDecider struct{}

func (defaultDecider) Decide(src *rng.Source, members []models.CommitteeMember, p committee.Proposal, style committee.ArgumentStyle) committee.Outcome {
	return committee.Decide(src, members, p, style)
}

type Engine struct {
	src     *rng.Source
	tuning  config.Tuning
	arch    *archive.Archive
	decider Decider
}

// New builds an engine. arch may be nil to disable the history archive.
func New(src *rng.Source, tuning config.Tuning, arch *archive.Archive) *Engine {
	return &Engine{
		src:     src,
		tuning:  tuning,
		arch:    arch,
		decider: defaultDecider{},
	}
}

// SetDecider swaps the committee voting collaborator.
func (e *Engine) SetDecider(d Decider) {
	if d != nil {
		e.decider = d
	}
}

// NewGameOptions are the player's setup choices.
type NewGameOptions struct {
	ClubName       string
	Region         string
	PrimaryColor   string
	SecondaryColor string
}

// NewGame founds the club, its league and opposition, and leaves the
// game in OpponentCustomization. Setup input is validated here, at the
// boundary; the core assumes it afterwards.
func (e *Engine) NewGame(opts NewGameOptions) (models.GameState, error) {
	if strings.TrimSpace(opts.ClubName) == "" {
		return models.GameState{}, fmt.Errorf("%w: club name must not be blank", ErrInvalidInput)
	}
	if opts.PrimaryColor == opts.SecondaryColor {
		return models.GameState{}, fmt.Errorf("%w: kit colors must differ", ErrInvalidInput)
	}

	region := opts.Region
	if region == "" {
		region = rng.Pick(e.src, gen.Regions)
	}

	playerClub := models.Club{
		ID:               models.NewID("club"),
		Name:             strings.TrimSpace(opts.ClubName),
		Nickname:         gen.Nickname(e.src, opts.ClubName),
		Location:         gen.PickTown(e.src, region),
		PrimaryColor:     opts.PrimaryColor,
		SecondaryColor:   opts.SecondaryColor,
		Reputation:       20,
		Fanbase:          e.src.Between(30, 60),
		PlayerControlled: true,
		Facilities:       facility.DefaultSet(),
	}
	for _, role := range models.FoundingRoles {
		playerClub.Committee = append(playerClub.Committee, gen.CommitteeMember(e.src, role))
	}

	clubs := []models.Club{playerClub}
	clubIDs := []string{playerClub.ID}
	for i := 1; i < e.tuning.LeagueSize; i++ {
		identity := gen.ClubIdentity(e.src, region)
		primary, secondary := gen.PickKitColors(e.src)
		ai := models.Club{
			ID:                 models.NewID("club"),
			Name:               identity.Name,
			Nickname:           identity.Nickname,
			Location:           identity.Town,
			PrimaryColor:       primary,
			SecondaryColor:     secondary,
			Reputation:         e.src.Between(10, 40),
			Fanbase:            e.src.Between(20, 80),
			OverallTeamQuality: clampInt(e.tuning.PlayerClubTier*2+e.src.Between(-3, 3), 1, 20),
		}
		clubs = append(clubs, ai)
		clubIDs = append(clubIDs, ai.ID)
	}

	lg := models.League{
		ID:             models.NewID("league"),
		Name:           fmt.Sprintf("%s District League", region),
		Tier:           10,
		NumTeams:       len(clubIDs),
		PromotedTeams:  e.tuning.PromotedTeams,
		RelegatedTeams: e.tuning.RelegatedTeams,
		ClubIDs:        clubIDs,
	}
	lg.Fixtures = fixtures.Generate(clubIDs, clubNames(clubs), 1, lg.Name, e.tuning.PreSeasonWeeks)

	state := models.GameState{
		SchemaVersion:  models.CurrentSchemaVersion,
		PlayerClubID:   playerClub.ID,
		Clubs:          clubs,
		Leagues:        []models.League{lg},
		Squad:          gen.Squad(e.src, playerClub.ID, e.tuning.PlayerClubTier),
		Ledger:         finance.NewLedger(e.tuning.StartingBalance),
		CurrentSeason:  1,
		CurrentWeek:    1,
		AvailableHours: e.tuning.WeeklyHours,
		Phase:          models.PhaseOpponentCustomization,
	}
	state.WeeklyTasks = tasks.GenerateWeekly(state)
	return state, nil
}

// CustomizeOpponent renames an AI club and adjusts its quality during
// setup. Unknown ids warn and change nothing.
func (e *Engine) CustomizeOpponent(state models.GameState, clubID, name string, quality int) models.GameState {
	out := state.Clone()
	club := out.ClubByID(clubID)
	if club == nil || club.PlayerControlled {
		log.Printf("engine: customize opponent: no AI club %q", clubID)
		return state
	}
	if strings.TrimSpace(name) != "" {
		club.Name = strings.TrimSpace(name)
		club.Nickname = gen.Nickname(e.src, club.Name)
	}
	if quality > 0 {
		club.OverallTeamQuality = clampInt(quality, 1, 20)
	}
	// Fixture name snapshots follow the rename.
	for li := range out.Leagues {
		for wi := range out.Leagues[li].Fixtures {
			for mi := range out.Leagues[li].Fixtures[wi].Matches {
				m := &out.Leagues[li].Fixtures[wi].Matches[mi]
				if m.HomeID == clubID {
					m.HomeName = club.Name
				}
				if m.AwayID == clubID {
					m.AwayName = club.Name
				}
			}
		}
	}
	return out
}

// BeginSeason leaves setup and opens pre-season planning.
func (e *Engine) BeginSeason(state models.GameState) models.GameState {
	out := state.Clone()
	out.Phase = models.PhasePreSeasonPlanning
	return out
}

// CompleteTask commits the week's hours to a task, all or nothing. The
// effect itself lands during the next tick.
func (e *Engine) CompleteTask(state models.GameState, taskID string) (models.GameState, error) {
	idx := -1
	for i := range state.WeeklyTasks {
		if state.WeeklyTasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state, ErrUnknownTask
	}
	task := state.WeeklyTasks[idx]
	if task.Completed || task.AssignedHours > 0 {
		return state, ErrTaskCommitted
	}

	var club *models.Club
	if c := state.PlayerClub(); c != nil {
		club = c
	}
	var members []models.CommitteeMember
	if club != nil {
		members = club.Committee
	}
	hours := tasks.EffectiveHours(task, members)
	if hours > state.AvailableHours {
		return state, fmt.Errorf("%w: %s needs %d hours, %d left", ErrInsufficientHours, task.Description, hours, state.AvailableHours)
	}

	out := state.Clone()
	out.WeeklyTasks[idx].AssignedHours = hours
	out.AvailableHours -= hours
	return out, nil
}

// AdvanceWeek runs one tick. The returned notifications are ordered for
// the presentation layer's modal chain; the engine never blocks on
// their acknowledgment.
func (e *Engine) AdvanceWeek(state models.GameState) (models.GameState, []Notification, error) {
	if state.Phase == models.PhaseSetup || state.Phase == models.PhaseOpponentCustomization {
		return state, nil, ErrWrongPhase
	}

	out := state.Clone()
	var notes []Notification

	// 1. Committed tasks.
	for _, t := range out.WeeklyTasks {
		if t.AssignedHours > 0 && !t.Completed {
			var msg string
			out, msg = tasks.Apply(out, t, e.src)
			markTaskCompleted(&out, t.ID)
			e.pushMessage(&out, "task", msg)
			notes = append(notes, Notification{Category: "task", Title: t.Description, Body: msg})
		}
	}
	for i := range out.WeeklyTasks {
		out.WeeklyTasks[i].AssignedHours = 0
	}

	// 2. Weekly expenses.
	if club := out.PlayerClub(); club != nil {
		if upkeep := facility.WeeklyMaintenance(club.Facilities); upkeep > 0 {
			out.Ledger = finance.Add(out.Ledger, -upkeep, models.TxMaintenance,
				"Weekly ground maintenance", out.CurrentSeason, out.CurrentWeek)
		}
	}

	// 3. Committee cadence.
	if e.tuning.CommitteeMeetingWeeks > 0 && out.CurrentWeek%e.tuning.CommitteeMeetingWeeks == 0 {
		out, notes = e.committeeMeeting(out, notes)
	}

	// 4. Random event.
	if e.src.Chance(e.tuning.RandomEventPct) {
		out, notes = e.randomEvent(out, notes)
	}

	// 5. Scheduled match.
	out, notes = e.playWeekFixtures(out, notes)

	// 6. Status decay.
	out = e.decayStatus(out)

	// 7. Counters and rollover.
	out.CurrentWeek++
	if out.CurrentWeek > e.TotalWeeks(out) {
		out, notes = e.endSeason(out, notes)
	} else {
		out.AvailableHours = e.tuning.WeeklyHours
		out.WeeklyTasks = tasks.GenerateWeekly(out)
		out.Phase = models.PhaseWeeklyPlanning
	}

	return out, notes, nil
}

// TotalWeeks is the season length: pre-season plus the full double
// round robin.
func (e *Engine) TotalWeeks(state models.GameState) int {
	lg := state.HomeLeague()
	if lg == nil {
		return e.tuning.PreSeasonWeeks
	}
	n := len(lg.ClubIDs)
	if n%2 != 0 {
		n++
	}
	return e.tuning.PreSeasonWeeks + 2*(n-1)
}

// Table returns the sorted standings, empty with a warning for an
// unknown league.
func (e *Engine) Table(state models.GameState, leagueID string) []models.Club {
	lg := state.LeagueByID(leagueID)
	if lg == nil {
		log.Printf("engine: table: no league %q", leagueID)
		return nil
	}
	return league.Table(state.Clubs, *lg)
}

// FixturesFor returns the league's week-blocks in order.
func (e *Engine) FixturesFor(state models.GameState, leagueID string) []models.FixtureWeek {
	lg := state.LeagueByID(leagueID)
	if lg == nil {
		log.Printf("engine: fixtures: no league %q", leagueID)
		return nil
	}
	return lg.Clone().Fixtures
}

// UpgradeFacility puts a ground improvement to the committee and, if it
// passes and the books can cover it, builds it. A blocked vote is a
// normal outcome, reported through the notification, not an error.
func (e *Engine) UpgradeFacility(state models.GameState, ftype models.FacilityType) (models.GameState, Notification, error) {
	club := state.PlayerClub()
	if club == nil {
		return state, Notification{}, fmt.Errorf("%w: no managed club", ErrInvalidInput)
	}
	f, ok := club.Facilities[ftype]
	if !ok {
		return state, Notification{}, fmt.Errorf("%w: unknown facility %q", ErrInvalidInput, ftype)
	}
	if f.Level >= facility.MaxLevel {
		return state, Notification{}, facility.ErrMaxLevel
	}

	cost := f.UpgradeCost
	if cost > state.Ledger.Balance {
		return state, Notification{}, fmt.Errorf("%w: %s needs £%d, balance £%d",
			ErrInsufficientFunds, ftype, cost, state.Ledger.Balance)
	}

	proposal := committee.Proposal{
		Description: fmt.Sprintf("Upgrade the %s for £%d", ftype, cost),
		Difficulty:  4 + cost/100,
		Cost:        cost,
	}
	outcome := e.decider.Decide(e.src, club.Committee, proposal, committee.StyleAmbitious)
	if !outcome.Passed {
		note := Notification{
			Category: "committee",
			Title:    "Proposal blocked",
			Body: fmt.Sprintf("The committee voted down upgrading the %s (%d of %d in favor).",
				ftype, approvals(outcome), len(outcome.Votes)),
		}
		return state, note, nil
	}

	out := state.Clone()
	outClub := out.PlayerClub()
	upgraded, err := facility.Upgrade(outClub.Facilities[ftype])
	if err != nil {
		return state, Notification{}, err
	}
	outClub.Facilities[ftype] = upgraded
	out.Ledger = finance.Add(out.Ledger, -cost, models.TxUpgrade,
		fmt.Sprintf("%s upgrade to level %d", ftype, upgraded.Level), out.CurrentSeason, out.CurrentWeek)

	body := fmt.Sprintf("The %s is now: %s (grade %s). £%d spent.",
		ftype, upgraded.Status, upgraded.Grade, cost)
	e.pushMessage(&out, "facility", body)
	return out, Notification{Category: "facility", Title: "Upgrade approved", Body: body}, nil
}

// PastSeason reads an archived season's final table. A disabled archive
// returns nothing.
func (e *Engine) PastSeason(season int) ([]archive.Row, error) {
	return e.arch.Season(season)
}

// PastSeasons lists the seasons the archive has on record.
func (e *Engine) PastSeasons() ([]int, error) {
	return e.arch.Seasons()
}

// playWeekFixtures simulates the current week's round: the managed
// club's fixture with full attribution, the rest of the round quietly.
func (e *Engine) playWeekFixtures(state models.GameState, notes []Notification) (models.GameState, []Notification) {
	if state.CurrentWeek <= e.tuning.PreSeasonWeeks {
		return state, notes
	}
	lg := state.HomeLeague()
	if lg == nil {
		return state, notes
	}

	out := state
	leagueID := lg.ID
	for _, fw := range lg.Clone().Fixtures {
		if fw.Week != out.CurrentWeek {
			continue
		}
		for _, m := range fw.Matches {
			if m.Played || m.Result == "BYE" {
				continue
			}
			managed := m.HomeID == out.PlayerClubID || m.AwayID == out.PlayerClubID
			out, notes = e.playMatch(out, notes, leagueID, m, managed)
		}
	}
	return out, notes
}

func (e *Engine) playMatch(state models.GameState, notes []Notification, leagueID string, m models.Match, managed bool) (models.GameState, []Notification) {
	out := state
	if managed {
		out.Phase = models.PhaseMatchDay
	}

	suspendedBefore := map[string]bool{}
	if managed {
		for _, p := range out.Squad {
			if p.Status.Suspended {
				suspendedBefore[p.ID] = true
			}
		}
	}

	res := match.Simulate(e.src, match.Input{
		HomeID:        m.HomeID,
		AwayID:        m.AwayID,
		Week:          m.Week,
		Season:        out.CurrentSeason,
		Clubs:         out.Clubs,
		ManagedClubID: out.PlayerClubID,
		ManagedSquad:  out.Squad,
		HomeAdvantage: e.tuning.HomeAdvantage,
	})

	if res.Cancelled {
		out.Leagues = league.MarkMatchPlayed(out.Leagues, leagueID, m.ID, "0-0")
		if managed {
			e.pushMessage(&out, "match", res.Report)
			notes = append(notes, Notification{Category: "match", Title: "Match cancelled", Body: res.Report})
			out.Phase = models.PhasePostMatch
		}
		return out, notes
	}

	out.Clubs = league.RecordResult(out.Clubs, m.HomeID, m.AwayID, res.HomeScore, res.AwayScore)
	out.Leagues = league.MarkMatchPlayed(out.Leagues, leagueID, m.ID, res.ResultString())

	if !managed {
		return out, notes
	}

	if res.ManagedSquad != nil {
		out.Squad = res.ManagedSquad
	}
	// Suspensions are served by missing a match: anyone banned before
	// kickoff has now sat one out.
	for i := range out.Squad {
		if suspendedBefore[out.Squad[i].ID] && out.Squad[i].Status.SuspensionGames > 0 {
			out.Squad[i].Status.SuspensionGames--
			if out.Squad[i].Status.SuspensionGames == 0 {
				out.Squad[i].Status.Suspended = false
			}
		}
	}

	// Home matches bring gate and snack bar money.
	if m.HomeID == out.PlayerClubID {
		if club := out.PlayerClub(); club != nil {
			if revenue := facility.MatchDayRevenue(club.Facilities, club.Fanbase); revenue > 0 {
				out.Ledger = finance.Add(out.Ledger, revenue, models.TxMatchDay,
					fmt.Sprintf("Match day takings vs %s", res.AwayName), out.CurrentSeason, out.CurrentWeek)
			}
		}
	}

	e.pushMessage(&out, "match", res.Report)
	notes = append(notes, Notification{
		Category: "match",
		Title:    fmt.Sprintf("%s %d-%d %s", res.HomeName, res.HomeScore, res.AwayScore, res.AwayName),
		Body:     res.Report,
	})
	out.Phase = models.PhasePostMatch
	return out, notes
}

// decayStatus runs the weekly wear: player fitness and morale drift
// down, knocks heal, and the ground slowly deteriorates.
func (e *Engine) decayStatus(state models.GameState) models.GameState {
	out := state

	for i := range out.Squad {
		p := &out.Squad[i]
		if p.Status.Available() {
			p.Status.Fitness = clampInt(p.Status.Fitness-e.src.Between(2, 5), 0, 100)
		}
		p.Status.Morale = clampInt(p.Status.Morale-e.src.Between(1, 3), 0, 100)
		if p.Status.InjuryWeeks > 0 {
			p.Status.InjuryWeeks--
			if p.Status.InjuryWeeks == 0 {
				p.Status.Injury = models.InjuryFit
			}
		}
	}

	if club := out.PlayerClub(); club != nil {
		for _, ftype := range models.FacilityTypes {
			f, ok := club.Facilities[ftype]
			if !ok || f.Level == 0 {
				continue
			}
			f = facility.AdjustCondition(f, -e.src.Between(1, 4))
			f = facility.DegradeGrade(f)
			club.Facilities[ftype] = f
		}
	}
	return out
}

func (e *Engine) committeeMeeting(state models.GameState, notes []Notification) (models.GameState, []Notification) {
	out := state
	club := out.PlayerClub()
	if club == nil || len(club.Committee) == 0 {
		return out, notes
	}

	proposal := committee.Proposal{
		Description: "Routine monthly business",
		Difficulty:  e.src.Between(4, 10),
	}
	outcome := e.decider.Decide(e.src, club.Committee, proposal, committee.StyleCommunity)

	body := fmt.Sprintf("The committee met. %d of %d backed the month's plans.",
		approvals(outcome), len(outcome.Votes))
	if outcome.Passed {
		for i := range club.Committee {
			if club.Committee[i].Personality.Satisfaction < 20 {
				club.Committee[i].Personality.Satisfaction++
			}
		}
	} else {
		body += " There were some hard words about the direction of the club."
		for i := range club.Committee {
			if club.Committee[i].Personality.Satisfaction > 1 {
				club.Committee[i].Personality.Satisfaction--
			}
		}
	}

	e.pushMessage(&out, "committee", body)
	notes = append(notes, Notification{Category: "committee", Title: "Committee meeting", Body: body})
	return out, notes
}

// endSeason runs the rollover: final standings, history, resets and
// next season's fixtures.
func (e *Engine) endSeason(state models.GameState, notes []Notification) (models.GameState, []Notification) {
	out := state
	out.Phase = models.PhaseEndOfSeason

	out.Clubs = league.EndOfSeason(out.Leagues, out.Clubs)

	lg := out.HomeLeague()
	club := out.PlayerClub()
	if lg != nil && club != nil {
		summary := models.SeasonSummary{
			Season:         out.CurrentSeason,
			LeagueName:     lg.Name,
			Position:       club.FinalLeaguePosition,
			Played:         club.LeagueStats.Played,
			Won:            club.LeagueStats.Won,
			Drawn:          club.LeagueStats.Drawn,
			Lost:           club.LeagueStats.Lost,
			GoalsFor:       club.LeagueStats.GoalsFor,
			GoalsAgainst:   club.LeagueStats.GoalsAgainst,
			Points:         club.LeagueStats.Points,
			Classification: club.Classification,
		}
		out.History = append(out.History, summary)

		body := fmt.Sprintf("Finished season %d in position %d (%s).",
			out.CurrentSeason, club.FinalLeaguePosition, club.Classification)
		if league.Promoted(club.Classification) {
			bonus := e.src.Between(100, 300)
			out.Ledger = finance.Add(out.Ledger, bonus, models.TxGrant,
				"League promotion bonus", out.CurrentSeason, out.CurrentWeek)
			body += fmt.Sprintf(" Promotion bonus: £%d.", bonus)
		}
		e.pushMessage(&out, "season", body)
		notes = append(notes, Notification{Category: "season", Title: "Season over", Body: body})

		if e.arch != nil {
			rows := archive.RowsFromTable(out.CurrentSeason, lg.Name, league.Table(out.Clubs, *lg))
			if err := e.arch.RecordSeason(rows); err != nil {
				log.Printf("engine: archive season %d: %v", out.CurrentSeason, err)
			}
		}
	}

	// Season-scoped resets for the squad and every club.
	out.Squad = squad.ResetSeason(out.Squad)
	for i := range out.Clubs {
		out.Clubs[i].LeagueStats = models.LeagueStats{}
		out.Clubs[i].FinalLeaguePosition = 0
		out.Clubs[i].Classification = ""
	}

	out.CurrentSeason++
	out.CurrentWeek = 1
	out.Phase = models.PhaseOffSeason

	names := clubNames(out.Clubs)
	for i := range out.Leagues {
		out.Leagues[i].Fixtures = fixtures.Generate(out.Leagues[i].ClubIDs, names,
			out.CurrentSeason, out.Leagues[i].Name, e.tuning.PreSeasonWeeks)
	}

	// The off-season window gets double hours for the big jobs.
	out.AvailableHours = 2 * e.tuning.WeeklyHours
	out.WeeklyTasks = tasks.GenerateWeekly(out)
	return out, notes
}

func (e *Engine) pushMessage(state *models.GameState, category, text string) {
	state.Messages = append(state.Messages, models.Message{
		ID:       models.NewID("msg"),
		Season:   state.CurrentSeason,
		Week:     state.CurrentWeek,
		Category: category,
		Text:     text,
	})
}

func markTaskCompleted(state *models.GameState, taskID string) {
	for i := range state.WeeklyTasks {
		if state.WeeklyTasks[i].ID == taskID {
			state.WeeklyTasks[i].Completed = true
			return
		}
	}
}

func approvals(o committee.Outcome) int {
	n := 0
	for _, v := range o.Votes {
		if v.InFavor {
			n++
		}
	}
	return n
}

func clubNames(clubs []models.Club) map[string]string {
	names := make(map[string]string, len(clubs))
	for _, c := range clubs {
		names[c.ID] = c.Name
	}
	return names
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
