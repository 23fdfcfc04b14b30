// Package models holds the game's aggregate state: clubs, squads,
// facilities, leagues, fixtures, finances and the root GameState that
// the engine threads through every weekly tick.
package models

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Position codes for players.
type Position string

const (
	PosGK Position = "GK"
	PosCB Position = "CB"
	PosLB Position = "LB"
	PosRB Position = "RB"
	PosCM Position = "CM"
	PosDM Position = "DM"
	PosAM Position = "AM"
	PosLW Position = "LW"
	PosRW Position = "RW"
	PosST Position = "ST"
)

// Positions is the canonical ordered enumeration. Iteration over it is a
// contract, not an accident of map ordering.
var Positions = []Position{PosGK, PosCB, PosLB, PosRB, PosCM, PosDM, PosAM, PosLW, PosRW, PosST}

// OutfieldPositions excludes the goalkeeper.
var OutfieldPositions = []Position{PosCB, PosLB, PosRB, PosCM, PosDM, PosAM, PosLW, PosRW, PosST}

// IsDefender reports whether the position is part of the back line.
func (p Position) IsDefender() bool {
	return p == PosCB || p == PosLB || p == PosRB
}

// Attribute names a single 1-20 player skill.
type Attribute string

const (
	AttrShooting    Attribute = "shooting"
	AttrDribbling   Attribute = "dribbling"
	AttrPassing     Attribute = "passing"
	AttrCrossing    Attribute = "crossing"
	AttrFirstTouch  Attribute = "first_touch"
	AttrHeading     Attribute = "heading"
	AttrTackling    Attribute = "tackling"
	AttrPositioning Attribute = "positioning"
	AttrMarking     Attribute = "marking"
	AttrOffTheBall  Attribute = "off_the_ball"
	AttrVision      Attribute = "vision"
	AttrComposure   Attribute = "composure"
	AttrWorkRate    Attribute = "work_rate"
	AttrPace        Attribute = "pace"
	AttrStamina     Attribute = "stamina"
	AttrStrength    Attribute = "strength"
	AttrAggression  Attribute = "aggression"
	AttrBravery     Attribute = "bravery"
	AttrTeamwork    Attribute = "teamwork"
	AttrGoalkeeping Attribute = "goalkeeping"
)

// Attributes is the canonical ordered enumeration of skill codes.
var Attributes = []Attribute{
	AttrShooting, AttrDribbling, AttrPassing, AttrCrossing, AttrFirstTouch,
	AttrHeading, AttrTackling, AttrPositioning, AttrMarking, AttrOffTheBall,
	AttrVision, AttrComposure, AttrWorkRate, AttrPace, AttrStamina,
	AttrStrength, AttrAggression, AttrBravery, AttrTeamwork, AttrGoalkeeping,
}

type CommitmentLevel string

const (
	CommitmentHigh   CommitmentLevel = "High"
	CommitmentMedium CommitmentLevel = "Medium"
	CommitmentLow    CommitmentLevel = "Low"
)

var CommitmentLevels = []CommitmentLevel{CommitmentHigh, CommitmentMedium, CommitmentLow}

type InjuryStatus string

const (
	InjuryFit        InjuryStatus = "Fit"
	InjuryMinorKnock InjuryStatus = "Minor Knock"
)

// Traits are the fixed personality values of a player.
type Traits struct {
	Ambition        int             `yaml:"ambition"`
	Loyalty         int             `yaml:"loyalty"`
	Temperament     int             `yaml:"temperament"`
	Professionalism int             `yaml:"professionalism"`
	Commitment      CommitmentLevel `yaml:"commitment"`
}

// PlayerSeasonStats are zeroed at every season boundary.
type PlayerSeasonStats struct {
	Appearances   int     `yaml:"appearances"`
	Goals         int     `yaml:"goals"`
	Assists       int     `yaml:"assists"`
	YellowCards   int     `yaml:"yellow_cards"`
	RedCards      int     `yaml:"red_cards"`
	MOTM          int     `yaml:"motm"`
	AverageRating float64 `yaml:"average_rating"`
}

// PlayerStatus is the mutable week-to-week condition of a player.
type PlayerStatus struct {
	Morale          int          `yaml:"morale"`  // 0-100
	Fitness         int          `yaml:"fitness"` // 0-100
	Injury          InjuryStatus `yaml:"injury"`
	InjuryWeeks     int          `yaml:"injury_weeks"` // weeks until fit again
	Suspended       bool         `yaml:"suspended"`
	SuspensionGames int          `yaml:"suspension_games"`
}

// Available reports whether the player can take part in a match.
func (s PlayerStatus) Available() bool {
	return s.Injury == InjuryFit && !s.Suspended
}

type Player struct {
	ID                string            `yaml:"id"`
	ClubID            string            `yaml:"club_id"`
	Name              string            `yaml:"name"`
	Age               int               `yaml:"age"`
	Position          Position          `yaml:"position"`
	SecondaryPosition Position          `yaml:"secondary_position,omitempty"`
	Foot              string            `yaml:"foot"`
	HeightCM          int               `yaml:"height_cm"`
	Attributes        map[Attribute]int `yaml:"attributes"`
	Traits            Traits            `yaml:"traits"`
	SeasonStats       PlayerSeasonStats `yaml:"season_stats"`
	Status            PlayerStatus      `yaml:"status"`
}

// Attr returns an attribute value, defaulting to 1 for unknown codes so
// rating maths never works from zero.
func (p Player) Attr(a Attribute) int {
	if v, ok := p.Attributes[a]; ok {
		return v
	}
	return 1
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	out := p
	out.Attributes = make(map[Attribute]int, len(p.Attributes))
	for k, v := range p.Attributes {
		out.Attributes[k] = v
	}
	return out
}

// CommitteeRole is a committee position at the club.
type CommitteeRole string

const (
	RoleChair                CommitteeRole = "Chair"
	RoleSecretary            CommitteeRole = "Secretary"
	RoleTreasurer            CommitteeRole = "Treasurer"
	RoleHeadGroundsman       CommitteeRole = "Head Groundsman"
	RoleSocialSecretary      CommitteeRole = "Social Secretary"
	RolePlayerRep            CommitteeRole = "Player Rep"
	RoleVolunteerCoordinator CommitteeRole = "Volunteer Coordinator"
)

var CommitteeRoles = []CommitteeRole{
	RoleChair, RoleSecretary, RoleTreasurer, RoleHeadGroundsman,
	RoleSocialSecretary, RolePlayerRep, RoleVolunteerCoordinator,
}

// FoundingRoles are filled when a club is created.
var FoundingRoles = []CommitteeRole{RoleChair, RoleSecretary, RoleTreasurer, RoleHeadGroundsman}

type CommitteeSkills struct {
	Administration     int `yaml:"administration"`
	FinancialAcumen    int `yaml:"financial_acumen"`
	GroundsKeeping     int `yaml:"grounds_keeping"`
	CommunityRelations int `yaml:"community_relations"`
	Influence          int `yaml:"influence"`
	Initiative         int `yaml:"initiative"`
	WorkEthic          int `yaml:"work_ethic"`
	ResistanceToChange int `yaml:"resistance_to_change"`
}

type CommitteePersonality struct {
	LoyaltyToYou int `yaml:"loyalty_to_you"`
	ClubLoyalty  int `yaml:"club_loyalty"`
	Enthusiasm   int `yaml:"enthusiasm"`
	Satisfaction int `yaml:"satisfaction"`
}

type CommitteeMember struct {
	ID          string               `yaml:"id"`
	Name        string               `yaml:"name"`
	Role        CommitteeRole        `yaml:"role"`
	Age         int                  `yaml:"age"`
	Skills      CommitteeSkills      `yaml:"skills"`
	Personality CommitteePersonality `yaml:"personality"`
}

// FacilityType keys the club's six facilities.
type FacilityType string

const (
	FacilityPitch         FacilityType = "Pitch"
	FacilityChangingRooms FacilityType = "Changing Rooms"
	FacilityToilets       FacilityType = "Toilets"
	FacilitySnackBar      FacilityType = "Snack Bar"
	FacilityCoveredStand  FacilityType = "Covered Stand"
	FacilityTurnstiles    FacilityType = "Turnstiles"
)

// FacilityTypes is the canonical ordered enumeration.
var FacilityTypes = []FacilityType{
	FacilityPitch, FacilityChangingRooms, FacilityToilets,
	FacilitySnackBar, FacilityCoveredStand, FacilityTurnstiles,
}

type Facility struct {
	Type            FacilityType `yaml:"type"`
	Level           int          `yaml:"level"` // 0 = not built
	Grade           string       `yaml:"grade"` // "N/A" at level 0
	Status          string       `yaml:"status"`
	Condition       int          `yaml:"condition"`
	MaxCondition    int          `yaml:"max_condition"`
	BaseUpgradeCost int          `yaml:"base_upgrade_cost"`
	UpgradeCost     int          `yaml:"upgrade_cost"`
	Maintenance     int          `yaml:"maintenance"` // weekly, per level
	WeeksBelow50    int          `yaml:"weeks_below_50"`
	Usable          bool         `yaml:"usable"`
}

// LeagueStats are the per-club cumulative league counters. Points and
// GoalDifference are derived; call RecomputeDerived after touching the
// raw counters.
type LeagueStats struct {
	Played         int `yaml:"played"`
	Won            int `yaml:"won"`
	Drawn          int `yaml:"drawn"`
	Lost           int `yaml:"lost"`
	GoalsFor       int `yaml:"goals_for"`
	GoalsAgainst   int `yaml:"goals_against"`
	GoalDifference int `yaml:"goal_difference"`
	Points         int `yaml:"points"`
}

// RecomputeDerived restores the invariants points = 3W + D and
// GD = GF - GA.
func (s *LeagueStats) RecomputeDerived() {
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst
	s.Points = 3*s.Won + s.Drawn
}

// Classification of a club's finishing position.
const (
	ClassChampions = "champions"
	ClassPromoted  = "promoted"
	ClassRelegated = "relegated"
	ClassMidTable  = "mid-table"
)

type Club struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Nickname         string `yaml:"nickname"`
	Location         string `yaml:"location"`
	PrimaryColor     string `yaml:"primary_color"`
	SecondaryColor   string `yaml:"secondary_color"`
	Reputation       int    `yaml:"reputation"`
	Fanbase          int    `yaml:"fanbase"`
	PlayerControlled bool   `yaml:"player_controlled"`
	// AI clubs carry a single quality scalar instead of a full squad.
	OverallTeamQuality int                       `yaml:"overall_team_quality"`
	Facilities         map[FacilityType]Facility `yaml:"facilities,omitempty"`
	Committee          []CommitteeMember         `yaml:"committee,omitempty"`
	LeagueStats        LeagueStats               `yaml:"league_stats"`
	// FinalLeaguePosition is 0 until the end-of-season pass runs.
	FinalLeaguePosition int    `yaml:"final_league_position"`
	Classification      string `yaml:"classification,omitempty"`
}

// Clone returns a deep copy of the club.
func (c Club) Clone() Club {
	out := c
	if c.Facilities != nil {
		out.Facilities = make(map[FacilityType]Facility, len(c.Facilities))
		for k, v := range c.Facilities {
			out.Facilities[k] = v
		}
	}
	if c.Committee != nil {
		out.Committee = append([]CommitteeMember(nil), c.Committee...)
	}
	return out
}

// ByeID marks the placeholder side of a bye fixture.
const ByeID = "BYE"

type Match struct {
	ID          string `yaml:"id"`
	Week        int    `yaml:"week"` // absolute game-week, pre-season offset included
	Season      int    `yaml:"season"`
	HomeID      string `yaml:"home_id"`
	HomeName    string `yaml:"home_name"`
	AwayID      string `yaml:"away_id"`
	AwayName    string `yaml:"away_name"`
	Competition string `yaml:"competition"`
	Result      string `yaml:"result,omitempty"` // "H-A" or "BYE"
	Played      bool   `yaml:"played"`
}

type FixtureWeek struct {
	Week        int     `yaml:"week"`
	Competition string  `yaml:"competition"`
	Matches     []Match `yaml:"matches"`
}

type League struct {
	ID             string        `yaml:"id"`
	Name           string        `yaml:"name"`
	Tier           int           `yaml:"tier"`
	NumTeams       int           `yaml:"num_teams"`
	PromotedTeams  int           `yaml:"promoted_teams"`
	RelegatedTeams int           `yaml:"relegated_teams"`
	ClubIDs        []string      `yaml:"club_ids"`
	Fixtures       []FixtureWeek `yaml:"fixtures"`
}

// Clone returns a deep copy of the league.
func (l League) Clone() League {
	out := l
	out.ClubIDs = append([]string(nil), l.ClubIDs...)
	out.Fixtures = make([]FixtureWeek, len(l.Fixtures))
	for i, fw := range l.Fixtures {
		cp := fw
		cp.Matches = append([]Match(nil), fw.Matches...)
		out.Fixtures[i] = cp
	}
	return out
}

type TransactionType string

const (
	TxMatchDay    TransactionType = "match_day"
	TxSponsorship TransactionType = "sponsorship"
	TxMaintenance TransactionType = "maintenance"
	TxRepair      TransactionType = "repair"
	TxUpgrade     TransactionType = "upgrade"
	TxFundraising TransactionType = "fundraising"
	TxGrant       TransactionType = "grant"
	TxMisc        TransactionType = "misc"
)

type Transaction struct {
	ID          string          `yaml:"id"`
	Season      int             `yaml:"season"`
	Week        int             `yaml:"week"`
	Type        TransactionType `yaml:"type"`
	Description string          `yaml:"description"`
	Amount      int             `yaml:"amount"` // signed, negative = expense
}

/// Ledger is append-only: Balance always equals the starting balance plus
// the sum of transaction amounts.
type Ledger struct {
	Balance      int           `yaml:"balance"`
	Transactions []Transaction `yaml:"transactions"`
}

// Clone returns a copy whose transaction slice is independent.
func (l Ledger) Clone() Ledger {
	out := l
	out.Transactions = append([]Transaction(nil), l.Transactions...)
	return out
}

// TaskKind enumerates the weekly task types.
type TaskKind string

const (
	TaskPitchMaintenance  TaskKind = "PITCH_MAINTENANCE"
	TaskFacilityRepair    TaskKind = "FACILITY_REPAIR"
	TaskFundraising       TaskKind = "FUNDRAISING"
	TaskSponsorSearch     TaskKind = "SPONSOR_SEARCH"
	TaskCommunityOutreach TaskKind = "COMMUNITY_OUTREACH"
	TaskAdminPaperwork    TaskKind = "ADMIN_PAPERWORK"
	TaskRecruitPlayers    TaskKind = "RECRUIT_PLAYERS"
	TaskOrganizeSocial    TaskKind = "ORGANIZE_SOCIAL"
)

// WeeklyTask lives for one week only; fresh tasks are generated at the
// end of every tick.
type WeeklyTask struct {
	ID            string        `yaml:"id"`
	Kind          TaskKind      `yaml:"kind"`
	Description   string        `yaml:"description"`
	BaseHours     int           `yaml:"base_hours"`
	AssignedHours int           `yaml:"assigned_hours"`
	Completed     bool          `yaml:"completed"`
	RequiredRole  CommitteeRole `yaml:"required_role,omitempty"`
}

type Message struct {
	ID       string `yaml:"id"`
	Season   int    `yaml:"season"`
	Week     int    `yaml:"week"`
	Category string `yaml:"category"`
	Text     string `yaml:"text"`
}

// SeasonSummary is one row of the club's history book.
type SeasonSummary struct {
	Season         int    `yaml:"season"`
	LeagueName     string `yaml:"league_name"`
	Position       int    `yaml:"position"`
	Played         int    `yaml:"played"`
	Won            int    `yaml:"won"`
	Drawn          int    `yaml:"drawn"`
	Lost           int    `yaml:"lost"`
	GoalsFor       int    `yaml:"goals_for"`
	GoalsAgainst   int    `yaml:"goals_against"`
	Points         int    `yaml:"points"`
	Classification string `yaml:"classification"`
}

// GamePhase is the orchestrator's state machine.
type GamePhase string

const (
	PhaseSetup                 GamePhase = "Setup"
	PhaseOpponentCustomization GamePhase = "OpponentCustomization"
	PhasePreSeasonPlanning     GamePhase = "PreSeasonPlanning"
	PhaseWeeklyPlanning        GamePhase = "WeeklyPlanning"
	PhaseMatchDay              GamePhase = "MatchDay"
	PhasePostMatch             GamePhase = "PostMatch"
	PhaseEndOfSeason           GamePhase = "EndOfSeason"
	PhaseOffSeason             GamePhase = "OffSeason"
)

// CurrentSchemaVersion is written into every save.
const CurrentSchemaVersion = 1

// GameState is the root aggregate. Every sub-component operation takes
// the relevant slice and returns a new one; nothing outside this struct
// holds live game state.
type GameState struct {
	SchemaVersion  int             `yaml:"schema_version"`
	PlayerClubID   string          `yaml:"player_club_id"`
	Clubs          []Club          `yaml:"clubs"`
	Leagues        []League        `yaml:"leagues"`
	Squad          []Player        `yaml:"squad"` // managed club roster
	Ledger         Ledger          `yaml:"ledger"`
	CurrentSeason  int             `yaml:"current_season"`
	CurrentWeek    int             `yaml:"current_week"`
	AvailableHours int             `yaml:"available_hours"`
	WeeklyTasks    []WeeklyTask    `yaml:"weekly_tasks"`
	History        []SeasonSummary `yaml:"history"`
	Messages       []Message       `yaml:"messages"`
	Phase          GamePhase       `yaml:"phase"`
}

// PlayerClub returns a pointer into Clubs for the managed club, or nil.
func (g *GameState) PlayerClub() *Club {
	for i := range g.Clubs {
		if g.Clubs[i].ID == g.PlayerClubID {
			return &g.Clubs[i]
		}
	}
	return nil
}

// ClubByID returns a pointer into Clubs, or nil when absent.
func (g *GameState) ClubByID(id string) *Club {
	for i := range g.Clubs {
		if g.Clubs[i].ID == id {
			return &g.Clubs[i]
		}
	}
	return nil
}

// LeagueByID returns a pointer into Leagues, or nil when absent.
func (g *GameState) LeagueByID(id string) *League {
	for i := range g.Leagues {
		if g.Leagues[i].ID == id {
			return &g.Leagues[i]
		}
	}
	return nil
}

// HomeLeague returns the league the managed club plays in.
func (g *GameState) HomeLeague() *League {
	for i := range g.Leagues {
		for _, id := range g.Leagues[i].ClubIDs {
			if id == g.PlayerClubID {
				return &g.Leagues[i]
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the whole aggregate.
func (g GameState) Clone() GameState {
	out := g
	out.Clubs = make([]Club, len(g.Clubs))
	for i, c := range g.Clubs {
		out.Clubs[i] = c.Clone()
	}
	out.Leagues = make([]League, len(g.Leagues))
	for i, l := range g.Leagues {
		out.Leagues[i] = l.Clone()
	}
	out.Squad = make([]Player, len(g.Squad))
	for i, p := range g.Squad {
		out.Squad[i] = p.Clone()
	}
	out.Ledger = g.Ledger.Clone()
	out.WeeklyTasks = append([]WeeklyTask(nil), g.WeeklyTasks...)
	out.History = append([]SeasonSummary(nil), g.History...)
	out.Messages = append([]Message(nil), g.Messages...)
	return out
}

var idCounter = uint64(time.Now().UnixNano() & 0xffffff)

// NewID returns a process-unique id with the given prefix.
func NewID(prefix string) string {
	n := atomic.AddUint64(&idCounter, 1)
	return fmt.Sprintf("%s-%d", prefix, n)
}
