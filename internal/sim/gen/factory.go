// Package gen constructs players, committee members and club identities
// with attribute distributions keyed by quality tier or role.
package gen

import (
	"fmt"
	"strings"

	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/rng"
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Player generates a player. An empty position means pick one uniformly.
// Tier scales the base attribute range: [1+2(tier-1), 1+2*tier], so
// tier 5 squads sit around 9-11 and tier 10 squads push toward 20.
func Player(src *rng.Source, pos models.Position, tier int) models.Player {
	if pos == "" {
		pos = rng.Pick(src, models.Positions)
	}
	if tier < 1 {
		tier = 1
	}

	base := clamp(src.Between(1+2*(tier-1), 1+2*tier), 1, 20)

	attrs := make(map[models.Attribute]int, len(models.Attributes))
	for _, a := range models.Attributes {
		attrs[a] = clamp(base+src.Between(-3, 3), 1, 20)
	}

	// Position-specific overrides.
	switch pos {
	case models.PosGK:
		attrs[models.AttrGoalkeeping] = clamp(base+src.Between(2, 5), 1, 20)
		attrs[models.AttrShooting] = clamp(attrs[models.AttrShooting]-4, 1, 20)
		attrs[models.AttrDribbling] = clamp(attrs[models.AttrDribbling]-4, 1, 20)
		attrs[models.AttrTackling] = clamp(attrs[models.AttrTackling]-3, 1, 20)
	case models.PosST:
		attrs[models.AttrShooting] = clamp(base+src.Between(1, 4), 1, 20)
		attrs[models.AttrGoalkeeping] = clamp(src.Between(1, 3), 1, 20)
	case models.PosCB:
		attrs[models.AttrTackling] = clamp(base+src.Between(1, 4), 1, 20)
		attrs[models.AttrGoalkeeping] = clamp(src.Between(1, 3), 1, 20)
	case models.PosCM:
		attrs[models.AttrPassing] = clamp(base+src.Between(1, 4), 1, 20)
		attrs[models.AttrGoalkeeping] = clamp(src.Between(1, 3), 1, 20)
	default:
		attrs[models.AttrGoalkeeping] = clamp(src.Between(1, 3), 1, 20)
	}

	foot := "Right"
	if src.Chance(25) {
		foot = "Left"
	}

	var secondary models.Position
	if src.Chance(40) {
		secondary = rng.Pick(src, models.OutfieldPositions)
		if secondary == pos {
			secondary = ""
		}
	}

	return models.Player{
		ID:                models.NewID("player"),
		Name:              PickFirstName(src) + " " + PickLastName(src),
		Age:               src.Between(16, 38),
		Position:          pos,
		SecondaryPosition: secondary,
		Foot:              foot,
		HeightCM:          src.Between(165, 196),
		Attributes:        attrs,
		Traits: models.Traits{
			Ambition:        src.Between(1, 20),
			Loyalty:         src.Between(1, 20),
			Temperament:     src.Between(1, 20),
			Professionalism: src.Between(1, 20),
			Commitment:      rng.Pick(src, models.CommitmentLevels),
		},
		Status: models.PlayerStatus{
			Morale:  src.Between(60, 90),
			Fitness: 100,
			Injury:  models.InjuryFit,
		},
	}
}

// squadComposition is a realistic grassroots matchday squad.
var squadComposition = []models.Position{
	models.PosGK, models.PosGK,
	models.PosCB, models.PosCB, models.PosCB,
	models.PosLB, models.PosRB,
	models.PosDM, models.PosCM, models.PosCM, models.PosAM,
	models.PosLW, models.PosRW,
	models.PosST, models.PosST, models.PosST,
}

// Squad generates a full roster for a club at the given quality tier.
func Squad(src *rng.Source, clubID string, tier int) []models.Player {
	squad := make([]models.Player, 0, len(squadComposition))
	for _, pos := range squadComposition {
		p := Player(src, pos, tier)
		p.ClubID = clubID
		squad = append(squad, p)
	}
	return squad
}

// CommitteeMember generates a member with the role's signature skills
// boosted into the 8-20 band; everything else sits at 5-15.
func CommitteeMember(src *rng.Source, role models.CommitteeRole) models.CommitteeMember {
	skills := models.CommitteeSkills{
		Administration:     src.Between(5, 15),
		FinancialAcumen:    src.Between(5, 15),
		GroundsKeeping:     src.Between(5, 15),
		CommunityRelations: src.Between(5, 15),
		Influence:          src.Between(5, 15),
		Initiative:         src.Between(5, 15),
		WorkEthic:          src.Between(5, 15),
		ResistanceToChange: src.Between(5, 15),
	}

	boost := func() int { return src.Between(8, 20) }
	switch role {
	case models.RoleChair:
		skills.Influence = boost()
		skills.Administration = boost()
	case models.RoleSecretary:
		skills.Administration = boost()
		skills.WorkEthic = boost()
	case models.RoleTreasurer:
		skills.FinancialAcumen = boost()
	case models.RoleHeadGroundsman:
		skills.GroundsKeeping = boost()
		skills.WorkEthic = boost()
		skills.ResistanceToChange = boost()
	case models.RoleSocialSecretary:
		skills.CommunityRelations = boost()
		skills.Initiative = boost()
	case models.RolePlayerRep:
		skills.CommunityRelations = boost()
		skills.Influence = boost()
	case models.RoleVolunteerCoordinator:
		skills.Administration = boost()
		skills.CommunityRelations = boost()
		skills.Initiative = boost()
	}

	return models.CommitteeMember{
		ID:     models.NewID("member"),
		Name:   PickFirstName(src) + " " + PickLastName(src),
		Role:   role,
		Age:    src.Between(28, 72),
		Skills: skills,
		Personality: models.CommitteePersonality{
			LoyaltyToYou: src.Between(5, 15),
			ClubLoyalty:  src.Between(8, 20),
			Enthusiasm:   src.Between(5, 18),
			Satisfaction: src.Between(8, 16),
		},
	}
}

// Identity is a generated club name, nickname and home town.
type Identity struct {
	Name     string
	Nickname string
	Town     string
}

// ClubIdentity builds a club name from the region's town tables:
// 60% town+suffix, 25% town+standard suffix, 10% town+middle+suffix,
// 5% prefix+town+suffix.
func ClubIdentity(src *rng.Source, region string) Identity {
	town := PickTown(src, region)

	var name string
	roll := src.Between(1, 100)
	switch {
	case roll <= 60:
		name = fmt.Sprintf("%s %s", town, rng.Pick(src, nameSuffixes))
	case roll <= 85:
		name = fmt.Sprintf("%s %s", town, rng.Pick(src, standardSuffixes))
	case roll <= 95:
		name = fmt.Sprintf("%s %s %s", town, rng.Pick(src, nameMiddles), rng.Pick(src, nameSuffixes))
	default:
		name = fmt.Sprintf("%s %s %s", rng.Pick(src, namePrefixes), town, rng.Pick(src, nameSuffixes))
	}

	return Identity{
		Name:     name,
		Nickname: Nickname(src, name),
		Town:     town,
	}
}

// Nickname derives a nickname from color keywords in the name, with
// special cases for reserve and youth sides, else a generic fallback.
func Nickname(src *rng.Source, clubName string) string {
	if strings.Contains(clubName, "Reserves") {
		return "The Stiffs"
	}
	if strings.Contains(clubName, "Youth") {
		return "The Young 'Uns"
	}
	for _, keyword := range colorKeywords {
		if strings.Contains(clubName, keyword) {
			return colorNicknames[keyword]
		}
	}
	return rng.Pick(src, genericNicknames)
}

// UpgradeCost is the shared facility cost curve: base * 1.5^level.
func UpgradeCost(baseCost, level int) int {
	cost := float64(baseCost)
	for i := 0; i < level; i++ {
		cost *= 1.5
	}
	return int(cost)
}
