// Package committee decides club proposals: each member casts a yes/no
// vote from their skills and personality against the proposal's
// difficulty, and sixty percent approval carries the motion.
package committee

import (
	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/rng"
)

// PassThreshold is the approval fraction a proposal needs.
const PassThreshold = 0.6

// ArgumentStyle is how the chair pitches the proposal.
type ArgumentStyle string

const (
	StyleFinancial ArgumentStyle = "financial"
	StyleAmbitious ArgumentStyle = "ambitious"
	StyleCommunity ArgumentStyle = "community"
)

// Proposal is a motion put to the committee.
type Proposal struct {
	Description string
	// Difficulty 1-20: higher needs a more persuasive case.
	Difficulty int
	Cost       int
}

// Vote is one member's cast.
type Vote struct {
	MemberID string
	Name     string
	InFavor  bool
}

// Outcome is the full vote record.
type Outcome struct {
	Votes    []Vote
	Approval float64
	Passed   bool
}

// Decide runs the vote. Each member's lean is their relevant skill and
// personality against the difficulty, with a small random swing.
func Decide(src *rng.Source, members []models.CommitteeMember, p Proposal, style ArgumentStyle) Outcome {
	out := Outcome{}
	if len(members) == 0 {
		return out
	}

	inFavor := 0
	for _, m := range members {
		score := lean(m, style) + src.Between(-3, 3)
		vote := Vote{
			MemberID: m.ID,
			Name:     m.Name,
			InFavor:  score >= p.Difficulty,
		}
		if vote.InFavor {
			inFavor++
		}
		out.Votes = append(out.Votes, vote)
	}

	out.Approval = float64(inFavor) / float64(len(members))
	out.Passed = out.Approval >= PassThreshold
	return out
}

// lean is the member's baseline willingness before the dice roll.
func lean(m models.CommitteeMember, style ArgumentStyle) int {
	base := (m.Personality.LoyaltyToYou + m.Personality.Enthusiasm + m.Personality.Satisfaction) / 3

	var styleBonus int
	switch style {
	case StyleFinancial:
		styleBonus = m.Skills.FinancialAcumen / 4
	case StyleAmbitious:
		styleBonus = m.Skills.Initiative / 4
	case StyleCommunity:
		styleBonus = m.Skills.CommunityRelations / 4
	}

	// Change-averse members discount every pitch.
	return base + styleBonus - m.Skills.ResistanceToChange/5
}
