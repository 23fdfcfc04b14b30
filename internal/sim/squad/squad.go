// Package squad is the roster store for the managed club. Every
// operation takes the player slice and returns a new one; callers never
// share backing arrays with live state.
package squad

import (
	"log"

	"github.com/jdlinklater/touchline/internal/models"
)

// Add appends a player to the roster, stamping the club id.
func Add(players []models.Player, p models.Player, clubID string) []models.Player {
	p.ClubID = clubID
	out := clone(players)
	return append(out, p)
}

// Remove drops a player by id. A missing id is logged and leaves the
// roster unchanged; tasks can reference players that have since moved on.
func Remove(players []models.Player, id string) []models.Player {
	for i := range players {
		if players[i].ID == id {
			out := clone(players)
			return append(out[:i], out[i+1:]...)
		}
	}
	log.Printf("squad: remove: no player with id %q", id)
	return players
}

// Get returns a copy of the player and whether it was found.
func Get(players []models.Player, id string) (models.Player, bool) {
	for i := range players {
		if players[i].ID == id {
			return players[i].Clone(), true
		}
	}
	return models.Player{}, false
}

// List returns an independent copy of the roster.
func List(players []models.Player) []models.Player {
	return clone(players)
}

// StatDeltas are added onto a player's season counters.
type StatDeltas struct {
	Appearances int
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	MOTM        int
}

// AddSeasonStats applies deltas to one player's season counters.
func AddSeasonStats(players []models.Player, id string, d StatDeltas) []models.Player {
	return update(players, id, func(p *models.Player) {
		p.SeasonStats.Appearances += d.Appearances
		p.SeasonStats.Goals += d.Goals
		p.SeasonStats.Assists += d.Assists
		p.SeasonStats.YellowCards += d.YellowCards
		p.SeasonStats.RedCards += d.RedCards
		p.SeasonStats.MOTM += d.MOTM
	})
}

// SetStatus replaces a player's status wholesale.
func SetStatus(players []models.Player, id string, status models.PlayerStatus) []models.Player {
	return update(players, id, func(p *models.Player) {
		p.Status = status
	})
}

// AdjustMorale shifts one player's morale, clamped to 0-100.
func AdjustMorale(players []models.Player, id string, delta int) []models.Player {
	return update(players, id, func(p *models.Player) {
		p.Status.Morale = clampMorale(p.Status.Morale + delta)
	})
}

// AdjustMoraleAll shifts the whole squad's morale uniformly.
func AdjustMoraleAll(players []models.Player, delta int) []models.Player {
	out := clone(players)
	for i := range out {
		out[i].Status.Morale = clampMorale(out[i].Status.Morale + delta)
	}
	return out
}

// ResetSeason zeroes season stats, restores fitness and clears injury
// and suspension state for every player.
func ResetSeason(players []models.Player) []models.Player {
	out := clone(players)
	for i := range out {
		out[i].SeasonStats = models.PlayerSeasonStats{}
		out[i].Status.Fitness = 100
		out[i].Status.Injury = models.InjuryFit
		out[i].Status.InjuryWeeks = 0
		out[i].Status.Suspended = false
		out[i].Status.SuspensionGames = 0
	}
	return out
}

// Available returns copies of the players fit to be selected.
func Available(players []models.Player) []models.Player {
	var out []models.Player
	for i := range players {
		if players[i].Status.Available() {
			out = append(out, players[i].Clone())
		}
	}
	return out
}

// AverageMorale over the roster; 50 for an empty squad.
func AverageMorale(players []models.Player) int {
	if len(players) == 0 {
		return 50
	}
	total := 0
	for i := range players {
		total += players[i].Status.Morale
	}
	return total / len(players)
}

func update(players []models.Player, id string, fn func(*models.Player)) []models.Player {
	for i := range players {
		if players[i].ID == id {
			out := clone(players)
			fn(&out[i])
			return out
		}
	}
	log.Printf("squad: update: no player with id %q", id)
	return players
}

func clone(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	for i, p := range players {
		out[i] = p.Clone()
	}
	return out
}

func clampMorale(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
