// Package archive keeps a season-by-season history of every club in a
// small sqlite database, separate from the save file so past seasons
// survive save-slot churn.
package archive

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jdlinklater/touchline/internal/models"
)

// Row is one club-season record.
type Row struct {
	Season         int
	ClubID         string
	ClubName       string
	LeagueName     string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	Points         int
	Classification string
}

type Archive struct {
	db *sql.DB
}

// Open creates the database and schema if needed. An empty path returns
// a nil archive, which every method treats as disabled.
func Open(path string) (*Archive, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS club_seasons (
		season INTEGER NOT NULL,
		club_id TEXT NOT NULL,
		club_name TEXT NOT NULL,
		league_name TEXT NOT NULL,
		position INTEGER NOT NULL,
		played INTEGER NOT NULL,
		won INTEGER NOT NULL,
		drawn INTEGER NOT NULL,
		lost INTEGER NOT NULL,
		goals_for INTEGER NOT NULL,
		goals_against INTEGER NOT NULL,
		points INTEGER NOT NULL,
		classification TEXT NOT NULL,
		PRIMARY KEY (season, club_id)
	);
	CREATE INDEX IF NOT EXISTS idx_club_seasons_club ON club_seasons(club_id);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	return a.db.Close()
}

// RecordSeason writes the final table for one season. Re-recording a
// season replaces its rows.
func (a *Archive) RecordSeason(rows []Row) error {
	if a == nil {
		return nil
	}
	tx, err := a.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO club_seasons
		(season, club_id, club_name, league_name, position, played, won, drawn, lost, goals_for, goals_against, points, classification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.Season, r.ClubID, r.ClubName, r.LeagueName, r.Position,
			r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.Points, r.Classification); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// ClubSeasons returns a club's history, most recent season first.
func (a *Archive) ClubSeasons(clubID string) ([]Row, error) {
	if a == nil {
		return nil, nil
	}
	return a.query(`SELECT season, club_id, club_name, league_name, position, played, won, drawn, lost,
		goals_for, goals_against, points, classification
		FROM club_seasons WHERE club_id = ? ORDER BY season DESC`, clubID)
}

// Seasons lists the recorded season numbers in order.
func (a *Archive) Seasons() ([]int, error) {
	if a == nil {
		return nil, nil
	}
	rows, err := a.db.Query(`SELECT DISTINCT season FROM club_seasons ORDER BY season ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Season returns one season's full table ordered by position.
func (a *Archive) Season(season int) ([]Row, error) {
	if a == nil {
		return nil, nil
	}
	return a.query(`SELECT season, club_id, club_name, league_name, position, played, won, drawn, lost,
		goals_for, goals_against, points, classification
		FROM club_seasons WHERE season = ? ORDER BY position ASC`, season)
}

func (a *Archive) query(q string, args ...any) ([]Row, error) {
	rows, err := a.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Season, &r.ClubID, &r.ClubName, &r.LeagueName, &r.Position,
			&r.Played, &r.Won, &r.Drawn, &r.Lost, &r.GoalsFor, &r.GoalsAgainst, &r.Points, &r.Classification); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// RowsFromTable converts a sorted final table into archive rows.
func RowsFromTable(season int, leagueName string, table []models.Club) []Row {
	out := make([]Row, 0, len(table))
	for i, c := range table {
		out = append(out, Row{
			Season:         season,
			ClubID:         c.ID,
			ClubName:       c.Name,
			LeagueName:     leagueName,
			Position:       i + 1,
			Played:         c.LeagueStats.Played,
			Won:            c.LeagueStats.Won,
			Drawn:          c.LeagueStats.Drawn,
			Lost:           c.LeagueStats.Lost,
			GoalsFor:       c.LeagueStats.GoalsFor,
			GoalsAgainst:   c.LeagueStats.GoalsAgainst,
			Points:         c.LeagueStats.Points,
			Classification: c.Classification,
		})
	}
	return out
}
