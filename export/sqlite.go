// Copyright 2025 The lemafi authors
//   This file is part of LEMAFI.
//
//  LEMAFI is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  LEMAFI is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with LEMAFI.  If not, see <https://www.gnu.org/licenses/>.

package export

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"lemafi/csvio"
	"lemafi/lemma"
	"lemafi/lerror"
)

type SQLiteStats struct {
	LookupRows int
	RankRows   int
}

// Database wraps the target SQLite file of the dictionary export.
type Database struct {
	conn   *sql.DB
	prefix string
}

func OpenDatabase(path, tablePrefix string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, lerror.NewInputError("cannot open database %s: %s", path, err)
	}
	return &Database{conn: conn, prefix: tablePrefix}, nil
}

func (d *Database) Close() error {
	return d.conn.Close()
}

func (d *Database) LookupTable() string {
	return d.prefix + "_lemma_lookup"
}

func (d *Database) RankTable() string {
	return d.prefix + "_lemma_rank"
}

func (d *Database) tableExists(name string) (bool, error) {
	query, args, err := squirrel.Select("name").
		From("sqlite_master").
		Where(squirrel.Eq{"type": "table", "name": name}).
		ToSql()
	if err != nil {
		return false, err
	}
	var ans string
	err = d.conn.QueryRow(query, args...).Scan(&ans)
	if err == sql.ErrNoRows {
		return false, nil

	} else if err != nil {
		return false, err
	}
	return true, nil
}

// checkTargetTables tests both target tables before anything is
// written. Without replace, a pre-existing table aborts the whole
// export - silently appending duplicate rows to a shipped app asset
// must not happen.
func (d *Database) checkTargetTables(replace bool) error {
	for _, name := range []string{d.LookupTable(), d.RankTable()} {
		exists, err := d.tableExists(name)
		if err != nil {
			return err
		}
		if exists && !replace {
			return lerror.NewExistsError(
				"table %s already exists - use --replace to drop and recreate it", name)
		}
	}
	return nil
}

func (d *Database) createSchema(tx *sql.Tx, replace bool) error {
	if replace {
		for _, name := range []string{d.LookupTable(), d.RankTable()} {
			if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name)); err != nil {
				return err
			}
		}
	}
	_, err := tx.Exec(fmt.Sprintf(
		`CREATE TABLE %s (
			surface_form TEXT NOT NULL,
			pos TEXT NOT NULL,
			lemma TEXT NOT NULL,
			PRIMARY KEY (surface_form, pos)
		)`,
		d.LookupTable(),
	))
	if err != nil {
		return err
	}
	// an extra index for lookups where PoS is not known
	_, err = tx.Exec(fmt.Sprintf(
		"CREATE INDEX idx_%s_surface_form ON %s(surface_form)",
		d.prefix, d.LookupTable(),
	))
	if err != nil {
		return err
	}
	_, err = tx.Exec(fmt.Sprintf(
		`CREATE TABLE %s (
			lemma TEXT NOT NULL PRIMARY KEY,
			freq INTEGER,
			rank INTEGER NOT NULL
		)`,
		d.RankTable(),
	))
	return err
}

func (d *Database) insertLookupRows(tx *sql.Tx, rows []lemma.Row) error {
	query, _, err := squirrel.Insert(d.LookupTable()).
		Options("OR REPLACE").
		Columns("surface_form", "pos", "lemma").
		Values("", "", "").
		ToSql()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, row := range rows {
		if _, err := stmt.Exec(row.SurfaceForm, row.POS, row.Lemma); err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) insertRankRows(tx *sql.Tx, records []rankRecord) error {
	query, _, err := squirrel.Insert(d.RankTable()).
		Options("OR REPLACE").
		Columns("lemma", "freq", "rank").
		Values("", 0, 0).
		ToSql()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, rec := range records {
		var freq any
		if rec.freq != nil {
			freq = *rec.freq
		}
		if _, err := stmt.Exec(rec.lemma, freq, rec.rank); err != nil {
			return err
		}
	}
	return nil
}

type rankRecord struct {
	lemma string
	freq  *int
	rank  int
}

// loadRankCSV reads the rank dataset addressing columns by header
// name so that both the `lemma,rank` and `lemma,freq,rank` variants
// load correctly.
func loadRankCSV(path string) ([]rankRecord, error) {
	header, rows, err := csvio.ReadTable(path)
	if err != nil {
		return nil, err
	}
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	lemmaCol, hasLemma := colIdx["lemma"]
	rankCol, hasRank := colIdx["rank"]
	if !hasLemma || !hasRank {
		return nil, lerror.NewIntegrityError(
			"rank CSV %s must provide `lemma` and `rank` columns (found: %s)",
			path, strings.Join(header, ","))
	}
	freqCol, hasFreq := colIdx["freq"]
	ans := make([]rankRecord, 0, len(rows))
	for i, row := range rows {
		rec := rankRecord{lemma: strings.TrimSpace(row[lemmaCol])}
		if rec.lemma == "" {
			continue
		}
		rec.rank, err = strconv.Atoi(strings.TrimSpace(row[rankCol]))
		if err != nil {
			return nil, lerror.NewIntegrityError(
				"rank CSV %s: row %d has non-numeric rank %q", path, i+2, row[rankCol])
		}
		if hasFreq && strings.TrimSpace(row[freqCol]) != "" {
			freq, err := strconv.Atoi(strings.TrimSpace(row[freqCol]))
			if err != nil {
				return nil, lerror.NewIntegrityError(
					"rank CSV %s: row %d has non-numeric freq %q", path, i+2, row[freqCol])
			}
			rec.freq = &freq
		}
		ans = append(ans, rec)
	}
	return ans, nil
}

// ExportSQLite loads the lookup and rank CSVs and writes them into
// two tables of a single SQLite database in one transaction. With
// replace set, existing target tables are dropped and recreated;
// otherwise a pre-existing target table is a fatal error and the
// database is left untouched.
func ExportSQLite(lookupCSV, rankCSV, dbPath, tablePrefix string, replace bool) (*SQLiteStats, error) {
	lookupRows, err := lemma.LoadTable(lookupCSV)
	if err != nil {
		return nil, err
	}
	rankRecords, err := loadRankCSV(rankCSV)
	if err != nil {
		return nil, err
	}

	db, err := OpenDatabase(dbPath, tablePrefix)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := db.checkTargetTables(replace); err != nil {
		return nil, err
	}
	tx, err := db.conn.Begin()
	if err != nil {
		return nil, err
	}
	if err := db.createSchema(tx, replace); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := db.insertLookupRows(tx, lookupRows); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := db.insertRankRows(tx, rankRecords); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &SQLiteStats{LookupRows: len(lookupRows), RankRows: len(rankRecords)}, nil
}
