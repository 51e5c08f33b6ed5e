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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"lemafi/lerror"
)

const (
	testLookupCSV = "surface_form,pos,lemma,frequency\n" +
		"taloissa,NOUN,talo,120\n" +
		"on,VERB,olla,500\n" +
		"kautta,ADP,kautta,90\n"
	testRankCSV = "lemma,freq,rank\n" +
		"olla,500,1\n" +
		"talo,120,2\n" +
		"kautta,90,3\n"
)

func prepareExportInputs(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	lookupPath := filepath.Join(dir, "lookup.csv")
	rankPath := filepath.Join(dir, "rank.csv")
	assert.NoError(t, os.WriteFile(lookupPath, []byte(testLookupCSV), 0644))
	assert.NoError(t, os.WriteFile(rankPath, []byte(testRankCSV), 0644))
	return lookupPath, rankPath, filepath.Join(dir, "fi_FI_v1.sqlite")
}

func countRows(t *testing.T, dbPath, table string) int {
	t.Helper()
	conn, err := sql.Open("sqlite3", dbPath)
	assert.NoError(t, err)
	defer conn.Close()
	var ans int
	err = conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&ans)
	assert.NoError(t, err)
	return ans
}

func TestExportSQLite(t *testing.T) {
	lookupPath, rankPath, dbPath := prepareExportInputs(t)
	stats, err := ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", false)
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.LookupRows)
	assert.Equal(t, 3, stats.RankRows)
	assert.Equal(t, 3, countRows(t, dbPath, "fi_FI_lemma_lookup"))
	assert.Equal(t, 3, countRows(t, dbPath, "fi_FI_lemma_rank"))

	conn, err := sql.Open("sqlite3", dbPath)
	assert.NoError(t, err)
	defer conn.Close()
	var lemma string
	var rank int
	err = conn.QueryRow(
		"SELECT lemma, rank FROM fi_FI_lemma_rank WHERE lemma = 'olla'").Scan(&lemma, &rank)
	assert.NoError(t, err)
	assert.Equal(t, "olla", lemma)
	assert.Equal(t, 1, rank)
	err = conn.QueryRow(
		"SELECT lemma FROM fi_FI_lemma_lookup WHERE surface_form = 'taloissa' AND pos = 'NOUN'",
	).Scan(&lemma)
	assert.NoError(t, err)
	assert.Equal(t, "talo", lemma)
}

// a second run without replace must fail cleanly and keep the
// previously exported data untouched
func TestExportSQLiteRefusesExistingTables(t *testing.T) {
	lookupPath, rankPath, dbPath := prepareExportInputs(t)
	_, err := ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", false)
	assert.NoError(t, err)
	_, err = ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", false)
	assert.Error(t, err)
	assert.IsType(t, lerror.ExistsError{}, err)
	assert.Equal(t, 3, countRows(t, dbPath, "fi_FI_lemma_lookup"))
	assert.Equal(t, 3, countRows(t, dbPath, "fi_FI_lemma_rank"))
}

func TestExportSQLiteReplace(t *testing.T) {
	lookupPath, rankPath, dbPath := prepareExportInputs(t)
	_, err := ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", false)
	assert.NoError(t, err)

	smaller := "lemma,rank\nolla,1\n"
	assert.NoError(t, os.WriteFile(rankPath, []byte(smaller), 0644))
	stats, err := ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", true)
	assert.NoError(t, err)
	assert.Equal(t, 1, stats.RankRows)
	assert.Equal(t, 1, countRows(t, dbPath, "fi_FI_lemma_rank"))
}

func TestExportSQLiteNullableFreq(t *testing.T) {
	lookupPath, rankPath, dbPath := prepareExportInputs(t)
	assert.NoError(t, os.WriteFile(rankPath, []byte("lemma,rank\nolla,1\n"), 0644))
	_, err := ExportSQLite(lookupPath, rankPath, dbPath, "fi_FI", false)
	assert.NoError(t, err)

	conn, err := sql.Open("sqlite3", dbPath)
	assert.NoError(t, err)
	defer conn.Close()
	var freq sql.NullInt64
	err = conn.QueryRow("SELECT freq FROM fi_FI_lemma_rank WHERE lemma = 'olla'").Scan(&freq)
	assert.NoError(t, err)
	assert.False(t, freq.Valid)
}

func TestLoadRankCSVRequiresColumns(t *testing.T) {
	path := writeTmpFile(t, "rank.csv", "word,position\nolla,1\n")
	_, err := loadRankCSV(path)
	assert.Error(t, err)
	assert.IsType(t, lerror.IntegrityError{}, err)
}

func TestLoadRankCSVNonNumericRank(t *testing.T) {
	path := writeTmpFile(t, "rank.csv", "lemma,rank\nolla,first\n")
	_, err := loadRankCSV(path)
	assert.Error(t, err)
	assert.IsType(t, lerror.IntegrityError{}, err)
}
