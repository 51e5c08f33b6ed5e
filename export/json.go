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

// Package export writes the pipeline's app-facing artifacts: JSON and
// JSONL assets and the SQLite dictionary database. Exporters perform
// no computation beyond structural transformation; data integrity
// problems in their inputs are fatal.
package export

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"lemafi/csvio"
	"lemafi/lerror"
)

// WriteJSON converts a headered CSV into a JSON object nested under
// rootKey. Rows map their first column to the remaining columns - a
// plain string when there is exactly one of them, a list otherwise.
// A repeated first-column value keeps its first row; duplicates are
// counted and logged (app lookups are keyed, so one row must win).
// Returns the number of exported records.
func WriteJSON(srcPath, outPath, rootKey string, minify bool) (int, error) {
	if rootKey == "" {
		return 0, lerror.NewInputError("JSON export requires a root key (--key)")
	}
	header, rows, err := csvio.ReadTable(srcPath)
	if err != nil {
		return 0, err
	}
	if len(header) < 2 {
		return 0, lerror.NewIntegrityError(
			"JSON export requires at least two columns, %s has %d", srcPath, len(header))
	}
	mapping := make(map[string]any, len(rows))
	var numDupl int
	for _, row := range rows {
		key := row[0]
		if _, ok := mapping[key]; ok {
			numDupl++
			continue
		}
		if len(row) == 2 {
			mapping[key] = row[1]

		} else {
			mapping[key] = row[1:]
		}
	}
	if numDupl > 0 {
		log.Warn().
			Int("numDuplicates", numDupl).
			Str("file", srcPath).
			Msg("repeated keys in JSON export source, keeping first occurrences")
	}

	var data []byte
	if minify {
		data, err = json.Marshal(map[string]any{rootKey: mapping})

	} else {
		data, err = json.MarshalIndent(map[string]any{rootKey: mapping}, "", "  ")
	}
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return 0, lerror.NewInputError("cannot write JSON %s: %s", outPath, err)
	}
	return len(mapping), nil
}
