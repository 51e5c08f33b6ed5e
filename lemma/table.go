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

// Package lemma implements the pipeline's core transforms: building
// the surface form => lemma lookup table via external analyzers and
// aggregating surface frequencies into ranked lemma frequencies.
package lemma

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"lemafi/csvio"
	"lemafi/lerror"
)

// Row is one candidate reading in the lookup table: a surface form
// with one of its analyzer-provided lemmas and the surface form's
// original corpus frequency.
type Row struct {
	SurfaceForm string
	POS         string
	Lemma       string
	Freq        int
}

var tableHeader = []string{"surface_form", "pos", "lemma", "frequency"}

// WriteTable writes lookup rows as a headered CSV file.
func WriteTable(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return lerror.NewInputError("cannot create lookup table %s: %s", path, err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	if err := writer.Write(tableHeader); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{row.SurfaceForm, row.POS, row.Lemma, strconv.Itoa(row.Freq)}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadTable reads a lookup table CSV. Both the current four-column
// format and the legacy three-column one (without the frequency
// column) are accepted; in the legacy case Freq stays zero and the
// aggregator joins frequencies from the original list instead.
func LoadTable(path string) ([]Row, error) {
	header, records, err := csvio.ReadTable(path)
	if err != nil {
		return nil, err
	}
	if !isTableHeader(header) {
		return nil, lerror.NewIntegrityError(
			"lookup table %s: unexpected header %s", path, strings.Join(header, ","))
	}
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row := Row{
			SurfaceForm: strings.TrimSpace(rec[0]),
			POS:         strings.TrimSpace(rec[1]),
			Lemma:       strings.TrimSpace(rec[2]),
		}
		if row.SurfaceForm == "" || row.Lemma == "" {
			continue
		}
		if len(rec) > 3 {
			freq, err := strconv.Atoi(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, lerror.NewIntegrityError(
					"lookup table %s: row %d has non-numeric frequency %q", path, i+2, rec[3])
			}
			row.Freq = freq
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isTableHeader(header []string) bool {
	if len(header) < 3 || len(header) > len(tableHeader) {
		return false
	}
	for i, name := range header {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
		if normalized != tableHeader[i] {
			return false
		}
	}
	return true
}
