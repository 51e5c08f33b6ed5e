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
	"bufio"
	"encoding/json"
	"os"

	"lemafi/csvio"
	"lemafi/lerror"
)

// WriteJSONL converts a headered CSV into newline-delimited JSON,
// one header-keyed object per data row. Returns the number of
// exported records.
func WriteJSONL(srcPath, outPath string) (int, error) {
	header, rows, err := csvio.ReadTable(srcPath)
	if err != nil {
		return 0, err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return 0, lerror.NewInputError("cannot write JSONL %s: %s", outPath, err)
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	for _, row := range rows {
		obj := make(map[string]string, len(header))
		for i, name := range header {
			obj[name] = row[i]
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return 0, err
		}
		if _, err := writer.Write(append(data, '\n')); err != nil {
			return 0, err
		}
	}
	if err := writer.Flush(); err != nil {
		return 0, err
	}
	return len(rows), nil
}
