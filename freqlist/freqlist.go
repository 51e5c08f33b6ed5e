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

// Package freqlist loads plain-text word frequency lists of the
// common `surface_form count` format (whitespace-separated, one
// entry per line, ordered by descending frequency).
package freqlist

import (
	"bufio"
	"strconv"
	"strings"

	"lemafi/csvio"
	"lemafi/lerror"
)

// Entry is a single surface form with its corpus frequency. Entries
// are the pipeline's source of truth and are never mutated once
// loaded.
type Entry struct {
	SurfaceForm string
	Freq        int
}

// Load reads up to limit unique surface forms from a frequency list
// file. Lines without at least two fields or with a non-numeric count
// are skipped. A repeated surface form keeps its first occurrence
// (frequency lists are expected to be pre-aggregated; duplicates do
// happen in hand-edited ones). A limit of zero or less means no limit.
func Load(path string, limit int) ([]Entry, error) {
	src, err := csvio.Open(path)
	if err != nil {
		return nil, lerror.NewInputError("cannot open frequency list %s: %s", path, err)
	}
	defer src.Close()

	var entries []Entry
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}
		freq, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		surface := parts[0]
		if seen[surface] {
			continue
		}
		seen[surface] = true
		entries = append(entries, Entry{SurfaceForm: surface, Freq: freq})
		if limit > 0 && len(entries) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, lerror.NewInputError("failed to read frequency list %s: %s", path, err)
	}
	return entries, nil
}

// TotalFreq sums the frequencies of all entries.
func TotalFreq(entries []Entry) int {
	var ans int
	for _, e := range entries {
		ans += e.Freq
	}
	return ans
}
