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

// Package analyzer wraps external morphological analyzers behind a
// common interface. Backends shell out to locally installed tools
// (voikkospell, udpipe); no analysis is performed in-process.
package analyzer

import "context"

// Analysis is a single candidate reading of a surface form. POS uses
// the pipeline's reduced tag set (see posmap.go); an analysis whose
// class does not map into the tag set is dropped by the backend.
type Analysis struct {
	Lemma string
	POS   string
}

// Analyzer produces candidate analyses for single surface forms.
// Implementations hold on to external process resources and must be
// closed once extraction completes.
type Analyzer interface {
	Analyze(ctx context.Context, word string) ([]Analysis, error)
	Close() error
}

// Dedup removes repeated (POS, lemma) pairs preserving the order of
// first occurrence. Analyzers commonly emit the same reading through
// several inflection paths.
func Dedup(items []Analysis) []Analysis {
	seen := make(map[Analysis]bool)
	ans := make([]Analysis, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		ans = append(ans, item)
	}
	return ans
}
