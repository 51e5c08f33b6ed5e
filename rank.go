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

package main

import (
	"github.com/rs/zerolog/log"

	"lemafi/cnf"
	"lemafi/freqlist"
	"lemafi/lemma"
)

func actionRank(conf *cnf.Conf, opts cmdOpts) error {
	lookupPath := opts.lemmaCSV
	if lookupPath == "" {
		lookupPath = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	freqPath := opts.freqList
	if freqPath == "" {
		freqPath = conf.FreqList
	}
	if err := requireInputFile(lookupPath, "lemma table CSV"); err != nil {
		return err
	}
	if err := requireInputFile(freqPath, "frequency list"); err != nil {
		return err
	}

	rows, err := lemma.LoadTable(lookupPath)
	if err != nil {
		return err
	}
	entries, err := freqlist.Load(freqPath, 0)
	if err != nil {
		return err
	}
	ranked, stats := lemma.Aggregate(rows, entries)

	outPath := opts.output
	if outPath == "" {
		outPath = lemma.GenRankFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	if err := ensureOutputDir(outPath); err != nil {
		return err
	}
	if err := lemma.WriteRankCSV(outPath, ranked, opts.includeFreq); err != nil {
		return err
	}
	log.Info().
		Int("numLemmas", len(ranked)).
		Int("matched", stats.Matched).
		Int("unmatched", stats.Unmatched).
		Int("ambiguous", stats.Ambiguous).
		Int("zeroFreq", stats.ZeroFreq).
		Str("output", outPath).
		Msg("rank dataset written")
	return nil
}
