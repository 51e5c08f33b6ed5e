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
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"lemafi/cnf"
	"lemafi/export"
	"lemafi/lemma"
)

func actionJSON(conf *cnf.Conf, opts cmdOpts) error {
	srcPath := opts.input
	if srcPath == "" {
		srcPath = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	if err := requireInputFile(srcPath, "source CSV"); err != nil {
		return err
	}
	outPath := opts.output
	if outPath == "" {
		outPath = strings.TrimSuffix(srcPath, ".csv") + ".json"
	}
	if err := ensureOutputDir(outPath); err != nil {
		return err
	}
	numRecords, err := export.WriteJSON(srcPath, outPath, opts.key, opts.minify)
	if err != nil {
		return err
	}
	log.Info().
		Int("numRecords", numRecords).
		Str("rootKey", opts.key).
		Bool("minified", opts.minify).
		Str("output", outPath).
		Msg("JSON dataset written")
	return nil
}

func actionJSONL(conf *cnf.Conf, opts cmdOpts) error {
	srcPath := opts.input
	if srcPath == "" {
		srcPath = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	if err := requireInputFile(srcPath, "source CSV"); err != nil {
		return err
	}
	outPath := opts.output
	if outPath == "" {
		outPath = strings.TrimSuffix(srcPath, ".csv") + ".jsonl"
	}
	if err := ensureOutputDir(outPath); err != nil {
		return err
	}
	numRecords, err := export.WriteJSONL(srcPath, outPath)
	if err != nil {
		return err
	}
	log.Info().
		Int("numRecords", numRecords).
		Str("output", outPath).
		Msg("JSONL dataset written")
	return nil
}

func actionSQLite(conf *cnf.Conf, opts cmdOpts) error {
	lookupCSV := opts.lookupCSV
	if lookupCSV == "" {
		lookupCSV = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	rankCSV := opts.rankCSV
	if rankCSV == "" {
		rankCSV = lemma.GenRankFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	if err := requireInputFile(lookupCSV, "lookup CSV"); err != nil {
		return err
	}
	if err := requireInputFile(rankCSV, "rank CSV"); err != nil {
		return err
	}
	outPath := opts.output
	if outPath == "" {
		outPath = lemma.GenDatabaseFilename(conf.OutputDir, conf.Locale)
	}
	if err := ensureOutputDir(outPath); err != nil {
		return err
	}
	stats, err := export.ExportSQLite(lookupCSV, rankCSV, outPath, conf.TablePrefix(), opts.replace)
	if err != nil {
		return err
	}
	log.Info().
		Int("lookupRows", stats.LookupRows).
		Int("rankRows", stats.RankRows).
		Str("output", outPath).
		Msg("SQLite database written")
	return nil
}

// actionPipeline chains all stages over the conventional file names:
// extract => rank => JSON assets => SQLite database.
func actionPipeline(ctx context.Context, conf *cnf.Conf, opts cmdOpts) error {
	stage := opts
	stage.output = ""
	if err := actionExtract(ctx, conf, stage); err != nil {
		return err
	}
	stage.includeFreq = true
	if err := actionRank(conf, stage); err != nil {
		return err
	}

	stage.input = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	stage.key = conf.TablePrefix() + "_lemma_lookup"
	stage.output = lemma.GenJSONFilename(conf.OutputDir, conf.Locale, "lookup")
	if err := actionJSON(conf, stage); err != nil {
		return err
	}
	stage.input = lemma.GenRankFilename(conf.OutputDir, conf.Language, opts.limit)
	stage.key = conf.TablePrefix() + "_lemma_rank"
	stage.output = lemma.GenJSONFilename(conf.OutputDir, conf.Locale, "rank")
	if err := actionJSON(conf, stage); err != nil {
		return err
	}

	stage = opts
	stage.output = ""
	return actionSQLite(conf, stage)
}
