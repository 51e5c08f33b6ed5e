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
	"os"
	"path/filepath"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"

	"lemafi/analyzer"
	"lemafi/cnf"
	"lemafi/freqlist"
	"lemafi/lemma"
	"lemafi/lerror"
)

const maxReportedUnanalyzable = 20

func requireInputFile(path, role string) error {
	isFile, err := fs.IsFile(path)
	if err != nil {
		return lerror.NewInputError("cannot access %s %s: %s", role, path, err)
	}
	if !isFile {
		return lerror.NewInputError("%s not found: %s", role, path)
	}
	return nil
}

func ensureOutputDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

func actionExtract(ctx context.Context, conf *cnf.Conf, opts cmdOpts) error {
	freqPath := opts.freqList
	if freqPath == "" {
		freqPath = conf.FreqList
	}
	if err := requireInputFile(freqPath, "frequency list"); err != nil {
		return err
	}
	entries, err := freqlist.Load(freqPath, opts.limit)
	if err != nil {
		return err
	}
	log.Info().
		Int("numEntries", len(entries)).
		Str("freqList", freqPath).
		Msg("loaded frequency list")

	voikko, err := analyzer.OpenVoikko(ctx, conf.Analyzers.Voikko)
	if err != nil {
		return err
	}
	defer func() {
		if err := voikko.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to release voikko process")
		}
	}()
	var fallback analyzer.Analyzer
	if conf.Analyzers.UDPipe.Model != "" {
		fallback, err = analyzer.NewUDPipe(conf.Analyzers.UDPipe)
		if err != nil {
			return err
		}

	} else {
		log.Info().Msg("no udpipe model configured, running without a fallback analyzer")
	}

	ex := &lemma.Extractor{Primary: voikko, Fallback: fallback}
	rows, stats, err := ex.Run(ctx, entries)
	if err != nil {
		return err
	}

	outPath := opts.output
	if outPath == "" {
		outPath = lemma.GenLookupFilename(conf.OutputDir, conf.Language, opts.limit)
	}
	if err := ensureOutputDir(outPath); err != nil {
		return err
	}
	if err := lemma.WriteTable(outPath, rows); err != nil {
		return err
	}
	if len(stats.Unanalyzable) > 0 {
		reported := stats.Unanalyzable
		if len(reported) > maxReportedUnanalyzable {
			reported = reported[:maxReportedUnanalyzable]
		}
		log.Warn().
			Int("numWords", len(stats.Unanalyzable)).
			Strs("sample", reported).
			Msg("some surface forms could not be analyzed")
	}
	log.Info().
		Int("processed", stats.Processed).
		Int("rowsWritten", stats.RowsProduced).
		Int("fromFallback", stats.FromFallback).
		Str("output", outPath).
		Msg("lookup table written")
	return nil
}
