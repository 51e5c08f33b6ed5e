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

package lemma

import (
	"context"

	"github.com/rs/zerolog/log"

	"lemafi/analyzer"
	"lemafi/freqlist"
)

// Extractor turns frequency list entries into lookup table rows by
// querying a primary analyzer with an optional fallback. A per-word
// analyzer failure never aborts the batch - the word is counted and
// skipped.
type Extractor struct {
	Primary  analyzer.Analyzer
	Fallback analyzer.Analyzer
}

type ExtractStats struct {
	Processed    int
	RowsProduced int
	FromFallback int
	Unanalyzable []string
}

func (ex *Extractor) Run(ctx context.Context, entries []freqlist.Entry) ([]Row, *ExtractStats, error) {
	stats := new(ExtractStats)
	var rows []Row
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		stats.Processed++
		analyses := ex.analyzeWord(ctx, entry.SurfaceForm, stats)
		if len(analyses) == 0 {
			stats.Unanalyzable = append(stats.Unanalyzable, entry.SurfaceForm)
			continue
		}
		for _, item := range analyses {
			rows = append(rows, Row{
				SurfaceForm: entry.SurfaceForm,
				POS:         item.POS,
				Lemma:       item.Lemma,
				Freq:        entry.Freq,
			})
			stats.RowsProduced++
		}
	}
	return rows, stats, nil
}

func (ex *Extractor) analyzeWord(ctx context.Context, word string, stats *ExtractStats) []analyzer.Analysis {
	analyses, err := ex.Primary.Analyze(ctx, word)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("primary analyzer failed, trying fallback")
		analyses = nil
	}
	if len(analyses) == 0 && ex.Fallback != nil {
		analyses, err = ex.Fallback.Analyze(ctx, word)
		if err != nil {
			log.Warn().Err(err).Str("word", word).Msg("fallback analyzer failed, skipping word")
			return nil
		}
		if len(analyses) > 0 {
			stats.FromFallback++
		}
	}
	return analyzer.Dedup(analyses)
}
