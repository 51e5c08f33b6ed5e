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
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/czcorpus/cnc-gokit/collections"

	"lemafi/freqlist"
	"lemafi/lerror"
)

// RankedLemma is one row of the rank dataset: a lemma with the total
// surface frequency credited to it and its dense rank (1..N, no gaps).
type RankedLemma struct {
	Lemma string `json:"lemma"`
	Freq  int    `json:"freq"`
	Rank  int    `json:"rank"`
}

type AggregateStats struct {
	Matched   int
	Unmatched int
	Ambiguous int
	ZeroFreq  int
}

// Aggregate joins surface frequencies to lemmas and assigns dense
// ranks by descending total frequency.
//
// A surface form with several candidate lemmas is never split: its
// whole frequency goes to the candidate which accumulated the highest
// provisional total elsewhere in the dataset. Provisional totals are
// computed in a first pass over unambiguous surface forms only, so
// the outcome does not depend on input order; the second pass commits
// every surface form's frequency against those fixed totals. A
// provisional-total tie keeps the candidate listed first in the
// lookup table.
//
// Surface forms present in the frequency list but absent from the
// lookup table contribute nothing and are only counted. Lemmas with
// no credited frequency still appear, ranked after all others.
func Aggregate(rows []Row, entries []freqlist.Entry) ([]RankedLemma, *AggregateStats) {
	candidates := make(map[string][]string)
	var lemmaOrder []string
	knownLemmas := make(map[string]bool)
	for _, row := range rows {
		if !collections.SliceContains(candidates[row.SurfaceForm], row.Lemma) {
			candidates[row.SurfaceForm] = append(candidates[row.SurfaceForm], row.Lemma)
		}
		if !knownLemmas[row.Lemma] {
			knownLemmas[row.Lemma] = true
			lemmaOrder = append(lemmaOrder, row.Lemma)
		}
	}

	provisional := make(map[string]int)
	for _, entry := range entries {
		cands := candidates[entry.SurfaceForm]
		if len(cands) == 1 {
			provisional[cands[0]] += entry.Freq
		}
	}

	stats := new(AggregateStats)
	totals := make(map[string]int, len(lemmaOrder))
	for _, entry := range entries {
		cands := candidates[entry.SurfaceForm]
		if len(cands) == 0 {
			stats.Unmatched++
			continue
		}
		stats.Matched++
		winner := cands[0]
		if len(cands) > 1 {
			stats.Ambiguous++
			for _, cand := range cands[1:] {
				if provisional[cand] > provisional[winner] {
					winner = cand
				}
			}
		}
		totals[winner] += entry.Freq
	}

	ans := make([]RankedLemma, 0, len(lemmaOrder))
	for _, lemma := range lemmaOrder {
		if totals[lemma] == 0 {
			stats.ZeroFreq++
		}
		ans = append(ans, RankedLemma{Lemma: lemma, Freq: totals[lemma]})
	}
	sort.SliceStable(ans, func(i, j int) bool {
		if ans[i].Freq != ans[j].Freq {
			return ans[i].Freq > ans[j].Freq
		}
		return ans[i].Lemma < ans[j].Lemma
	})
	for i := range ans {
		ans[i].Rank = i + 1
	}
	return ans, stats
}

// WriteRankCSV writes the rank dataset as a headered CSV, with or
// without the frequency column.
func WriteRankCSV(path string, items []RankedLemma, includeFreq bool) error {
	f, err := os.Create(path)
	if err != nil {
		return lerror.NewInputError("cannot create rank CSV %s: %s", path, err)
	}
	defer f.Close()
	writer := csv.NewWriter(f)
	header := []string{"lemma", "rank"}
	if includeFreq {
		header = []string{"lemma", "freq", "rank"}
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, item := range items {
		rec := []string{item.Lemma, strconv.Itoa(item.Rank)}
		if includeFreq {
			rec = []string{item.Lemma, strconv.Itoa(item.Freq), strconv.Itoa(item.Rank)}
		}
		if err := writer.Write(rec); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
