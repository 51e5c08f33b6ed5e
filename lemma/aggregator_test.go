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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"lemafi/freqlist"
)

func TestAggregateSimple(t *testing.T) {
	rows := []Row{
		{SurfaceForm: "taloissa", POS: "NOUN", Lemma: "talo"},
		{SurfaceForm: "talon", POS: "NOUN", Lemma: "talo"},
		{SurfaceForm: "on", POS: "VERB", Lemma: "olla"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "on", Freq: 500},
		{SurfaceForm: "taloissa", Freq: 120},
		{SurfaceForm: "talon", Freq: 80},
	}
	ranked, stats := Aggregate(rows, entries)
	assert.Equal(t, []RankedLemma{
		{Lemma: "olla", Freq: 500, Rank: 1},
		{Lemma: "talo", Freq: 200, Rank: 2},
	}, ranked)
	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 0, stats.Unmatched)
}

// The frequency of an ambiguous surface form must land whole on the
// candidate with the higher provisional total, regardless of the
// order the rows or entries arrive in.
func TestAggregateAmbiguousMajorityWins(t *testing.T) {
	rows := []Row{
		// "kautta" is analyzable both as the adposition "kautta" and
		// as a form of the (fictitious in tests) lemma "kausi"
		{SurfaceForm: "kautta", POS: "ADP", Lemma: "kautta"},
		{SurfaceForm: "kautta", POS: "NOUN", Lemma: "kausi"},
		{SurfaceForm: "kaudet", POS: "NOUN", Lemma: "kausi"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "kautta", Freq: 1000},
		{SurfaceForm: "kaudet", Freq: 50},
	}
	ranked, stats := Aggregate(rows, entries)
	// "kausi" got 50 provisionally from the unambiguous "kaudet";
	// "kautta" (the lemma) got nothing, so "kausi" wins everything
	assert.Equal(t, []RankedLemma{
		{Lemma: "kausi", Freq: 1050, Rank: 1},
		{Lemma: "kautta", Freq: 0, Rank: 2},
	}, ranked)
	assert.Equal(t, 1, stats.Ambiguous)
	assert.Equal(t, 1, stats.ZeroFreq)
}

func TestAggregateAmbiguousTieKeepsFirstCandidate(t *testing.T) {
	rows := []Row{
		{SurfaceForm: "kautta", POS: "ADP", Lemma: "kautta"},
		{SurfaceForm: "kautta", POS: "NOUN", Lemma: "kausi"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "kautta", Freq: 1000},
	}
	ranked, _ := Aggregate(rows, entries)
	assert.Equal(t, "kautta", ranked[0].Lemma)
	assert.Equal(t, 1000, ranked[0].Freq)
}

// closed accounting: every matched surface frequency ends up in
// exactly one lemma total
func TestAggregateClosedAccounting(t *testing.T) {
	rows := []Row{
		{SurfaceForm: "a1", Lemma: "A"},
		{SurfaceForm: "a2", Lemma: "A"},
		{SurfaceForm: "a2", Lemma: "B"},
		{SurfaceForm: "b1", Lemma: "B"},
		{SurfaceForm: "c1", Lemma: "C"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "a1", Freq: 10},
		{SurfaceForm: "a2", Freq: 7},
		{SurfaceForm: "b1", Freq: 5},
		{SurfaceForm: "c1", Freq: 3},
		{SurfaceForm: "zz", Freq: 100}, // not in the lookup table
	}
	ranked, stats := Aggregate(rows, entries)
	var total int
	for _, item := range ranked {
		total += item.Freq
	}
	assert.Equal(t, 25, total)
	assert.Equal(t, 4, stats.Matched)
	assert.Equal(t, 1, stats.Unmatched)
}

func TestAggregateDenseRanks(t *testing.T) {
	rows := []Row{
		{SurfaceForm: "a", Lemma: "A"},
		{SurfaceForm: "b", Lemma: "B"},
		{SurfaceForm: "c", Lemma: "C"},
		{SurfaceForm: "d", Lemma: "D"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "a", Freq: 10},
		{SurfaceForm: "b", Freq: 10},
		{SurfaceForm: "c", Freq: 4},
	}
	ranked, _ := Aggregate(rows, entries)
	assert.Equal(t, 4, len(ranked))
	for i, item := range ranked {
		assert.Equal(t, i+1, item.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Freq, item.Freq)
		}
	}
}

// equal totals order lexicographically so reruns produce identical
// output
func TestAggregateDeterministicTieOrder(t *testing.T) {
	rows := []Row{
		{SurfaceForm: "b", Lemma: "beta"},
		{SurfaceForm: "a", Lemma: "alfa"},
	}
	entries := []freqlist.Entry{
		{SurfaceForm: "b", Freq: 5},
		{SurfaceForm: "a", Freq: 5},
	}
	ranked, _ := Aggregate(rows, entries)
	assert.Equal(t, "alfa", ranked[0].Lemma)
	assert.Equal(t, "beta", ranked[1].Lemma)
}

func TestWriteRankCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rank.csv")
	items := []RankedLemma{
		{Lemma: "olla", Freq: 500, Rank: 1},
		{Lemma: "talo", Freq: 200, Rank: 2},
	}
	err := WriteRankCSV(path, items, true)
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "lemma,freq,rank\nolla,500,1\ntalo,200,2\n", string(data))
}

func TestWriteRankCSVWithoutFreq(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rank.csv")
	items := []RankedLemma{{Lemma: "olla", Freq: 500, Rank: 1}}
	err := WriteRankCSV(path, items, false)
	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "lemma,rank\nolla,1\n", string(data))
}
