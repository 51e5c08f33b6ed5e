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
	"fmt"
	"path/filepath"
)

// GenLookupFilename returns the conventional lookup table path for
// a language and form limit (e.g. output/fi_200000_lemmas.csv). With
// no limit the size tag describes the whole list (fi_all_lemmas.csv).
func GenLookupFilename(outputDir, lang string, limit int) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s_lemmas.csv", lang, sizeTag(limit)))
}

// GenRankFilename returns the conventional rank CSV path matching
// a lookup table (e.g. output/fi_200000_lemmas_rank.csv).
func GenRankFilename(outputDir, lang string, limit int) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s_lemmas_rank.csv", lang, sizeTag(limit)))
}

// GenDatabaseFilename returns the dictionary database path for a
// locale (e.g. output/fi_FI_v1.sqlite).
func GenDatabaseFilename(outputDir, locale string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_v1.sqlite", locale))
}

// GenJSONFilename returns the app asset path for an exported JSON
// dataset of the provided kind (e.g. output/fi_FI_lookup_v1.json).
func GenJSONFilename(outputDir, locale, kind string) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_%s_v1.json", locale, kind))
}

func sizeTag(limit int) string {
	if limit > 0 {
		return fmt.Sprintf("%d", limit)
	}
	return "all"
}
