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

package analyzer

// The reduced PoS tag set shared by all backends. CCONJ and SCONJ are
// collapsed into CONJ as the target application does not distinguish
// conjunction types.
const (
	TagNoun  = "NOUN"
	TagPropn = "PROPN"
	TagVerb  = "VERB"
	TagAdj   = "ADJ"
	TagAdv   = "ADV"
	TagPron  = "PRON"
	TagNum   = "NUM"
	TagAdp   = "ADP"
	TagConj  = "CONJ"
	TagOther = "OTHER"
)

var (
	voikkoClasses = map[string]string{
		"nimisana":      TagNoun,
		"etunimi":       TagPropn, // first name
		"sukunimi":      TagPropn, // family name
		"paikannimi":    TagPropn, // place name
		"teonsana":      TagVerb,
		"kieltosana":    TagVerb, // negation verb (ei)
		"seikkasana":    TagAdv,
		"asemosana":     TagPron,
		"lukusana":      TagNum,
		"suhdesana":     TagAdp,
		"sidesana":      TagConj,
		"huudahdussana": TagOther,
	}

	// noun cases under which laatusana readings count as plain
	// adjectives rather than adverbial -sti derivations
	adjCases = map[string]bool{
		"nimento":       true,
		"osanto":        true,
		"sisaolento":    true,
		"omanto":        true,
		"ulkoolento":    true,
		"sisaantulento": true,
	}

	adverbialCases = map[string]bool{
		"kerrontosti": true,
		"keinonto":    true,
	}

	uposTags = map[string]string{
		"NOUN":  TagNoun,
		"PROPN": TagPropn,
		"VERB":  TagVerb,
		"AUX":   TagVerb,
		"ADJ":   TagAdj,
		"ADV":   TagAdv,
		"PRON":  TagPron,
		"NUM":   TagNum,
		"ADP":   TagAdp,
		"CCONJ": TagConj,
		"SCONJ": TagConj,
		"INTJ":  TagOther,
		"PUNCT": TagOther,
		"SYM":   TagOther,
		"X":     TagOther,
	}
)

// MapVoikkoClass translates Voikko's CLASS (word class) attribute,
// disambiguated by SIJAMUOTO (grammatical case) for adjective-like
// classes, into the reduced tag set. An empty answer means the
// reading does not belong to the tag set and should be dropped.
func MapVoikkoClass(class, sijamuoto string) string {
	if class == "laatusana" || class == "nimisana_laatusana" {
		if adjCases[sijamuoto] {
			return TagAdj
		}
		if adverbialCases[sijamuoto] {
			return TagAdv
		}
		return ""
	}
	return voikkoClasses[class]
}

// MapUPOS translates a Universal Dependencies PoS tag into the
// reduced tag set. An empty answer means the tag is unknown.
func MapUPOS(upos string) string {
	return uposTags[upos]
}
