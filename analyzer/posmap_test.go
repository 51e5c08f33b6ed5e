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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVoikkoClassBasic(t *testing.T) {
	assert.Equal(t, TagNoun, MapVoikkoClass("nimisana", "nimento"))
	assert.Equal(t, TagVerb, MapVoikkoClass("teonsana", ""))
	assert.Equal(t, TagVerb, MapVoikkoClass("kieltosana", ""))
	assert.Equal(t, TagPropn, MapVoikkoClass("paikannimi", "nimento"))
	assert.Equal(t, TagPron, MapVoikkoClass("asemosana", "nimento"))
	assert.Equal(t, TagNum, MapVoikkoClass("lukusana", "osanto"))
	assert.Equal(t, TagAdp, MapVoikkoClass("suhdesana", ""))
	assert.Equal(t, TagConj, MapVoikkoClass("sidesana", ""))
	assert.Equal(t, TagOther, MapVoikkoClass("huudahdussana", ""))
}

func TestMapVoikkoClassAdjective(t *testing.T) {
	assert.Equal(t, TagAdj, MapVoikkoClass("laatusana", "nimento"))
	assert.Equal(t, TagAdj, MapVoikkoClass("nimisana_laatusana", "osanto"))
}

func TestMapVoikkoClassAdverbialCase(t *testing.T) {
	assert.Equal(t, TagAdv, MapVoikkoClass("laatusana", "kerrontosti"))
	assert.Equal(t, TagAdv, MapVoikkoClass("nimisana_laatusana", "keinonto"))
}

func TestMapVoikkoClassAdjectiveUnknownCase(t *testing.T) {
	assert.Equal(t, "", MapVoikkoClass("laatusana", "vajanto"))
}

func TestMapVoikkoClassUnknown(t *testing.T) {
	assert.Equal(t, "", MapVoikkoClass("lyhenne", "nimento"))
}

func TestMapUPOS(t *testing.T) {
	assert.Equal(t, TagVerb, MapUPOS("AUX"))
	assert.Equal(t, TagVerb, MapUPOS("VERB"))
	assert.Equal(t, TagConj, MapUPOS("CCONJ"))
	assert.Equal(t, TagConj, MapUPOS("SCONJ"))
	assert.Equal(t, TagOther, MapUPOS("PUNCT"))
	assert.Equal(t, TagNoun, MapUPOS("NOUN"))
	assert.Equal(t, "", MapUPOS("DET"))
}
