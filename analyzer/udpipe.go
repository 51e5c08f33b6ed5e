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
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const dfltUDPipeCommand = "udpipe"

type UDPipeConf struct {
	Command string   `json:"command"`
	Model   string   `json:"model"`
	Args    []string `json:"args"`
}

// UDPipe analyzes words by running the udpipe tagger as a per-call
// subprocess and parsing its CoNLL-U output. It is the slower
// fallback for forms Voikko cannot analyze; a statistical tagger
// always produces some reading.
type UDPipe struct {
	conf UDPipeConf
}

func NewUDPipe(conf UDPipeConf) (*UDPipe, error) {
	if conf.Command == "" {
		conf.Command = dfltUDPipeCommand
	}
	if conf.Model == "" {
		return nil, fmt.Errorf("udpipe model not specified")
	}
	return &UDPipe{conf: conf}, nil
}

func (u *UDPipe) Analyze(ctx context.Context, word string) ([]Analysis, error) {
	args := append([]string{"--tokenize", "--tag"}, u.conf.Args...)
	args = append(args, u.conf.Model)
	cmd := exec.CommandContext(ctx, u.conf.Command, args...)
	cmd.Stdin = strings.NewReader(word + "\n")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("udpipe failed for %q: %w", word, err)
	}
	return parseCoNLLU(out.String()), nil
}

func (u *UDPipe) Close() error {
	return nil
}

// parseCoNLLU extracts (lemma, UPOS) pairs from CoNLL-U token lines.
// Comment lines, multiword-token ranges and empty nodes are skipped,
// as are tokens whose UPOS does not map into the reduced tag set.
func parseCoNLLU(data string) []Analysis {
	var ans []Analysis
	for _, line := range strings.Split(data, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 4 {
			continue
		}
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}
		pos := MapUPOS(cols[3])
		if pos == "" || cols[1] == "" {
			continue
		}
		lemma := cols[2]
		if lemma == "" || lemma == "_" {
			lemma = cols[1]
		}
		ans = append(ans, Analysis{Lemma: lemma, POS: pos})
	}
	return Dedup(ans)
}
