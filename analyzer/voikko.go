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
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
)

const dfltVoikkoCommand = "voikkospell"

var (
	dfltVoikkoArgs = []string{"-M"}

	// matches the first morpheme base in a WORDBASES value,
	// e.g. "+teke(tehdä)+mä(+mä)+tön(+tön)" => "tehdä"
	wordBaseRegexp = regexp.MustCompile(`\+[^()+]+\(([^)]+)\)`)

	// participle readings credited to the verbal lemma rather than
	// the adjective/noun base form
	verbalParticiples = map[string]bool{
		"past_active":     true,
		"past_passive":    true,
		"present_active":  true,
		"present_passive": true,
		"agent":           true,
	}
)

type VoikkoConf struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Voikko analyzes Finnish surface forms via a single long-lived
// voikkospell subprocess in morphology mode (-M). The process is
// started by OpenVoikko and must be released with Close once the
// extraction batch completes. Not safe for concurrent use.
type Voikko struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	scanner *bufio.Scanner
}

func OpenVoikko(ctx context.Context, conf VoikkoConf) (*Voikko, error) {
	command := conf.Command
	if command == "" {
		command = dfltVoikkoCommand
	}
	args := conf.Args
	if len(args) == 0 {
		args = dfltVoikkoArgs
	}
	cmd := exec.CommandContext(ctx, command, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to attach to %s: %w", command, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to attach to %s: %w", command, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", command, err)
	}
	return &Voikko{
		cmd:     cmd,
		stdin:   stdin,
		scanner: bufio.NewScanner(stdout),
	}, nil
}

// Analyze sends a single word to the subprocess and parses the block
// of analyses it answers with (terminated by an empty line).
func (v *Voikko) Analyze(ctx context.Context, word string) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(v.stdin, word); err != nil {
		return nil, fmt.Errorf("failed to query voikko for %q: %w", word, err)
	}
	var block []string
	for v.scanner.Scan() {
		line := v.scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		block = append(block, line)
	}
	if err := v.scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voikko answer for %q: %w", word, err)
	}
	return parseVoikkoBlock(block), nil
}

func (v *Voikko) Close() error {
	if err := v.stdin.Close(); err != nil {
		v.cmd.Process.Kill()
		return err
	}
	return v.cmd.Wait()
}

// parseVoikkoBlock processes the lines voikkospell prints for one
// input word:
//
//	C: kissalla
//	A(1)
//	  BASEFORM=kissa
//	  CLASS=nimisana
//	  SIJAMUOTO=ulkoolento
//
// A `W:` result line means the word is unknown to the analyzer.
func parseVoikkoBlock(lines []string) []Analysis {
	var attrSets []map[string]string
	var curr map[string]string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "W:") {
			return nil
		}
		if strings.HasPrefix(trimmed, "C:") {
			continue
		}
		if strings.HasPrefix(trimmed, "A(") {
			curr = make(map[string]string)
			attrSets = append(attrSets, curr)
			continue
		}
		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		if curr == nil {
			curr = make(map[string]string)
			attrSets = append(attrSets, curr)
		}
		curr[key] = value
	}
	var ans []Analysis
	for _, attrs := range attrSets {
		if item, ok := analysisFromAttrs(attrs); ok {
			ans = append(ans, item)
		}
	}
	return Dedup(ans)
}

func analysisFromAttrs(attrs map[string]string) (Analysis, bool) {
	participle := attrs["PARTICIPLE"]
	if verbalParticiples[participle] {
		if lemma, ok := extractWordBase(attrs["WORDBASES"]); ok {
			return Analysis{Lemma: lemma, POS: TagVerb}, true
		}
	}
	// -maton/-mätön negation participles act as adjectives but should
	// still point at the verbal lemma (tekemätön => tehdä)
	if participle == "negation" {
		if lemma, ok := extractWordBase(attrs["WORDBASES"]); ok {
			return Analysis{Lemma: lemma, POS: TagAdj}, true
		}
	}
	pos := MapVoikkoClass(attrs["CLASS"], attrs["SIJAMUOTO"])
	if pos == "" {
		return Analysis{}, false
	}
	lemma := attrs["BASEFORM"]
	if lemma == "" {
		return Analysis{}, false
	}
	return Analysis{Lemma: lemma, POS: pos}, true
}

func extractWordBase(wordBases string) (string, bool) {
	srch := wordBaseRegexp.FindStringSubmatch(wordBases)
	if len(srch) > 0 {
		return srch[1], true
	}
	return "", false
}
