// Package v1 implements the whitespace-separated textual map grammar:
// one row per line, blank lines ignored, every row must have the same
// token count.
package v1

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/worldmap"
)

// Parse reads v1-grammar text and returns a validated Descriptor,
// grounded on original_source/src/core/parsing (the textual world-string
// grammar and its token set).
func Parse(text string) (*worldmap.Descriptor, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	if len(rows) == 0 {
		return nil, &worldmap.ParseError{Kind: worldmap.EmptyWorld}
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &worldmap.ParseError{Kind: worldmap.InconsistentDimensions, Row: i + 1}
		}
	}

	d := &worldmap.Descriptor{Width: width, Height: len(rows)}
	starts := map[int][]grid.Position{}
	laserIDCounter := 0

	for i, row := range rows {
		for j, tok := range row {
			pos := grid.Position{I: i, J: j}
			if tok == "" {
				continue
			}
			lead := unicode.ToUpper(rune(tok[0]))
			switch lead {
			case '.':
				// floor, nothing to record
			case '@':
				d.Walls = append(d.Walls, pos)
			case 'G':
				d.Gems = append(d.Gems, pos)
			case 'V':
				d.Voids = append(d.Voids, pos)
			case 'X':
				d.Exits = append(d.Exits, pos)
			case 'S':
				k, err := strconv.Atoi(tok[1:])
				if err != nil || k < 0 {
					return nil, &worldmap.ParseError{Kind: worldmap.InvalidAgentID, Token: tok, Row: i + 1, Col: j + 1}
				}
				if len(starts[k]) > 0 {
					return nil, &worldmap.ParseError{Kind: worldmap.DuplicateStartTile, AgentID: k, Row: i + 1, Col: j + 1}
				}
				starts[k] = append(starts[k], pos)
			case 'L':
				if len(tok) < 3 {
					return nil, &worldmap.ParseError{Kind: worldmap.InvalidTile, Token: tok, Row: i + 1, Col: j + 1}
				}
				k, err := strconv.Atoi(tok[1 : len(tok)-1])
				if err != nil || k < 0 {
					return nil, &worldmap.ParseError{Kind: worldmap.InvalidAgentID, Token: tok, Row: i + 1, Col: j + 1}
				}
				dir, ok := grid.ParseDirection(tok[len(tok)-1:])
				if !ok {
					return nil, &worldmap.ParseError{Kind: worldmap.InvalidDirection, Token: tok, Row: i + 1, Col: j + 1}
				}
				d.Sources = append(d.Sources, worldmap.SourceSpec{
					Position: pos,
					Dir:      dir,
					Color:    agent.ID(k),
					LaserID:  laserIDCounter,
				})
				laserIDCounter++
			default:
				return nil, &worldmap.ParseError{Kind: worldmap.InvalidTile, Token: tok, Row: i + 1, Col: j + 1}
			}
		}
	}

	if len(starts) == 0 {
		return nil, &worldmap.ParseError{Kind: worldmap.NoAgents}
	}
	nAgents := 0
	for k := range starts {
		if k+1 > nAgents {
			nAgents = k + 1
		}
	}
	d.RandomStarts = make([][]grid.Position, nAgents)
	for k := 0; k < nAgents; k++ {
		if len(starts[k]) == 0 {
			return nil, &worldmap.ParseError{Kind: worldmap.NotEnoughStartTiles, AgentID: k}
		}
		d.RandomStarts[k] = starts[k]
	}
	for _, s := range d.Sources {
		if int(s.Color) >= nAgents {
			return nil, &worldmap.ParseError{Kind: worldmap.InvalidLaserSourceAgentID, AgentID: int(s.Color), Row: s.Position.I + 1, Col: s.Position.J + 1}
		}
	}
	if len(d.Exits) < nAgents {
		return nil, &worldmap.ParseError{Kind: worldmap.NotEnoughExitTiles, Got: len(d.Exits), Min: nAgents}
	}

	return d, nil
}
