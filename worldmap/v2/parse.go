// Package v2 implements a structured/TOML map format: a declarative
// document with optional width/height/world_string seed and explicit
// position arrays, decoded with github.com/BurntSushi/toml (grounded on
// julianknutsen-gascity, which decodes its own declarative config the
// same way).
package v2

import (
	"github.com/BurntSushi/toml"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/worldmap"
	v1 "github.com/samuelfneumann/lle/worldmap/v1"
)

// Position is one of four position shapes: a single cell ({i,j}), a
// whole row ({row}), a whole column ({col}), or a rectangle
// ({i_min,i_max,j_min,j_max}, unspecified bounds defaulting to the grid
// extremes). Exported so cmd/lle's schema command can reflect it with
// github.com/invopop/jsonschema.
type Position struct {
	I *int `toml:"i" json:"i,omitempty"`
	J *int `toml:"j" json:"j,omitempty"`

	Row *int `toml:"row" json:"row,omitempty"`
	Col *int `toml:"col" json:"col,omitempty"`

	IMin *int `toml:"i_min" json:"i_min,omitempty"`
	IMax *int `toml:"i_max" json:"i_max,omitempty"`
	JMin *int `toml:"j_min" json:"j_min,omitempty"`
	JMax *int `toml:"j_max" json:"j_max,omitempty"`
}

// Laser is one `[[lasers]]` entry.
type Laser struct {
	Direction string   `toml:"direction" json:"direction"`
	Agent     int      `toml:"agent" json:"agent"`
	Position  Position `toml:"position" json:"position"`
	LaserID   *int     `toml:"laser_id" json:"laser_id,omitempty"`
}

// AgentEntry is one `[[agents]]` entry.
type AgentEntry struct {
	Starts []Position `toml:"starts" json:"starts"`
}

// Document is the full v2 TOML document shape.
type Document struct {
	Width       *int    `toml:"width" json:"width,omitempty"`
	Height      *int    `toml:"height" json:"height,omitempty"`
	WorldString *string `toml:"world_string" json:"world_string,omitempty"`
	NAgents     *int    `toml:"n_agents" json:"n_agents,omitempty"`

	Agents []AgentEntry `toml:"agents" json:"agents"`
	Exits  []Position   `toml:"exits" json:"exits"`
	Gems   []Position   `toml:"gems" json:"gems"`
	Walls  []Position   `toml:"walls" json:"walls"`
	Voids  []Position   `toml:"voids" json:"voids"`
	Lasers []Laser      `toml:"lasers" json:"lasers"`
}

// Parse reads a v2 TOML document and returns a Descriptor. It rejects
// unknown keys, out-of-bounds positions, and a world_string whose size
// disagrees with width/height (the world_string itself goes through
// v1.Parse). The agent count, per-agent starts, exit count and laser
// colors of the explicit arrays are not checked here; world.Build checks
// them when the Descriptor is built.
func Parse(text string) (*worldmap.Descriptor, error) {
	var doc Document
	meta, err := toml.Decode(text, &doc)
	if err != nil {
		return nil, &worldmap.ParseError{Kind: worldmap.UnknownTomlKey, Cause: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, &worldmap.ParseError{Kind: worldmap.UnknownTomlKey, Key: undecoded[0].String()}
	}

	var base *worldmap.Descriptor
	if doc.WorldString != nil {
		base, err = v1.Parse(*doc.WorldString)
		if err != nil {
			return nil, err
		}
		if doc.Width != nil && *doc.Width != base.Width {
			return nil, &worldmap.ParseError{Kind: worldmap.InconsistentWorldStringWidth, Got: *doc.Width, Min: base.Width}
		}
		if doc.Height != nil && *doc.Height != base.Height {
			return nil, &worldmap.ParseError{Kind: worldmap.InconsistentWorldStringHeight, Got: *doc.Height, Min: base.Height}
		}
	} else {
		if doc.Width == nil {
			return nil, &worldmap.ParseError{Kind: worldmap.MissingWidth}
		}
		if doc.Height == nil {
			return nil, &worldmap.ParseError{Kind: worldmap.MissingHeight}
		}
		base = &worldmap.Descriptor{Width: *doc.Width, Height: *doc.Height}
	}

	height, width := base.Height, base.Width

	for _, p := range doc.Gems {
		ps, err := resolvePositions(p, height, width)
		if err != nil {
			return nil, err
		}
		base.Gems = append(base.Gems, ps...)
	}
	for _, p := range doc.Walls {
		ps, err := resolvePositions(p, height, width)
		if err != nil {
			return nil, err
		}
		base.Walls = append(base.Walls, ps...)
	}
	for _, p := range doc.Voids {
		ps, err := resolvePositions(p, height, width)
		if err != nil {
			return nil, err
		}
		base.Voids = append(base.Voids, ps...)
	}
	for _, p := range doc.Exits {
		ps, err := resolvePositions(p, height, width)
		if err != nil {
			return nil, err
		}
		base.Exits = append(base.Exits, ps...)
	}

	nAgents := len(base.RandomStarts)
	if doc.NAgents != nil && *doc.NAgents > nAgents {
		nAgents = *doc.NAgents
	}
	if len(doc.Agents) > nAgents {
		nAgents = len(doc.Agents)
	}
	for len(base.RandomStarts) < nAgents {
		base.RandomStarts = append(base.RandomStarts, nil)
	}
	for k, a := range doc.Agents {
		for _, p := range a.Starts {
			ps, err := resolvePositions(p, height, width)
			if err != nil {
				return nil, err
			}
			base.RandomStarts[k] = append(base.RandomStarts[k], ps...)
		}
	}

	nextLaserID := 0
	for _, rec := range base.Sources {
		if rec.LaserID >= nextLaserID {
			nextLaserID = rec.LaserID + 1
		}
	}
	for _, l := range doc.Lasers {
		dir, ok := grid.ParseDirection(l.Direction)
		if !ok {
			return nil, &worldmap.ParseError{Kind: worldmap.InvalidDirection, Token: l.Direction}
		}
		ps, err := resolvePositions(l.Position, height, width)
		if err != nil {
			return nil, err
		}
		if len(ps) != 1 {
			return nil, &worldmap.ParseError{Kind: worldmap.PositionOutOfBounds}
		}
		laserID := nextLaserID
		if l.LaserID != nil {
			laserID = *l.LaserID
		} else {
			nextLaserID++
		}
		base.Sources = append(base.Sources, worldmap.SourceSpec{
			Position: ps[0],
			Dir:      dir,
			Color:    agent.ID(l.Agent),
			LaserID:  laserID,
		})
	}

	return base, nil
}

func resolvePositions(p Position, height, width int) ([]grid.Position, error) {
	switch {
	case p.I != nil && p.J != nil:
		pos := grid.Position{I: *p.I, J: *p.J}
		if !pos.InBounds(height, width) {
			return nil, &worldmap.ParseError{Kind: worldmap.PositionOutOfBounds, Row: *p.I, Col: *p.J}
		}
		return []grid.Position{pos}, nil

	case p.Row != nil:
		if *p.Row < 0 || *p.Row >= height {
			return nil, &worldmap.ParseError{Kind: worldmap.PositionOutOfBounds, Row: *p.Row}
		}
		out := make([]grid.Position, width)
		for j := 0; j < width; j++ {
			out[j] = grid.Position{I: *p.Row, J: j}
		}
		return out, nil

	case p.Col != nil:
		if *p.Col < 0 || *p.Col >= width {
			return nil, &worldmap.ParseError{Kind: worldmap.PositionOutOfBounds, Col: *p.Col}
		}
		out := make([]grid.Position, height)
		for i := 0; i < height; i++ {
			out[i] = grid.Position{I: i, J: *p.Col}
		}
		return out, nil

	default:
		iMin, iMax, jMin, jMax := 0, height-1, 0, width-1
		if p.IMin != nil {
			iMin = *p.IMin
		}
		if p.IMax != nil {
			iMax = *p.IMax
		}
		if p.JMin != nil {
			jMin = *p.JMin
		}
		if p.JMax != nil {
			jMax = *p.JMax
		}
		if iMin < 0 || jMin < 0 || iMax >= height || jMax >= width || iMin > iMax || jMin > jMax {
			return nil, &worldmap.ParseError{Kind: worldmap.PositionOutOfBounds, Row: iMin, Col: jMin}
		}
		var out []grid.Position
		for i := iMin; i <= iMax; i++ {
			for j := jMin; j <= jMax; j++ {
				out = append(out, grid.Position{I: i, J: j})
			}
		}
		return out, nil
	}
}
