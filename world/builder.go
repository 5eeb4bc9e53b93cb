package world

import (
	"fmt"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/tile"
	"github.com/samuelfneumann/lle/worldmap"
)

// sourceRecord tracks everything the builder and SetSourceColor need
// about one laser source beyond what the grid cells themselves hold.
type sourceRecord struct {
	source *tile.LaserSource
	pos    grid.Position
	cells  []grid.Position // every beam cell position, source-adjacent first
}

// Build validates a descriptor (re-asserting what a parser should
// already have checked) and materializes a World: the tile matrix,
// agent records, and every laser beam's shared state, grounded on
// original_source/src/core/world/world.rs's `new`/`World::try_from`.
func Build(d *worldmap.Descriptor, seed uint64) (*World, error) {
	if err := validateDescriptor(d); err != nil {
		return nil, err
	}

	grd := make([][]tile.Tile, d.Height)
	for i := range grd {
		grd[i] = make([]tile.Tile, d.Width)
		for j := range grd[i] {
			grd[i][j] = tile.NewFloor()
		}
	}

	for _, p := range d.Walls {
		grd[p.I][p.J] = tile.NewWall()
	}
	gemPositions := append([]grid.Position(nil), d.Gems...)
	for _, p := range d.Gems {
		grd[p.I][p.J] = tile.NewGem()
	}
	for _, p := range d.Voids {
		grd[p.I][p.J] = tile.NewVoid()
	}
	for _, p := range d.Exits {
		grd[p.I][p.J] = tile.NewExit()
	}
	for k, starts := range d.RandomStarts {
		for _, p := range starts {
			grd[p.I][p.J] = tile.NewStart(agent.ID(k))
		}
	}

	sources := make(map[int]*sourceRecord, len(d.Sources))
	for _, spec := range d.Sources {
		src := tile.NewLaserSource(tile.LaserID(spec.LaserID), spec.Dir, spec.Color)
		grd[spec.Position.I][spec.Position.J] = src
		rec := &sourceRecord{source: src, pos: spec.Position}
		sources[spec.LaserID] = rec

		di, dj := spec.Dir.Delta()
		i, j, index := spec.Position.I+di, spec.Position.J+dj, 0
		for i >= 0 && i < d.Height && j >= 0 && j < d.Width && grd[i][j].Walkable() {
			grd[i][j] = tile.NewLaserBeam(grd[i][j], src.State(), index)
			rec.cells = append(rec.cells, grid.Position{I: i, J: j})
			index++
			i += di
			j += dj
		}
	}

	agents := make([]*agent.Agent, d.NAgents())
	for k := range agents {
		agents[k] = agent.New(agent.ID(k))
	}

	w := &World{
		width:        d.Width,
		height:       d.Height,
		grid:         grd,
		agents:       agents,
		gemPositions: gemPositions,
		randomStarts: append([][]grid.Position(nil), d.RandomStarts...),
		walls:        append([]grid.Position(nil), d.Walls...),
		voids:        append([]grid.Position(nil), d.Voids...),
		exits:        append([]grid.Position(nil), d.Exits...),
		sources:      sources,
		seed:         seed,
	}
	w.initRand(seed)
	w.initialWorldString = w.ComputeWorldString()
	return w, nil
}

func validateDescriptor(d *worldmap.Descriptor) error {
	if d.Width < 1 || d.Height < 1 {
		return &worldmap.ParseError{Kind: worldmap.MissingWidth, Got: d.Width, Min: d.Height}
	}
	n := d.NAgents()
	if n < 1 {
		return &worldmap.ParseError{Kind: worldmap.NoAgents}
	}
	for k, starts := range d.RandomStarts {
		if len(starts) == 0 {
			return &worldmap.ParseError{Kind: worldmap.AgentWithoutStart, AgentID: k}
		}
	}
	if len(d.Exits) < n {
		return &worldmap.ParseError{Kind: worldmap.NotEnoughExitTiles, Got: len(d.Exits), Min: n}
	}
	seenLaserIDs := make(map[int]bool, len(d.Sources))
	for _, s := range d.Sources {
		if int(s.Color) < 0 || int(s.Color) >= n {
			return &worldmap.ParseError{Kind: worldmap.InvalidLaserSourceAgentID, AgentID: int(s.Color), Row: s.Position.I + 1, Col: s.Position.J + 1}
		}
		if seenLaserIDs[s.LaserID] {
			return &worldmap.ParseError{Kind: worldmap.InvalidTile, Token: fmt.Sprintf("duplicate laser_id %d", s.LaserID)}
		}
		seenLaserIDs[s.LaserID] = true
	}
	return nil
}
