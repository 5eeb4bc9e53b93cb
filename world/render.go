package world

import (
	"strconv"
	"strings"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/tile"
)

// TileView is a read-only description of one grid cell: a tag plus
// whatever variant-specific fields that tag implies, and nothing a
// renderer can mutate.
type TileView struct {
	Position grid.Position
	Kind     tile.Kind

	// Populated only for the Kind it's relevant to.
	HomeAgent  agent.ID // Start
	Collected  bool     // Gem
	Dir        grid.Direction
	Color      agent.ID // LaserSource, LaserBeam
	LaserID    int
	Enabled    bool // LaserSource
	On         bool // LaserBeam
	WrappedTag tile.Kind
}

// AgentView is a read-only description of one agent.
type AgentView struct {
	ID       agent.ID
	Position grid.Position
	Alive    bool
	Arrived  bool
}

// LaserView is a read-only description of one beam cell.
type LaserView struct {
	Position grid.Position
	LaserID  int
	Color    agent.ID
	On       bool
}

// SourceView is a read-only description of one laser source.
type SourceView struct {
	Position grid.Position
	LaserID  int
	Dir      grid.Direction
	Color    agent.ID
	Enabled  bool
}

// RenderView is the full immutable snapshot a renderer (or cmd/lle
// inspect) consumes. Producing pixels from it is out of scope for this
// module; RenderView is the contract the out-of-scope renderer would
// build against.
type RenderView struct {
	Width, Height int
	Tiles         []TileView
	Agents        []AgentView
	Lasers        []LaserView
}

// Render builds the current RenderView.
func (w *World) Render() RenderView {
	v := RenderView{Width: w.width, Height: w.height}
	for i, row := range w.grid {
		for j, t := range row {
			v.Tiles = append(v.Tiles, tileView(grid.Position{I: i, J: j}, t))
			if beam, ok := t.(*tile.LaserBeam); ok {
				v.Lasers = append(v.Lasers, LaserView{
					Position: grid.Position{I: i, J: j},
					LaserID:  int(beam.LaserID()),
					Color:    beam.Color(),
					On:       beam.On(),
				})
			}
		}
	}
	for k, a := range w.agents {
		v.Agents = append(v.Agents, AgentView{
			ID:       a.ID(),
			Position: w.positions[k],
			Alive:    a.Alive(),
			Arrived:  a.Arrived(),
		})
	}
	return v
}

func tileView(p grid.Position, t tile.Tile) TileView {
	v := TileView{Position: p, Kind: t.Kind()}
	switch x := t.(type) {
	case *tile.Start:
		v.HomeAgent = x.HomeAgent()
	case *tile.Gem:
		v.Collected = x.Collected()
	case *tile.LaserSource:
		v.Dir = x.Direction()
		v.Color = x.Color()
		v.LaserID = int(x.LaserID())
		v.Enabled = x.Enabled()
	case *tile.LaserBeam:
		v.Color = x.Color()
		v.LaserID = int(x.LaserID())
		v.On = x.On()
		v.WrappedTag = x.Wrapped().Kind()
	}
	return v
}

// Sources returns a read-only view of every laser source.
func (w *World) Sources() []SourceView {
	out := make([]SourceView, 0, len(w.sources))
	for _, rec := range w.sources {
		out = append(out, SourceView{
			Position: rec.pos,
			LaserID:  int(rec.source.LaserID()),
			Dir:      rec.source.Direction(),
			Color:    rec.source.Color(),
			Enabled:  rec.source.Enabled(),
		})
	}
	return out
}

// Lasers returns a read-only view of every beam cell in the grid.
func (w *World) Lasers() []LaserView { return w.Render().Lasers }

func kindToken(k tile.Kind) string {
	switch k {
	case tile.KindWall:
		return "@"
	case tile.KindGem:
		return "G"
	case tile.KindVoid:
		return "V"
	case tile.KindExit:
		return "X"
	default:
		return "."
	}
}

// computeWorldString walks the grid directly (rather than the original
// descriptor) so that runtime laser recoloring is reflected.
func computeWorldString(w *World) string {
	var b strings.Builder
	for i, row := range w.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, t := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			concrete := unwrap(t)
			switch x := concrete.(type) {
			case *tile.LaserSource:
				b.WriteString("L")
				b.WriteString(strconv.Itoa(int(x.Color())))
				b.WriteString(x.Direction().String())
			case *tile.Start:
				b.WriteString("S")
				b.WriteString(strconv.Itoa(int(x.HomeAgent())))
			default:
				b.WriteString(kindToken(concrete.Kind()))
			}
		}
	}
	return b.String()
}
