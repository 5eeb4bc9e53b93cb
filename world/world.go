// Package world implements the engine: grid construction, the
// reset/step state machine, joint-action legality, conflict resolution,
// event emission, and atomic state snapshot/restore.
package world

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/lle/agent"
	"github.com/samuelfneumann/lle/event"
	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/tile"
	v1 "github.com/samuelfneumann/lle/worldmap/v1"
)

// World is the engine: a mutable grid of tiles plus the agent records
// and bookkeeping needed to compute reset/step. It is not safe for
// concurrent mutation; callers needing concurrent independent worlds
// should build one World per goroutine.
type World struct {
	width, height int
	grid          [][]tile.Tile

	agents    []*agent.Agent
	positions []grid.Position

	gemPositions []grid.Position
	randomStarts [][]grid.Position
	walls        []grid.Position
	voids        []grid.Position
	exits        []grid.Position

	sources map[int]*sourceRecord

	availableActions [][]grid.Action

	seed       uint64
	randSource rand.Source

	initialWorldString string
}

func (w *World) initRand(seed uint64) {
	w.seed = seed
	w.randSource = rand.NewSource(seed)
}

// Seed reseeds the internal generator used only at Reset for start
// sampling.
func (w *World) Seed(seed uint64) { w.initRand(seed) }

// Width and Height return the grid dimensions.
func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// NAgents returns the agent count.
func (w *World) NAgents() int { return len(w.agents) }

// NGems returns the total gem count.
func (w *World) NGems() int { return len(w.gemPositions) }

// InBounds reports whether p lies within this world's grid, without
// duplicating the engine's internal bounds arithmetic elsewhere
// (SPEC_FULL.md §4.F).
func (w *World) InBounds(p grid.Position) bool { return p.InBounds(w.height, w.width) }

func (w *World) at(p grid.Position) tile.Tile { return w.grid[p.I][p.J] }

func unwrap(t tile.Tile) tile.Tile {
	for {
		beam, ok := t.(*tile.LaserBeam)
		if !ok {
			return t
		}
		t = beam.Wrapped()
	}
}

// NAgentsArrived returns how many agents have reached an exit this
// episode (original_source's n_agents_arrived, supplemented per
// SPEC_FULL.md §4.F).
func (w *World) NAgentsArrived() int {
	n := 0
	for _, a := range w.agents {
		if a.Arrived() {
			n++
		}
	}
	return n
}

// NGemsCollected returns how many gems have been collected this episode
// (original_source's n_gems_collected).
func (w *World) NGemsCollected() int {
	n := 0
	for _, p := range w.gemPositions {
		if g, ok := unwrap(w.at(p)).(*tile.Gem); ok && g.Collected() {
			n++
		}
	}
	return n
}

// AgentsPositions returns the current position of every agent.
func (w *World) AgentsPositions() []grid.Position {
	return append([]grid.Position(nil), w.positions...)
}

// Gems returns every gem position, in the order used by GetState's
// gems_collected vector.
func (w *World) Gems() []grid.Position { return append([]grid.Position(nil), w.gemPositions...) }

// Walls returns every wall position.
func (w *World) Walls() []grid.Position { return append([]grid.Position(nil), w.walls...) }

// Exits returns every exit position.
func (w *World) Exits() []grid.Position { return append([]grid.Position(nil), w.exits...) }

// VoidPositions returns every void position.
func (w *World) VoidPositions() []grid.Position { return append([]grid.Position(nil), w.voids...) }

// PossibleStarts returns, per agent, that agent's permissible start set.
func (w *World) PossibleStarts() [][]grid.Position {
	out := make([][]grid.Position, len(w.randomStarts))
	for k, s := range w.randomStarts {
		out[k] = append([]grid.Position(nil), s...)
	}
	return out
}

// AvailableActions returns, per agent, its currently legal actions.
func (w *World) AvailableActions() [][]grid.Action {
	out := make([][]grid.Action, len(w.availableActions))
	for k, a := range w.availableActions {
		out[k] = append([]grid.Action(nil), a...)
	}
	return out
}

// AvailableJointActions returns the Cartesian product of AvailableActions,
// in lexicographic order of per-agent indices.
func (w *World) AvailableJointActions() [][]grid.Action {
	lists := w.availableActions
	if len(lists) == 0 {
		return nil
	}
	total := 1
	for _, l := range lists {
		total *= len(l)
	}
	result := make([][]grid.Action, 0, total)
	idx := make([]int, len(lists))
	for {
		joint := make([]grid.Action, len(lists))
		for k, i := range idx {
			joint[k] = lists[k][i]
		}
		result = append(result, joint)

		pos := len(lists) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(lists[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return result
		}
	}
}

func (w *World) computeAvailableActions() [][]grid.Action {
	out := make([][]grid.Action, len(w.agents))
	for k, a := range w.agents {
		actions := []grid.Action{grid.Stay}
		if a.Alive() && !a.Arrived() {
			for _, mv := range grid.Moves() {
				pos, err := mv.Apply(w.positions[k])
				if err != nil || !pos.InBounds(w.height, w.width) {
					continue
				}
				t := w.at(pos)
				if !t.Walkable() {
					continue
				}
				if _, occupied := t.Occupant(); occupied {
					continue
				}
				actions = append(actions, mv)
			}
		}
		out[k] = actions
	}
	return out
}

func solveVertexConflicts(newPos, oldPos []grid.Position) {
	conflict := true
	for conflict {
		conflict = false
		counts := make(map[grid.Position]int, len(newPos))
		for _, p := range newPos {
			counts[p]++
		}
		for i, p := range newPos {
			if counts[p] > 1 {
				conflict = true
				newPos[i] = oldPos[i]
			}
		}
	}
}

// Reset resets tile and agent state and samples a fresh start position
// per agent, grounded on original_source/src/core/world/world.rs's
// reset().
func (w *World) Reset() {
	for _, row := range w.grid {
		for _, t := range row {
			t.Reset()
		}
	}

	starts := w.sampleStarts()
	w.positions = starts
	for k, a := range w.agents {
		w.at(starts[k]).PreEnter(a)
	}
	for k, a := range w.agents {
		w.at(starts[k]).Enter(a)
	}
	for _, a := range w.agents {
		a.Reset()
	}
	w.availableActions = w.computeAvailableActions()
}

func (w *World) sampleStarts() []grid.Position {
	n := len(w.agents)
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && len(w.randomStarts[order[j]]) < len(w.randomStarts[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	used := make(map[grid.Position]bool, n)
	result := make([]grid.Position, n)
	for _, k := range order {
		avail := make([]grid.Position, 0, len(w.randomStarts[k]))
		for _, p := range w.randomStarts[k] {
			if !used[p] {
				avail = append(avail, p)
			}
		}
		weights := make([]float64, len(avail))
		for i := range weights {
			weights[i] = 1.0 / float64(len(weights))
		}
		cat := distuv.NewCategorical(weights, w.randSource)
		idx := int(cat.Rand())
		result[k] = avail[idx]
		used[avail[idx]] = true
	}
	return result
}

// Step applies one joint action, resolving vertex conflicts and
// cascading deaths to a fixed point, returning every event emitted in
// processing order.
func (w *World) Step(actions []grid.Action) ([]event.Event, error) {
	n := len(w.agents)
	if len(actions) != n {
		return nil, &ErrInvalidNumberOfActions{Given: len(actions), Expected: n}
	}
	for k, act := range actions {
		if !containsAction(w.availableActions[k], act) {
			return nil, &ErrInvalidAction{AgentID: agent.ID(k), Available: w.availableActions[k], Taken: act}
		}
	}

	newPos := make([]grid.Position, n)
	for k, act := range actions {
		p, err := act.Apply(w.positions[k])
		if err != nil {
			return nil, &ErrOutOfWorldPosition{Position: p}
		}
		newPos[k] = p
	}
	solveVertexConflicts(newPos, w.positions)

	events, died := w.moveAgents(newPos)
	w.positions = newPos
	for died {
		var more []event.Event
		more, died = w.moveAgents(newPos)
		events = append(events, more...)
	}

	w.availableActions = w.computeAvailableActions()
	return events, nil
}

func containsAction(list []grid.Action, a grid.Action) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func (w *World) moveAgents(newPos []grid.Position) ([]event.Event, bool) {
	for k, a := range w.agents {
		if a.Alive() {
			w.at(w.positions[k]).Leave()
		}
	}
	for k, a := range w.agents {
		w.at(newPos[k]).PreEnter(a)
	}
	var events []event.Event
	died := false
	for k, a := range w.agents {
		if ev := w.at(newPos[k]).Enter(a); ev != nil {
			events = append(events, *ev)
			if ev.Kind == event.AgentDied {
				died = true
			}
		}
	}
	return events, died
}

// GetState serializes agent positions, gem-collected flags (in
// gem-position order), and agent-alive flags.
func (w *World) GetState() Snapshot {
	s := Snapshot{
		AgentPositions: append([]grid.Position(nil), w.positions...),
		GemsCollected:  make([]bool, len(w.gemPositions)),
		AgentsAlive:    make([]bool, len(w.agents)),
	}
	for i, p := range w.gemPositions {
		if g, ok := unwrap(w.at(p)).(*tile.Gem); ok {
			s.GemsCollected[i] = g.Collected()
		}
	}
	for i, a := range w.agents {
		s.AgentsAlive[i] = a.Alive()
	}
	return s
}

// SetState validates and atomically applies a snapshot, rolling back to
// the pre-call state on any failure.
func (w *World) SetState(s Snapshot) ([]event.Event, error) {
	n := len(w.agents)
	if len(s.AgentsAlive) != n {
		return nil, &ErrInvalidNumberOfAgents{Given: len(s.AgentsAlive), Expected: n}
	}
	if len(s.AgentPositions) != n {
		return nil, &ErrInvalidNumberOfAgents{Given: len(s.AgentPositions), Expected: n}
	}
	if len(s.GemsCollected) != len(w.gemPositions) {
		return nil, &ErrInvalidNumberOfGems{Given: len(s.GemsCollected), Expected: len(w.gemPositions)}
	}
	seen := make(map[grid.Position]bool, n)
	for _, p := range s.AgentPositions {
		if seen[p] {
			return nil, &ErrInvalidWorldState{Reason: "there are two agents at the same position"}
		}
		seen[p] = true
	}
	for _, p := range s.AgentPositions {
		if !p.InBounds(w.height, w.width) {
			return nil, &ErrOutOfWorldPosition{Position: p}
		}
	}

	before := w.GetState()

	for _, row := range w.grid {
		for _, t := range row {
			t.Reset()
		}
	}
	for k, a := range w.agents {
		a.Reset()
		if !s.AgentsAlive[k] {
			a.Die()
		}
	}
	for i, p := range w.gemPositions {
		if s.GemsCollected[i] {
			if g, ok := unwrap(w.at(p)).(*tile.Gem); ok {
				g.Collect()
			}
		}
	}
	for k, a := range w.agents {
		if err := w.at(s.AgentPositions[k]).PreEnter(a); err != nil {
			w.restore(before)
			return nil, &ErrInvalidAgentPosition{Position: s.AgentPositions[k], Reason: err.Error()}
		}
	}
	w.positions = append([]grid.Position(nil), s.AgentPositions...)
	var events []event.Event
	for k, a := range w.agents {
		if ev := w.at(w.positions[k]).Enter(a); ev != nil {
			events = append(events, *ev)
		}
	}
	w.availableActions = w.computeAvailableActions()
	return events, nil
}

// restore applies a snapshot known-valid (produced by GetState) without
// re-running validation, used only to roll SetState back on failure
// (SPEC_FULL.md §7: a direct restore rather than recursive SetState, to
// avoid partial-mutation subtleties in a recursive call).
func (w *World) restore(s Snapshot) {
	for _, row := range w.grid {
		for _, t := range row {
			t.Reset()
		}
	}
	for k, a := range w.agents {
		a.Reset()
		if !s.AgentsAlive[k] {
			a.Die()
		}
	}
	for i, p := range w.gemPositions {
		if s.GemsCollected[i] {
			if g, ok := unwrap(w.at(p)).(*tile.Gem); ok {
				g.Collect()
			}
		}
	}
	for k, a := range w.agents {
		w.at(s.AgentPositions[k]).PreEnter(a)
	}
	w.positions = append([]grid.Position(nil), s.AgentPositions...)
	for k, a := range w.agents {
		w.at(w.positions[k]).Enter(a)
	}
	w.availableActions = w.computeAvailableActions()
}

// SetSourceColor retags a laser source's beam for a different agent,
// atomically across every cell of that beam. It fails with
// ErrInvalidLaserRecoloring, changing nothing, if the beam would then
// cross a permissible start of a different-colored agent.
func (w *World) SetSourceColor(pos grid.Position, color agent.ID) error {
	src, ok := unwrap(w.at(pos)).(*tile.LaserSource)
	if !ok {
		return &ErrOutOfWorldPosition{Position: pos}
	}
	rec := w.sources[int(src.LaserID())]
	for _, cell := range rec.cells {
		if start, ok := unwrap(w.at(cell)).(*tile.Start); ok && start.HomeAgent() != color {
			return &ErrInvalidLaserRecoloring{Position: pos, Color: color}
		}
	}
	src.SetColor(color)
	return nil
}

// InitialWorldString returns the v1-grammar text computed at build
// time, before any runtime recoloring.
func (w *World) InitialWorldString() string { return w.initialWorldString }

// Clone deep-clones the world: re-parses InitialWorldString through the
// v1 parser and SetStates it to the current snapshot, so the clone
// behaves identically to the original on any subsequent input sequence.
func (w *World) Clone() (*World, error) {
	d, err := v1.Parse(w.initialWorldString)
	if err != nil {
		return nil, err
	}
	clone, err := Build(d, w.seed)
	if err != nil {
		return nil, err
	}
	clone.Reset()
	if _, err := clone.SetState(w.GetState()); err != nil {
		return nil, err
	}
	return clone, nil
}

// ComputeWorldString reifies the current grid as v1 text, reflecting any
// runtime source color changes. Beam cells are not a v1 token: they
// serialize as whatever tile they wrap, since propagation regenerates
// them on reparse.
func (w *World) ComputeWorldString() string { return computeWorldString(w) }
