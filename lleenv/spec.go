// Package lleenv is a thin adapter exposing the read-only contract an
// external training-loop driver would code against, narrowed from
// environment.Spec/environment.Starter/
// environment.CategoricalStarter (gonum/mat vectors replaced with this
// engine's discrete grid.Position/grid.Action types).
package lleenv

import "github.com/samuelfneumann/lle/grid"

// Cardinality indicates whether a Spec's values are discrete or
// continuous; this engine is always Discrete, but the field is kept so
// a driver written against both kinds of environment doesn't special
// case this one.
type Cardinality int

const (
	Discrete Cardinality = iota
	Continuous
)

// SpecType tags what a Spec describes.
type SpecType int

const (
	ActionSpecType SpecType = iota
	ObservationSpecType
	DiscountSpecType
	RewardSpecType
)

// Spec describes the shape and bounds of an action, observation,
// discount, or reward, mirroring environment.Spec.
type Spec struct {
	Shape       []int
	Type        SpecType
	LowerBound  []float64
	UpperBound  []float64
	Cardinality Cardinality
}

// Starter samples a full joint start position, mirroring the
// environment.Starter contract. World.Reset samples internally and does
// not implement this interface itself; Starter exists for a driver that
// wants to inject its own start distribution ahead of a World built
// with a single fixed start per agent.
type Starter interface {
	Start() []grid.Position
}
