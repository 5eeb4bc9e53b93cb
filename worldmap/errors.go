package worldmap

import "fmt"

// ParseErrorKind tags the variant of a ParseError, mirroring
// original_source/src/core/parsing/errors.rs's ParseError enum. Go has
// no enum-with-payload, so every variant collapses into one struct
// carrying whichever contextual fields that variant needs; unused
// fields are simply left zero.
type ParseErrorKind int

const (
	InvalidTile ParseErrorKind = iota
	InconsistentDimensions
	DuplicateStartTile
	InvalidAgentID
	InvalidDirection
	EmptyWorld
	NoAgents
	NotEnoughExitTiles
	NotEnoughStartTiles
	AgentWithoutStart
	InvalidLaserSourceAgentID
	UnknownTomlKey
	InconsistentWorldStringWidth
	InconsistentWorldStringHeight
	PositionOutOfBounds
	MissingWidth
	MissingHeight
)

var parseErrorKindNames = [...]string{
	"InvalidTile", "InconsistentDimensions", "DuplicateStartTile",
	"InvalidAgentId", "InvalidDirection", "EmptyWorld", "NoAgents",
	"NotEnoughExitTiles", "NotEnoughStartTiles", "AgentWithoutStart",
	"InvalidLaserSourceAgentId", "UnknownTomlKey",
	"InconsistentWorldStringWidth", "InconsistentWorldStringHeight",
	"PositionOutOfBounds", "MissingWidth", "MissingHeight",
}

func (k ParseErrorKind) String() string {
	if k < 0 || int(k) >= len(parseErrorKindNames) {
		return "UnknownParseError"
	}
	return parseErrorKindNames[k]
}

// ParseError is raised by worldmap/v1 or worldmap/v2 at construction
// time, carrying enough context for a diagnostic.
type ParseError struct {
	Kind ParseErrorKind

	Row, Col int    // 1-based token row/column; 0-based grid coordinates for PositionOutOfBounds
	Token    string // offending token, where applicable
	AgentID  int
	Got, Min, Max int
	Key           string // offending TOML key path, where applicable

	// Cause wraps a lower-level error (e.g. a TOML syntax error) so
	// callers can errors.As/errors.Is through it.
	Cause error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidTile:
		return fmt.Sprintf("worldmap: invalid tile token %q at row %d, col %d", e.Token, e.Row, e.Col)
	case InconsistentDimensions:
		return fmt.Sprintf("worldmap: row %d has inconsistent width", e.Row)
	case DuplicateStartTile:
		return fmt.Sprintf("worldmap: duplicate start tile for agent %d at row %d, col %d", e.AgentID, e.Row, e.Col)
	case InvalidAgentID:
		return fmt.Sprintf("worldmap: invalid agent id %q at row %d, col %d", e.Token, e.Row, e.Col)
	case InvalidDirection:
		return fmt.Sprintf("worldmap: invalid laser direction %q at row %d, col %d", e.Token, e.Row, e.Col)
	case EmptyWorld:
		return "worldmap: map has no rows"
	case NoAgents:
		return "worldmap: map declares no agents"
	case NotEnoughExitTiles:
		return fmt.Sprintf("worldmap: %d exit tile(s), need at least %d", e.Got, e.Min)
	case NotEnoughStartTiles:
		return fmt.Sprintf("worldmap: agent %d has no start tile", e.AgentID)
	case AgentWithoutStart:
		return fmt.Sprintf("worldmap: agent %d declared but has no permissible start", e.AgentID)
	case InvalidLaserSourceAgentID:
		return fmt.Sprintf("worldmap: laser source at row %d, col %d names unknown agent %d", e.Row, e.Col, e.AgentID)
	case UnknownTomlKey:
		return fmt.Sprintf("worldmap: unknown key %q", e.Key)
	case InconsistentWorldStringWidth:
		return fmt.Sprintf("worldmap: world_string width %d disagrees with declared width %d", e.Got, e.Min)
	case InconsistentWorldStringHeight:
		return fmt.Sprintf("worldmap: world_string height %d disagrees with declared height %d", e.Got, e.Min)
	case PositionOutOfBounds:
		return fmt.Sprintf("worldmap: position (%d, %d) out of bounds", e.Row, e.Col)
	case MissingWidth:
		return "worldmap: width not specified and could not be inferred"
	case MissingHeight:
		return "worldmap: height not specified and could not be inferred"
	default:
		return "worldmap: parse error"
	}
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ErrInvalidLevel is returned by worldmap/levels when asked for a level
// index outside [1, 6].
type ErrInvalidLevel struct {
	Asked, Min, Max int
}

func (e *ErrInvalidLevel) Error() string {
	return fmt.Sprintf("worldmap: invalid level %d, must be in [%d, %d]", e.Asked, e.Min, e.Max)
}
