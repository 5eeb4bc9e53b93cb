// Package levels embeds the six built-in level descriptors, addressable
// by index or name.
package levels

import (
	_ "embed"
	"strconv"
	"strings"

	"github.com/samuelfneumann/lle/worldmap"
)

//go:embed lvl1.txt
var lvl1 string

//go:embed lvl2.txt
var lvl2 string

//go:embed lvl3.txt
var lvl3 string

//go:embed lvl4.txt
var lvl4 string

//go:embed lvl5.txt
var lvl5 string

//go:embed lvl6.txt
var lvl6 string

var all = [...]string{lvl1, lvl2, lvl3, lvl4, lvl5, lvl6}

// Get returns the v1-grammar text of level k, 1-indexed.
func Get(k int) (string, error) {
	if k < 1 || k > len(all) {
		return "", &worldmap.ErrInvalidLevel{Asked: k, Min: 1, Max: len(all)}
	}
	return all[k-1], nil
}

// GetByName resolves "lvl<k>" or "level<k>" (case-insensitive) to its
// text, e.g. "lvl3" or "Level3".
func GetByName(name string) (string, error) {
	lower := strings.ToLower(name)
	var digits string
	switch {
	case strings.HasPrefix(lower, "lvl"):
		digits = lower[len("lvl"):]
	case strings.HasPrefix(lower, "level"):
		digits = lower[len("level"):]
	default:
		return "", &worldmap.ErrInvalidLevel{Asked: -1, Min: 1, Max: len(all)}
	}
	k, err := strconv.Atoi(digits)
	if err != nil {
		return "", &worldmap.ErrInvalidLevel{Asked: -1, Min: 1, Max: len(all)}
	}
	return Get(k)
}
