package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/lle/worldmap"
	"github.com/samuelfneumann/lle/worldmap/levels"
	v1 "github.com/samuelfneumann/lle/worldmap/v1"
	v2 "github.com/samuelfneumann/lle/worldmap/v2"
)

// loadDescriptor resolves ref as, in order: a file named ref inside the
// levels_dir directory (when one is set), an embedded level name
// ("lvl3"/"level3"), a .toml file (parsed as v2), or anything else
// (parsed as v1 text), wrapping any underlying error with the source it
// came from for a useful diagnostic.
func loadDescriptor(ref string) (*worldmap.Descriptor, error) {
	path := ref
	if dir := viper.GetString("levels_dir"); dir != "" {
		if _, err := os.Stat(filepath.Join(dir, ref)); err == nil {
			path = filepath.Join(dir, ref)
		}
	}
	if path == ref {
		if text, err := levels.GetByName(ref); err == nil {
			return v1.Parse(text)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "lle: reading %s", ref)
	}
	text := string(data)

	if strings.HasSuffix(strings.ToLower(ref), ".toml") {
		d, err := v2.Parse(text)
		return d, errors.Wrapf(err, "lle: parsing %s as v2", ref)
	}
	d, err := v1.Parse(text)
	return d, errors.Wrapf(err, "lle: parsing %s as v1", ref)
}
