package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	v2 "github.com/samuelfneumann/lle/worldmap/v2"
)

func newSchemaCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the TOML map format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doSchema(stdout); err != nil {
				fmt.Fprintf(stderr, "lle schema: %v\n", err) //nolint:errcheck
				return errExit
			}
			return nil
		},
	}
}

// doSchema reflects v2.Document into a JSON Schema, keyed by its toml
// tags so the schema matches what a map author actually writes.
func doSchema(stdout io.Writer) error {
	r := &jsonschema.Reflector{FieldNameTag: "toml"}
	s := r.Reflect(&v2.Document{})
	s.Title = "Laser Learning Environment map"
	s.Description = "Schema for the structured (.toml) Laser Learning Environment map format."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	_, err = stdout.Write(append(data, '\n'))
	return err
}
