package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/samuelfneumann/progressbar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/samuelfneumann/lle/world"
)

func newValidateCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <map>...",
		Short: "Parse and build each map independently, reporting any error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doValidate(args, stdout); err != nil {
				fmt.Fprintf(stderr, "lle validate: %v\n", err) //nolint:errcheck
				return errExit
			}
			return nil
		},
	}
}

// doValidate checks every map file independently and concurrently.
// Each goroutine builds its own *world.World; only mutating a single
// World concurrently is unsafe, never constructing distinct ones, so a
// golang.org/x/sync/errgroup fan-out is safe (grounded on
// niceyeti-tabular, which fans out concurrent work the same way).
func doValidate(refs []string, stdout io.Writer) error {
	log := zerolog.New(stdout).With().Timestamp().Logger()
	bar := progressbar.NewProgressBar(40, len(refs), 200*time.Millisecond, true)
	bar.Display()

	var g errgroup.Group
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			defer bar.Increment()
			d, err := loadDescriptor(ref)
			if err != nil {
				log.Error().Str("map", ref).Err(err).Msg("parse failed")
				return err
			}
			if _, err := world.Build(d, viper.GetUint64("seed")); err != nil {
				log.Error().Str("map", ref).Err(err).Msg("build failed")
				return err
			}
			log.Info().Str("map", ref).Msg("ok")
			return nil
		})
	}
	err := g.Wait()
	bar.Close()
	return err
}
