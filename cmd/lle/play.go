package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/lle/grid"
	"github.com/samuelfneumann/lle/lleenv"
	"github.com/samuelfneumann/lle/world"
)

func newPlayCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "play <map>",
		Short: "Interactively step a map from stdin, one whitespace-separated joint action per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := doPlay(args[0], cmd.InOrStdin(), stdout); err != nil {
				fmt.Fprintf(stderr, "lle play: %v\n", err) //nolint:errcheck
				return errExit
			}
			return nil
		},
	}
}

// doPlay runs one interactive episode, reading one joint action per
// line (e.g. "N S Stay") from in and logging the step's events, team
// reward, arrived-agent count and collected-gem count after each step.
// Each episode is tagged with a
// fresh run ID so its log lines can be correlated across a session.
func doPlay(ref string, in io.Reader, stdout io.Writer) error {
	runID := uuid.New()
	log := zerolog.New(stdout).With().Timestamp().Str("run", runID.String()).Logger()

	d, err := loadDescriptor(ref)
	if err != nil {
		return err
	}
	w, err := world.Build(d, viper.GetUint64("seed"))
	if err != nil {
		return err
	}
	w.Reset()
	log.Info().Msg("episode started")

	arrived := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		actions, err := parseJointAction(line, w.NAgents())
		if err != nil {
			log.Error().Err(err).Msg("invalid joint action")
			continue
		}
		arrivedBefore := arrived
		events, err := w.Step(actions)
		if err != nil {
			log.Error().Err(err).Msg("step rejected")
			continue
		}
		reward := lleenv.TeamReward(events, w.NAgents(), arrivedBefore)
		arrived = w.NAgentsArrived()
		for _, e := range events {
			log.Info().Str("event", e.Kind.String()).Int("agent", int(e.AgentID)).Msg("event")
		}
		log.Info().Float64("reward", reward).Int("arrived", arrived).Int("gems", w.NGemsCollected()).Msg("step")
		if arrived == w.NAgents() {
			log.Info().Msg("episode finished")
			return nil
		}
	}
	return scanner.Err()
}

// parseJointAction parses a line of n whitespace-separated action
// tokens ("N", "S", "E", "W", "Stay", or their stable integer codes).
func parseJointAction(line string, n int) ([]grid.Action, error) {
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d actions, got %d", n, len(fields))
	}
	actions := make([]grid.Action, n)
	for i, f := range fields {
		a, ok := grid.ParseAction(f)
		if !ok {
			if code, err := strconv.Atoi(f); err == nil && code >= int(grid.North) && code <= int(grid.Stay) {
				a = grid.Action(code)
				ok = true
			}
		}
		if !ok {
			return nil, fmt.Errorf("unrecognized action %q", f)
		}
		actions[i] = a
	}
	return actions, nil
}
