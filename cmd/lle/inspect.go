package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/lle/tile"
	"github.com/samuelfneumann/lle/world"
)

func newInspectCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <map>",
		Short: "Print a dump of a map's RenderView after reset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yamlOut, _ := cmd.Flags().GetBool("yaml")
			if err := doInspect(args[0], stdout, yamlOut); err != nil {
				fmt.Fprintf(stderr, "lle inspect: %v\n", err) //nolint:errcheck
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().Bool("yaml", false, "print the full RenderView as YAML instead of the ASCII grid")
	return cmd
}

// doInspect builds and resets ref and writes its RenderView to stdout:
// an ASCII grid plus a one-line summary by default, or the whole
// RenderView as YAML (for a scripted consumer) when asYAML is set.
func doInspect(ref string, stdout io.Writer, asYAML bool) error {
	d, err := loadDescriptor(ref)
	if err != nil {
		return err
	}
	w, err := world.Build(d, viper.GetUint64("seed"))
	if err != nil {
		return err
	}
	w.Reset()

	view := w.Render()
	if asYAML {
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshaling render view: %w", err)
		}
		_, err = stdout.Write(data)
		return err
	}
	byCell := make(map[[2]int]world.TileView, len(view.Tiles))
	for _, t := range view.Tiles {
		byCell[[2]int{t.Position.I, t.Position.J}] = t
	}
	agentAt := make(map[[2]int]int, len(view.Agents))
	for _, a := range view.Agents {
		agentAt[[2]int{a.Position.I, a.Position.J}] = int(a.ID)
	}

	for i := 0; i < view.Height; i++ {
		for j := 0; j < view.Width; j++ {
			if j > 0 {
				fmt.Fprint(stdout, " ") //nolint:errcheck
			}
			key := [2]int{i, j}
			if id, ok := agentAt[key]; ok {
				fmt.Fprintf(stdout, "A%d", id) //nolint:errcheck
				continue
			}
			fmt.Fprint(stdout, renderToken(byCell[key])) //nolint:errcheck
		}
		fmt.Fprintln(stdout) //nolint:errcheck
	}
	fmt.Fprintf(stdout, "agents arrived: %d/%d, gems collected: %d/%d\n",
		w.NAgentsArrived(), w.NAgents(), w.NGemsCollected(), w.NGems()) //nolint:errcheck
	return nil
}

func renderToken(v world.TileView) string {
	switch v.Kind {
	case tile.KindWall:
		return "@"
	case tile.KindGem:
		if v.Collected {
			return "."
		}
		return "G"
	case tile.KindVoid:
		return "V"
	case tile.KindExit:
		return "X"
	case tile.KindStart:
		return "S" + strconv.Itoa(int(v.HomeAgent))
	case tile.KindLaserSource:
		return "L" + strconv.Itoa(int(v.Color)) + v.Dir.String()
	case tile.KindLaserBeam:
		if v.On {
			return "|"
		}
		return "."
	default:
		return "."
	}
}
