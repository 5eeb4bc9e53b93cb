// Command lle is a debugging and validation CLI for Laser Learning
// Environment maps, built around a spf13/cobra command tree.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is a sentinel returned by a RunE to signal a non-zero exit
// after the subcommand has already reported its own error.
var errExit = errors.New("exit")

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "lle",
		Short:         "Laser Learning Environment map CLI",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().Uint64("seed", 0, "seed for start-position sampling")
	root.PersistentFlags().String("levels-dir", "", "directory of extra level files consulted before the embedded presets")
	_ = viper.BindPFlag("seed", root.PersistentFlags().Lookup("seed"))
	_ = viper.BindPFlag("levels_dir", root.PersistentFlags().Lookup("levels-dir"))
	viper.SetDefault("seed", 0)
	viper.SetEnvPrefix("LLE")
	viper.AutomaticEnv()

	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(
		newInspectCmd(stdout, stderr),
		newValidateCmd(stdout, stderr),
		newWatchCmd(stdout, stderr),
		newSchemaCmd(stdout, stderr),
		newPlayCmd(stdout, stderr),
	)
	return root
}
