package main

import (
	"fmt"
	"time"

	"prochide/internal/app"

	"github.com/spf13/cobra"
)

var targetTimeoutSecs int

func init() {
	for _, c := range []*cobra.Command{cmdAdd, cmdRm, cmdList} {
		c.Flags().IntVar(&targetTimeoutSecs, "timeout", 3, "Timeout in seconds for the daemon call")
		rootCmd.AddCommand(c)
	}
}

func targetTimeout() time.Duration {
	return time.Duration(targetTimeoutSecs) * time.Second
}

func targetParams(args []string) app.TargetParams {
	p := app.TargetParams{Package: args[0]}
	if len(args) > 1 {
		p.Process = args[1]
	}
	return p
}

var cmdAdd = &cobra.Command{
	Use:   "add <package> [process]",
	Short: "Add a target to the hide list",
	Long: `Adds a package (and optionally one of its processes) to the hide list. Without
a process the package's main process is hidden. Use "isolated" as the package
to hide isolated services whose names start with process.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := targetParams(args)
		err := controller().Add(cmd.Context(), app.AddParams{TargetParams: params, Timeout: targetTimeout()})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", describe(params))
		return nil
	},
}

var cmdRm = &cobra.Command{
	Use:     "rm <package> [process]",
	Aliases: []string{"remove"},
	Short:   "Remove targets from the hide list",
	Long:    `Removes one target, or every target of the package when no process is given.`,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := targetParams(args)
		err := controller().Remove(cmd.Context(), app.RemoveParams{TargetParams: params, Timeout: targetTimeout()})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", describe(params))
		return nil
	},
}

var cmdList = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Print the hide list",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := controller().List(cmd.Context(), targetTimeout())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(targets) == 0 {
			fmt.Fprintln(out, "Hide list is empty")
			return nil
		}
		for _, t := range targets {
			fmt.Fprintln(out, t.String())
		}
		return nil
	},
}

func describe(p app.TargetParams) string {
	if p.Process == "" {
		return p.Package
	}
	return p.Package + "|" + p.Process
}
