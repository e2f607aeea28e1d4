package main

import (
	"fmt"
	"time"

	"prochide/internal/app"

	"github.com/spf13/cobra"
)

var (
	stateTimeoutSecs int
	enableLate       bool
)

func init() {
	cmdEnable.Flags().BoolVar(&enableLate, "late", false, "Also rewrite the late-boot property table")
	for _, c := range []*cobra.Command{cmdEnable, cmdDisable, cmdStatus} {
		c.Flags().IntVar(&stateTimeoutSecs, "timeout", 10, "Timeout in seconds for the daemon call")
		rootCmd.AddCommand(c)
	}
}

func stateTimeout() time.Duration {
	return time.Duration(stateTimeoutSecs) * time.Second
}

var cmdEnable = &cobra.Command{
	Use:   "enable",
	Short: "Turn process hiding on",
	Long: `Loads the stored hide list, adds the built-in targets, kills every listed
process that is already running and starts the monitor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().Enable(cmd.Context(), app.EnableParams{Late: enableLate, Timeout: stateTimeout()}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Hide enabled")
		return nil
	},
}

var cmdDisable = &cobra.Command{
	Use:   "disable",
	Short: "Turn process hiding off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller().Disable(cmd.Context(), stateTimeout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Hide disabled")
		return nil
	},
}

var cmdStatus = &cobra.Command{
	Use:   "status",
	Short: "Show daemon and hide state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := controller()
		out := cmd.OutOrStdout()
		st, err := ctrl.Status()
		if err != nil {
			return err
		}
		if !st.Running {
			fmt.Fprintln(out, "daemon: stopped")
			return nil
		}
		fmt.Fprintf(out, "daemon: running (pid %d)\n", st.PID)
		on, err := ctrl.HideEnabled(cmd.Context(), stateTimeout())
		if err != nil {
			return err
		}
		if on {
			fmt.Fprintln(out, "hide: enabled")
		} else {
			fmt.Fprintln(out, "hide: disabled")
		}
		return nil
	},
}
