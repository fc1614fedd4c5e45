package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/settings"
)

func newStartCmd(opts *rootOptions) *cobra.Command {
	var rawFlags string
	cmd := &cobra.Command{
		Use:   messages.StartUse,
		Short: messages.StartShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := opts.reporter(cmd)
			cfg, err := opts.loadSettings(rep)
			if err != nil {
				return err
			}
			port := cfg.Proxy.Port
			if len(args) == 1 {
				port = strings.TrimSpace(args[0])
			}
			parsed, err := settings.ParsePort(port)
			if err != nil {
				return fmt.Errorf(messages.StartInvalidPortFmt, port)
			}
			port = strconv.Itoa(parsed)

			extra, err := shlex.Split(rawFlags)
			if err != nil {
				return fmt.Errorf(messages.StartInvalidFlagsFmt, rawFlags, err)
			}
			launch := runner.Command{
				Name: cfg.Proxy.Command,
				Args: append([]string{cfg.Proxy.PortFlag, port}, extra...),
			}
			rep.Logf(messages.StartLaunchingFmt, cfg.Proxy.Command, port)
			rep.Debugf(messages.RootRunningFmt, launch.String())

			res, err := opts.runnerFor(cmd).Run(cmd.Context(), launch)
			if err != nil {
				return err
			}
			if !res.Success() {
				return &SilentExitError{Code: res.ExitCode}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rawFlags, "flags", "", messages.StartFlagFlags)
	return cmd
}
