package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/tool"
)

func newIsInstalledCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.IsInstalledUse,
		Short: messages.IsInstalledShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := opts.reporter(cmd)
			cfg, err := opts.loadSettings(rep)
			if err != nil {
				return err
			}
			r := opts.runnerFor(cmd)
			name := cfg.Proxy.Command
			if tool.Probe(cmd.Context(), r, name) {
				rep.Successf(messages.IsInstalledYesFmt, name)
				return nil
			}
			rep.Errorf(messages.IsInstalledNoFmt, name)
			// The probe just ran; go straight to the package manager.
			return runInstall(cmd, r, rep, cfg, false, true)
		},
	}
}
