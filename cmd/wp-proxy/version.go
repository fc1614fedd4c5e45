package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/report"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/settings"
	"github.com/conn-castle/wp-proxy/internal/tool"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	var extra bool
	cmd := &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.VersionLineFmt, versionString())
			if !extra {
				return nil
			}

			rep := opts.reporter(cmd)
			cfg, err := opts.loadSettings(rep)
			if err != nil {
				rep.Warningf(messages.VersionSettingsFallbackFmt, err)
				cfg = settings.Defaults()
			}
			r := opts.runnerFor(cmd)
			for _, name := range []string{cfg.Proxy.Command, cfg.Host.Command} {
				printToolVersion(cmd, r, rep, name)
			}
			_, _ = fmt.Fprintf(out, messages.VersionHostLineFmt, runtime.GOOS, runtime.GOARCH, runtime.Version())
			return nil
		},
	}
	cmd.Flags().BoolVar(&extra, "extra", false, messages.VersionFlagExtra)
	return cmd
}

// printToolVersion runs `name --version`; failures are reported as warnings.
func printToolVersion(cmd *cobra.Command, r runner.Runner, rep *report.Reporter, name string) {
	res, err := r.Run(cmd.Context(), runner.Command{Name: name, Args: []string{tool.VersionArg}})
	switch {
	case err != nil:
		rep.Warningf(messages.VersionExtraToolFmt, name, err)
	case !res.Success():
		rep.Warningf(messages.VersionExtraToolFmt, name, fmt.Sprintf(messages.VersionExitCodeFmt, res.ExitCode))
	}
}
