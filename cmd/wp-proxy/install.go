package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/report"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/settings"
	"github.com/conn-castle/wp-proxy/internal/tool"
)

func newInstallCmd(opts *rootOptions) *cobra.Command {
	var sudo bool
	cmd := &cobra.Command{
		Use:     messages.InstallUse,
		Aliases: []string{messages.InstallUpgradeAlias},
		Short:   messages.InstallShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := opts.reporter(cmd)
			cfg, err := opts.loadSettings(rep)
			if err != nil {
				return err
			}
			upgrade := cmd.CalledAs() == messages.InstallUpgradeAlias
			return runInstall(cmd, opts.runnerFor(cmd), rep, cfg, sudo, upgrade)
		},
	}
	cmd.Flags().BoolVar(&sudo, "sudo", false, messages.InstallFlagSudo)
	return cmd
}

// runInstall installs the proxy tool and reports progress.
// skipProbe installs even when the tool already runs.
func runInstall(cmd *cobra.Command, r runner.Runner, rep *report.Reporter, cfg settings.Settings, elevate bool, skipProbe bool) error {
	name := cfg.Proxy.Command
	opts := tool.Options{
		Tool:                     name,
		PackageManager:           cfg.Install.PackageManager,
		PackageManagerVersionArg: cfg.Install.VersionArg,
		Package:                  cfg.Install.Package,
		ElevateCommand:           cfg.Install.ElevateCommand,
		Elevate:                  elevate,
		Upgrade:                  skipProbe,
		DocsURL:                  cfg.Install.DocsURL,
		OnState: func(state tool.State) {
			switch state {
			case tool.StateCheckingPackageManager:
				rep.Debugf(messages.InstallCheckingPMFmt, cfg.Install.PackageManager)
			case tool.StateInstalling:
				rep.Logf(messages.InstallInstallingFmt, name)
			}
		},
	}
	res, err := tool.Install(cmd.Context(), r, opts)
	if err != nil {
		return err
	}
	if res.AlreadyInstalled {
		rep.Successf(messages.InstallAlreadyPresentFmt, name)
		return nil
	}
	rep.Debugf(messages.RootRunningFmt, res.Command.String())
	rep.Successf(messages.InstallSucceededFmt, name)
	return nil
}
