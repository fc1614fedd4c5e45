package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/prompt"
	"github.com/conn-castle/wp-proxy/internal/report"
	"github.com/conn-castle/wp-proxy/internal/runner"
	"github.com/conn-castle/wp-proxy/internal/settings"
	"github.com/conn-castle/wp-proxy/internal/terminal"
)

var (
	getwd      = os.Getwd
	getenv     = os.Getenv
	isTerminal = terminal.IsInteractive
	newRunner  = func(stdin io.Reader, stdout io.Writer, stderr io.Writer) runner.Runner {
		return runner.NewOSRunner(stdin, stdout, stderr)
	}
	newConfirmer = func() prompt.Confirmer { return prompt.NewHuhConfirmer() }
)

// rootOptions holds the global flags.
type rootOptions struct {
	path     string
	settings string
	debug    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.path, "path", "", messages.RootFlagPath)
	flags.StringVar(&opts.settings, "settings", "", messages.RootFlagSettings)
	flags.BoolVar(&opts.debug, "debug", false, messages.RootFlagDebug)

	cmd.AddCommand(
		newStartCmd(opts),
		newConfigCmd(opts),
		newInstallCmd(opts),
		newIsInstalledCmd(opts),
		newVersionCmd(opts),
		newDoctorCmd(opts),
	)
	return cmd
}

// reporter returns a Reporter on the command's writers.
func (o *rootOptions) reporter(cmd *cobra.Command) *report.Reporter {
	return report.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), o.debug)
}

// runnerFor returns a Runner wired to the command's streams.
func (o *rootOptions) runnerFor(cmd *cobra.Command) runner.Runner {
	return newRunner(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadSettings resolves and loads the settings file.
func (o *rootOptions) loadSettings(rep *report.Reporter) (settings.Settings, error) {
	path, explicit, err := settings.ResolvePath(o.settings, getenv)
	if err != nil {
		return settings.Settings{}, err
	}
	rep.Debugf(messages.RootSettingsFileFmt, path)
	return settings.Load(path, explicit)
}
