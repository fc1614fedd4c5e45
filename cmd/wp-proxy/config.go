package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/wp-proxy/internal/messages"
	"github.com/conn-castle/wp-proxy/internal/snippet"
	"github.com/conn-castle/wp-proxy/internal/wpconfig"
)

var errAlreadyConfigured = errors.New(messages.ConfigAlreadyConfigured)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	var dump bool
	var diff bool
	var force bool
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := snippet.Build()
			if dump {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), wpconfig.Render(s))
				return nil
			}

			rep := opts.reporter(cmd)
			path, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}
			rep.Debugf(messages.ConfigUsingFileFmt, path)

			patcher := wpconfig.NewPatcher()
			if diff {
				preview, err := patcher.Preview(path, s)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), preview)
				return nil
			}

			if !force {
				configured, err := patcher.AlreadyConfigured(path)
				if err != nil {
					return err
				}
				if configured {
					proceed, err := confirmRepatch(path)
					if err != nil {
						return err
					}
					if !proceed {
						rep.Logf(messages.ConfigAbortedFmt, filepath.Base(path))
						return nil
					}
				}
			}

			if err := patcher.Patch(path, s); err != nil {
				return err
			}
			rep.Successf(messages.ConfigPatchedFmt, filepath.Base(path))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, messages.ConfigFlagDump)
	cmd.Flags().BoolVar(&diff, "diff", false, messages.ConfigFlagDiff)
	cmd.Flags().BoolVar(&force, "force", false, messages.ConfigFlagForce)
	cmd.MarkFlagsMutuallyExclusive("dump", "diff")
	return cmd
}

// confirmRepatch asks before defining the proxy constants a second time.
// Without a terminal it refuses.
func confirmRepatch(path string) (bool, error) {
	if !isTerminal() {
		return false, errAlreadyConfigured
	}
	return newConfirmer().Confirm(fmt.Sprintf(messages.ConfigAlreadyPromptFmt, filepath.Base(path)), false)
}
