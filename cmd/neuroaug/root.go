// SPDX-License-Identifier: EPL-2.0

package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCommand(fsys afero.Fs) *cobra.Command {
	ctx := newCommandContext(fsys)

	rootCmd := &cobra.Command{
		Use:           "neuroaug",
		Short:         "Generate augmented copies of image and audio datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	ctx.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newImageCommand(ctx))
	rootCmd.AddCommand(newAudioCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
