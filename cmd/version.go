package cmd

import (
	"fmt"

	"github.com/inovacc/repogallery/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", application.AppName, application.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
