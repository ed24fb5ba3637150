package cmd

import (
	"fmt"

	"github.com/inovacc/repogallery/internal/derive"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Print the primary languages of the repositories",
	Long:  `Print every distinct primary language of the configured account's repositories, one per line, sorted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := newSource(logger)
		if err != nil {
			return err
		}

		records, err := loadRepositories(cmd.Context(), src)
		if err != nil {
			return err
		}

		for _, lang := range derive.DistinctLanguages(records) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), lang)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
