package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/gallery"
	"github.com/inovacc/repogallery/internal/model"
	"github.com/spf13/cobra"
)

type listOptions struct {
	sort      model.SortKey
	language  string
	hideForks bool
	asJSON    bool
}

func defaultListOptions() listOptions {
	return listOptions{sort: model.SortUpdated, language: derive.AllLanguages}
}

var listOpts = defaultListOptions()

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the repositories as a table",
	Long: `Load every repository of the configured account once, apply the filters
and the sort order, and print the result.

Examples:
  # Most starred Go repositories, forks excluded
  repogallery list --language Go --hide-forks --sort stars-desc

  # JSON output for scripting
  repogallery list --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, listOpts)
	},
}

func runList(cmd *cobra.Command, opts listOptions) error {
	src, err := newSource(logger)
	if err != nil {
		return err
	}

	records, err := loadRepositories(cmd.Context(), src)
	if err != nil {
		return err
	}

	state := gallery.State{Sort: opts.sort, Language: opts.language, HideForks: opts.hideForks}
	view := derive.ProjectView(records, state.Filter())

	if opts.asJSON {
		return printReposJSON(cmd.OutOrStdout(), view)
	}

	printReposTable(cmd.OutOrStdout(), view)

	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	if len(view) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), gallery.NoMatches)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), gallery.Summary(len(records), len(view)))

	return nil
}

func printReposTable(w io.Writer, view []model.Repository) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	forkStyle := cellStyle.Foreground(lipgloss.Color("214"))

	cards := gallery.NewCards(view)

	rows := make([][]string, len(cards))
	for i, c := range cards {
		fork := ""
		if c.Fork {
			fork = "yes"
		}

		rows[i] = []string{c.Name, c.Stars, c.Language, fork, c.Updated, c.URL}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("NAME", "STARS", "LANGUAGE", "FORK", "UPDATED", "URL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3:
				return forkStyle
			default:
				return cellStyle
			}
		})

	_, _ = fmt.Fprintln(w, t.Render())
}

func printReposJSON(w io.Writer, view []model.Repository) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode repositories: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Var(&listOpts.sort, "sort", "Sort order: updated, stars-desc, stars-asc, name")
	listCmd.Flags().StringVar(&listOpts.language, "language", derive.AllLanguages, "Show only repositories with this primary language")
	listCmd.Flags().BoolVar(&listOpts.hideForks, "hide-forks", false, "Hide forked repositories")
	listCmd.Flags().BoolVar(&listOpts.asJSON, "json", false, "Output in JSON format")
}
