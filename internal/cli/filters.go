package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/genobase/filterexpr/internal/store"
)

// FilterRecord is the JSON shape of one stored filter.
type FilterRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Expression  string `json:"expression"`
	Fingerprint string `json:"fingerprint"`
	CreatedAt   string `json:"created_at"`
}

// NewFiltersCommand creates the filters command group.
func NewFiltersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage stored named filters",
	}
	cmd.AddCommand(newFiltersSaveCommand(rootOpts))
	cmd.AddCommand(newFiltersListCommand(rootOpts))
	return cmd
}

func newFiltersSaveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <expression>",
		Short: "Save a filter expression under a name",
		Long: `Parse an expression and store its canonical form under a unique name.

The stored record carries the canonical text and its fingerprint, so two
saves of the same expression (whatever their whitespace) share an identity.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			expr, err := parseExpressionArg(formatter, args[1])
			if err != nil {
				return err
			}

			s, err := openStore(rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := s.SaveFilter(cmd.Context(), args[0], expr)
			if err != nil {
				if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
					return outErr
				}
				return &ExitError{Code: ExitCommandError, Message: "save filter", Err: err}
			}

			formatter.VerboseLog("saved filter %s (%s)", f.Name, f.ID)
			return formatter.SuccessText("saved: "+f.Expression, filterRecord(f))
		},
	}
}

func newFiltersListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List stored filters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			s, err := openStore(rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			filters, err := s.ListFilters(cmd.Context())
			if err != nil {
				if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
					return outErr
				}
				return &ExitError{Code: ExitCommandError, Message: "list filters", Err: err}
			}

			records := make([]FilterRecord, 0, len(filters))
			var lines []string
			for _, f := range filters {
				records = append(records, filterRecord(f))
				lines = append(lines, fmt.Sprintf("%s\t%s", f.Name, f.Expression))
			}
			if len(lines) == 0 {
				lines = []string{"no filters"}
			}
			return formatter.SuccessText(strings.Join(lines, "\n"), records)
		},
	}
}

// openStore opens the sqlite store at the configured path, rendering
// failures as command errors.
func openStore(rootOpts *RootOptions, formatter *OutputFormatter) (*store.Store, error) {
	s, err := store.Open(rootOpts.DBPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
			return nil, outErr
		}
		return nil, &ExitError{Code: ExitCommandError, Message: "open store", Err: err}
	}
	return s, nil
}

func filterRecord(f store.Filter) FilterRecord {
	return FilterRecord{
		ID:          f.ID,
		Name:        f.Name,
		Expression:  f.Expression,
		Fingerprint: f.Fingerprint,
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
	}
}
