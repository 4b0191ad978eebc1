package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/genobase/filterexpr/internal/querysql"
)

// SampleRecord is the JSON shape of one matched sample.
type SampleRecord struct {
	ID       int64  `json:"id"`
	SampleID string `json:"sample_id"`
	GroupID  string `json:"group_id"`
}

// NewSamplesCommand creates the samples command group.
func NewSamplesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Seed and query the samples table",
	}
	cmd.AddCommand(newSamplesAddCommand(rootOpts))
	cmd.AddCommand(newSamplesQueryCommand(rootOpts))
	return cmd
}

func newSamplesAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "add <sample-id> <group-id>",
		Short:         "Add a sample record",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			s, err := openStore(rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			id, err := s.InsertSample(cmd.Context(), args[0], args[1])
			if err != nil {
				if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
					return outErr
				}
				return &ExitError{Code: ExitCommandError, Message: "insert sample", Err: err}
			}

			return formatter.SuccessText(
				fmt.Sprintf("added sample %d", id),
				SampleRecord{ID: id, SampleID: args[0], GroupID: args[1]},
			)
		},
	}
}

func newSamplesQueryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query <expression>",
		Short: "List samples matching a filter expression",
		Long: `Compile an expression against the field mapping and run it over the
samples table. Results are ordered by row id.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			cfg, err := loadConfig(rootOpts)
			if err != nil {
				if outErr := formatter.Error(ErrCodeConfig, err.Error(), nil); outErr != nil {
					return outErr
				}
				return &ExitError{Code: ExitCommandError, Message: "load config", Err: err}
			}

			expr, err := parseExpressionArg(formatter, args[0])
			if err != nil {
				return err
			}

			s, err := openStore(rootOpts, formatter)
			if err != nil {
				return err
			}
			defer s.Close()

			samples, err := s.SelectSamples(cmd.Context(), expr, cfg.Columns())
			if err != nil {
				var unknownField *querysql.UnknownFieldError
				if errors.As(err, &unknownField) {
					if outErr := formatter.Error(ErrCodeUnknownField, err.Error(), map[string]any{"field": unknownField.Field}); outErr != nil {
						return outErr
					}
					return &ExitError{Code: ExitFailure, Message: "unknown field", Err: err}
				}
				if outErr := formatter.Error(ErrCodeStore, err.Error(), nil); outErr != nil {
					return outErr
				}
				return &ExitError{Code: ExitCommandError, Message: "select samples", Err: err}
			}

			records := make([]SampleRecord, 0, len(samples))
			var lines []string
			for _, sm := range samples {
				records = append(records, SampleRecord{ID: sm.ID, SampleID: sm.SampleID, GroupID: sm.GroupID})
				lines = append(lines, fmt.Sprintf("%d\t%s\t%s", sm.ID, sm.SampleID, sm.GroupID))
			}
			if len(lines) == 0 {
				lines = []string{"no matches"}
			}
			return formatter.SuccessText(strings.Join(lines, "\n"), records)
		},
	}
}
