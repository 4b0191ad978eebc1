package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genobase/filterexpr/internal/query"
	"github.com/genobase/filterexpr/internal/querysql"
)

// CompileResult is the JSON payload of the compile command.
type CompileResult struct {
	Canonical string `json:"canonical"`
	SQL       string `json:"sql"`
	Params    []any  `json:"params"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <expression>",
		Short: "Compile a filter expression to a SQL criterion",
		Long: `Compile a filter expression into a parameterized SQL WHERE criterion.

Fields resolve to columns through the field mapping (--config, or the
built-in sample/group mapping). Values are never interpolated into the SQL
text; they are returned as positional parameters.`,
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

			criterion, err := querysql.Compile(expr, cfg.Columns())
			if err != nil {
				var unknownField *querysql.UnknownFieldError
				if errors.As(err, &unknownField) {
					if outErr := formatter.Error(ErrCodeUnknownField, err.Error(), map[string]any{"field": unknownField.Field}); outErr != nil {
						return outErr
					}
					return &ExitError{Code: ExitFailure, Message: "unknown field", Err: err}
				}
				return err
			}

			params := criterion.Params
			if params == nil {
				params = []any{}
			}
			return formatter.SuccessText(
				fmt.Sprintf("%s\nparams: %v", criterion.SQL, params),
				CompileResult{
					Canonical: query.Compose(expr),
					SQL:       criterion.SQL,
					Params:    params,
				},
			)
		},
	}
}
