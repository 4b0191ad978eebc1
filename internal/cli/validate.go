package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genobase/filterexpr/internal/parser"
	"github.com/genobase/filterexpr/internal/query"
)

// ValidationResult holds validation results for one expression.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
	Tautology bool   `json:"tautology,omitempty"`
	Singleton bool   `json:"singleton,omitempty"`
	Error     string `json:"error,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <expression>",
		Short: "Check a filter expression against the grammar",
		Long: `Validate a filter expression without compiling it.

Reports the canonical form plus whether the expression is the bare "*"
tautology or a single sample clause. Exits 1 on malformed input.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			expr, err := query.Parse(args[0])
			if err != nil {
				var syntaxErr *parser.SyntaxError
				if errors.As(err, &syntaxErr) {
					result := ValidationResult{
						Valid:  false,
						Error:  syntaxErr.Message,
						Offset: syntaxErr.Offset,
					}
					if outErr := formatter.SuccessText(
						fmt.Sprintf("invalid: %s (offset %d)", syntaxErr.Message, syntaxErr.Offset),
						result,
					); outErr != nil {
						return outErr
					}
					return &ExitError{Code: ExitFailure, Message: "invalid expression", Err: err}
				}
				return err
			}

			result := ValidationResult{
				Valid:     true,
				Canonical: query.Compose(expr),
				Tautology: query.IsTautology(expr),
				Singleton: query.IsSingleton(expr),
			}
			return formatter.SuccessText("valid: "+result.Canonical, result)
		},
	}
}
