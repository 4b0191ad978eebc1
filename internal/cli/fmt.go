package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/genobase/filterexpr/internal/ast"
	"github.com/genobase/filterexpr/internal/parser"
	"github.com/genobase/filterexpr/internal/query"
)

// FmtResult is the JSON payload of the fmt command.
type FmtResult struct {
	Canonical   string `json:"canonical"`
	Fingerprint string `json:"fingerprint"`
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <expression>",
		Short: "Canonicalize a filter expression",
		Long: `Parse a filter expression and print its canonical form.

Whitespace collapses, clauses print as field:value, and parentheses appear
only where the input carried them: "( sample : a )" becomes "(sample:a)".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

			expr, err := parseExpressionArg(formatter, args[0])
			if err != nil {
				return err
			}

			canonical := query.Compose(expr)
			return formatter.SuccessText(canonical, FmtResult{
				Canonical:   canonical,
				Fingerprint: query.Fingerprint(expr),
			})
		},
	}
}

// parseExpressionArg parses a raw expression argument, rendering syntax
// errors as validation failures with exit code 1.
func parseExpressionArg(formatter *OutputFormatter, raw string) (*ast.Expression, error) {
	expr, err := query.Parse(raw)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			if outErr := formatter.Error(ErrCodeSyntax, syntaxErr.Message, map[string]any{"offset": syntaxErr.Offset}); outErr != nil {
				return nil, outErr
			}
			return nil, &ExitError{Code: ExitFailure, Message: "invalid expression", Err: err}
		}
		return nil, err
	}
	return expr, nil
}
