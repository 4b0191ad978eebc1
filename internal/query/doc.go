// Package query is the entry point for working with sample filter
// expressions. API layers and the CLI should depend on this package rather
// than on the parsing and visitor machinery underneath it.
//
// Typical request handling:
//
//	expr, err := query.Parse(raw)
//	if err != nil {
//	    var syntaxErr *parser.SyntaxError
//	    if errors.As(err, &syntaxErr) {
//	        // reject the request as a validation failure
//	    }
//	    return err
//	}
//	criterion, err := query.BuildQueryCriterion(expr, alg, buildClause)
//
// All operations are pure: they never mutate their input tree, and
// independent calls share no state.
package query
