package canon

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"

	"github.com/genobase/filterexpr/internal/ast"
)

// expressionDomain is the domain prefix for expression fingerprints.
// The version suffix enables future algorithm migration.
const expressionDomain = "filterexpr/expression/v1"

// Fingerprint computes the content-addressed identity of an expression:
// SHA-256 over its NFC-normalized canonical form, with domain separation.
//
// Two expressions have the same fingerprint exactly when they have the same
// canonical text, so the fingerprint is stable across parse/compose
// round-trips and across restarts. Unicode normalization happens here, at
// the identity boundary, so visually identical clause values hash alike
// regardless of how the client encoded them.
func Fingerprint(expr *ast.Expression) string {
	canonical := norm.NFC.String(Compose(expr))

	h := sha256.New()
	h.Write([]byte(expressionDomain))
	h.Write([]byte{0x00}) // null separator prevents domain/data ambiguity
	h.Write([]byte(canonical))
	return hex.EncodeToString(h.Sum(nil))
}
