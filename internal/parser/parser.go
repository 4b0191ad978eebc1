package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/genobase/filterexpr/internal/ast"
)

// maxDepth bounds expression nesting (grouping/negation depth and and/or
// chain length). Recursion depth tracks input nesting one-to-one, so the
// bound keeps pathological inputs from exhausting the stack.
const maxDepth = 512

// reserved keywords; they cannot be used as a clause field.
const (
	kwAnd = "and"
	kwOr  = "or"
	kwNot = "not"
)

// Parse converts input into an Expression AST.
//
// The whole input must be a single expression: anything left over after a
// complete parse is a *SyntaxError. Parsing has no side effects and never
// returns a partial tree.
func Parse(input string) (*ast.Expression, error) {
	p := &parser{input: input}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.fail(p.pos, "unexpected input after expression")
	}
	return expr, nil
}

type parser struct {
	input string
	pos   int
}

// parseExpression parses one term and then, if the next token is a
// connective keyword, takes the ENTIRE remainder of the input as its right
// operand. This is the leftmost-keyword-wins grouping rule; see the package
// comment before changing anything here.
func (p *parser) parseExpression(depth int) (*ast.Expression, error) {
	if depth > maxDepth {
		return nil, p.fail(p.pos, "expression nested too deeply")
	}

	term, err := p.parseTerm(depth + 1)
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	switch {
	case p.matchKeyword(kwAnd):
		rest, err := p.parseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Child: &ast.Conjunction{Left: term, Right: rest}}, nil
	case p.matchKeyword(kwOr):
		rest, err := p.parseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Child: &ast.Disjunction{Left: term, Right: rest}}, nil
	default:
		return &ast.Expression{Child: term}, nil
	}
}

// parseTerm tries, in order: grouping, negation, clause, tautology. The
// first alternative that matches in full wins; an alternative that fails
// partway releases its input before the next one runs. Choices already
// committed by returning are never revisited.
func (p *parser) parseTerm(depth int) (*ast.Term, error) {
	if depth > maxDepth {
		return nil, p.fail(p.pos, "expression nested too deeply")
	}

	p.skipSpace()
	start := p.pos

	// "(" expression ")"
	if p.consume('(') {
		inner, err := p.parseExpression(depth + 1)
		if err == nil {
			p.skipSpace()
			if p.consume(')') {
				return &ast.Term{Child: &ast.Grouping{Child: inner}}, nil
			}
		}
		p.pos = start
	}

	// "not" term
	if p.matchKeyword(kwNot) {
		child, err := p.parseTerm(depth + 1)
		if err == nil {
			return &ast.Term{Child: &ast.Negation{Child: child}}, nil
		}
		p.pos = start
	}

	// symbol ":" value
	if field, ok := p.scanSymbol(); ok {
		if !isKeyword(field) {
			p.skipSpace()
			if p.consume(':') {
				p.skipSpace()
				if value, ok := p.scanValue(); ok {
					return &ast.Term{Child: &ast.Clause{Field: field, Value: value}}, nil
				}
			}
		}
		p.pos = start
	}

	// "*"
	if p.consume('*') {
		return &ast.Term{Child: &ast.Tautology{}}, nil
	}

	return nil, p.fail(p.pos, `expected "(", "not", a field:value clause, or "*"`)
}

// matchKeyword consumes kw if it appears at the cursor as a whole word,
// i.e. not immediately followed by a symbol character ("notx" is a symbol,
// not the keyword "not").
func (p *parser) matchKeyword(kw string) bool {
	end := p.pos + len(kw)
	if end > len(p.input) || p.input[p.pos:end] != kw {
		return false
	}
	if end < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[end:])
		if isSymbolChar(r) {
			return false
		}
	}
	p.pos = end
	return true
}

// scanSymbol consumes a field symbol: a letter followed by letters, digits,
// '.', '_' or '-'.
func (p *parser) scanSymbol() (string, bool) {
	start := p.pos
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	if size == 0 || !unicode.IsLetter(r) {
		return "", false
	}
	p.pos += size
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isSymbolChar(r) {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos], true
}

// scanValue consumes a clause value: one or more characters excluding
// whitespace and parentheses.
func (p *parser) scanValue() (string, bool) {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsSpace(r) || r == '(' || r == ')' {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return "", false
	}
	return p.input[start:p.pos], true
}

// consume advances past c if it is the next byte.
func (p *parser) consume(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		p.pos += size
	}
}

func (p *parser) fail(offset int, msg string) error {
	return &SyntaxError{Offset: offset, Message: msg}
}

func isKeyword(s string) bool {
	return s == kwAnd || s == kwOr || s == kwNot
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '-'
}
