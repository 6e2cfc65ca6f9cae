package expr

import (
	"strconv"
	"unicode"
)

// Parse — slope-equation parser
//
// Description:
//
//	Parse turns the textual equation f(x, y) into an immutable expression
//	tree with operator precedence fully resolved. It is the only entry
//	point that can reject user input; every later stage (evaluation,
//	sampling, tracing) works on the validated tree and reports per-point
//	domain failures as data, never as parse errors.
//
// Grammar (EBNF):
//
//	expr   = term   { ("+" | "-") term } .
//	term   = unary  { ("*" | "/") unary } .
//	unary  = "-" unary | power .
//	power  = atom [ "**" unary ] .
//	atom   = number | ident | ident "(" expr ")" | "(" expr ")" .
//
//	"**" is right-associative and binds tightest (its exponent re-enters
//	unary, so 2**-3 and -x**2 == -(x**2) parse as in conventional math
//	notation); unary minus binds tighter than "*" and "/".
//
// Errors:
//   - ErrEmptyInput       — blank input.
//   - ErrBadNumber        — malformed literal such as "1.2.3".
//   - ErrUnknownIdent     — identifier outside the whitelist.
//   - ErrUnbalancedParen  — missing ")" or stray ")".
//   - ErrUnexpectedToken  — anything else, including juxtaposition ("2x").
//
// All failures are *SyntaxError values wrapping one of the sentinels and
// carrying the rune position of the offending token.
//
// Complexity:
//
//	Time:   O(len(text))
//	Memory: O(tree depth) recursion + one node per token.
func Parse(text string) (*Tree, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 { // only EOF
		return nil, &SyntaxError{Reason: ErrEmptyInput, Pos: 0}
	}

	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// The grammar must consume the whole input; a trailing ")" means an
	// unmatched close, anything else is juxtaposition or operator misuse.
	if tk := p.peek(); tk.kind != tkEOF {
		reason := ErrUnexpectedToken
		if tk.kind == tkRParen {
			reason = ErrUnbalancedParen
		}

		return nil, &SyntaxError{Reason: reason, Pos: tk.pos, Token: tk.text}
	}

	return &Tree{Root: fold(root)}, nil
}

// tokenKind enumerates lexer token kinds.
type tokenKind int

const (
	tkNum tokenKind = iota
	tkIdent
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkPow // **
	tkLParen
	tkRParen
	tkEOF
)

// token is a lexed unit with its rune position in the source text.
type token struct {
	kind tokenKind
	text string
	val  float64 // set for tkNum
	pos  int     // rune offset
}

// lex scans text into tokens. The only lexical failures are malformed
// numeric literals and characters outside the operator set.
func lex(text string) ([]token, error) {
	runes := []rune(text)
	toks := make([]token, 0, len(runes)/2+1)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case r >= '0' && r <= '9' || r == '.':
			start := i
			// Consume the full digit/dot run so "1.2.3" is reported as one
			// malformed literal instead of silently splitting.
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			// Optional exponent part: e,E followed by optional sign and digits.
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				j := i + 1
				if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
					j++
				}
				if j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
					i = j
					for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
						i++
					}
				}
			}
			lit := string(runes[start:i])
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, &SyntaxError{Reason: ErrBadNumber, Pos: start, Token: lit}
			}
			toks = append(toks, token{kind: tkNum, text: lit, val: v, pos: start})

		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			toks = append(toks, token{kind: tkIdent, text: string(runes[start:i]), pos: start})

		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tkPow, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tkStar, text: "*", pos: i})
				i++
			}

		case r == '+':
			toks = append(toks, token{kind: tkPlus, text: "+", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tkMinus, text: "-", pos: i})
			i++
		case r == '/':
			toks = append(toks, token{kind: tkSlash, text: "/", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tkLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tkRParen, text: ")", pos: i})
			i++

		default:
			return nil, &SyntaxError{Reason: ErrUnexpectedToken, Pos: i, Token: string(r)}
		}
	}

	return append(toks, token{kind: tkEOF, pos: len(runes)}), nil
}

// parser is a recursive-descent parser over the token slice.
type parser struct {
	toks []token
	idx  int
}

// peek returns the current token without consuming it.
func (p *parser) peek() token { return p.toks[p.idx] }

// next consumes and returns the current token.
func (p *parser) next() token {
	tk := p.toks[p.idx]
	if tk.kind != tkEOF {
		p.idx++
	}

	return tk
}

// parseExpr parses additive chains: term { ("+"|"-") term }.
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().kind {
		case tkPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: OpAdd, Left: left, Right: right}
		case tkMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: OpSub, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseTerm parses multiplicative chains: unary { ("*"|"/") unary }.
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().kind {
		case tkStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: OpMul, Left: left, Right: right}
		case tkSlash:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: OpDiv, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseUnary parses an optional chain of unary minuses above power.
func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tkMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return Neg{Operand: operand}, nil
	}

	return p.parsePower()
}

// parsePower parses atom [ "**" unary ]; the exponent re-enters unary so
// the operator is right-associative and accepts a signed exponent.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.peek().kind == tkPow {
		p.next()
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return Binary{Op: OpPow, Left: base, Right: exp}, nil
	}

	return base, nil
}

// parseAtom parses a literal, a name, a function call, or a group.
func (p *parser) parseAtom() (Node, error) {
	tk := p.next()
	switch tk.kind {
	case tkNum:
		return Num{Value: tk.val}, nil

	case tkIdent:
		return p.parseName(tk)

	case tkLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closeTk := p.next(); closeTk.kind != tkRParen {
			return nil, &SyntaxError{Reason: ErrUnbalancedParen, Pos: closeTk.pos, Token: closeTk.text}
		}

		return inner, nil

	case tkRParen:
		return nil, &SyntaxError{Reason: ErrUnbalancedParen, Pos: tk.pos, Token: tk.text}

	default:
		return nil, &SyntaxError{Reason: ErrUnexpectedToken, Pos: tk.pos, Token: tk.text}
	}
}

// parseName resolves an identifier token against the whitelist: a bound
// variable, a named constant, or a function (which must be called).
func (p *parser) parseName(tk token) (Node, error) {
	name := tk.text

	switch name {
	case "x":
		return Variable{Name: VarX}, nil
	case "y":
		return Variable{Name: VarY}, nil
	}

	if c, ok := constNames[name]; ok {
		return Constant{Name: c}, nil
	}

	fn, ok := funcNames[name]
	if !ok {
		return nil, &SyntaxError{Reason: ErrUnknownIdent, Pos: tk.pos, Token: tk.text}
	}

	if open := p.next(); open.kind != tkLParen {
		return nil, &SyntaxError{Reason: ErrUnexpectedToken, Pos: open.pos, Token: open.text}
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if closeTk := p.next(); closeTk.kind != tkRParen {
		return nil, &SyntaxError{Reason: ErrUnbalancedParen, Pos: closeTk.pos, Token: closeTk.text}
	}

	return Apply{Fn: fn, Arg: arg}, nil
}
