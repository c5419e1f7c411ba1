package pluralforms

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is returned (wrapped) by Compile for malformed expressions.
var ErrSyntax = errors.New("plural forms syntax error")

// maxDepth bounds the nesting of parentheses, negations and ternaries.
const maxDepth = 64

const (
	eofTok = 0

	numTok = 256 + iota
	eqTok
	neTok
	ltTok
	lteTok
	gtTok
	gteTok
	andTok
	orTok
	invalidTok
)

type lexer struct {
	data string
	pos  int
}

func (l *lexer) Lex() (tok int, num int) {
	for {
		if l.pos >= len(l.data) {
			return eofTok, 0
		}
		if l.data[l.pos] != ' ' && l.data[l.pos] != '\t' {
			break
		}
		l.pos += 1
	}

	pos := l.pos
	result := int(l.data[pos])
	l.pos += 1
	switch result {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for l.pos < len(l.data) && l.data[l.pos] >= '0' && l.data[l.pos] <= '9' {
			l.pos += 1
		}
		if num, err := strconv.ParseInt(l.data[pos:l.pos], 10, 32); err == nil {
			return numTok, int(num)
		}
		return invalidTok, 0
	case '=':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return eqTok, 0
		}
		return invalidTok, 0
	case '!':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return neTok, 0
		}
		return result, 0
	case '&', '|':
		if l.pos < len(l.data) && l.data[l.pos] == l.data[pos] {
			l.pos += 1
			if result == '&' {
				return andTok, 0
			}
			return orTok, 0
		}
		return invalidTok, 0
	case '<':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return lteTok, 0
		}
		return ltTok, 0
	case '>':
		if l.pos < len(l.data) && l.data[l.pos] == '=' {
			l.pos += 1
			return gteTok, 0
		}
		return gtTok, 0
	case 'n', '?', ':', '(', ')', '*', '/', '%', '+', '-':
		// Return as is
		return result, 0
	case ';', '\n':
		return eofTok, 0
	default:
		return invalidTok, 0
	}
}

// parser is a recursive descent parser for the C subset accepted by
// GNU gettext in Plural-Forms headers. Precedence, lowest first:
//
//	?:  ||  &&  == !=  < <= > >=  + -  * / %  !
type parser struct {
	lex   lexer
	tok   int
	num   int
	depth int
}

func (p *parser) advance() {
	p.tok, p.num = p.lex.Lex()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.lex.pos, fmt.Sprintf(format, args...))
}

func (p *parser) enter() error {
	p.depth += 1
	if p.depth > maxDepth {
		return p.errorf("expression nested too deeply")
	}
	return nil
}

func (p *parser) leave() {
	p.depth -= 1
}

func (p *parser) ternary() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	test, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.tok != '?' {
		return test, nil
	}
	p.advance()
	ifTrue, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.tok != ':' {
		return nil, p.errorf("expected ':' in conditional expression")
	}
	p.advance()
	ifFalse, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return ternaryExpr{test: test, ifTrue: ifTrue, ifFalse: ifFalse}, nil
}

func (p *parser) or() (Expression, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.tok == orTok {
		p.advance()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = orExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) and() (Expression, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.tok == andTok {
		p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = andExpr{left: left, right: right}
	}
	return left, nil
}

func (p *parser) equality() (Expression, error) {
	left, err := p.relational()
	if err != nil {
		return nil, err
	}
	for p.tok == eqTok || p.tok == neTok {
		op := p.tok
		p.advance()
		right, err := p.relational()
		if err != nil {
			return nil, err
		}
		if op == eqTok {
			left = eqExpr{left: left, right: right}
		} else {
			left = neExpr{left: left, right: right}
		}
	}
	return left, nil
}

func (p *parser) relational() (Expression, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.tok == ltTok || p.tok == lteTok || p.tok == gtTok || p.tok == gteTok {
		op := p.tok
		p.advance()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		switch op {
		case ltTok:
			left = ltExpr{left: left, right: right}
		case lteTok:
			left = lteExpr{left: left, right: right}
		case gtTok:
			left = gtExpr{left: left, right: right}
		default:
			left = gteExpr{left: left, right: right}
		}
	}
	return left, nil
}

func (p *parser) additive() (Expression, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.tok == '+' || p.tok == '-' {
		op := p.tok
		p.advance()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = addExpr{left: left, right: right}
		} else {
			left = subExpr{left: left, right: right}
		}
	}
	return left, nil
}

func (p *parser) multiplicative() (Expression, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok == '*' || p.tok == '/' || p.tok == '%' {
		op := p.tok
		p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		switch op {
		case '*':
			left = mulExpr{left: left, right: right}
		case '/':
			left = divExpr{left: left, right: right}
		default:
			left = modExpr{left: left, right: right}
		}
	}
	return left, nil
}

func (p *parser) unary() (Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.tok {
	case '!':
		p.advance()
		sub, err := p.unary()
		if err != nil {
			return nil, err
		}
		return notExpr{sub: sub}, nil
	case numTok:
		value := p.num
		p.advance()
		return numberExpr{value}, nil
	case 'n':
		p.advance()
		return varExpr{}, nil
	case '(':
		p.advance()
		sub, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if p.tok != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.advance()
		return sub, nil
	case eofTok:
		return nil, p.errorf("unexpected end of expression")
	default:
		return nil, p.errorf("unexpected token")
	}
}

// Compile a string containing a plural form expression to a Expression object.
//
// The expression may be terminated by ';' or a newline; anything after the
// terminator is ignored.
func Compile(expr string) (Expression, error) {
	p := parser{lex: lexer{data: expr}}
	p.advance()
	exp, err := p.ternary()
	if err != nil {
		return nil, fmt.Errorf("cannot parse expression: %w", err)
	}
	if p.tok != eofTok {
		return nil, fmt.Errorf("cannot parse expression: %w", p.errorf("trailing input"))
	}
	return exp, nil
}
