package pluralforms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNPlurals is returned (wrapped) when the nplurals field of a
// Plural-Forms header is not a positive integer.
var ErrNPlurals = errors.New("invalid nplurals")

const (
	// DefaultCount is the number of plural forms assumed when a header
	// does not declare nplurals.
	DefaultCount = 2
	// DefaultSource is the expression assumed when a header does not
	// declare one (the Germanic rule).
	DefaultSource = "n != 1"
)

// Rule is a compiled Plural-Forms header: the number of forms a language has
// and the expression selecting among them. A Rule is immutable once built and
// may be shared between catalogs.
type Rule struct {
	Count  int
	Expr   Expression
	Source string
}

// NewRule compiles source into a Rule declaring count plural forms.
func NewRule(count int, source string) (*Rule, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNPlurals, count)
	}
	expr, err := Compile(source)
	if err != nil {
		return nil, err
	}
	return &Rule{Count: count, Expr: expr, Source: strings.TrimSpace(source)}, nil
}

// Index evaluates the rule for n. Results outside [0, Count) are mapped to 0.
func (r *Rule) Index(n int) int {
	idx := r.Expr.Eval(n)
	if idx < 0 || idx >= r.Count {
		return 0
	}
	return idx
}

// ParseHeader parses the value of a Plural-Forms header field, such as
//
//	nplurals=3; plural=n%10==1 && n%100!=11 ? 0 : n != 0 ? 1 : 2;
//
// A missing nplurals defaults to DefaultCount and a missing plural
// expression to DefaultSource.
func ParseHeader(value string) (*Rule, error) {
	count := DefaultCount
	source := DefaultSource
	for _, field := range strings.Split(value, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		tmp := strings.SplitN(field, "=", 2)
		if len(tmp) != 2 {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(tmp[0])) {
		case "nplurals":
			v := strings.TrimSpace(tmp[1])
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrNPlurals, v)
			}
			count = n
		case "plural":
			if s := strings.TrimSpace(tmp[1]); s != "" {
				source = s
			}
		}
	}
	return NewRule(count, source)
}
