package pluralforms

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	rule, err := ParseHeader("nplurals=2; plural=(n != 1);")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, 2, rule.Count)
	assertEqual(t, "(n != 1)", rule.Source)
	assertEqual(t, 1, rule.Index(0))
	assertEqual(t, 0, rule.Index(1))
	assertEqual(t, 1, rule.Index(2))

	rule, err = ParseHeader(" nplurals = 3 ; plural = " + polish + " ;")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, 3, rule.Count)
	assertEqual(t, polish, rule.Source)
	assertEqual(t, 1, rule.Index(22))
}

func TestParseHeaderDefaults(t *testing.T) {
	// nplurals defaults to 2
	rule, err := ParseHeader("plural=n>1;")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, DefaultCount, rule.Count)
	assertEqual(t, 0, rule.Index(1))
	assertEqual(t, 1, rule.Index(2))

	// the expression defaults to the Germanic rule
	rule, err = ParseHeader("nplurals=2")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, DefaultSource, rule.Source)
	assertEqual(t, 0, rule.Index(1))
	assertEqual(t, 1, rule.Index(5))
}

func TestParseHeaderFailures(t *testing.T) {
	for _, value := range []string{
		"nplurals=two; plural=0;",
		"nplurals=0; plural=0;",
		"nplurals=-1; plural=0;",
	} {
		if _, err := ParseHeader(value); !errors.Is(err, ErrNPlurals) {
			t.Logf("%q: expected ErrNPlurals, got %v", value, err)
			t.Fail()
		}
	}

	if _, err := ParseHeader("nplurals=2; plural=n ==;"); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestRuleIndexClamps(t *testing.T) {
	rule, err := NewRule(2, "n")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, 0, rule.Index(0))
	assertEqual(t, 1, rule.Index(1))
	// out of range on either side maps to the first form
	assertEqual(t, 0, rule.Index(2))
	assertEqual(t, 0, rule.Index(-3))

	// a single-form language always selects index 0
	rule, err = ParseHeader("nplurals=1;")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, 0, rule.Index(5))
}
