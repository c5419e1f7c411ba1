package pomo

// Record is a translation record as produced by a PO reader or any other
// record source. The record whose ID is empty is the catalog header and
// carries "Key: value" metadata lines in Str.
type Record struct {
	ID        string
	IDPlural  string // empty when the message has no plural form
	Str       string
	StrPlural map[int]string
}

// Message is a resolved catalog entry.
//
// Translations is sparse: a missing index is resolved by the fallback
// rules of NGettext, not treated as an error.
type Message struct {
	ID           string
	Singular     string
	Plural       string // source language plural, empty when none
	Translations map[int]string
}

func (m Message) clone() Message {
	m.Translations = copyForms(m.Translations)
	return m
}

func copyForms(forms map[int]string) map[int]string {
	out := make(map[int]string, len(forms))
	for idx, str := range forms {
		out[idx] = str
	}
	return out
}
