package pomo

import (
	"sort"

	"github.com/snapcore/go-pomo/pluralforms"
)

// Catalog of translations for a given language. The zero value is an empty
// catalog without languages, ready to use.
//
// A Catalog is not safe for concurrent mutation. Build it completely, then
// share it read-only; Gettext, NGettext and the accessors may be called from
// any number of goroutines once mutation has stopped.
type Catalog struct {
	messages  map[string]*Message
	rule      *pluralforms.Rule
	languages []string

	header string
	info   map[string]string
}

// New returns an empty catalog. The first of languages, if any, is the
// catalog's effective language.
func New(languages ...string) *Catalog {
	return &Catalog{
		messages:  map[string]*Message{},
		languages: append([]string(nil), languages...),
		info:      map[string]string{},
	}
}

// Gettext returns the translation of msgid, or msgid itself when the
// catalog does not know it.
func (c *Catalog) Gettext(msgid string) string {
	msg, ok := c.messages[msgid]
	if !ok {
		return msgid
	}
	if len(msg.Translations) == 0 {
		return msg.Singular
	}
	if msgstr, ok := msg.Translations[0]; ok {
		return msgstr
	}
	return msg.Singular
}

// NGettext returns the plural form of msgid matching n.
//
// Untranslated messages fall back to msgid when n == 1 and to msgidPlural
// otherwise. For translated messages the form selected by the plural rule
// is used if present, then form 0, then the translated singular, and
// finally msgidPlural.
func (c *Catalog) NGettext(msgid, msgidPlural string, n int) string {
	msg, ok := c.messages[msgid]
	if !ok {
		if n == 1 {
			return msgid
		}
		return msgidPlural
	}

	if msgstr, ok := msg.Translations[c.PluralIndex(n)]; ok {
		return msgstr
	}
	if msgstr, ok := msg.Translations[0]; ok {
		return msgstr
	}
	if msg.Singular != "" {
		return msg.Singular
	}
	return msgidPlural
}

// PluralIndex returns the plural form index for n. Without a Plural-Forms
// rule the Germanic rule applies: 0 when n == 1, 1 otherwise.
func (c *Catalog) PluralIndex(n int) int {
	if c.rule == nil {
		if n == 1 {
			return 0
		}
		return 1
	}
	return c.rule.Index(n)
}

// PluralCount returns the number of plural forms declared by the loaded
// rule, or pluralforms.DefaultCount when none is loaded.
func (c *Catalog) PluralCount() int {
	if c.rule == nil {
		return pluralforms.DefaultCount
	}
	return c.rule.Count
}

// PluralRule returns the loaded plural rule, or nil.
func (c *Catalog) PluralRule() *pluralforms.Rule {
	return c.rule
}

// SetPluralRule replaces the plural rule. A nil rule restores the Germanic
// default.
func (c *Catalog) SetPluralRule(rule *pluralforms.Rule) {
	c.rule = rule
}

// Language returns the first configured language. ok is false when the
// catalog was created without languages; no default is ever assumed.
func (c *Catalog) Language() (lang string, ok bool) {
	if len(c.languages) == 0 {
		return "", false
	}
	return c.languages[0], true
}

func (c *Catalog) Languages() []string {
	return append([]string(nil), c.languages...)
}

// Len returns the number of messages, not counting the header.
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Lookup returns a copy of the message stored under msgid.
func (c *Catalog) Lookup(msgid string) (Message, bool) {
	msg, ok := c.messages[msgid]
	if !ok {
		return Message{}, false
	}
	return msg.clone(), true
}

// Messages returns copies of all messages ordered by ID.
func (c *Catalog) Messages() []Message {
	msgs := make([]Message, 0, len(c.messages))
	for _, msg := range c.messages {
		msgs = append(msgs, msg.clone())
	}
	sort.Slice(msgs, func(i, j int) bool {
		return msgs[i].ID < msgs[j].ID
	})
	return msgs
}
