package pomo

// FromRecords builds a catalog from translation records. The header record
// (empty ID) supplies metadata and the plural rule; every other record
// becomes a message. Later records replace earlier ones with the same ID.
func FromRecords(records []Record, languages ...string) *Catalog {
	c := New(languages...)
	for _, rec := range records {
		if rec.ID == "" {
			c.SetHeader(rec.Str, false)
			continue
		}
		singular := rec.Str
		if singular == "" {
			singular = rec.ID
		}
		c.put(&Message{
			ID:           rec.ID,
			Singular:     singular,
			Plural:       rec.IDPlural,
			Translations: copyForms(rec.StrPlural),
		})
	}
	return c
}

func (c *Catalog) put(msg *Message) {
	if c.messages == nil {
		c.messages = map[string]*Message{}
	}
	c.messages[msg.ID] = msg
}

// AddSingular adds or replaces a message without plural forms. An empty
// msgstr falls back to msgid. An empty msgid sets the header instead.
func (c *Catalog) AddSingular(msgid, msgstr string) {
	if msgid == "" {
		c.SetHeader(msgstr, false)
		return
	}
	if msgstr == "" {
		msgstr = msgid
	}
	c.put(&Message{
		ID:           msgid,
		Singular:     msgstr,
		Translations: map[int]string{},
	})
}

// AddPlural adds or replaces a plural message. forms[i] is the translation
// for plural index i; forms[0] doubles as the singular translation.
func (c *Catalog) AddPlural(msgid, msgidPlural string, forms []string) {
	if msgid == "" {
		return
	}
	singular := msgid
	if len(forms) > 0 && forms[0] != "" {
		singular = forms[0]
	}
	translations := make(map[int]string, len(forms))
	for idx, form := range forms {
		translations[idx] = form
	}
	c.put(&Message{
		ID:           msgid,
		Singular:     singular,
		Plural:       msgidPlural,
		Translations: translations,
	})
}

// AddMessage adds or replaces msg as is. A message with an empty ID sets the
// header from its Singular text.
func (c *Catalog) AddMessage(msg Message) {
	if msg.ID == "" {
		c.SetHeader(msg.Singular, false)
		return
	}
	msg = msg.clone()
	c.put(&msg)
}

// Merge copies the messages of other into c, replacing messages with the
// same ID. If c has no plural rule yet, it adopts the rule of other. Merging
// a nil catalog does nothing.
func (c *Catalog) Merge(other *Catalog) {
	c.absorb(other, true)
}

func (c *Catalog) absorb(other *Catalog, overwrite bool) {
	if other == nil {
		return
	}
	for id, msg := range other.messages {
		if _, exists := c.messages[id]; exists && !overwrite {
			continue
		}
		cp := msg.clone()
		c.put(&cp)
	}
	if c.rule == nil && other.rule != nil {
		c.rule = other.rule
	}
}
