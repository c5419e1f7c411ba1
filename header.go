package pomo

import (
	"strings"

	"github.com/snapcore/go-pomo/pluralforms"
)

// parseInfo splits header metadata into lower-cased keys and values.
// Lines without a colon continue the previous field.
func parseInfo(header string) map[string]string {
	info := make(map[string]string)
	lastk := ""
	for _, line := range strings.Split(header, "\n") {
		item := strings.TrimSpace(line)
		if len(item) == 0 {
			continue
		}
		if strings.Contains(item, ":") {
			tmp := strings.SplitN(item, ":", 2)
			k := strings.ToLower(strings.TrimSpace(tmp[0]))
			info[k] = strings.TrimSpace(tmp[1])
			lastk = k
		} else if len(lastk) != 0 {
			info[lastk] += "\n" + item
		}
	}
	return info
}

// SetHeader replaces the raw header metadata. The Plural-Forms field is
// compiled only when overwrite is set or no rule has been loaded yet, so
// the first successful parse wins by default. A missing or malformed
// Plural-Forms field leaves the current rule untouched.
//
// SetHeader reports whether a new plural rule was installed.
func (c *Catalog) SetHeader(header string, overwrite bool) bool {
	c.header = header
	c.info = parseInfo(header)

	if c.rule != nil && !overwrite {
		return false
	}
	value, ok := c.info["plural-forms"]
	if !ok {
		return false
	}
	rule, err := pluralforms.ParseHeader(value)
	if err != nil {
		return false
	}
	c.rule = rule
	return true
}

// Header returns the raw header metadata, "" when none was loaded.
func (c *Catalog) Header() string {
	return c.header
}

// HeaderField returns the value of a header field. Field names are
// case-insensitive.
func (c *Catalog) HeaderField(name string) string {
	return c.info[strings.ToLower(name)]
}
