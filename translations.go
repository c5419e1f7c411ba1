// Package pomo implements gettext message catalogs in pure Go: lookup with
// Plural-Forms support, built from structured translation records, ready to
// be compiled into the binary MO format by the mo package.
package pomo

import (
	"fmt"
	"path"
	"sync"
)

// Translations holds the translation records of the different locales your
// app supports. Use NewTranslations to create an instance.
type Translations struct {
	// As we don't want the mutex protecting the catalog cache to be
	// copied, we embed a pointer to an ancillary struct holding our
	// data.
	*translations
}

type translations struct {
	mu       sync.Mutex
	cache    map[string]*Catalog
	root     string
	domain   string
	resolver PathResolver
	loader   RecordLoader
}

// PathResolver resolves a path to a record file.
type PathResolver func(root string, locale string, domain string) string

// RecordLoader reads the translation records stored at path.
type RecordLoader func(path string) ([]Record, error)

// DefaultResolver resolves paths in the standard format of:
// <root>/<locale>/LC_MESSAGES/<domain>.yaml
func DefaultResolver(root string, locale string, domain string) string {
	return path.Join(root, locale, "LC_MESSAGES", fmt.Sprintf("%s.yaml", domain))
}

// NewTranslations sets up the locales for your app.
// root is the root of your locale folder, domain the domain you want to load,
// resolver a function that resolves record file paths and loader the
// function reading them (recordfile.ReadFile for YAML record files).
func NewTranslations(root string, domain string, resolver PathResolver, loader RecordLoader) Translations {
	if resolver == nil {
		resolver = DefaultResolver
	}
	return Translations{&translations{
		root:     root,
		resolver: resolver,
		loader:   loader,
		domain:   domain,
		cache:    map[string]*Catalog{},
	}}
}

// Preload a list of locales (if they're available). This is useful if you want
// to limit IO to a specific time in your app, for example startup. Subsequent
// calls to Preload or Locale using a locale given here will not do any IO.
func (t Translations) Preload(locales ...string) {
	for _, locale := range locales {
		t.load(locale)
	}
}

func (t Translations) load(locale string) *Catalog {
	t.mu.Lock()
	defer t.mu.Unlock()

	if catalog, ok := t.cache[locale]; ok {
		return catalog
	}

	t.cache[locale] = nil
	if t.loader == nil {
		return nil
	}
	records, err := t.loader(t.resolver(t.root, locale, t.domain))
	if err != nil {
		return nil
	}
	catalog := FromRecords(records, locale)
	t.cache[locale] = catalog
	return catalog
}

// Locale returns a new catalog holding the translations for a list of
// languages. The first language is the catalog's effective language.
//
// If a message is not found in the first language, each subsequent one is
// consulted. The plural rule and header come from the first language that
// provides them. Languages without records are skipped.
func (t Translations) Locale(languages ...string) *Catalog {
	catalog := New(languages...)
	for _, lang := range languages {
		part := t.load(lang)
		if part == nil {
			continue
		}
		catalog.absorb(part, false)
		if catalog.header == "" && part.header != "" {
			catalog.header = part.header
			catalog.info = parseInfo(part.header)
		}
	}
	return catalog
}
