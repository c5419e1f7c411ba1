package pomo

import (
	"sync/atomic"
)

var defaultCatalog atomic.Pointer[Catalog]

// SetDefault installs catalog as the target of the package level Gettext and
// NGettext functions. A nil catalog removes it again. The catalog must not be
// modified after it has been installed.
func SetDefault(catalog *Catalog) {
	defaultCatalog.Store(catalog)
}

// Default returns the installed default catalog, or nil.
func Default() *Catalog {
	return defaultCatalog.Load()
}

// Gettext translates msgid with the default catalog. Without one msgid is
// returned unchanged.
func Gettext(msgid string) string {
	if c := Default(); c != nil {
		return c.Gettext(msgid)
	}
	return msgid
}

// NGettext translates a plural message with the default catalog. Without
// one msgid is returned when n == 1 and msgidPlural otherwise.
func NGettext(msgid, msgidPlural string, n int) string {
	if c := Default(); c != nil {
		return c.NGettext(msgid, msgidPlural, n)
	}
	if n == 1 {
		return msgid
	}
	return msgidPlural
}
