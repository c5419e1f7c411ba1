// Package mo compiles catalogs into GNU gettext MO files.
//
// The output is little-endian, carries no hash table and stores its original
// strings sorted, so readers locate messages by binary search.
package mo

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/snapcore/go-pomo"
)

const le_magic = 0x950412de

// ProjectIDVersion is written to the Project-Id-Version header field.
const ProjectIDVersion = "go-pomo 1.0"

// ErrTooLarge is returned when the catalog does not fit the 32-bit offsets
// of the MO format.
var ErrTooLarge = errors.New("catalog too large for mo format")

type header struct {
	Magic          uint32
	Version        uint32
	NumStrings     uint32
	OrigTabOffset  uint32
	TransTabOffset uint32
	HashTabSize    uint32
	HashTabOffset  uint32
}

type entry struct {
	msgid  string
	msgstr string
}

// Option changes how Build writes a catalog.
type Option func(*options)

type options struct {
	keepPluralSource bool
}

// KeepPluralSource writes the expression of the catalog's plural rule to the
// Plural-Forms field. By default the field is derived from the number of
// plural forms alone: "0" for one form, "n != 1" for two and "(n != 1)"
// otherwise.
func KeepPluralSource() Option {
	return func(o *options) {
		o.keepPluralSource = true
	}
}

// pluralExpr returns the expression written to the Plural-Forms field.
func pluralExpr(catalog *pomo.Catalog, opts *options) string {
	if rule := catalog.PluralRule(); opts.keepPluralSource && rule != nil && rule.Source != "" {
		return rule.Source
	}
	switch catalog.PluralCount() {
	case 1:
		return "0"
	case 2:
		return "n != 1"
	default:
		return "(n != 1)"
	}
}

func buildHeader(catalog *pomo.Catalog, opts *options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Project-Id-Version: %s\n", ProjectIDVersion)
	b.WriteString("MIME-Version: 1.0\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\n")
	if lang, ok := catalog.Language(); ok {
		fmt.Fprintf(&b, "Language: %s\n", lang)
	}
	fmt.Fprintf(&b, "Plural-Forms: nplurals=%d; plural=%s;\n", catalog.PluralCount(), pluralExpr(catalog, opts))
	return b.String()
}

// msgEntry flattens a message into its MO key and value. Plural messages
// are keyed by "msgid\x00msgid_plural" and store one NUL separated form per
// plural index.
func msgEntry(msg pomo.Message, nplurals int) entry {
	if msg.Plural == "" || len(msg.Translations) == 0 {
		msgstr, ok := msg.Translations[0]
		if !ok {
			msgstr = msg.Singular
		}
		return entry{msgid: msg.ID, msgstr: msgstr}
	}

	forms := make([]string, nplurals)
	for idx := range forms {
		if form, ok := msg.Translations[idx]; ok {
			forms[idx] = form
		} else if idx == 0 {
			forms[idx] = msg.Singular
		} else {
			forms[idx] = msg.Plural
		}
	}
	return entry{
		msgid:  msg.ID + "\x00" + msg.Plural,
		msgstr: strings.Join(forms, "\x00"),
	}
}

func entries(catalog *pomo.Catalog, opts *options) []entry {
	msgs := catalog.Messages()
	ents := make([]entry, 0, len(msgs)+1)
	ents = append(ents, entry{msgid: "", msgstr: buildHeader(catalog, opts)})
	nplurals := catalog.PluralCount()
	for _, msg := range msgs {
		ents = append(ents, msgEntry(msg, nplurals))
	}
	sort.Slice(ents, func(i, j int) bool {
		if ents[i].msgid != ents[j].msgid {
			return ents[i].msgid < ents[j].msgid
		}
		return ents[i].msgstr < ents[j].msgstr
	})
	return ents
}

// Build compiles catalog into the bytes of an MO file. The result only
// depends on the catalog's contents and opts.
func Build(catalog *pomo.Catalog, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	ents := entries(catalog, &o)

	var hdr header
	headerSize := binary.Size(&hdr)
	tabSize := 8 * len(ents)
	strOffset := headerSize + 2*tabSize

	size := strOffset
	for _, ent := range ents {
		size += len(ent.msgid) + 1 + len(ent.msgstr) + 1
	}
	if uint64(size) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}

	hdr = header{
		Magic:          le_magic,
		Version:        0,
		NumStrings:     uint32(len(ents)),
		OrigTabOffset:  uint32(headerSize),
		TransTabOffset: uint32(headerSize + tabSize),
		HashTabSize:    0,
		HashTabOffset:  0,
	}

	origTab := make([]byte, tabSize)
	transTab := make([]byte, tabSize)
	data := make([]byte, 0, size-strOffset)
	offset := strOffset
	for i, ent := range ents {
		binary.LittleEndian.PutUint32(origTab[8*i:], uint32(len(ent.msgid)))
		binary.LittleEndian.PutUint32(origTab[8*i+4:], uint32(offset))
		data = append(data, ent.msgid...)
		data = append(data, 0)
		offset += len(ent.msgid) + 1
	}
	for i, ent := range ents {
		binary.LittleEndian.PutUint32(transTab[8*i:], uint32(len(ent.msgstr)))
		binary.LittleEndian.PutUint32(transTab[8*i+4:], uint32(offset))
		data = append(data, ent.msgstr...)
		data = append(data, 0)
		offset += len(ent.msgstr) + 1
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := binary.Write(buf, binary.LittleEndian, &hdr); err != nil {
		return nil, err
	}
	buf.Write(origTab)
	buf.Write(transTab)
	buf.Write(data)
	return buf.Bytes(), nil
}

// Write compiles catalog and writes the MO file to w.
func Write(w io.Writer, catalog *pomo.Catalog, opts ...Option) error {
	data, err := Build(catalog, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile compiles catalog into the MO file at filename.
func WriteFile(filename string, catalog *pomo.Catalog, opts ...Option) error {
	data, err := Build(catalog, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", filename, err)
	}
	return nil
}
