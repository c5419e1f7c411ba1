// Package recordfile reads translation records stored as YAML.
//
// A record file is a sequence of records using gettext field names:
//
//	- msgid: ""
//	  msgstr: |
//	    Language: pl
//	    Plural-Forms: nplurals=3; plural=(n==1 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2);
//	- msgid: Open
//	  msgstr: Otwórz
//	- msgid: "%d file"
//	  msgid_plural: "%d files"
//	  msgstr_plural:
//	    0: "%d plik"
//	    1: "%d pliki"
//	    2: "%d plików"
package recordfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snapcore/go-pomo"
)

var (
	ErrMissingID   = errors.New("record without msgid")
	ErrPluralIndex = errors.New("negative plural index")
)

type record struct {
	MsgID        *string        `yaml:"msgid"`
	MsgIDPlural  string         `yaml:"msgid_plural"`
	MsgStr       string         `yaml:"msgstr"`
	MsgStrPlural map[int]string `yaml:"msgstr_plural"`
}

// Decode reads the records of a YAML record file. Unknown fields are
// rejected. An empty document holds no records.
func Decode(r io.Reader) ([]pomo.Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw []record
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot decode records: %w", err)
	}

	records := make([]pomo.Record, 0, len(raw))
	for i, rec := range raw {
		if rec.MsgID == nil {
			return nil, fmt.Errorf("record %d: %w", i+1, ErrMissingID)
		}
		for idx := range rec.MsgStrPlural {
			if idx < 0 {
				return nil, fmt.Errorf("record %d (%q): %w %d", i+1, *rec.MsgID, ErrPluralIndex, idx)
			}
		}
		records = append(records, pomo.Record{
			ID:        *rec.MsgID,
			IDPlural:  rec.MsgIDPlural,
			Str:       rec.MsgStr,
			StrPlural: rec.MsgStrPlural,
		})
	}
	return records, nil
}

// ReadFile reads the records stored in filename. It can be used as a
// pomo.RecordLoader.
func ReadFile(filename string) ([]pomo.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return records, nil
}
