package recordfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/snapcore/go-pomo"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(recordfileSuite{})

type recordfileSuite struct{}

func (recordfileSuite) TestDecode(c *C) {
	records, err := Decode(strings.NewReader(`
- msgid: ""
  msgstr: "Language: de\n"
- msgid: Open
  msgstr: Öffnen
- msgid: "%d file"
  msgid_plural: "%d files"
  msgstr_plural:
    0: "%d Datei"
    1: "%d Dateien"
- msgid: Untranslated
`))
	c.Assert(err, IsNil)
	c.Check(records, DeepEquals, []pomo.Record{
		{ID: "", Str: "Language: de\n"},
		{ID: "Open", Str: "Öffnen"},
		{ID: "%d file", IDPlural: "%d files", StrPlural: map[int]string{0: "%d Datei", 1: "%d Dateien"}},
		{ID: "Untranslated"},
	})
}

func (recordfileSuite) TestDecodeEmpty(c *C) {
	records, err := Decode(strings.NewReader(""))
	c.Assert(err, IsNil)
	c.Check(records, HasLen, 0)
}

func (recordfileSuite) TestDecodeErrors(c *C) {
	for _, test := range []struct {
		input string
		err   error
	}{
		{"- msgstr: orphan\n", ErrMissingID},
		{"- msgid: x\n  msgstr_plural:\n    -1: bad\n", ErrPluralIndex},
	} {
		_, err := Decode(strings.NewReader(test.input))
		c.Check(errors.Is(err, test.err), Equals, true, Commentf("input %q: %v", test.input, err))
	}

	for _, input := range []string{
		"msgid: not a sequence\n",
		"- msgid: x\n  comment: unknown field\n",
		"- msgid: x\n  msgstr_plural:\n    one: bad\n",
		"- [unbalanced\n",
	} {
		_, err := Decode(strings.NewReader(input))
		c.Check(err, NotNil, Commentf("input %q", input))
	}
}

func (recordfileSuite) TestReadFile(c *C) {
	records, err := ReadFile("testdata/ja/LC_MESSAGES/messages.yaml")
	c.Assert(err, IsNil)
	c.Assert(records, HasLen, 3)
	c.Check(records[0].ID, Equals, "")
	c.Check(records[0].Str, Equals, "Language: ja\nPlural-Forms: nplurals=1; plural=0;\n")

	_, err = ReadFile(filepath.Join(c.MkDir(), "missing.yaml"))
	c.Check(errors.Is(err, os.ErrNotExist), Equals, true)

	broken := filepath.Join(c.MkDir(), "broken.yaml")
	c.Assert(os.WriteFile(broken, []byte("- msgid: x\n  bogus: 1\n"), 0644), IsNil)
	_, err = ReadFile(broken)
	c.Check(err, ErrorMatches, "(?s).*broken.yaml: cannot decode records: .*")
}

func (recordfileSuite) TestTranslations(c *C) {
	translations := pomo.NewTranslations("testdata", "messages", pomo.DefaultResolver, ReadFile)

	ja := translations.Locale("ja")
	c.Check(ja.Gettext("Hello"), Equals, "こんにちは")
	c.Check(ja.NGettext("apple", "apples", 1), Equals, "りんご")
	c.Check(ja.NGettext("apple", "apples", 5), Equals, "りんご")

	pl := translations.Locale("pl", "ja")
	c.Check(pl.PluralCount(), Equals, 3)
	c.Check(pl.Gettext("Hello"), Equals, "Cześć")
	c.Check(pl.NGettext("%d file", "%d files", 1), Equals, "%d plik")
	c.Check(pl.NGettext("%d file", "%d files", 3), Equals, "%d pliki")
	c.Check(pl.NGettext("%d file", "%d files", 12), Equals, "%d plików")
	// Japanese fills the gaps of the Polish catalog
	c.Check(pl.Gettext("apple"), Equals, "りんご")

	fr := translations.Locale("fr")
	c.Check(fr.Gettext("Hello"), Equals, "Hello")
}
