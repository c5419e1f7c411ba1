package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/language"

	"github.com/snapcore/go-pomo"
	"github.com/snapcore/go-pomo/mo"
	"github.com/snapcore/go-pomo/recordfile"
)

type options struct {
	Output string `short:"o" long:"output-file" default:"messages.mo" value-name:"FILE" description:"write output to specified file, - for standard output"`

	Languages []string `short:"l" long:"language" value-name:"LANG" description:"set the catalog language, may be repeated"`

	Statistics bool `long:"statistics" description:"print statistics about translations"`

	KeepPluralForms bool `long:"keep-plural-forms" description:"copy the Plural-Forms expression of the input into the mo file header"`

	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"yes"`
	} `positional-args:"yes"`
}

var errHelp = errors.New("help requested")

func main() {
	log.SetFlags(0)
	log.SetPrefix("msgfmt-go: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == errHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// checkLanguage accepts gettext locale names such as pt_BR, sr@latin or
// de_DE.UTF-8.
func checkLanguage(lang string) error {
	tag := lang
	if idx := strings.IndexAny(tag, ".@"); idx >= 0 {
		tag = tag[:idx]
	}
	if _, err := language.Parse(strings.Replace(tag, "_", "-", -1)); err != nil {
		return fmt.Errorf("invalid language %q: %v", lang, err)
	}
	return nil
}

func isTranslated(rec pomo.Record) bool {
	if rec.Str != "" {
		return true
	}
	for _, str := range rec.StrPlural {
		if str != "" {
			return true
		}
	}
	return false
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	parser := flags.NewParser(&opts, flags.Default&^flags.PrintErrors)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return errHelp
		}
		return err
	}

	for _, lang := range opts.Languages {
		if err := checkLanguage(lang); err != nil {
			return err
		}
	}

	catalog := pomo.New(opts.Languages...)
	// msgid -> whether its latest record carries a translation
	translated := map[string]bool{}
	for _, filename := range opts.Positional.Files {
		records, err := recordfile.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("cannot read records: %v", err)
		}
		for _, rec := range records {
			if rec.ID != "" {
				translated[rec.ID] = isTranslated(rec)
			}
		}
		catalog.Merge(pomo.FromRecords(records))
	}

	if opts.Statistics {
		count := 0
		for _, ok := range translated {
			if ok {
				count += 1
			}
		}
		fmt.Fprintf(stderr, "%d translated messages, %d untranslated messages.\n", count, len(translated)-count)
	}

	var moOpts []mo.Option
	if opts.KeepPluralForms {
		moOpts = append(moOpts, mo.KeepPluralSource())
	}
	if opts.Output == "-" {
		return mo.Write(stdout, catalog, moOpts...)
	}
	if err := mo.WriteFile(opts.Output, catalog, moOpts...); err != nil {
		return fmt.Errorf("failed to write mo file: %v", err)
	}
	return nil
}
