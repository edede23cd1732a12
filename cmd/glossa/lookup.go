package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/autocom/glossa/internal/lexicon"
)

func newLookupCommand() *cobra.Command {
	lang := language(lexicon.LanguageLatin)
	var posHint string

	command := &cobra.Command{
		Use:   "lookup <lemma>",
		Short: "Look up one lemma and print its dictionary entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			facade, store, err := buildFacade(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			entry, err := facade.Lookup(cmd.Context(), lexicon.Request{
				Lemma:    args[0],
				Language: lexicon.Language(lang),
				POSHint:  lexicon.PartOfSpeech(strings.ToUpper(posHint)),
			})
			if err != nil {
				return fmt.Errorf("look up %q: %w", args[0], err)
			}

			printEntry(cmd, entry)
			return nil
		},
	}
	flags := command.Flags()
	flags.VarP(&lang, "language", "l", "language of the lemma (latin or greek)")
	flags.StringVar(&posHint, "pos", "", "part-of-speech hint for homographs")
	return command
}

func printEntry(cmd *cobra.Command, entry *lexicon.Entry) {
	bold := color.New(color.Bold)
	gloss := entry.Gloss()

	header := bold.Sprint(gloss.Headword)
	if gloss.Inflection != "" {
		header += ", " + gloss.Inflection
	}
	if gloss.GenderAbbrev != "" {
		header += " " + gloss.GenderAbbrev
	}
	if gloss.POSAbbrev != "" {
		header += " " + color.CyanString(gloss.POSAbbrev)
	}
	cmd.Println(header)

	if parts := entry.PrincipalPartForms(); parts != nil {
		switch {
		case entry.LatinParts != nil:
			cmd.Println("  " + entry.LatinParts.String())
		case entry.GreekParts != nil:
			cmd.Println("  " + entry.GreekParts.String())
		}
	}
	for i, s := range gloss.Senses {
		cmd.Printf("  %d. %s\n", i+1, s)
	}

	footer := fmt.Sprintf("source: %s", entry.Source)
	if entry.LowConfidence {
		footer += " " + color.YellowString("(low confidence)")
	}
	cmd.Println(footer)
}
