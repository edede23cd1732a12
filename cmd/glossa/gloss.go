package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/autocom/glossa/internal/lexicon"
)

func newGlossCommand() *cobra.Command {
	lang := language(lexicon.LanguageLatin)
	var missingReport string

	command := &cobra.Command{
		Use:   "gloss <word-list>",
		Short: "Look up every lemma in a word-list file and print a glossary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lemmas, err := readWordList(args[0])
			if err != nil {
				return err
			}

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

			reqs := make([]lexicon.Request, 0, len(lemmas))
			for _, lemma := range lemmas {
				reqs = append(reqs, lexicon.Request{
					Lemma:    lemma,
					Language: lexicon.Language(lang),
				})
			}
			entries, err := facade.LookupAll(cmd.Context(), reqs, cfg.Lookup.Workers)
			if err != nil {
				return fmt.Errorf("look up word list: %w", err)
			}

			headwords := make([]string, 0, len(entries))
			for lemma := range entries {
				headwords = append(headwords, lemma)
			}
			sort.Strings(headwords)
			for _, lemma := range headwords {
				printEntry(cmd, entries[lemma])
				cmd.Println()
			}

			missing := facade.MissingWords()
			if len(missing) > 0 {
				cmd.Println(color.YellowString("words without definitions (%d):", len(missing)))
				for _, w := range missing {
					cmd.Println("  " + w)
				}
				if missingReport != "" {
					if err := writeMissingReport(missingReport, missing); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.VarP(&lang, "language", "l", "language of the word list (latin or greek)")
	flags.StringVar(&missingReport, "missing-report", "", "file to write lemmas no source could define")
	return command
}

// readWordList reads one lemma per line, skipping blanks and '#' comments.
func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	var lemmas []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lemmas = append(lemmas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return lemmas, nil
}

func writeMissingReport(path string, missing []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(missing, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("write missing-words report: %w", err)
	}
	return nil
}
