// Command content-replace rewrites document text: full-width punctuation
// becomes ASCII, and user-supplied pattern/replacement pairs run in order.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	marku "github.com/HibernalGlow/marku"
	"github.com/HibernalGlow/marku/internal/cli"
)

func main() {
	var (
		noPunctuation bool
		replacements  []string
	)

	app := &cli.App{
		Name:    "content-replace",
		Summary: "Normalize punctuation and apply pattern/replacement rewrites to document text.",
		Flags: func(fs *flag.FlagSet) {
			fs.BoolVar(&noPunctuation, "no-punctuation", false, "keep full-width punctuation as is")
			fs.StringArrayVar(&replacements, "replace", nil, "pattern=replacement rewrite, repeatable")
		},
		FlagUsage: func(w io.Writer) {
			fmt.Fprintln(w, "      --no-punctuation  Keep full-width punctuation as is")
			fmt.Fprintln(w, "      --replace <p=r>   Pattern=replacement rewrite, repeatable")
		},
		Build: func(inv *cli.Invocation) ([]marku.Pass, error) {
			rules, err := parseRules(replacements)
			if err != nil {
				return nil, err
			}
			p, err := marku.NewContentReplace(marku.ReplaceOptions{
				Punctuation: !noPunctuation,
				Rules:       rules,
			})
			if err != nil {
				return nil, err
			}
			return []marku.Pass{p}, nil
		},
	}

	os.Exit(cli.Main(app))
}

// parseRules splits each --replace value at the first '=' into a rule.
func parseRules(replacements []string) ([]marku.ReplaceRule, error) {
	rules := make([]marku.ReplaceRule, 0, len(replacements))
	for _, r := range replacements {
		pattern, replacement, ok := strings.Cut(r, "=")
		if !ok || pattern == "" {
			return nil, fmt.Errorf("%w: %q (want pattern=replacement)", marku.ErrInvalidPattern, r)
		}
		rules = append(rules, marku.ReplaceRule{Pattern: pattern, Replacement: replacement})
	}
	return rules, nil
}
