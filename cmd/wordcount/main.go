// Command wordcount ranks the most frequent words of a text from the command line.
//
//	wordcount [--limit N] [--strategy v1|v2|v3] [--json] [text...|-]
//
// With no text the built-in story is ranked; "-" reads the text from stdin.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reactivedemo/demo/backend/go-services/internal/wordcount"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "wordcount:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "wordcount",
		Usage:     "rank the most frequent words of a text",
		ArgsUsage: "[text...|-]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   2,
				Usage:   "number of entries to print",
			},
			&cli.StringFlag{
				Name:    "strategy",
				Aliases: []string{"s"},
				Value:   string(wordcount.Pipeline),
				Usage:   "ranking implementation: v1 (grouped), v2 (priority queue), v3 (pipeline)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print a JSON array instead of aligned columns",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			strategy, err := wordcount.ParseStrategy(cmd.String("strategy"))
			if err != nil {
				return err
			}
			text, err := readText(cmd.Args().Slice(), cmd.Reader)
			if err != nil {
				return err
			}
			ranked, err := wordcount.Rank(text, cmd.Int("limit"), strategy)
			if err != nil {
				return err
			}
			return write(cmd.Writer, ranked, cmd.Bool("json"))
		},
	}
}

func readText(args []string, stdin io.Reader) (string, error) {
	switch {
	case len(args) == 0:
		return wordcount.Story, nil
	case len(args) == 1 && args[0] == "-":
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		// newlines separate words as well as spaces
		return strings.Join(strings.Fields(string(b)), " "), nil
	}
	return strings.Join(args, " "), nil
}

func write(w io.Writer, ranked []wordcount.WordCount, asJSON bool) error {
	if w == nil {
		w = os.Stdout
	}
	if asJSON {
		return json.NewEncoder(w).Encode(ranked)
	}
	width := 0
	for _, e := range ranked {
		width = max(width, len(e.Word))
	}
	for _, e := range ranked {
		if _, err := fmt.Fprintf(w, "%-*s %d\n", width, e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}
