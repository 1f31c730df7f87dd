package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"caretranslate/internal/dictionary"
	"caretranslate/internal/format"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List saved entries, newest first, optionally filtered by a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				query := strings.Join(args, " ")
				entries := store.Search(query)
				out := cmd.OutOrStdout()
				for _, e := range entries {
					fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", e.ID, e.Saved, e.Category, e.Term)
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "no entries")
				}
				return nil
			})
		},
	}
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one entry with its formatted explanation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				entry, ok := store.Get(args[0])
				if !ok {
					return fmt.Errorf("entry %s not found", args[0])
				}
				printEntry(cmd.OutOrStdout(), entry, format.New().Format(entry.Explanation, entry.Category))
				return nil
			})
		},
	}
}

func printEntry(w io.Writer, entry dictionary.Entry, blocks []format.Block) {
	bold := color.New(color.Bold)
	heading := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintln(w, entry.Term)
	meta := fmt.Sprintf("%s · saved %s", entry.Category, entry.Saved)
	if entry.Complexity != nil {
		meta += fmt.Sprintf(" · complexity %d/5", *entry.Complexity)
	}
	faint.Fprintln(w, meta)
	fmt.Fprintln(w)

	for _, b := range blocks {
		switch b.Kind {
		case format.KindHeading:
			heading.Fprintln(w, strings.TrimSpace(format.Glyph(b.Icon)+" "+b.Label))
		case format.KindBullet:
			fmt.Fprintf(w, "  • %s\n", plainText(string(b.HTML)))
		default:
			fmt.Fprintln(w, plainText(string(b.HTML)))
		}
	}
}

var tagReplacer = strings.NewReplacer(
	"<strong>", "", "</strong>", "", "<em>", "", "</em>", "",
	"&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&amp;", "&",
)

// plainText undoes the formatter's emphasis tags and HTML escaping for terminal output.
func plainText(html string) string {
	return tagReplacer.Replace(html)
}

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dictionary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				st := store.Stats()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "total entries:      %d\n", st.TotalEntries)
				fmt.Fprintf(out, "recent (7 days):    %d\n", st.RecentEntries)
				fmt.Fprintf(out, "average complexity: %.1f\n", st.AverageComplexity)
				fmt.Fprintf(out, "categories:         %s\n", strings.Join(st.Categories, ", "))
				return nil
			})
		},
	}
}

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the dictionary as JSON to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				data := store.Export()
				if len(args) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), data)
					return err
				}
				if err := os.WriteFile(args[0], []byte(data), 0o644); err != nil {
					return fmt.Errorf("os.WriteFile > %w", err)
				}
				return nil
			})
		},
	}
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the dictionary with the entries of an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile > %w", err)
			}
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				if !store.Import(cmd.Context(), string(data)) {
					return fmt.Errorf("%s is not a valid dictionary export", args[0])
				}
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "imported %d entries\n", len(store.All()))
				return nil
			})
		},
	}
}

func newClearCommand(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear without --yes")
			}
			return withStore(cmd, opts, func(store *dictionary.Store) error {
				store.Clear(cmd.Context())
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "dictionary cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}
