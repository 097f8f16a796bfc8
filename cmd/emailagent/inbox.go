package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func inboxCmd() *cobra.Command {
	var (
		limit     int
		query     string
		noProgr   bool
		noExtract bool
	)

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Fetch and triage the inbox",
		Long: `Fetch messages from the configured source, categorize each with the LLM,
and extract tasks and events. Prints a triage summary.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			fetch := sess.fetchAndProcess
			if noExtract {
				fetch = sess.fetchAndCategorize
			}
			if err := fetch(ctx, limit, query, !noProgr); err != nil {
				return err
			}

			messages := sess.store.Messages()
			if len(messages) == 0 {
				fmt.Println("Inbox is empty.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFROM\tSUBJECT\tCATEGORY\tPRIORITY\tREAD")
			for _, msg := range messages {
				read := ""
				if msg.IsRead {
					read = "✓"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					msg.ID, msg.SenderName, msg.Subject, msg.Category, msg.Priority, read)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			printCategorySummary(sess)
			fmt.Printf("Extracted %d task(s) and %d event(s); run 'emailagent tasks' or 'emailagent events' for details.\n",
				len(sess.store.Tasks()), len(sess.store.Events()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum messages to fetch (default: source cap)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "only fetch messages matching this text")
	cmd.Flags().BoolVar(&noProgr, "no-progress", false, "disable the progress bar")
	cmd.Flags().BoolVar(&noExtract, "no-extract", false, "categorize only, skip task/event extraction")
	return cmd
}

func printCategorySummary(sess *session) {
	counts := sess.store.CategoryCounts()
	if len(counts) == 0 {
		return
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	fmt.Printf("%d message(s), %d unread.\n", len(sess.store.Messages()), sess.store.UnreadCount())
	for _, category := range categories {
		fmt.Printf("  %-12s %d\n", category, counts[category])
	}
}
