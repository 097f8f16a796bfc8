package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/llm"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a natural-language question about the inbox",
		Long: `Process the inbox, then answer a free-form question about it, e.g.
"what's urgent today?" or "do I have any deadlines this week?".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(ctx, 0, "", true); err != nil {
				return err
			}

			answer := sess.processor.InboxQuery(ctx, strings.Join(args, " "), inboxContext(sess))
			fmt.Println(answer)
			return nil
		},
	}
}

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <message-id>",
		Short: "Explain how a message was triaged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			msg, err := sess.findMessage(ctx, args[0])
			if err != nil {
				return err
			}

			result := sess.processor.ProcessMessage(ctx, &msg)
			explanation := sess.processor.ExplainDecision(ctx, msg,
				result.Category.Category, result.Category.Priority, result.Tasks, result.Events)
			fmt.Println(explanation)
			return nil
		},
	}
}

// inboxContext summarizes the processed session for the inbox-query prompt.
func inboxContext(sess *session) llm.InboxContext {
	counts := sess.store.CategoryCounts()
	categories := make([]string, 0, len(counts))
	for category, n := range counts {
		categories = append(categories, fmt.Sprintf("%s (%d)", category, n))
	}
	sort.Strings(categories)

	var taskLines []string
	for _, task := range sess.store.Tasks() {
		line := task.Title
		if task.DueDate != "" {
			line += " (due " + task.DueDate + ")"
		}
		taskLines = append(taskLines, line)
	}

	var eventLines []string
	for _, event := range sess.store.Events() {
		line := fmt.Sprintf("%s: %s", event.Type, event.Title)
		if event.Date != "" {
			line += " on " + event.Date
		}
		eventLines = append(eventLines, line)
	}

	return llm.InboxContext{
		TotalMessages: len(sess.store.Messages()),
		UnreadCount:   sess.store.UnreadCount(),
		Categories:    strings.Join(categories, ", "),
		TasksSummary:  joinOrNone(taskLines),
		EventsSummary: joinOrNone(eventLines),
	}
}

func joinOrNone(lines []string) string {
	if len(lines) == 0 {
		return "None"
	}
	return strings.Join(lines, "; ")
}
