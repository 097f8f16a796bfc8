package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

func replyCmd() *cobra.Command {
	var (
		tone         string
		instructions string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "reply <message-id>",
		Short: "Draft a reply to a message",
		Long: `Generate a draft reply to the given message in the requested tone.
With --check, the draft is also reviewed for tone and completeness.`,
		Args: cobra.ExactArgs(1),
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

			draft := sess.processor.GenerateReply(ctx, msg, instructions, tone)
			sess.store.AddDraft(model.Draft{
				ID:               uuid.NewString(),
				Subject:          "Re: " + msg.Subject,
				Body:             draft,
				Recipient:        msg.Sender,
				ReplyToMessageID: msg.ID,
				Tone:             tone,
				Status:           model.DraftNew,
				CreatedAt:        time.Now(),
			})
			fmt.Println(draft)

			if !check {
				return nil
			}

			verdict := sess.processor.CheckReplyTone(ctx, msg, draft, tone)
			fmt.Println()
			fmt.Printf("Tone appropriate:       %t\n", verdict.ToneAppropriate)
			fmt.Printf("Polite:                 %t\n", verdict.IsPolite)
			fmt.Printf("All questions answered: %t\n", verdict.AllQuestionsAnswered)
			if verdict.Feedback != "" {
				fmt.Printf("Feedback: %s\n", verdict.Feedback)
			}
			if len(verdict.Suggestions) > 0 {
				fmt.Printf("Suggestions:\n  - %s\n", strings.Join(verdict.Suggestions, "\n  - "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "Professional", "requested tone (Professional, Friendly, Formal, Casual)")
	cmd.Flags().StringVar(&instructions, "instructions", "", "extra instructions for the draft")
	cmd.Flags().BoolVar(&check, "check", false, "review the draft for tone and completeness")
	return cmd
}

func composeCmd() *cobra.Command {
	var (
		recipient string
		subject   string
		tone      string
	)

	cmd := &cobra.Command{
		Use:   "compose <requirements>",
		Short: "Compose a new email draft",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			draft := sess.processor.ComposeDraft(cmd.Context(), strings.Join(args, " "), recipient, tone, subject)
			sess.store.AddDraft(model.Draft{
				ID:        uuid.NewString(),
				Subject:   subject,
				Body:      draft,
				Recipient: recipient,
				Tone:      tone,
				Status:    model.DraftNew,
				CreatedAt: time.Now(),
			})
			fmt.Println(draft)
			return nil
		},
	}

	cmd.Flags().StringVar(&recipient, "to", "", "recipient address or name")
	cmd.Flags().StringVar(&subject, "subject", "", "email subject")
	cmd.Flags().StringVar(&tone, "tone", "Professional", "requested tone")
	return cmd
}
