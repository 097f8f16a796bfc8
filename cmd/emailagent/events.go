package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/calendar"
	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Work with extracted events and deadlines",
		Long:  `Extract meetings and deadlines from the inbox; confirm, ignore, or push them to Google Calendar.`,
	}

	cmd.AddCommand(eventsListCmd())
	cmd.AddCommand(eventsStatusCmd("confirm", "Confirm a suggested event", func(s *session, id string) error {
		return s.store.ConfirmEvent(id)
	}))
	cmd.AddCommand(eventsStatusCmd("ignore", "Ignore a suggested event", func(s *session, id string) error {
		return s.store.IgnoreEvent(id)
	}))
	cmd.AddCommand(eventsPushCmd())
	return cmd
}

func eventsStatusCmd(use, short string, apply func(*session, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <event-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(cmd.Context(), 0, "", true); err != nil {
				return err
			}
			if err := apply(sess, args[0]); err != nil {
				return err
			}
			return printEvents(sess.store.Events())
		},
	}
}

func eventsListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extracted events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(cmd.Context(), 0, "", true); err != nil {
				return err
			}

			events := sess.store.Events()
			if status != "" {
				events = sess.store.EventsByStatus(model.EventStatus(status))
			}
			return printEvents(events)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (suggested, confirmed, ignored)")
	return cmd
}

func eventsPushCmd() *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "push [event-id...]",
		Short: "Confirm events and push them to Google Calendar",
		Long: `Confirm the named suggested events (or all of them when no ids are
given) and push each confirmed event to Google Calendar. Push failures are
logged but never abort the run.`,
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

			for _, id := range ignore {
				if err := sess.store.IgnoreEvent(id); err != nil {
					return err
				}
			}

			ids := args
			if len(ids) == 0 {
				for _, event := range sess.store.EventsByStatus(model.EventSuggested) {
					ids = append(ids, event.ID)
				}
			}
			for _, id := range ids {
				if err := sess.store.ConfirmEvent(id); err != nil {
					return err
				}
			}

			confirmed := sess.store.EventsByStatus(model.EventConfirmed)
			if len(confirmed) == 0 {
				fmt.Println("No confirmed events to push.")
				return nil
			}

			pusher, err := calendar.New(ctx, calendarConfig(), nil)
			if err != nil {
				return fmt.Errorf("calendar unavailable: %w", err)
			}

			pushed := 0
			for _, event := range confirmed {
				calendarID, err := pusher.PushEvent(ctx, *event)
				if err != nil {
					fmt.Fprintf(os.Stderr, "failed to push %s: %v\n", event.ID, err)
					continue
				}
				fmt.Printf("Pushed %s → calendar event %s\n", event.ID, calendarID)
				pushed++
			}
			fmt.Printf("Pushed %d of %d confirmed event(s).\n", pushed, len(confirmed))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "event ids to mark ignored before pushing")
	return cmd
}

func printEvents(events []*model.Event) error {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTITLE\tDATE\tTIME\tSTATUS")
	for _, event := range events {
		timeRange := "-"
		if event.StartTime != "" {
			timeRange = event.StartTime
			if event.EndTime != "" {
				timeRange += "-" + event.EndTime
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			event.ID, event.Type, event.Title, event.Date, timeRange, event.Status)
	}
	return w.Flush()
}
