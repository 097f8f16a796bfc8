package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/model"
)

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Work with extracted tasks",
		Long:  `Extract tasks from the inbox and list, filter, or update them.`,
	}

	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksDueCmd())
	cmd.AddCommand(tasksStatusCmd())
	return cmd
}

func tasksStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <task-id> <todo|in_progress|done>",
		Short: "Update a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(cmd.Context(), 0, "", true); err != nil {
				return err
			}

			if err := sess.store.UpdateTaskStatus(args[0], model.TaskStatus(args[1])); err != nil {
				return err
			}

			return printTasks(sess.store.Tasks())
		},
	}
}

func tasksListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List extracted tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(cmd.Context(), 0, "", true); err != nil {
				return err
			}

			tasks := sess.store.Tasks()
			if status != "" {
				if !model.ValidTaskStatus(model.TaskStatus(status)) {
					return fmt.Errorf("invalid status %q (todo, in_progress, done)", status)
				}
				tasks = sess.store.TasksByStatus(model.TaskStatus(status))
			}

			return printTasks(tasks)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (todo, in_progress, done)")
	return cmd
}

func tasksDueCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List tasks due soon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.fetchAndProcess(cmd.Context(), 0, "", true); err != nil {
				return err
			}

			return printTasks(sess.store.TasksDueSoon(days))
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "look-ahead window in days")
	return cmd
}

func printTasks(tasks []*model.Task) error {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDUE\tSTATUS\tSOURCE")
	for _, task := range tasks {
		due := task.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			task.ID, task.Title, due, task.Status, task.SourceMessageID)
	}
	return w.Flush()
}
