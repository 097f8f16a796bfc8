package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/prompts"
)

func promptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Inspect and customize the prompt templates",
		Long: `Every LLM operation is driven by a named prompt template. Overrides are
persisted and survive across runs; reset restores the built-in defaults.`,
	}

	cmd.AddCommand(promptsListCmd())
	cmd.AddCommand(promptsShowCmd())
	cmd.AddCommand(promptsSetCmd())
	cmd.AddCommand(promptsResetCmd())
	return cmd
}

func promptsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List template names",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := newPromptStore()
			defaults := prompts.Defaults()

			names := make([]string, 0, len(store.All()))
			for name := range store.All() {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				marker := ""
				if body, _ := store.Get(name); body != defaults[name] {
					marker = " (customized)"
				}
				fmt.Printf("%s%s\n", name, marker)
			}
			return nil
		},
	}
}

func promptsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			body, ok := newPromptStore().Get(args[0])
			if !ok {
				return fmt.Errorf("unknown template: %s", args[0])
			}
			fmt.Println(body)
			return nil
		},
	}
}

func promptsSetCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "set <name> [template]",
		Short: "Override a template",
		Long: `Override a template with the given text, or with the contents of --file.
Placeholders like {sender} and {body} are substituted at render time.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			var body string
			switch {
			case file != "":
				data, err := os.ReadFile(file) // #nosec G304
				if err != nil {
					return fmt.Errorf("failed to read template file: %w", err)
				}
				body = string(data)
			case len(args) == 2:
				body = args[1]
			default:
				return fmt.Errorf("provide the template text or --file")
			}

			if err := newPromptStore().Set(args[0], body); err != nil {
				return err
			}
			fmt.Printf("Template %s updated.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the template from a file")
	return cmd
}

func promptsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore all templates to their defaults",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := newPromptStore().ResetAll(); err != nil {
				return err
			}
			fmt.Println("All templates reset to defaults.")
			return nil
		},
	}
}
