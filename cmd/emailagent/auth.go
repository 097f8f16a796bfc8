package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mai-GitHubb/smart-email-agent/internal/calendar"
	"github.com/Mai-GitHubb/smart-email-agent/internal/common"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate with external services",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "calendar",
		Short: "Run the Google Calendar OAuth flow",
		Long: `Open the Google consent flow in a browser and save the resulting token
for the 'events push' command. Requires calendar.client_id and
calendar.client_secret in the config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := calendarConfig()
			if cfg.ClientID == "" || cfg.ClientSecret == "" {
				return fmt.Errorf("calendar.client_id and calendar.client_secret must be configured: %w", common.ErrMissingConfig)
			}

			if _, err := calendar.Authenticate(cmd.Context(), cfg, nil); err != nil {
				return err
			}
			fmt.Println("Calendar authentication complete.")
			return nil
		},
	})

	return cmd
}
