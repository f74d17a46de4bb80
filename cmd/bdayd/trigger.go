package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/ui"
)

var triggerAPIKey string

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Ask the server to send today's email now",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := triggerAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("BDAY_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("no API key: pass --api-key or set BDAY_API_KEY")
		}

		resp, err := apiClient.TriggerEmail(cmd.Context(), apiKey)
		if err != nil {
			return err
		}
		fmt.Println(ui.RenderAccent(resp.Message))
		return nil
	},
}

func init() {
	triggerCmd.Flags().StringVar(&triggerAPIKey, "api-key", "", "API key for the trigger endpoint (defaults to BDAY_API_KEY)")
}
