package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server health and the live countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		health, err := apiClient.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("server unreachable at %s: %w", httpURL, err)
		}
		fmt.Printf("%s %s\n", ui.RenderMuted("server:"), ui.RenderAccent(health.Status))

		cd, err := apiClient.Countdown(cmd.Context())
		if err != nil {
			return err
		}
		if cd.IsBirthday {
			fmt.Println(ui.RenderAccent("🎉 Today is the day!"))
			return nil
		}
		fmt.Printf("%s %s\n", ui.RenderMuted("target:"), ui.RenderValue(cd.TargetDate+" ("+cd.Timezone+")"))
		fmt.Printf("%s %s\n", ui.RenderMuted("remaining:"),
			ui.RenderValue(fmt.Sprintf("%dd %dh %dm %ds", cd.Countdown.Days, cd.Countdown.Hours, cd.Countdown.Minutes, cd.Countdown.Seconds)))
		return nil
	},
}
