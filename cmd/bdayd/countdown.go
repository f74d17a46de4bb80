package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/countdown"
	"github.com/alfredjeanlab/bdayd/internal/ui"
)

var (
	countdownTarget   string
	countdownTimezone string
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show the time remaining until the birthday",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := countdown.Location(countdownTimezone)
		if err != nil {
			return err
		}
		target, err := countdown.ParseTarget(countdownTarget, loc)
		if err != nil {
			return err
		}

		now := time.Now().In(loc)
		if countdown.SameCalendarDay(target, now, loc) {
			fmt.Println(ui.RenderAccent("🎉 Today is the day! Happy Birthday! 🎂"))
			return nil
		}

		snap := countdown.Until(target, now)
		if snap.Days < 0 {
			fmt.Println(ui.RenderMuted("The target date " + countdownTarget + " has passed."))
			return nil
		}

		fmt.Println(ui.RenderAccent(fmt.Sprintf("Counting down to %s (%s)", countdownTarget, countdownTimezone)))
		fmt.Printf("  %s %s\n", ui.RenderValue(fmt.Sprintf("%d", snap.Days)), ui.RenderMuted("days"))
		fmt.Printf("  %s %s\n", ui.RenderValue(fmt.Sprintf("%d", snap.Hours)), ui.RenderMuted("hours"))
		fmt.Printf("  %s %s\n", ui.RenderValue(fmt.Sprintf("%d", snap.Minutes)), ui.RenderMuted("minutes"))
		fmt.Printf("  %s %s\n", ui.RenderValue(fmt.Sprintf("%d", snap.Seconds)), ui.RenderMuted("seconds"))
		return nil
	},
}

func init() {
	countdownCmd.Flags().StringVar(&countdownTarget, "target", "2025-03-28", "target date (YYYY-MM-DD)")
	countdownCmd.Flags().StringVar(&countdownTimezone, "timezone", countdown.DefaultTimezone, "IANA timezone")
}
