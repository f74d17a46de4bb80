package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/client"
	"github.com/alfredjeanlab/bdayd/internal/ui"
)

var (
	httpURL string
	noColor bool

	apiClient *client.Client
)

func defaultHTTPURL() string {
	if s := os.Getenv("BDAY_HTTP_URL"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

var rootCmd = &cobra.Command{
	Use:   "bdayd <command>",
	Short: "Birthday countdown server and client",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}
		apiClient = client.New(httpURL)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpURL, "http-url", defaultHTTPURL(), "HTTP server URL")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(triggerCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
