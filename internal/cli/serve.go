package cli

import (
	"github.com/spf13/cobra"

	"qa-chat/internal/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat bot over HTTP",
	Long: `Serve the chat bot over HTTP until interrupted.

  POST /chat     {"message": "hello"}
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if addrFlag != "" {
		cfg.Server.Addr = addrFlag
	}

	m, err := newMatcher()
	if err != nil {
		return err
	}

	return server.New(m, cfg.Server, logger.Named("server")).Run(cmd.Context())
}
