package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"qa-chat/internal/repl"
)

var replyDelayFlag time.Duration

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively on the terminal",
	Long: `Start an interactive chat session. Each line you type is answered after
a short delay. Type "exit" or "quit", or press Ctrl-D, to leave.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().DurationVar(&replyDelayFlag, "reply-delay", 0, "Pause before each reply (default from config)")
}

func runChat(cmd *cobra.Command, _ []string) error {
	m, err := newMatcher()
	if err != nil {
		return err
	}

	delay := cfg.Chat.ReplyDelay()
	if cmd.Flags().Changed("reply-delay") {
		delay = replyDelayFlag
	}

	session := repl.New(m, repl.Options{
		ReplyDelay: delay,
		Color:      useColor(cfg.Color, cmd.OutOrStdout()),
		Logger:     logger.Named("chat"),
	})

	err = session.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
