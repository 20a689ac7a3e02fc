package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tanq16/sheetgrab/internal/chatbot"
	"github.com/tanq16/sheetgrab/internal/output"
)

func newServeCmd() *cobra.Command {
	var envFile string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [--env-file FILE] [--addr ADDR]",
		Short: "Run the chatbot echo endpoint",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := chatbot.LoadConfig(envFile)
			if err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := chatbot.NewServer(cfg).Start(ctx); err != nil {
				output.PrintError(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&envFile, "env-file", "e", chatbot.DefaultEnvFile, "Env file with BOT_NAME and WELCOME_MESSAGE")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides CHATBOT_ADDR)")
	return cmd
}
