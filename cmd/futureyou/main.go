package main

import (
	"os"

	"futureyou/cmd/futureyou/prompt"
	"futureyou/cmd/futureyou/serve"
	"futureyou/cmd/futureyou/version"
	"futureyou/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	rootCmd := &cobra.Command{
		Use:          "futureyou",
		Short:        "Provision \"future self\" voice agents for study participants",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(prompt.Cmd)
	rootCmd.AddCommand(version.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
