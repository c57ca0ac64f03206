// main projet file, entry point of the cli
package main

import (
	"fmt"
	"os"

	"github.com/CiaranMcAleer/postcard/internal/log"
	"github.com/spf13/cobra"
)

var version = "dev" // Version set during build with go build -ldflags "-X main.version=1.2.3"

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:               "postcard",
		Short:             "Renders blog and event post cards",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	rootCmd.SetVersionTemplate("Version: {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./postcard.yaml)")

	rootCmd.AddCommand(newRenderCmd(&cfgFile))
	return rootCmd
}

func run() error {
	defer func() {
		_ = log.L().Sync()
	}()
	return newRootCmd().Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
