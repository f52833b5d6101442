package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyaksa/courier/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "courier",
		Short: "Send authenticated requests to a backend API",
		Long: `courier sends one request through the client pipeline: configured
base URL, default headers, bearer token, timeout, and response decoding.`,
		Version:       version.Get().GitVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRequestCommand(),
		newVersionCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
