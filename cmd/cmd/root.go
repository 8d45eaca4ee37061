package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reyco2000/vintageview/internal/env"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:     env.AppName,
		Short:   env.AppName + " - viewer toolkit for 80s/90s raster image formats",
		Version: fmt.Sprintf("%s (commit %s, built %s)", env.Version, env.CommitHash, env.BuildTime),
	}

	rootCmd.PersistentFlags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	rootCmd.AddCommand(DefineConvertCommand())
	rootCmd.AddCommand(DefineInfoCommand())
	rootCmd.AddCommand(DefineFormatsCommand())
	rootCmd.AddCommand(DefineMountCommand())

	return rootCmd.Execute()
}
