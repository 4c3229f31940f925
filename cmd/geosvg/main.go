package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"geosvg/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "geosvg"})
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "geosvg",
		Short:         "Render geometries as SVG documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "TOML settings file")
	root.AddCommand(newRenderCmd(logger), newViewCmd())
	return root
}

// loadConfig reads --config when given, otherwise the defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
