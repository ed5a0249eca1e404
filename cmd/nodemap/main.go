// Command nodemap browses node graphs in the terminal with a minimap
// overview.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cornish/nodemap/config"
)

const version = "0.3.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "nodemap [file]",
		Short: "Terminal node graph viewer with a minimap",
		Long: "nodemap shows a node graph document (.toml or .json) on a pannable, zoomable canvas.\n" +
			"Drag the minimap's viewport box to pan; double-click the minimap to jump.",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runNodemap,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/nodemap/config.toml)")
	rootCmd.Flags().Bool("ascii", false, "Use ASCII instead of braille and box drawing")
	rootCmd.Flags().String("log", "", "Write debug logs to this file")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("ascii", rootCmd.Flags().Lookup("ascii"))
	viper.BindPFlag("log", rootCmd.Flags().Lookup("log"))

	// NODEMAP_CONFIG, NODEMAP_ASCII, NODEMAP_LOG
	viper.SetEnvPrefix("NODEMAP")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRecentCmd())
	rootCmd.AddCommand(newThemesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print nodemap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nodemap %s\n", version)
		},
	}
}

// newRecentCmd creates the "recent" command.
func newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently opened graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			for _, f := range cfg.RecentFiles {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

// newThemesCmd creates the "themes" command.
func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in and user themes",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(config.ThemeNames(), "\n"))
			for _, name := range config.ListUserThemes() {
				fmt.Fprintf(out, "%s (user)\n", name)
			}
		},
	}
}

// loadConfig reads the config named by --config, or the default one.
// A config that fails to parse still yields defaults alongside the
// *config.ConfigLoadError.
func loadConfig() (*config.Config, string, error) {
	path := viper.GetString("config")
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return config.DefaultConfig(), "", nil
		}
		path = p
	}
	cfg, err := config.LoadFrom(path)
	return cfg, path, err
}
