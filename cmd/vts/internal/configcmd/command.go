// Package configcmd implements `vts config`: creating the config file
// (and requesting plugin permissions from the app), showing its
// contents, and printing its path.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/config"
)

func NewConfigCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration of this tool",
	}
	cmd.AddCommand(
		newInitCommand(opts),
		newShowCommand(opts),
		newPathCommand(opts),
	)
	return cmd
}

func newInitCommand(opts *internal.Options) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Request plugin permissions and create the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.ConnectWith(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			// Round-trip one request so a failed permission grant
			// surfaces here rather than on the first real command.
			if _, err := client.Statistics(cmd.Context()); err != nil {
				return err
			}

			fmt.Printf("Config file written to %s\n", opts.ConfigPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "VTube Studio host")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "VTube Studio API port")
	cmd.Flags().StringVar(&cfg.PluginName, "plugin-name", cfg.PluginName, "Plugin name shown in the app")
	cmd.Flags().StringVar(&cfg.PluginDeveloper, "plugin-developer", cfg.PluginDeveloper, "Plugin developer shown in the app")
	return cmd
}

func newShowCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the contents of the config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			return opts.Print(cfg)
		},
	}
}

func newPathCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(opts.ConfigPath())
			return nil
		},
	}
}
