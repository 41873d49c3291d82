package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/cmd/vts/internal/artmeshes"
	"github.com/vtstools/vts/cmd/vts/internal/configcmd"
	"github.com/vtstools/vts/cmd/vts/internal/expressions"
	"github.com/vtstools/vts/cmd/vts/internal/hotkeys"
	"github.com/vtstools/vts/cmd/vts/internal/items"
	"github.com/vtstools/vts/cmd/vts/internal/models"
	"github.com/vtstools/vts/cmd/vts/internal/ndi"
	"github.com/vtstools/vts/cmd/vts/internal/params"
	"github.com/vtstools/vts/cmd/vts/internal/physics"
	"github.com/vtstools/vts/pkg/logger"
)

var (
	version   = "dev"
	gitCommit string
)

func main() {
	// Ctrl+C cancels the command context so held connections (e.g. the
	// tint duration wait) close cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &internal.Options{}
	var verbose bool

	cmd := &cobra.Command{
		Use:           "vts",
		Short:         "Control VTube Studio from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(logger.DEBUG)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config-file", "",
		"Path to the config file (default $VTS_CONFIG or ~/.vts/config.json)")
	cmd.PersistentFlags().BoolVar(&opts.Compact, "compact", false,
		"Print single-line JSON instead of pretty-printing")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	cmd.AddCommand(
		configcmd.NewConfigCommand(opts),
		hotkeys.NewHotkeysCommand(opts),
		params.NewParamsCommand(opts),
		artmeshes.NewArtmeshesCommand(opts),
		items.NewItemsCommand(opts),
		models.NewModelsCommand(opts),
		expressions.NewExpressionsCommand(opts),
		physics.NewPhysicsCommand(opts),
		ndi.NewNDICommand(opts),
		newStateCmd(opts),
		newStatsCmd(opts),
		newFoldersCmd(opts),
		newSceneColorsCmd(opts),
		newFaceFoundCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			v := version
			if gitCommit != "" {
				v += fmt.Sprintf(" (git: %s)", gitCommit)
			}
			fmt.Printf("vts %s\n", v)
			fmt.Printf("  Go: %s\n", runtime.Version())
		},
	}
}
