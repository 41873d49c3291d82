// Package artmeshes implements `vts artmeshes`: listing art meshes,
// tinting them, and asking the user to pick some in the app.
package artmeshes

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/logger"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewArtmeshesCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "artmeshes",
		Aliases: []string{"artmesh"},
		Short:   "List, tint, and select art meshes",
	}
	cmd.AddCommand(
		newListCommand(opts),
		newTintCommand(opts),
		newSelectCommand(opts),
	)
	return cmd
}

func newListCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List art meshes in the current model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ArtMeshList(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newTintCommand(opts *internal.Options) *cobra.Command {
	var (
		color            string
		duration         time.Duration
		rainbow          bool
		mixSceneLighting float64
		matcher          protocol.ArtMeshMatcher
	)

	cmd := &cobra.Command{
		Use:   "tint",
		Short: "Tint matching art meshes",
		Long: "Tint matching art meshes.\n\n" +
			"The app resets tints when the plugin disconnects, so this command keeps\n" +
			"the connection open for --duration after a successful tint.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := internal.ParseHexColor(color)
			if err != nil {
				return err
			}

			tint := protocol.ColorTint{
				ColorR: parsed.R,
				ColorG: parsed.G,
				ColorB: parsed.B,
				ColorA: parsed.A,
				Jeb:    rainbow,
			}
			if cmd.Flags().Changed("mix-scene-lighting") {
				tint.MixWithSceneLightingColor = &mixSceneLighting
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.TintArtMeshes(cmd.Context(), protocol.ColorTintRequest{
				ColorTint:      tint,
				ArtMeshMatcher: matcher,
			})
			if err != nil {
				return err
			}
			if err := opts.Print(resp); err != nil {
				return err
			}

			if resp.MatchedArtMeshes > 0 {
				logger.InfoCF("artmeshes", "tint applied, holding connection open",
					map[string]any{"duration": duration.String()})

				timer := time.NewTimer(duration)
				defer timer.Stop()
				select {
				case <-cmd.Context().Done():
				case <-timer.C:
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#ffffff", "Hex color code with optional alpha")
	cmd.Flags().DurationVar(&duration, "duration", 0, "How long the tint should last (e.g. 5s, 1m30s)")
	cmd.MarkFlagRequired("duration")
	cmd.Flags().BoolVar(&rainbow, "rainbow", false, "Enable jeb_ (rainbow) mode")
	cmd.Flags().Float64Var(&mixSceneLighting, "mix-scene-lighting", 0, "Mix with scene lighting color, between 0 and 1")
	cmd.Flags().BoolVar(&matcher.TintAll, "all", false, "Match all art meshes")
	cmd.Flags().Int32SliceVar(&matcher.ArtMeshNumber, "art-mesh-number", nil, "Match art meshes by number")
	cmd.Flags().StringSliceVar(&matcher.NameExact, "name-exact", nil, "Match art meshes with this exact name")
	cmd.Flags().StringSliceVar(&matcher.NameContains, "name-contains", nil, "Match art meshes whose name contains this")
	cmd.Flags().StringSliceVar(&matcher.TagExact, "tag-exact", nil, "Match art meshes with this exact tag")
	cmd.Flags().StringSliceVar(&matcher.TagContains, "tag-contains", nil, "Match art meshes whose tags contain this")
	return cmd
}

func newSelectCommand(opts *internal.Options) *cobra.Command {
	var req protocol.ArtMeshSelectionRequest

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Ask the user to select art meshes in the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.SelectArtMeshes(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().StringVar(&req.TextOverride, "set-text", "", "Override the text shown in the selection dialog")
	cmd.Flags().StringVar(&req.HelpOverride, "set-help", "", "Override the help text shown in the selection dialog")
	cmd.Flags().IntVar(&req.RequestedArtMeshCount, "count", 0, "Number of art meshes the user has to select (0 for any)")
	cmd.Flags().StringSliceVar(&req.ActiveArtMeshes, "preselect", nil, "Art meshes preselected in the dialog")
	return cmd
}
