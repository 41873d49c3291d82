// Package ndi implements `vts ndi`: reading and changing the NDI
// streaming config of the app.
package ndi

import (
	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewNDICommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ndi",
		Short: "Read and change the NDI config",
	}
	cmd.AddCommand(
		newGetConfigCommand(opts),
		newSetConfigCommand(opts),
	)
	return cmd
}

func newGetConfigCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get-config",
		Short: "Show the current NDI config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.NDIConfig(cmd.Context(), protocol.NDIConfigRequest{})
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newSetConfigCommand(opts *internal.Options) *cobra.Command {
	var (
		active              bool
		useNDI5             bool
		useCustomResolution bool
		width               int
		height              int
	)

	cmd := &cobra.Command{
		Use:   "set-config",
		Short: "Change the NDI config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := protocol.NDIConfigRequest{SetNewConfig: true}
			// Settings whose flags were not given keep their current value.
			if cmd.Flags().Changed("active") {
				req.NDIActive = &active
			}
			if cmd.Flags().Changed("use-ndi5") {
				req.UseNDI5 = &useNDI5
			}
			if cmd.Flags().Changed("use-custom-resolution") {
				req.UseCustomResolution = &useCustomResolution
			}
			if cmd.Flags().Changed("width") {
				req.CustomWidthNDI = &width
			}
			if cmd.Flags().Changed("height") {
				req.CustomHeightNDI = &height
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.NDIConfig(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().BoolVar(&active, "active", false, "Whether NDI should be active")
	cmd.Flags().BoolVar(&useNDI5, "use-ndi5", false, "Whether NDI 5 should be used")
	cmd.Flags().BoolVar(&useCustomResolution, "use-custom-resolution", false, "Use a custom stream resolution instead of the window size")
	cmd.Flags().IntVar(&width, "width", 0, "Custom NDI width (multiple of 16, between 256 and 8192)")
	cmd.Flags().IntVar(&height, "height", 0, "Custom NDI height (multiple of 8, between 256 and 8192)")
	return cmd
}
