package main

import (
	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
)

// Parameterless informational requests live directly on the root
// command, mirroring how the app groups them.

func newStateCmd(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Get the current state of the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.APIState(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newStatsCmd(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show VTube Studio statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newFoldersCmd(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List the VTube Studio folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.FolderInfo(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newSceneColorsCmd(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "scene-colors",
		Short: "Show scene color overlay info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.SceneColorOverlayInfo(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newFaceFoundCmd(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "face-found",
		Short: "Check whether the tracker currently finds a face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.FaceFound(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}
