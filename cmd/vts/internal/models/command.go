// Package models implements `vts models`: listing models, showing the
// current model, loading a model by ID or name, and moving the current
// model.
package models

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewModelsCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "models",
		Aliases: []string{"model"},
		Short:   "List, load, and move models",
	}
	cmd.AddCommand(
		newListCommand(opts),
		newCurrentCommand(opts),
		newLoadCommand(opts),
		newMoveCommand(opts),
	)
	return cmd
}

func newListCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.AvailableModels(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newCurrentCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the currently loaded model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.CurrentModel(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newLoadCommand(opts *internal.Options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "load [model-id]",
		Short: "Load a model by ID or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && name == "" {
				return fmt.Errorf("either a model ID or --name must be specified")
			}
			if len(args) > 0 && name != "" {
				return fmt.Errorf("a model ID and --name are mutually exclusive")
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			var modelID string
			if len(args) > 0 {
				modelID = args[0]
			} else {
				modelID, err = resolveModelName(cmd.Context(), client, name)
				if err != nil {
					return err
				}
			}

			resp, err := client.LoadModel(cmd.Context(), modelID)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Load the first model with this name")
	return cmd
}

func newMoveCommand(opts *internal.Options) *cobra.Command {
	var (
		duration time.Duration
		relative bool
		x        float64
		y        float64
		rotation float64
		size     float64
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move, rotate, or resize the current model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := protocol.MoveModelRequest{
				TimeInSeconds:            duration.Seconds(),
				ValuesAreRelativeToModel: relative,
			}
			// Only properties whose flags were given are sent; the host
			// leaves the rest unchanged.
			if cmd.Flags().Changed("x") {
				req.PositionX = &x
			}
			if cmd.Flags().Changed("y") {
				req.PositionY = &y
			}
			if cmd.Flags().Changed("rotation") {
				req.Rotation = &rotation
			}
			if cmd.Flags().Changed("size") {
				req.Size = &size
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.MoveModel(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "How long the movement animation should take (e.g. 500ms)")
	cmd.Flags().BoolVar(&relative, "relative", false, "Treat values as relative to the current model position")
	cmd.Flags().Float64Var(&x, "x", 0, "Horizontal position, -1 (left edge) to 1 (right edge)")
	cmd.Flags().Float64Var(&y, "y", 0, "Vertical position, -1 (bottom edge) to 1 (top edge)")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "Rotation in degrees, between -360 and 360")
	cmd.Flags().Float64Var(&size, "size", 0, "Size, between -100 and 100")
	return cmd
}

// modelLister is the slice of the client needed for name resolution.
type modelLister interface {
	AvailableModels(ctx context.Context) (*protocol.AvailableModelsResponse, error)
}

func resolveModelName(ctx context.Context, client modelLister, name string) (string, error) {
	resp, err := client.AvailableModels(ctx)
	if err != nil {
		return "", err
	}
	for _, model := range resp.AvailableModels {
		if model.ModelName == name {
			return model.ModelID, nil
		}
	}
	return "", fmt.Errorf("no model found with name %q", name)
}
