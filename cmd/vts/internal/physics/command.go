// Package physics implements `vts physics`: reading the physics state
// of the current model and overriding base values or group multipliers.
package physics

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

// Override kinds accepted by `physics set`.
const (
	kindStrength = "strength"
	kindWind     = "wind"
)

func NewPhysicsCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "physics",
		Short: "Read and override model physics",
	}
	cmd.AddCommand(
		newGetCommand(opts),
		newSetCommand(opts),
	)
	return cmd
}

func newGetCommand(opts *internal.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get the physics settings of the current model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ModelPhysics(cmd.Context())
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}
}

func newSetCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override physics settings",
	}
	cmd.AddCommand(
		newSetBaseCommand(opts),
		newSetMultiplierCommand(opts),
	)
	return cmd
}

func newSetBaseCommand(opts *internal.Options) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "base <strength|wind> <value>",
		Short: "Override the base strength or wind value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value float64
			if _, err := fmt.Sscanf(args[1], "%f", &value); err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			override := protocol.PhysicsOverride{
				Value:           value,
				SetBaseValue:    true,
				OverrideSeconds: duration.Seconds(),
			}
			req, err := buildSetRequest(args[0], override)
			if err != nil {
				return err
			}

			return runSet(cmd, opts, req)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 500*time.Millisecond, "How long to override the value for (0.5s to 5s)")
	return cmd
}

func newSetMultiplierCommand(opts *internal.Options) *cobra.Command {
	var (
		duration time.Duration
		groupID  string
	)

	cmd := &cobra.Command{
		Use:   "multiplier <strength|wind> <value>",
		Short: "Override the multiplier of a physics group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value float64
			if _, err := fmt.Sscanf(args[1], "%f", &value); err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			override := protocol.PhysicsOverride{
				ID:              groupID,
				Value:           value,
				OverrideSeconds: duration.Seconds(),
			}
			req, err := buildSetRequest(args[0], override)
			if err != nil {
				return err
			}

			return runSet(cmd, opts, req)
		},
	}

	cmd.Flags().StringVar(&groupID, "id", "", "Physics group ID")
	cmd.MarkFlagRequired("id")
	cmd.Flags().DurationVar(&duration, "duration", 500*time.Millisecond, "How long to override the value for (0.5s to 5s)")
	return cmd
}

func buildSetRequest(kind string, override protocol.PhysicsOverride) (protocol.SetCurrentModelPhysicsRequest, error) {
	switch kind {
	case kindStrength:
		return protocol.SetCurrentModelPhysicsRequest{
			StrengthOverrides: []protocol.PhysicsOverride{override},
		}, nil
	case kindWind:
		return protocol.SetCurrentModelPhysicsRequest{
			WindOverrides: []protocol.PhysicsOverride{override},
		}, nil
	default:
		return protocol.SetCurrentModelPhysicsRequest{}, fmt.Errorf(
			"unknown physics kind %q, should be either %q or %q", kind, kindStrength, kindWind,
		)
	}
}

func runSet(cmd *cobra.Command, opts *internal.Options, req protocol.SetCurrentModelPhysicsRequest) error {
	client, err := opts.Connect(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.SetModelPhysics(cmd.Context(), req)
	if err != nil {
		return err
	}
	return opts.Print(resp)
}
