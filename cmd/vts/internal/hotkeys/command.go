// Package hotkeys implements `vts hotkeys`: listing the hotkeys of a
// model and triggering one by ID or name.
package hotkeys

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func NewHotkeysCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hotkeys",
		Aliases: []string{"hotkey"},
		Short:   "List and trigger hotkeys",
	}
	cmd.AddCommand(
		newListCommand(opts),
		newTriggerCommand(opts),
	)
	return cmd
}

func newListCommand(opts *internal.Options) *cobra.Command {
	var modelID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available hotkeys for a model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.Hotkeys(cmd.Context(), protocol.HotkeysInCurrentModelRequest{
				ModelID: modelID,
			})
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().StringVar(&modelID, "model-id", "", "Model ID (default: the current model)")
	return cmd
}

func newTriggerCommand(opts *internal.Options) *cobra.Command {
	var name string
	var itemInstanceID string

	cmd := &cobra.Command{
		Use:   "trigger [hotkey-id]",
		Short: "Trigger a hotkey by ID or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && name == "" {
				return fmt.Errorf("either a hotkey ID or --name must be specified")
			}
			if len(args) > 0 && name != "" {
				return fmt.Errorf("a hotkey ID and --name are mutually exclusive")
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			var hotkeyID string
			if len(args) > 0 {
				hotkeyID = args[0]
			} else {
				hotkeyID, err = resolveHotkeyName(cmd.Context(), client, name)
				if err != nil {
					return err
				}
			}

			resp, err := client.TriggerHotkey(cmd.Context(), protocol.HotkeyTriggerRequest{
				HotkeyID:       hotkeyID,
				ItemInstanceID: itemInstanceID,
			})
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trigger the first hotkey with this name")
	cmd.Flags().StringVar(&itemInstanceID, "item", "", "Trigger the hotkey for this Live2D item instance")
	return cmd
}

// hotkeyLister is the slice of the client needed for name resolution.
type hotkeyLister interface {
	Hotkeys(ctx context.Context, req protocol.HotkeysInCurrentModelRequest) (*protocol.HotkeysInCurrentModelResponse, error)
}

func resolveHotkeyName(ctx context.Context, client hotkeyLister, name string) (string, error) {
	resp, err := client.Hotkeys(ctx, protocol.HotkeysInCurrentModelRequest{})
	if err != nil {
		return "", err
	}
	for _, hotkey := range resp.AvailableHotkeys {
		if hotkey.Name == name {
			return hotkey.HotkeyID, nil
		}
	}
	return "", fmt.Errorf("no hotkey found with name %q", name)
}
