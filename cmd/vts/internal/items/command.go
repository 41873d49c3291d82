// Package items implements `vts items`: listing item files and
// instances, loading and unloading items in the scene, moving them, and
// controlling item animations.
package items

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

// ignoreValue is the sentinel the host treats as "leave unchanged" for
// item move properties.
const ignoreValue = -1000

func NewItemsCommand(opts *internal.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "List, load, unload, move, and animate items",
	}
	cmd.AddCommand(
		newListCommand(opts),
		newLoadCommand(opts),
		newUnloadCommand(opts),
		newMoveCommand(opts),
		newAnimationCommand(opts),
	)
	return cmd
}

func newListCommand(opts *internal.Options) *cobra.Command {
	var req protocol.ItemListRequest

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List item files and item instances in the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ItemList(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().BoolVar(&req.IncludeAvailableSpots, "spots", false, "Include available item order spots")
	cmd.Flags().BoolVar(&req.IncludeItemInstancesInScene, "instances", false, "Include item instances in the scene")
	cmd.Flags().BoolVar(&req.IncludeAvailableItemFiles, "files", false, "Include available item files")
	cmd.Flags().StringVar(&req.OnlyItemsWithFileName, "with-file-name", "", "Only include items with this file name")
	cmd.Flags().StringVar(&req.OnlyItemsWithInstanceID, "with-instance-id", "", "Only include the item with this instance ID")
	return cmd
}

func newLoadCommand(opts *internal.Options) *cobra.Command {
	var req protocol.ItemLoadRequest

	cmd := &cobra.Command{
		Use:   "load <file-name>",
		Short: "Load an item into the scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.FileName = args[0]

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.LoadItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().Float64Var(&req.PositionX, "x", 0, "Horizontal position, -1 (left edge) to 1 (right edge)")
	cmd.Flags().Float64Var(&req.PositionY, "y", 0, "Vertical position, -1 (bottom edge) to 1 (top edge)")
	cmd.Flags().Float64Var(&req.Size, "size", 0.32, "Size, between 0 and 1")
	cmd.Flags().Float64Var(&req.Rotation, "rotation", 0, "Rotation in degrees")
	cmd.Flags().Float64Var(&req.FadeTime, "fade-time", 0, "Fade-in time in seconds, between 0 and 2")
	cmd.Flags().IntVar(&req.Order, "order", 0, "Sorting order in the scene")
	cmd.Flags().BoolVar(&req.FailIfOrderTaken, "fail-if-order-taken", false, "Fail when the requested order is taken")
	cmd.Flags().Float64Var(&req.Smoothing, "smoothing", 0, "Movement smoothing, between 0 and 1")
	cmd.Flags().BoolVar(&req.Censored, "censored", false, "Load the item censored")
	cmd.Flags().BoolVar(&req.Flipped, "flipped", false, "Load the item flipped")
	cmd.Flags().BoolVar(&req.Locked, "locked", false, "Load the item locked")
	return cmd
}

func newUnloadCommand(opts *internal.Options) *cobra.Command {
	var req protocol.ItemUnloadRequest

	cmd := &cobra.Command{
		Use:   "unload",
		Short: "Unload items from the scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.UnloadItems(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().BoolVar(&req.UnloadAllInScene, "all", false, "Unload all items in the scene")
	cmd.Flags().BoolVar(&req.UnloadAllLoadedByThisPlugin, "from-this-plugin", false, "Unload all items loaded by this plugin")
	cmd.Flags().BoolVar(&req.AllowUnloadingItemsLoadedByUserOrOtherPlugins, "from-other-plugins", false, "Allow unloading items loaded by the user or other plugins")
	cmd.Flags().StringSliceVar(&req.InstanceIDs, "id", nil, "Unload the item with this instance ID")
	cmd.Flags().StringSliceVar(&req.FileNames, "file", nil, "Unload all items with this file name")
	return cmd
}

func newMoveCommand(opts *internal.Options) *cobra.Command {
	var (
		duration time.Duration
		fadeMode string
		flip     bool
		item     protocol.ItemToMove
	)

	cmd := &cobra.Command{
		Use:   "move <instance-id>",
		Short: "Move, resize, rotate, or reorder an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item.ItemInstanceID = args[0]
			item.TimeInSeconds = duration.Seconds()
			item.FadeMode = fadeMode
			if cmd.Flags().Changed("flip") {
				item.SetFlip = true
				item.Flip = flip
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.MoveItems(cmd.Context(), protocol.ItemMoveRequest{
				ItemsToMove: []protocol.ItemToMove{item},
			})
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "How long the movement animation should take (e.g. 500ms)")
	cmd.Flags().StringVar(&fadeMode, "fade-mode", "", "Movement fade mode (linear, easeIn, easeOut, easeBoth, overshoot, zip)")
	cmd.Flags().Float64Var(&item.PositionX, "x", ignoreValue, "Horizontal position, -1 (left edge) to 1 (right edge)")
	cmd.Flags().Float64Var(&item.PositionY, "y", ignoreValue, "Vertical position, -1 (bottom edge) to 1 (top edge)")
	cmd.Flags().Float64Var(&item.Size, "size", ignoreValue, "Size, between 0 and 1")
	cmd.Flags().Float64Var(&item.Rotation, "rotation", ignoreValue, "Rotation in degrees")
	cmd.Flags().IntVar(&item.Order, "order", ignoreValue, "Sorting order in the scene")
	cmd.Flags().BoolVar(&flip, "flip", false, "Whether the item should be flipped")
	cmd.Flags().BoolVar(&item.UserCanStop, "user-can-stop", false, "Let the user stop the movement by clicking the item")
	return cmd
}

func newAnimationCommand(opts *internal.Options) *cobra.Command {
	var flags animationFlags

	cmd := &cobra.Command{
		Use:   "animation <instance-id>",
		Short: "Control the animation of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(args[0])
			if err != nil {
				return err
			}

			client, err := opts.Connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			resp, err := client.ControlItemAnimation(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.Print(resp)
		},
	}

	cmd.Flags().Float64Var(&flags.framerate, "framerate", -1, "Animation framerate, between 0.1 and 120 (-1 leaves it unchanged)")
	cmd.Flags().IntVar(&flags.frame, "frame", -1, "Jump to this frame (-1 leaves it unchanged)")
	cmd.Flags().Float64Var(&flags.brightness, "brightness", -1, "Brightness, between 0 and 1 (-1 leaves it unchanged)")
	cmd.Flags().Float64Var(&flags.opacity, "opacity", -1, "Opacity, between 0 and 1 (-1 leaves it unchanged)")
	cmd.Flags().BoolVar(&flags.play, "play", false, "Start the animation")
	cmd.Flags().BoolVar(&flags.stop, "stop", false, "Stop the animation")
	cmd.Flags().IntSliceVar(&flags.stopFrames, "stop-frame", nil, "Automatically pause the animation on this frame")
	cmd.Flags().BoolVar(&flags.resetStopFrames, "reset-stop-frames", false, "Clear the configured auto-stop frames")
	return cmd
}

type animationFlags struct {
	framerate       float64
	frame           int
	brightness      float64
	opacity         float64
	play            bool
	stop            bool
	stopFrames      []int
	resetStopFrames bool
}

func (f animationFlags) request(instanceID string) (protocol.ItemAnimationControlRequest, error) {
	if f.play && f.stop {
		return protocol.ItemAnimationControlRequest{}, fmt.Errorf("--play and --stop are mutually exclusive")
	}

	autoStopFrames := f.stopFrames
	if f.resetStopFrames {
		autoStopFrames = []int{}
	}

	return protocol.ItemAnimationControlRequest{
		ItemInstanceID:        instanceID,
		Framerate:             f.framerate,
		Frame:                 f.frame,
		Brightness:            f.brightness,
		Opacity:               f.opacity,
		SetAutoStopFrames:     len(f.stopFrames) > 0 || f.resetStopFrames,
		AutoStopFrames:        autoStopFrames,
		SetAnimationPlayState: f.play || f.stop,
		AnimationPlayState:    f.play,
	}, nil
}
