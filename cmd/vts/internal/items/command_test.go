package items

import (
	"testing"

	"github.com/vtstools/vts/cmd/vts/internal"
)

func TestNewItemsCommand(t *testing.T) {
	cmd := NewItemsCommand(&internal.Options{})

	if cmd.Use != "items" {
		t.Errorf("expected command name 'items', got %q", cmd.Use)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"list", "load", "unload", "move", "animation"} {
		if !names[name] {
			t.Errorf("expected items command to have subcommand %q", name)
		}
	}
}

func TestNewListSubcommand(t *testing.T) {
	cmd := newListCommand(&internal.Options{})

	for _, flag := range []string{"spots", "instances", "files", "with-file-name", "with-instance-id"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}
}

func TestNewLoadSubcommand(t *testing.T) {
	cmd := newLoadCommand(&internal.Options{})

	for _, flag := range []string{
		"x", "y", "size", "rotation", "fade-time", "order",
		"fail-if-order-taken", "smoothing", "censored", "flipped", "locked",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}
}

func TestNewMoveSubcommand(t *testing.T) {
	cmd := newMoveCommand(&internal.Options{})

	for _, flag := range []string{
		"duration", "fade-mode", "x", "y", "size", "rotation", "order", "flip", "user-can-stop",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}

	// Untouched move properties default to the host's ignore sentinel.
	if cmd.Flags().Lookup("x").DefValue != "-1000" {
		t.Errorf("expected x flag default -1000, got %q", cmd.Flags().Lookup("x").DefValue)
	}
}

func TestAnimationRequestPlay(t *testing.T) {
	flags := animationFlags{framerate: -1, frame: -1, brightness: -1, opacity: -1, play: true}

	req, err := flags.request("item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.SetAnimationPlayState || !req.AnimationPlayState {
		t.Errorf("expected play state to be set true, got %+v", req)
	}
	if req.SetAutoStopFrames {
		t.Error("expected auto-stop frames to stay unset")
	}
}

func TestAnimationRequestStop(t *testing.T) {
	flags := animationFlags{framerate: -1, frame: -1, brightness: -1, opacity: -1, stop: true}

	req, err := flags.request("item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.SetAnimationPlayState || req.AnimationPlayState {
		t.Errorf("expected play state to be set false, got %+v", req)
	}
}

func TestAnimationRequestStopFrames(t *testing.T) {
	flags := animationFlags{framerate: -1, frame: -1, brightness: -1, opacity: -1, stopFrames: []int{3, 7}}

	req, err := flags.request("item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.SetAutoStopFrames {
		t.Error("expected auto-stop frames to be set")
	}
	if len(req.AutoStopFrames) != 2 {
		t.Errorf("expected 2 auto-stop frames, got %v", req.AutoStopFrames)
	}
	if req.SetAnimationPlayState {
		t.Error("expected play state to stay unset")
	}
}

func TestAnimationRequestResetStopFrames(t *testing.T) {
	flags := animationFlags{framerate: -1, frame: -1, brightness: -1, opacity: -1, stopFrames: []int{3}, resetStopFrames: true}

	req, err := flags.request("item-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !req.SetAutoStopFrames {
		t.Error("expected auto-stop frames to be set")
	}
	if len(req.AutoStopFrames) != 0 {
		t.Errorf("expected auto-stop frames to be cleared, got %v", req.AutoStopFrames)
	}
}

func TestAnimationRequestPlayStopConflict(t *testing.T) {
	flags := animationFlags{play: true, stop: true}

	if _, err := flags.request("item-1"); err == nil {
		t.Error("expected error for --play with --stop")
	}
}
