package artmeshes

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vtstools/vts/cmd/vts/internal"
)

func TestNewArtmeshesCommand(t *testing.T) {
	cmd := NewArtmeshesCommand(&internal.Options{})

	if cmd.Use != "artmeshes" {
		t.Errorf("expected command name 'artmeshes', got %q", cmd.Use)
	}

	if len(cmd.Commands()) != 3 {
		t.Errorf("expected 3 subcommands, got %d", len(cmd.Commands()))
	}
}

func TestNewTintSubcommand(t *testing.T) {
	cmd := newTintCommand(&internal.Options{})

	for _, flag := range []string{
		"color", "duration", "rainbow", "mix-scene-lighting",
		"all", "art-mesh-number", "name-exact", "name-contains", "tag-exact", "tag-contains",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}

	durationFlag := cmd.Flag("duration")
	val, found := durationFlag.Annotations[cobra.BashCompOneRequiredFlag]
	if !found || val[0] != "true" {
		t.Errorf("expected duration flag to be required, got %v", val)
	}
}

func TestNewSelectSubcommand(t *testing.T) {
	cmd := newSelectCommand(&internal.Options{})

	for _, flag := range []string{"set-text", "set-help", "count", "preselect"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}
}
