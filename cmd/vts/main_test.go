package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCmd()

	expected := []string{
		"config", "hotkeys", "params", "artmeshes", "items", "models",
		"expressions", "physics", "ndi",
		"state", "stats", "folders", "scene-colors", "face-found",
		"version",
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}

	for _, name := range expected {
		if !names[name] {
			t.Errorf("expected root command to have subcommand %q", name)
		}
	}

	for _, flag := range []string{"config-file", "compact", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected root command to have persistent %s flag", flag)
		}
	}
}

type ctxKey struct{}

// Subcommands must see the context passed to ExecuteContext, otherwise
// signal cancellation never reaches blocking operations.
func TestRootCommandPropagatesContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var got context.Context
	check := &cobra.Command{
		Use: "ctx-check",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = cmd.Context()
			return nil
		},
	}

	cmd := newRootCmd()
	cmd.AddCommand(check)
	cmd.SetArgs([]string{"ctx-check"})

	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Value(ctxKey{}) != "marker" {
		t.Error("expected subcommand to receive the execution context")
	}
}
