package configcmd

import (
	"testing"

	"github.com/vtstools/vts/cmd/vts/internal"
)

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand(&internal.Options{})

	if cmd.Use != "config" {
		t.Errorf("expected command name 'config', got %q", cmd.Use)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"init", "show", "path"} {
		if !names[name] {
			t.Errorf("expected config command to have subcommand %q", name)
		}
	}
}

func TestNewInitSubcommand(t *testing.T) {
	cmd := newInitCommand(&internal.Options{})

	for _, flag := range []string{"host", "port", "plugin-name", "plugin-developer"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected command to have %s flag", flag)
		}
	}

	if cmd.Flags().Lookup("host").DefValue != "localhost" {
		t.Errorf("expected host flag default 'localhost', got %q", cmd.Flags().Lookup("host").DefValue)
	}

	if cmd.Flags().Lookup("port").DefValue != "8001" {
		t.Errorf("expected port flag default '8001', got %q", cmd.Flags().Lookup("port").DefValue)
	}
}
