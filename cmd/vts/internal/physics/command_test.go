package physics

import (
	"testing"

	"github.com/vtstools/vts/cmd/vts/internal"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

func TestNewPhysicsCommand(t *testing.T) {
	cmd := NewPhysicsCommand(&internal.Options{})

	if cmd.Use != "physics" {
		t.Errorf("expected command name 'physics', got %q", cmd.Use)
	}
}

func TestBuildSetRequestStrength(t *testing.T) {
	override := protocol.PhysicsOverride{Value: 50, SetBaseValue: true, OverrideSeconds: 0.5}

	req, err := buildSetRequest("strength", override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.StrengthOverrides) != 1 || len(req.WindOverrides) != 0 {
		t.Errorf("expected one strength override, got %+v", req)
	}
}

func TestBuildSetRequestWind(t *testing.T) {
	override := protocol.PhysicsOverride{ID: "group-1", Value: 1.5, OverrideSeconds: 2}

	req, err := buildSetRequest("wind", override)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(req.WindOverrides) != 1 || len(req.StrengthOverrides) != 0 {
		t.Errorf("expected one wind override, got %+v", req)
	}
}

func TestBuildSetRequestUnknownKind(t *testing.T) {
	if _, err := buildSetRequest("gravity", protocol.PhysicsOverride{}); err == nil {
		t.Error("expected error for unknown kind")
	}
}
