package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestEnvelope(t *testing.T) {
	env, err := NewRequest("req-1", TypeParameterValueRequest, ParameterValueRequest{Name: "FaceAngleX"})
	require.NoError(t, err)

	assert.Equal(t, APIName, env.APIName)
	assert.Equal(t, APIVersion, env.APIVersion)
	assert.Equal(t, "req-1", env.RequestID)
	assert.Equal(t, TypeParameterValueRequest, env.MessageType)
	assert.JSONEq(t, `{"name":"FaceAngleX"}`, string(env.Data))
}

func TestNewRequestNilPayload(t *testing.T) {
	env, err := NewRequest("req-2", TypeAPIStateRequest, nil)
	require.NoError(t, err)
	assert.Equal(t, "null", string(env.Data))
}

func TestResponseType(t *testing.T) {
	assert.Equal(t, "APIStateResponse", ResponseType(TypeAPIStateRequest))
	assert.Equal(t, "HotkeyTriggerResponse", ResponseType(TypeHotkeyTriggerRequest))
	// Non-request names pass through unchanged.
	assert.Equal(t, "APIError", ResponseType("APIError"))
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{ErrorID: ErrRequestRequiresAuthentication, Message: "not authenticated"}
	assert.Equal(t, "API error 8: not authenticated", err.Error())
}

func TestColorTintRequestWireFormat(t *testing.T) {
	req := ColorTintRequest{
		ColorTint: ColorTint{ColorR: 255, ColorG: 128, ColorB: 0, ColorA: 255, Jeb: true},
		ArtMeshMatcher: ArtMeshMatcher{
			NameContains: []string{"hair"},
		},
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	tint, ok := decoded["colorTint"].(map[string]any)
	require.True(t, ok)
	// The rainbow flag uses the host's literal "jeb_" key.
	assert.Equal(t, true, tint["jeb_"])

	matcher, ok := decoded["artMeshMatcher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, matcher["tintAll"])
	assert.NotContains(t, matcher, "nameExact")
}

func TestMoveModelRequestOmitsUnsetProperties(t *testing.T) {
	x := 0.5
	req := MoveModelRequest{TimeInSeconds: 1.5, PositionX: &x}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "positionX")
	assert.NotContains(t, decoded, "positionY")
	assert.NotContains(t, decoded, "rotation")
	assert.NotContains(t, decoded, "size")
}
