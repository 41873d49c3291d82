package vts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtstools/vts/pkg/vts/protocol"
)

// fakeHost runs an in-process websocket server that answers each
// request envelope through handler.
func fakeHost(t *testing.T, handler func(env protocol.Envelope) protocol.Envelope) string {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var env protocol.Envelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return
			}
			if err := conn.WriteJSON(handler(env)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func reply(env protocol.Envelope, messageType string, data any) protocol.Envelope {
	raw, _ := json.Marshal(data)
	return protocol.Envelope{
		APIName:     protocol.APIName,
		APIVersion:  protocol.APIVersion,
		RequestID:   env.RequestID,
		MessageType: messageType,
		Data:        raw,
	}
}

// authHandler simulates the host's token handshake: "good-token" is
// accepted, anything else is rejected, and token requests issue
// "fresh-token".
func authHandler(t *testing.T, env protocol.Envelope) protocol.Envelope {
	switch env.MessageType {
	case protocol.TypeAuthenticationTokenRequest:
		return reply(env, "AuthenticationTokenResponse", protocol.AuthenticationTokenResponse{
			AuthenticationToken: "fresh-token",
		})
	case protocol.TypeAuthenticationRequest:
		var req protocol.AuthenticationRequest
		require.NoError(t, json.Unmarshal(env.Data, &req))
		ok := req.AuthenticationToken == "good-token" || req.AuthenticationToken == "fresh-token"
		resp := protocol.AuthenticationResponse{Authenticated: ok}
		if !ok {
			resp.Reason = "token invalid"
		}
		return reply(env, "AuthenticationResponse", resp)
	default:
		t.Fatalf("unexpected message type %q", env.MessageType)
		return protocol.Envelope{}
	}
}

func TestAuthenticateWithValidToken(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		return authHandler(t, env)
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Authenticate(context.Background(), "Test Plugin", "Tester", "good-token")
	require.NoError(t, err)
	assert.Equal(t, "good-token", result.Token)
	assert.False(t, result.Issued)
}

func TestAuthenticateIssuesTokenWhenMissing(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		return authHandler(t, env)
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Authenticate(context.Background(), "Test Plugin", "Tester", "")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	assert.True(t, result.Issued)
}

func TestAuthenticateReplacesStaleToken(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		return authHandler(t, env)
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	result, err := client.Authenticate(context.Background(), "Test Plugin", "Tester", "stale-token")
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", result.Token)
	assert.True(t, result.Issued)
}

func TestTriggerHotkeyRoundTrip(t *testing.T) {
	var gotRequest protocol.HotkeyTriggerRequest

	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		require.Equal(t, protocol.TypeHotkeyTriggerRequest, env.MessageType)
		require.NoError(t, json.Unmarshal(env.Data, &gotRequest))
		return reply(env, "HotkeyTriggerResponse", protocol.HotkeyTriggerResponse{
			HotkeyID: gotRequest.HotkeyID,
		})
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	resp, err := client.TriggerHotkey(context.Background(), protocol.HotkeyTriggerRequest{
		HotkeyID: "hk-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "hk-42", gotRequest.HotkeyID)
	assert.Equal(t, "hk-42", resp.HotkeyID)
}

func TestAPIErrorSurfacesAsTypedError(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		return reply(env, protocol.TypeAPIError, protocol.APIError{
			ErrorID: protocol.ErrRequestRequiresAuthentication,
			Message: "not authenticated",
		})
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.APIState(context.Background())
	require.Error(t, err)

	var apiErr *protocol.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.EqualValues(t, protocol.ErrRequestRequiresAuthentication, apiErr.ErrorID)
}

func TestMismatchedRequestIDRejected(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		env.RequestID = "someone-elses-request"
		return reply(env, "APIStateResponse", protocol.APIStateResponse{Active: true})
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.APIState(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestUnexpectedReplyTypeRejected(t *testing.T) {
	url := fakeHost(t, func(env protocol.Envelope) protocol.Envelope {
		return reply(env, "StatisticsResponse", protocol.StatisticsResponse{})
	})

	client, err := Dial(context.Background(), url)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.APIState(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected reply type")
}

func TestDialFailure(t *testing.T) {
	_, err := Dial(context.Background(), "ws://127.0.0.1:1/")
	require.Error(t, err)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8001", BuildURL("localhost", 8001))
}
