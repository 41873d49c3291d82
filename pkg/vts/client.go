// Package vts implements a thin client for the VTube Studio plugin
// websocket API: dialing, the token/authentication handshake, and
// single request-reply exchanges with requestID correlation.
package vts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vtstools/vts/pkg/logger"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

// DefaultReadTimeout is the maximum time to wait for a reply after
// sending a request.
const DefaultReadTimeout = 30 * time.Second

// TokenRequestTimeout is the read timeout for AuthenticationTokenRequest.
// Issuing a token requires the user to accept a pop-up in the app, so
// this exchange can take much longer than a normal request.
const TokenRequestTimeout = 2 * time.Minute

// BuildURL constructs the websocket URL for a host address and port.
func BuildURL(host string, port int) string {
	return fmt.Sprintf("ws://%s:%d", host, port)
}

// Client holds one open websocket connection to the app. It issues one
// request at a time; this tool never needs concurrent requests.
type Client struct {
	conn *websocket.Conn
}

// Dial opens a websocket connection to the given URL.
func Dial(ctx context.Context, url string) (*Client, error) {
	dialer := websocket.Dialer{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	conn, resp, err := dialer.DialContext(ctx, url, http.Header{})
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
			return nil, fmt.Errorf(
				"websocket dial %s failed: %s (status: %d)",
				url, err.Error(), resp.StatusCode,
			)
		}
		return nil, fmt.Errorf("websocket dial %s failed: %w", url, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	logger.DebugCF("client", "connected", map[string]any{"url": url})
	return &Client{conn: conn}, nil
}

// Close closes the underlying connection. The app resets plugin state
// (injected parameters, tints) when the connection drops.
func (c *Client) Close() error {
	return c.conn.Close()
}

// exchange sends one request and blocks until its reply arrives (or the
// deadline fires). The reply is matched against the request by
// requestID and messageType; an APIError reply is returned as a
// *protocol.APIError. When out is non-nil the reply data is decoded
// into it.
func (c *Client) exchange(ctx context.Context, timeout time.Duration, messageType string, data, out any) error {
	requestID := uuid.NewString()

	req, err := protocol.NewRequest(requestID, messageType, data)
	if err != nil {
		return err
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	c.conn.SetWriteDeadline(deadline)
	if writeErr := c.conn.WriteJSON(req); writeErr != nil {
		return fmt.Errorf("failed to send %s: %w", messageType, writeErr)
	}

	c.conn.SetReadDeadline(deadline)
	_, rawReply, err := c.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("failed to read reply for %s: %w", messageType, err)
	}

	var reply protocol.Envelope
	if err := json.Unmarshal(rawReply, &reply); err != nil {
		return fmt.Errorf("failed to parse reply for %s: %w", messageType, err)
	}

	if reply.MessageType == protocol.TypeAPIError {
		apiErr := &protocol.APIError{}
		if err := json.Unmarshal(reply.Data, apiErr); err != nil {
			return fmt.Errorf("failed to parse API error payload: %w", err)
		}
		return apiErr
	}

	if reply.RequestID != requestID {
		return fmt.Errorf(
			"reply requestID %q does not match request %q", reply.RequestID, requestID,
		)
	}
	if want := protocol.ResponseType(messageType); reply.MessageType != want {
		return fmt.Errorf(
			"unexpected reply type %q for %s (want %q)", reply.MessageType, messageType, want,
		)
	}

	if out != nil && len(reply.Data) > 0 {
		if err := json.Unmarshal(reply.Data, out); err != nil {
			return fmt.Errorf("failed to decode %s data: %w", reply.MessageType, err)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, messageType string, data, out any) error {
	return c.exchange(ctx, DefaultReadTimeout, messageType, data, out)
}

// AuthResult is the outcome of a successful Authenticate call. Issued
// is true when the host issued a fresh token during this session; the
// caller should persist it.
type AuthResult struct {
	Token  string
	Issued bool
}

// Authenticate authenticates the session. With a non-empty token it
// tries that token first; if the host rejects it (stale or revoked), or
// if no token is given, a new token is requested, which requires the
// user to accept the permission pop-up inside the app.
func (c *Client) Authenticate(ctx context.Context, pluginName, pluginDeveloper, token string) (AuthResult, error) {
	if token != "" {
		ok, reason, err := c.tryAuthenticate(ctx, pluginName, pluginDeveloper, token)
		if err != nil {
			var apiErr *protocol.APIError
			if !errors.As(err, &apiErr) {
				return AuthResult{}, err
			}
			logger.WarnCF("auth", "stored token rejected, requesting a new one",
				map[string]any{"errorID": apiErr.ErrorID})
		} else if ok {
			return AuthResult{Token: token}, nil
		} else {
			logger.WarnCF("auth", "stored token no longer valid, requesting a new one",
				map[string]any{"reason": reason})
		}
	}

	logger.InfoC("auth", "requesting plugin permissions, accept the pop-up in the VTube Studio app")

	var tokenResp protocol.AuthenticationTokenResponse
	err := c.exchange(ctx, TokenRequestTimeout, protocol.TypeAuthenticationTokenRequest,
		protocol.AuthenticationTokenRequest{
			PluginName:      pluginName,
			PluginDeveloper: pluginDeveloper,
		}, &tokenResp)
	if err != nil {
		return AuthResult{}, fmt.Errorf("requesting plugin token: %w", err)
	}

	ok, reason, err := c.tryAuthenticate(ctx, pluginName, pluginDeveloper, tokenResp.AuthenticationToken)
	if err != nil {
		return AuthResult{}, fmt.Errorf("authenticating with new token: %w", err)
	}
	if !ok {
		return AuthResult{}, fmt.Errorf("authentication rejected: %s", reason)
	}

	return AuthResult{Token: tokenResp.AuthenticationToken, Issued: true}, nil
}

func (c *Client) tryAuthenticate(ctx context.Context, pluginName, pluginDeveloper, token string) (bool, string, error) {
	var resp protocol.AuthenticationResponse
	err := c.send(ctx, protocol.TypeAuthenticationRequest, protocol.AuthenticationRequest{
		PluginName:          pluginName,
		PluginDeveloper:     pluginDeveloper,
		AuthenticationToken: token,
	}, &resp)
	if err != nil {
		return false, "", err
	}
	return resp.Authenticated, resp.Reason, nil
}
