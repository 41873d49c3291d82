package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtstools/vts/pkg/config"
	"github.com/vtstools/vts/pkg/vts/protocol"
)

// fakeHost runs an in-process websocket server that accepts every
// authentication and issues "issued-token" on token requests. Returns
// the host and port to put in the config.
func fakeHost(t *testing.T) (string, int) {
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

			var data any
			switch env.MessageType {
			case protocol.TypeAuthenticationTokenRequest:
				data = protocol.AuthenticationTokenResponse{AuthenticationToken: "issued-token"}
			case protocol.TypeAuthenticationRequest:
				data = protocol.AuthenticationResponse{Authenticated: true}
			default:
				data = struct{}{}
			}

			rawData, _ := json.Marshal(data)
			reply := protocol.Envelope{
				APIName:     protocol.APIName,
				APIVersion:  protocol.APIVersion,
				RequestID:   env.RequestID,
				MessageType: protocol.ResponseType(env.MessageType),
				Data:        rawData,
			}
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return u.Hostname(), port
}

func writeConfig(t *testing.T, host string, port int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Default()
	cfg.Host = host
	cfg.Port = port
	require.NoError(t, config.Save(path, cfg))
	return path
}

func TestConnectPersistsIssuedToken(t *testing.T) {
	host, port := fakeHost(t)
	path := writeConfig(t, host, port)

	opts := &Options{ConfigFile: path}
	client, err := opts.Connect(context.Background())
	require.NoError(t, err)
	defer client.Close()

	// The token is on disk before the first real request runs.
	saved, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", saved.Token)
}

func TestConnectDoesNotPersistEnvOverrides(t *testing.T) {
	host, port := fakeHost(t)
	path := writeConfig(t, host, port)

	t.Setenv("VTS_PLUGIN_NAME", "Transient Override")

	opts := &Options{ConfigFile: path}
	client, err := opts.Connect(context.Background())
	require.NoError(t, err)
	defer client.Close()

	saved, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", saved.Token)
	assert.Equal(t, config.Default().PluginName, saved.PluginName)
}

func TestConnectWithCreatesConfigFile(t *testing.T) {
	host, port := fakeHost(t)

	path := filepath.Join(t.TempDir(), "config.json")
	cfg := config.Default()
	cfg.Host = host
	cfg.Port = port

	opts := &Options{ConfigFile: path}
	client, err := opts.ConnectWith(context.Background(), cfg)
	require.NoError(t, err)
	defer client.Close()

	saved, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", saved.Token)
	assert.Equal(t, host, saved.Host)
}
