// Package internal holds shared state and helpers for the vts
// subcommand packages: global flag values, config access, the
// connect-and-authenticate sequence, and JSON output.
package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/vtstools/vts/pkg/config"
	"github.com/vtstools/vts/pkg/logger"
	"github.com/vtstools/vts/pkg/vts"
)

// Options carries the root command's persistent flag values into the
// subcommand packages.
type Options struct {
	ConfigFile string
	Compact    bool
}

// ConfigPath resolves the effective config file location.
func (o *Options) ConfigPath() string {
	return config.ResolvePath(o.ConfigFile)
}

// LoadConfig loads the config file with environment overrides applied.
func (o *Options) LoadConfig() (*config.Config, error) {
	return config.Load(o.ConfigPath())
}

// Connect loads the config, dials the app, and authenticates. A token
// issued during authentication is persisted before returning.
func (o *Options) Connect(ctx context.Context) (*vts.Client, error) {
	cfg, err := o.LoadConfig()
	if err != nil {
		return nil, err
	}
	return o.ConnectWith(ctx, cfg)
}

// ConnectWith dials and authenticates using an explicit config. Used by
// `config init`, which builds its config from flags instead of a file.
func (o *Options) ConnectWith(ctx context.Context, cfg *config.Config) (*vts.Client, error) {
	client, err := vts.Dial(ctx, vts.BuildURL(cfg.Host, cfg.Port))
	if err != nil {
		return nil, err
	}

	result, err := client.Authenticate(ctx, cfg.PluginName, cfg.PluginDeveloper, cfg.Token)
	if err != nil {
		client.Close()
		return nil, err
	}

	if result.Issued {
		cfg.Token = result.Token
		path := o.ConfigPath()

		// Persist the token into the on-disk values, not the
		// env-overridden ones, so transient VTS_* overrides don't end up
		// baked into the file. On first run (config init) there is no
		// file yet and the flag-built config is written as-is.
		saved, err := config.LoadFile(path)
		if errors.Is(err, config.ErrNotInitialized) {
			saved = cfg
		} else if err != nil {
			client.Close()
			return nil, err
		} else {
			saved.Token = result.Token
		}

		if err := config.Save(path, saved); err != nil {
			client.Close()
			return nil, fmt.Errorf("saving new plugin token to %s: %w", path, err)
		}
		logger.InfoCF("auth", "wrote new plugin token to config file",
			map[string]any{"path": path})
	}

	return client, nil
}

// Print writes v to stdout as JSON, pretty-printed unless --compact.
func (o *Options) Print(v any) error {
	enc := json.NewEncoder(os.Stdout)
	if !o.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
