package cli

import (
	"encoding/json"
	"fmt"

	"github.com/vburojevic/reqtriage/internal/config"
)

// ConfigCmd inspects the configuration the report command runs with.
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Print the effective configuration as YAML"`
	Path     ConfigPathCmd     `cmd:"" help:"Print the configuration file in use"`
	Generate ConfigGenerateCmd `cmd:"" help:"Print a starter configuration file"`
}

// configView is the NDJSON shape of the effective configuration.
type configView struct {
	Type string `json:"type"`
	*config.Config
	Source string `json:"source,omitempty"`
}

type ConfigShowCmd struct{}

// Run prints the merged config (defaults, file, env). Text output is
// valid YAML so it can be redirected into a config file.
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}
	source := config.ConfigFile()

	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(configView{Type: "config", Config: cfg, Source: source})
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if source == "" {
		source = "built-in defaults"
	}
	_, err = fmt.Fprintf(globals.Stdout, "# loaded from: %s\n%s", source, data)
	return err
}

type ConfigPathCmd struct{}

func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()
	if globals.Format == "ndjson" {
		return json.NewEncoder(globals.Stdout).Encode(map[string]string{"type": "config_path", "path": path})
	}
	if path == "" {
		path = "none (write one with: reqtriage config generate > .reqtriage.yaml)"
	}
	_, err := fmt.Fprintln(globals.Stdout, path)
	return err
}

type ConfigGenerateCmd struct{}

func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	data, err := config.Default().Marshal()
	if err != nil {
		return fmt.Errorf("render sample config: %w", err)
	}
	_, err = fmt.Fprintf(globals.Stdout,
		"# reqtriage configuration file\n# env overrides: REQTRIAGE_FORMAT, REQTRIAGE_COLOR, REQTRIAGE_QUIET, REQTRIAGE_VERBOSE, REQTRIAGE_FILE\n%s",
		data)
	return err
}
