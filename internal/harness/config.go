package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const ConfigFile = "clink.toml"

var ErrConfigNotFound = errors.New("config file not found")

// Config represents the clink.toml configuration file.
type Config struct {
	Default Default   `toml:"default"`
	Calls   []CallCfg `toml:"call"`
}

// Default holds values inherited by every call unless overridden.
type Default struct {
	A        int    `toml:"a"`
	B        int    `toml:"b"`
	Label    string `toml:"label"`
	Capacity int    `toml:"capacity"`

	// Runtime loading
	LibDir  string `toml:"lib-dir"`
	LibName string `toml:"lib-name"`
	Symbol  string `toml:"symbol"`

	Verbose bool `toml:"verbose"`
}

// CallCfg defines one configured call. Zero-valued fields inherit from
// the default section.
type CallCfg struct {
	Variant  string `toml:"variant"`
	A        int    `toml:"a"`
	B        int    `toml:"b"`
	Label    string `toml:"label"`
	Capacity int    `toml:"capacity"`
}

// LoadConfig loads configuration from path, or searches upward from cwd.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		if path = findConfig(); path == "" {
			return nil, ErrConfigNotFound
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &cfg, nil
}

func findConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for dir := cwd; ; {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ToOptions converts the selected call entries to Options. An empty
// variants filter selects every configured call. Variant names are not
// validated here; Options.Validate rejects unknown ones.
func (c *Config) ToOptions(variants []string) *Options {
	o := &Options{
		LibDir:  c.Default.LibDir,
		LibName: c.Default.LibName,
		Symbol:  c.Default.Symbol,
		Verbose: c.Default.Verbose,
	}

	for _, cc := range c.selectCalls(variants) {
		o.Calls = append(o.Calls, c.toCall(cc))
	}
	return o
}

func (c *Config) selectCalls(variants []string) []*CallCfg {
	if len(variants) == 0 {
		calls := make([]*CallCfg, len(c.Calls))
		for i := range c.Calls {
			calls[i] = &c.Calls[i]
		}
		return calls
	}

	calls := make([]*CallCfg, 0, len(variants))
	for _, name := range variants {
		found := false
		for i := range c.Calls {
			if c.Calls[i].Variant == name {
				calls = append(calls, &c.Calls[i])
				found = true
				break
			}
		}
		if !found {
			// Not configured: synthesize from the default section.
			calls = append(calls, &CallCfg{Variant: name})
		}
	}
	return calls
}

func (c *Config) toCall(cc *CallCfg) Call {
	d := &c.Default
	return Call{
		Variant:  cc.Variant,
		A:        int32(orInt(cc.A, d.A)),
		B:        int32(orInt(cc.B, d.B)),
		Label:    or(cc.Label, d.Label),
		Capacity: orInt(cc.Capacity, d.Capacity),
	}
}

func or(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func orInt(a, b int) int {
	if a != 0 {
		return a
	}
	return b
}
