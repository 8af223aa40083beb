// Package settings decodes lint configuration from TOML and resolves it
// into the read-only Settings a run consults.
package settings

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up by FindConfig.
const ConfigFileName = "lintcore.toml"

// DefaultSelect is used when [lint].select is absent.
var DefaultSelect = []string{"D"}

// Options is the decoded [lint] table before resolution.
type Options struct {
	Select       []string   `toml:"select"`
	ExtendSelect []string   `toml:"extend-select"`
	Ignore       []string   `toml:"ignore"`
	Fixable      []string   `toml:"fixable"`
	Unfixable    []string   `toml:"unfixable"`
	Fix          bool       `toml:"fix"`
	Pydocstyle   Pydocstyle `toml:"pydocstyle"`

	// selectSet различает "select = []" и отсутствие ключа
	selectSet bool
}

// Pydocstyle is the [lint.pydocstyle] table.
type Pydocstyle struct {
	Convention         string   `toml:"convention"`
	PropertyDecorators []string `toml:"property-decorators"`
}

type fileConfig struct {
	Lint Options `toml:"lint"`
}

// Parse decodes configuration text; name labels errors.
func Parse(name, data string) (Options, error) {
	var cfg fileConfig
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Options{}, fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}
	cfg.Lint.selectSet = meta.IsDefined("lint", "select")
	return cfg.Lint, nil
}

// LoadOptions reads and decodes a configuration file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the caller
	if err != nil {
		return Options{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, string(data))
}
