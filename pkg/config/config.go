package config

import (
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/esimports/eis/pkg/errors"
	"github.com/esimports/eis/pkg/sorter"
	"github.com/esimports/eis/pkg/utils"
)

// FileName is the project configuration file eis looks for, starting next to
// the processed path and walking toward the filesystem root.
const FileName = ".eisrc.yaml"

// Config holds all eis configuration as it appears on disk.
type Config struct {
	// Bucket order: classification names in the order their buckets should
	// appear. Classifications not listed keep their declaration order.
	Priority []string `yaml:"priority"`

	// Blank line between origin buckets
	SeparateOrigins bool `yaml:"separate_origins"`

	// Blank line before an import whose named bindings spanned several lines
	SeparateMultiline bool `yaml:"separate_multiline"`

	// Statement order inside each bucket: none, ascending, descending,
	// shorter-first or longer-first
	SortBy string `yaml:"sort_by"`

	// Named binding order inside each statement
	SortBindings   bool   `yaml:"sort_bindings"`
	SortBindingsBy string `yaml:"sort_bindings_by"`

	// First path segments treated as internal aliases
	PathPrefixes []string `yaml:"path_prefixes"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SortBy:         sorter.SortNone.String(),
		SortBindingsBy: sorter.SortAscending.String(),
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, pkgerrors.Wrap(err, errors.ErrMsgFailedToLoadConfig)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.Wrap(err, errors.ErrMsgFailedToParseConfig)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToWriteFile)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToEncodeConfig)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToWriteFile)
	}

	return nil
}

// Discover locates the configuration file governing path. An explicitly
// given file always wins; otherwise the nearest .eisrc.yaml walking up from
// path is used. An empty return means no configuration file applies.
func Discover(explicit, path string) string {
	if explicit != "" {
		return explicit
	}
	return utils.FindNearestFile(path, FileName)
}

// ToSorter validates the configuration and converts it into the core
// sorter's form. Unknown classification or policy names are reported as
// errors rather than silently ignored.
func (c *Config) ToSorter() (sorter.Config, error) {
	out := sorter.Config{
		SeparateByOrigin:    c.SeparateOrigins,
		SeparateMultiline:   c.SeparateMultiline,
		SortNamedBindings:   c.SortBindings,
		SortNamedBindingsBy: sorter.SortAscending,
		PathPrefixes:        trimList(c.PathPrefixes),
	}

	for _, name := range c.Priority {
		origin, err := sorter.ParseOrigin(name)
		if err != nil {
			return sorter.Config{}, pkgerrors.Wrap(err, errors.ErrMsgInvalidClassification)
		}
		out.Priority = append(out.Priority, origin)
	}

	if c.SortBy != "" {
		policy, err := sorter.ParseSortPolicy(c.SortBy)
		if err != nil {
			return sorter.Config{}, pkgerrors.Wrap(err, errors.ErrMsgInvalidSortPolicy)
		}
		out.SortBy = policy
	}

	if c.SortBindingsBy != "" {
		policy, err := sorter.ParseSortPolicy(c.SortBindingsBy)
		if err != nil {
			return sorter.Config{}, pkgerrors.Wrap(err, errors.ErrMsgInvalidSortPolicy)
		}
		out.SortNamedBindingsBy = policy
	}

	return out, nil
}

func trimList(values []string) []string {
	var out []string
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}
