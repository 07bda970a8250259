package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esimports/eis/pkg/sorter"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		req := require.New(t)

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		req.NoError(err)
		req.Equal(DefaultConfig(), cfg)
	})

	t.Run("file values overlay defaults", func(t *testing.T) {
		req := require.New(t)

		content := `priority:
  - relative-path
  - framework
separate_origins: true
sort_by: ascending
path_prefixes:
  - common
  - app
`
		path := filepath.Join(t.TempDir(), ".eisrc.yaml")
		req.NoError(os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		req.NoError(err)
		req.Equal([]string{"relative-path", "framework"}, cfg.Priority)
		req.True(cfg.SeparateOrigins)
		req.False(cfg.SeparateMultiline)
		req.Equal("ascending", cfg.SortBy)
		req.False(cfg.SortBindings)
		req.Equal("ascending", cfg.SortBindingsBy, "untouched defaults survive the overlay")
		req.Equal([]string{"common", "app"}, cfg.PathPrefixes)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		req := require.New(t)

		path := filepath.Join(t.TempDir(), "broken.yaml")
		req.NoError(os.WriteFile(path, []byte("priority: [unclosed"), 0644))

		_, err := Load(path)
		req.Error(err)
	})
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "nested", ".eisrc.yaml")

	cfg := &Config{
		Priority:          []string{"framework", "relative-path"},
		SeparateOrigins:   true,
		SeparateMultiline: true,
		SortBy:            "shorter-first",
		SortBindings:      true,
		SortBindingsBy:    "descending",
		PathPrefixes:      []string{"common"},
	}
	req.NoError(cfg.Save(path))

	loaded, err := Load(path)
	req.NoError(err)
	req.Equal(cfg, loaded)
}

func TestConfig_ToSorter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := require.New(t)

		out, err := DefaultConfig().ToSorter()
		req.NoError(err)
		req.Equal(sorter.Config{
			SortBy:              sorter.SortNone,
			SortNamedBindingsBy: sorter.SortAscending,
		}, out)
	})

	t.Run("full configuration", func(t *testing.T) {
		req := require.New(t)

		cfg := &Config{
			Priority:          []string{"Relative_Path", "module"},
			SeparateOrigins:   true,
			SeparateMultiline: true,
			SortBy:            "descending",
			SortBindings:      true,
			SortBindingsBy:    "longer-first",
			PathPrefixes:      []string{" common ", "", "app"},
		}
		out, err := cfg.ToSorter()
		req.NoError(err)
		req.Equal(sorter.Config{
			Priority:            []sorter.Origin{sorter.RelativePathOrigin, sorter.ModuleOrigin},
			SeparateByOrigin:    true,
			SeparateMultiline:   true,
			SortBy:              sorter.SortDescending,
			SortNamedBindings:   true,
			SortNamedBindingsBy: sorter.SortLongerFirst,
			PathPrefixes:        []string{"common", "app"},
		}, out)
	})

	t.Run("unknown classification name", func(t *testing.T) {
		req := require.New(t)

		cfg := DefaultConfig()
		cfg.Priority = []string{"vendor"}
		_, err := cfg.ToSorter()
		req.Error(err)
		req.Contains(err.Error(), "invalid classification name")
	})

	t.Run("unknown sort policy", func(t *testing.T) {
		req := require.New(t)

		cfg := DefaultConfig()
		cfg.SortBy = "alphabetical"
		_, err := cfg.ToSorter()
		req.Error(err)
		req.Contains(err.Error(), "invalid sort policy")
	})
}

func TestDiscover(t *testing.T) {
	req := require.New(t)
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, FileName)
	req.NoError(os.WriteFile(configPath, []byte("sort_by: ascending\n"), 0644))

	subDir := filepath.Join(tempDir, "src")
	req.NoError(os.MkdirAll(subDir, 0755))

	req.Equal("/etc/eis.yaml", Discover("/etc/eis.yaml", subDir), "explicit path wins")
	req.Equal(configPath, Discover("", subDir), "nearest config found from subdirectory")
}
