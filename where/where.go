// Package where resolves the per-user directories animedex reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/anisan-cli/animedex/constant"
	"github.com/anisan-cli/animedex/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "ANIMEDEX_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring ANIMEDEX_CONFIG_PATH
// and falling back to the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory. It is never used for catalog data, only
// for bookkeeping such as the resume snapshot and the release check.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs returns the directory holding dated log files.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Resume returns the file storing the last viewed list page.
func Resume() string {
	return filepath.Join(Cache(), "resume.json")
}

// Release returns the file caching the latest published version tag.
func Release() string {
	return filepath.Join(Cache(), "version.json")
}

// Temp returns a scratch directory.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}
