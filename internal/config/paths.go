package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user configuration directory for evkit.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "evkit"), nil
}

// systemConfigDir is where root services keep their configuration.
func systemConfigDir() string {
	return filepath.Join(string(os.PathSeparator), "etc", "evkit")
}

// ConfigCandidatePaths returns the config file paths probed per format, in
// priority order: an explicit user-supplied path first, then the working
// directory, the user config dir, and for root the system dir. Missing files
// are skipped by the loaders.
func ConfigCandidatePaths(userConfig string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	dirs = append(dirs, ".")
	if userDir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, userDir)
	}
	if os.Geteuid() == 0 {
		dirs = append(dirs, systemConfigDir())
	}

	if userConfig != "" {
		switch filepath.Ext(userConfig) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userConfig)
		case ".toml":
			tomlPaths = append(tomlPaths, userConfig)
		default:
			jsonPaths = append(jsonPaths, userConfig)
		}
	}

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "evkit.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "evkit.yaml"), filepath.Join(dir, "evkit.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "evkit.toml"))
	}
	return jsonPaths, yamlPaths, tomlPaths
}
