// Package paths resolves the configuration directory and the plan files
// kept in it.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Names inside the configuration directory.
const (
	AppDirName     = "cerealstore"
	ConfigFileName = "config.yaml"
	PlansDirName   = "plans"
)

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "CEREALSTORE_CONFIG_DIR"

// ErrPlanNotFound is returned when a plan name resolves to no file.
var ErrPlanNotFound = errors.New("plan not found")

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/cerealstore (fallback ~/.config/cerealstore)
// macOS:   ~/Library/Application Support/cerealstore
// Windows: %APPDATA%/cerealstore
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CEREALSTORE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// PlansDir returns the directory holding named plans inside configDir.
func PlansDir(configDir string) string {
	return filepath.Join(configDir, PlansDirName)
}

// ResolvePlan finds the plan file for name. An existing path wins;
// otherwise name is looked up in the plans directory, with and without a
// ".yaml" extension. Returns ErrPlanNotFound if nothing matches.
func ResolvePlan(name, configDir string) (string, error) {
	candidates := []string{name}
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		dir := PlansDir(configDir)
		candidates = append(candidates, filepath.Join(dir, name))
		if filepath.Ext(name) == "" {
			candidates = append(candidates, filepath.Join(dir, name+".yaml"))
		}
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return filepath.Abs(c)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPlanNotFound, name)
}
