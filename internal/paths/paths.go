package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Platform names the host operating system using the directory segment the
// managed binary is installed under.
type Platform string

const (
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

// CurrentPlatform maps runtime.GOOS onto the supported platform set.
func CurrentPlatform() (Platform, error) {
	return platformForGOOS(runtime.GOOS)
}

func platformForGOOS(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return PlatformMacOS, nil
	case "windows":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", goos)
	}
}

// ExecutableName returns the ffmpeg file name for the platform.
func (p Platform) ExecutableName() string {
	if p == PlatformWindows {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// InstallPaths captures the canonical locations for a managed installation.
type InstallPaths struct {
	DataDir  string
	Platform Platform
	BinDir   string
	Binary   string
	LogsDir  string
}

// Resolve determines install locations from the optional --data-dir flag, the
// USEFFMPEG_DATA_DIR environment variable, or the per-OS default directory.
func Resolve(dataDirFlag string) (InstallPaths, error) {
	platform, err := CurrentPlatform()
	if err != nil {
		return InstallPaths{}, err
	}

	dataDir := dataDirFlag
	if dataDir == "" {
		dataDir = os.Getenv("USEFFMPEG_DATA_DIR")
	}
	if dataDir == "" {
		dataDir, err = defaultDataDir()
		if err != nil {
			return InstallPaths{}, err
		}
	}

	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return InstallPaths{}, fmt.Errorf("resolve data dir: %w", err)
	}

	return newInstallPaths(abs, platform), nil
}

func newInstallPaths(dataDir string, platform Platform) InstallPaths {
	binDir := filepath.Join(dataDir, "bin", string(platform))
	return InstallPaths{
		DataDir:  dataDir,
		Platform: platform,
		BinDir:   binDir,
		Binary:   filepath.Join(binDir, platform.ExecutableName()),
		LogsDir:  filepath.Join(dataDir, "logs"),
	}
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "useffmpeg"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "useffmpeg"), nil
		}
		return filepath.Join(home, "AppData", "Local", "useffmpeg"), nil
	default:
		return filepath.Join(home, ".local", "share", "useffmpeg"), nil
	}
}

// ConfigFile returns the optional YAML configuration file path.
func (p InstallPaths) ConfigFile() string {
	return filepath.Join(p.DataDir, "useffmpeg.yaml")
}

// EnsureBinDir creates the platform bin directory.
func (p InstallPaths) EnsureBinDir() error {
	if err := os.MkdirAll(p.BinDir, 0o755); err != nil {
		return fmt.Errorf("create bin directory %s: %w", p.BinDir, err)
	}
	return nil
}

// Installed reports whether the managed binary is present and, on platforms
// that support the executable bit, runnable. Stat failures of any kind
// (including permission errors) report "not installed" rather than an error.
func (p InstallPaths) Installed() bool {
	return BinaryExists(p.Binary, p.Platform)
}

// BinaryExists checks that path is a regular file and, off Windows, carries an
// executable permission bit.
func BinaryExists(path string, platform Platform) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	if platform == PlatformWindows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
