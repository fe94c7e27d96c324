package ffmpeg

import (
	"fmt"
	"strings"

	"useffmpeg/internal/paths"
)

// DownloadSpec names a source archive and the path of the ffmpeg executable
// inside it.
type DownloadSpec struct {
	URL            string `json:"url" yaml:"url"`
	ExecutablePath string `json:"executablePath" yaml:"executable_path"`
}

// Validate checks that both fields are populated.
func (s DownloadSpec) Validate() error {
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("download spec: url is required")
	}
	if strings.TrimSpace(s.ExecutablePath) == "" {
		return fmt.Errorf("download spec: executable path is required")
	}
	return nil
}

// defaultSpecs lists the built-in archive sources. Linux deliberately has no
// entry; callers on Linux must supply their own spec.
var defaultSpecs = map[paths.Platform]DownloadSpec{
	paths.PlatformMacOS: {
		URL:            "https://evermeet.cx/ffmpeg/ffmpeg-8.0.zip",
		ExecutablePath: "ffmpeg",
	},
	paths.PlatformWindows: {
		URL:            "https://github.com/BtbN/FFmpeg-Builds/releases/download/latest/ffmpeg-n8.0-latest-win64-gpl-8.0.zip",
		ExecutablePath: "bin/ffmpeg.exe",
	},
}

// DefaultSpec returns the built-in download spec for the platform.
func DefaultSpec(platform paths.Platform) (DownloadSpec, bool) {
	spec, ok := defaultSpecs[platform]
	return spec, ok
}

// resolveSpec picks the caller-supplied spec when present, otherwise the
// built-in default for the platform.
func resolveSpec(platform paths.Platform, override *DownloadSpec) (DownloadSpec, error) {
	if override != nil {
		if err := override.Validate(); err != nil {
			return DownloadSpec{}, err
		}
		return *override, nil
	}
	spec, ok := DefaultSpec(platform)
	if !ok {
		return DownloadSpec{}, fmt.Errorf("%w %s", ErrUnsupportedPlatform, platform)
	}
	return spec, nil
}
