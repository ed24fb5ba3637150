package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories, env prefixes and the user agent
	AppName = "repogallery"

	// EnvPrefix is the prefix of every environment variable the application reads
	EnvPrefix = "REPOGALLERY"
)

var (
	// Version is injected at build time with -ldflags "-X ...application.Version=..."
	Version = "dev"

	once   sync.Once
	appDir string
	errDir error
)

// UserAgent returns the User-Agent sent to the GitHub API.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}

// GetApplicationDirectory returns the repogallery state directory path.
// Linux: ~/.config/repogallery (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\repogallery (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
