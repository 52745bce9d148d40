package constants

import (
	"os"
	"path/filepath"
)

const SemitonesPerOctave = 12

const (
	MinMidiNote = 0
	MaxMidiNote = 127
)

// 60 is middle C
const MiddleC = 60

const AppName = "bare-minimum-theory"

func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppName)
}

func GetConfigPath() string {
	path := os.Getenv("BMT_CONFIG")
	if path != "" {
		return path
	}
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetLibraryPath returns the override for the local progression library, if any.
func GetLibraryPath() string {
	return os.Getenv("BMT_LIBRARY_PATH")
}

func GetExportDir() string {
	path := os.Getenv("BMT_EXPORT_DIR")
	if path != "" {
		return path
	}
	return "."
}
