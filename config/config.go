package config

import (
	"os"
	"path/filepath"

	"github.com/abhishekvash/bare-minimum-theory/constants"
	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type LibraryBackend string

const (
	BackendFile     LibraryBackend = "file"
	BackendDynamoDB LibraryBackend = "dynamodb"
)

// PlaybackConfig controls export and live playback
type PlaybackConfig struct {
	BPM           int    `yaml:"bpm"`
	BeatsPerChord int    `yaml:"beatsPerChord"`
	Velocity      uint8  `yaml:"velocity"`
	Channel       uint8  `yaml:"channel"`
	OutputPort    string `yaml:"outputPort,omitempty"`
	InputPort     string `yaml:"inputPort,omitempty"`
}

// ChordDefaults fill fields a chord leaves out. Octave shifts every chord
// from flags, progression files and HTTP bodies alike.
type ChordDefaults struct {
	Voicing model.Voicing `yaml:"voicing"`
	Octave  int           `yaml:"octave"`
}

type DynamoDBConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region"`
	Table    string `yaml:"table"`
}

type LibraryConfig struct {
	Backend  LibraryBackend `yaml:"backend"`
	Path     string         `yaml:"path,omitempty"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Chord    ChordDefaults  `yaml:"chord"`
	Playback PlaybackConfig `yaml:"playback"`
	Library  LibraryConfig  `yaml:"library"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Chord: ChordDefaults{
			Voicing: model.VoicingClose,
		},
		Playback: PlaybackConfig{
			BPM:           120,
			BeatsPerChord: 4,
			Velocity:      100,
		},
		Library: LibraryConfig{
			Backend: BackendFile,
			DynamoDB: DynamoDBConfig{
				Region: "us-east-1",
				Table:  "bare-minimum-theory-progressions",
			},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LibraryPath is where the file backend keeps progressions.
func (c *Config) LibraryPath() string {
	if path := constants.GetLibraryPath(); path != "" {
		return path
	}
	if c.Library.Path != "" {
		return c.Library.Path
	}
	return filepath.Join(constants.GetConfigDir(), "library.dat")
}

// Load reads the config at path, or returns defaults if there is none.
// Missing keys keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing config %s", path)
}
