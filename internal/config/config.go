package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mgpai22/scriptkit/internal/script"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PreviewRows    int
	Delimiter      string
	ColumnsFile    string
	DefaultEpisode string
}

// Load reads an optional .env file and then the SCRIPTKIT_* environment.
// A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return &Config{
		PreviewRows:    getEnvInt("SCRIPTKIT_PREVIEW_ROWS", 5),
		Delimiter:      getEnv("SCRIPTKIT_DELIMITER", "\t"),
		ColumnsFile:    getEnv("SCRIPTKIT_COLUMNS_FILE", ""),
		DefaultEpisode: getEnv("SCRIPTKIT_EPISODE_ID", ""),
	}, nil
}

// column mapping file, e.g.
//
//	start_time_column: 0
//	text_column: 2
//	end_time_column: 1
type columnsFile struct {
	StartTimeColumn *int `yaml:"start_time_column"`
	TextColumn      *int `yaml:"text_column"`
	EndTimeColumn   *int `yaml:"end_time_column"`
}

// LoadColumnConfig reads a YAML column mapping. The start and text columns
// are required; the end column is optional.
func LoadColumnConfig(path string) (*script.ColumnConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column config: %w", err)
	}
	return ParseColumnConfig(data)
}

func ParseColumnConfig(data []byte) (*script.ColumnConfig, error) {
	var f columnsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse column config: %w", err)
	}

	if f.StartTimeColumn == nil {
		return nil, fmt.Errorf("%w: start_time_column is required", script.ErrInvalidColumnConfig)
	}
	if f.TextColumn == nil {
		return nil, fmt.Errorf("%w: text_column is required", script.ErrInvalidColumnConfig)
	}

	cfg := &script.ColumnConfig{
		StartTimeColumnIndex: *f.StartTimeColumn,
		TextColumnIndex:      *f.TextColumn,
		EndTimeColumnIndex:   f.EndTimeColumn,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
