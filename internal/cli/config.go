package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"caesar/internal/ctxlog"
	"caesar/internal/rot"
	"caesar/internal/store"
)

const defaultConfigFile = "caesar.yaml"

type Config struct {
	Rotate    int    `yaml:"rotate"`
	Method    string `yaml:"method"`
	Encrypted string `yaml:"encrypted"`
	Decrypted string `yaml:"decrypted"`
	History   string `yaml:"history"`
}

func DefaultConfig() Config {
	return Config{
		Rotate:    3,
		Method:    string(rot.Table),
		Encrypted: store.DefaultEncrypted,
		Decrypted: store.DefaultDecrypted,
		History:   "history.db",
	}
}

// LoadConfig reads a YAML config on top of the built-in defaults. A missing
// file is only an error when the path was given explicitly.
func LoadConfig(ctx context.Context, filename string, explicit bool) (Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return config, nil
		}
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	return config, nil
}
