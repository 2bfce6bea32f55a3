package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var defaults embed.FS

// Keys lists the embedded configurations.
func Keys() []string {
	files, _ := fs.Glob(defaults, "*.yaml")
	keys := make([]string, len(files))
	for i, f := range files {
		keys[i] = f[:len(f)-len(".yaml")]
	}
	return keys
}

// Load loads the config for the given key into v.
// A '<key>.yaml' file in dir takes precedence over the embedded default.
func Load(dir string, key string, v interface{}) error {

	b, source, err := read(dir, key)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	err = dec.Decode(v)
	if err != nil {
		return fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
	}

	log.Debug().Str("config", key).Str("source", source).Msg("loaded config")

	return nil

}

func read(dir, key string) ([]byte, string, error) {
	name := fmt.Sprintf("%s.yaml", key)
	if dir != "" {
		p := filepath.Join(dir, name)
		b, err := os.ReadFile(p)
		if err == nil {
			return b, p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("could not read config '%s': %w", p, err)
		}
	}
	b, err := defaults.ReadFile(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not find config for %s: %w", key, err)
	}
	return b, "embedded", nil
}
