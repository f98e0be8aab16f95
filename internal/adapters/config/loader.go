// Package config provides the configuration loader for bump.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML and TOML files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the configuration for the workspace rooted at dir. An explicit
// path must exist; otherwise the well-known names are probed and the
// defaults are returned when none is present.
func (l *Loader) Load(dir, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, err := l.findConfiguration(dir, path)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		return &cfg, nil
	}

	if err := decodeFile(configPath, &cfg); err != nil {
		return nil, err
	}
	if err := l.validateConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	l.Logger.Info(fmt.Sprintf("using configuration %s", configPath))
	return &cfg, nil
}

func (l *Loader) findConfiguration(dir, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}

	for _, name := range domain.ConfigFileNames {
		candidate := filepath.Join(dir, name)
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}
	}
	return "", nil
}

// decodeFile unmarshals the file onto cfg, so keys absent from the file
// keep their default values. Unknown keys are rejected.
func decodeFile(path string, cfg *domain.Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func (l *Loader) validateConfig(path string, cfg *domain.Config) error {
	err := l.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	wrapped := zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		wrapped = zerr.With(wrapped, "field", fieldErrs[0].Namespace())
	}
	return wrapped
}
