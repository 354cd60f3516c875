// Package config provides the YAML configuration store for lein-step.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the name of the configuration file.
	Filename = "lein.yaml"
	// PathVariable overrides the configuration file location.
	PathVariable = "LEIN_STEP_CONFIG"
)

// DefaultPath returns the configuration file location: $LEIN_STEP_CONFIG when
// set, lein-step/lein.yaml under the user configuration directory otherwise.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathVariable); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate user configuration directory")
	}
	return filepath.Join(dir, "lein-step", Filename), nil
}

// Store implements ports.ConfigStore using a YAML file.
type Store struct {
	Path string
}

// NewStore creates a Store reading and writing path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the configuration file. A missing file yields an empty configuration.
func (s *Store) Load() (*domain.Config, error) {
	data, err := os.ReadFile(s.Path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", s.Path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", s.Path)
	}

	if err := Validate(&file); err != nil {
		return nil, zerr.With(err, "path", s.Path)
	}
	return toDomain(&file), nil
}

// Save validates cfg and atomically replaces the configuration file.
func (s *Store) Save(cfg *domain.Config) error {
	file := fromDomain(cfg)
	if err := Validate(file); err != nil {
		return err
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return zerr.Wrap(err, "failed to encode config file")
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create config directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, Filename+".*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary config file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write config file")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to write config file")
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace config file"), "path", s.Path)
	}
	return nil
}

// Validate checks the configuration file and reports every problem found.
func Validate(file *File) error {
	var result *multierror.Error

	if file.Version != "" && file.Version != CurrentVersion {
		result = multierror.Append(result, invalid("unsupported config version", "version", file.Version))
	}

	seen := make(map[string]bool, len(file.Installations))
	for i, inst := range file.Installations {
		switch {
		case inst.Name == "":
			result = multierror.Append(result, invalid("installation name is empty", "index", i))
		case seen[inst.Name]:
			result = multierror.Append(result, invalid("duplicate installation name", "installation", inst.Name))
		}
		seen[inst.Name] = true

		if domain.LaunderHome(inst.Home) == "" {
			result = multierror.Append(result, invalid("installation home is empty", "installation", inst.Name))
		}
	}

	for node, dto := range file.Nodes {
		for name := range dto.ToolLocations {
			if !seen[name] {
				result = multierror.Append(result,
					zerr.With(invalid("tool location for unknown installation", "installation", name), "node", node))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return zerr.Wrap(err, "invalid configuration")
	}
	return nil
}

func invalid(msg, key string, value any) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, msg), key, value)
}

func toDomain(file *File) *domain.Config {
	cfg := &domain.Config{
		PreferAutoDownload: file.PreferAutoDownload,
		Installations:      make([]domain.Installation, 0, len(file.Installations)),
	}
	for _, dto := range file.Installations {
		cfg.Installations = append(cfg.Installations, domain.NewInstallation(dto.Name, dto.Home, dto.Properties))
	}
	if len(file.Nodes) > 0 {
		cfg.NodeLocations = make(map[string]map[string]string, len(file.Nodes))
		for node, dto := range file.Nodes {
			cfg.NodeLocations[node] = dto.ToolLocations
		}
	}
	return cfg
}

func fromDomain(cfg *domain.Config) *File {
	file := &File{Version: CurrentVersion}
	if cfg == nil {
		return file
	}
	file.PreferAutoDownload = cfg.PreferAutoDownload
	for _, inst := range cfg.Installations {
		file.Installations = append(file.Installations, InstallationDTO{
			Name:       inst.Name(),
			Home:       inst.Home(),
			Properties: inst.Properties(),
		})
	}
	if len(cfg.NodeLocations) > 0 {
		file.Nodes = make(map[string]NodeDTO, len(cfg.NodeLocations))
		for node, locations := range cfg.NodeLocations {
			file.Nodes[node] = NodeDTO{ToolLocations: locations}
		}
	}
	return file
}
