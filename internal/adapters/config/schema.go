package config

import "go.trai.ch/lein/internal/core/domain"

// CurrentVersion is the configuration file version written by Save.
const CurrentVersion = "1"

// File represents the structure of the lein.yaml configuration file.
type File struct {
	Version            string             `yaml:"version"`
	PreferAutoDownload bool               `yaml:"preferAutoDownload"`
	Installations      []InstallationDTO  `yaml:"installations"`
	Nodes              map[string]NodeDTO `yaml:"nodes,omitempty"`
}

// InstallationDTO represents an installation definition in the configuration.
type InstallationDTO struct {
	Name       string            `yaml:"name"`
	Home       string            `yaml:"home"`
	Properties []domain.Property `yaml:"properties,omitempty"`
}

// NodeDTO holds the per-node tool locations.
type NodeDTO struct {
	// ToolLocations maps installation name to its home on the node.
	ToolLocations map[string]string `yaml:"toolLocations"`
}
