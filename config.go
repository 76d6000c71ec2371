// Package awp couples a fault-rupture source catalog to a block-decomposed
// 3-D finite-difference elastic-wave simulation: it loads the catalog, selects
// the nodes owned by each partition, and injects the rupture-rate perturbation
// into the local stress field every timestep.
package awp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andy-lcw/awp-odc-os/source"
)

// Config is the full run configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Source SourceConfig `yaml:"source"`
	// Steps is the number of timesteps to advance; must not exceed
	// source.readStep, the in-memory rupture chunk length.
	Steps int `yaml:"steps"`
	// Patches is the number of patches each partition's sub-volume is split
	// into (along x). Defaults to 1.
	Patches int `yaml:"patches"`
}

// GridConfig describes the global grid and the process decomposition.
type GridConfig struct {
	NX int     `yaml:"nx"` // global node count, x
	NY int     `yaml:"ny"` // global node count, y
	NZ int     `yaml:"nz"` // global node count, z (vertical)
	PX int     `yaml:"px"` // process count, x
	PY int     `yaml:"py"` // process count, y (each rank owns every z node)
	DH float64 `yaml:"dh"` // uniform spatial discretization [m]
	DT float64 `yaml:"dt"` // timestep length [s]
}

// SourceConfig describes the rupture catalog.
type SourceConfig struct {
	Mode        string `yaml:"mode"` // text | legacy-binary | split
	Count       int    `yaml:"count"`
	ReadStep    int    `yaml:"readStep"`
	TotalSteps  int    `yaml:"totalSteps"`
	Path        string `yaml:"path"`
	SplitPrefix string `yaml:"splitPrefix"`
	// Strict turns a missing/unreadable catalog into a load error. When
	// false the run degrades to zero sources with a diagnostic.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns a Config with workable defaults for a single-rank run.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			NX: 64, NY: 64, NZ: 64,
			PX: 1, PY: 1,
			DH: 100., DT: .005,
		},
		Source: SourceConfig{
			Mode:       "text",
			ReadStep:   100,
			TotalSteps: 100,
		},
		Steps:   100,
		Patches: 1,
	}
}

// LoadConfig reads a yaml run configuration.
func LoadConfig(fp string) (*Config, error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf(" config.Load %v", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf(" config.Load %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks internal consistency before any partition state is built.
func (c *Config) Validate() error {
	g := &c.Grid
	if g.NX < 1 || g.NY < 1 || g.NZ < 1 {
		return fmt.Errorf("grid: node counts must be positive (%d,%d,%d)", g.NX, g.NY, g.NZ)
	}
	if g.PX < 1 || g.PY < 1 {
		return fmt.Errorf("grid: process topology must be positive (%dx%d)", g.PX, g.PY)
	}
	if g.NX%g.PX != 0 || g.NY%g.PY != 0 {
		return fmt.Errorf("grid: %dx%d nodes not divisible over %dx%d processes", g.NX, g.NY, g.PX, g.PY)
	}
	if g.DH <= 0 || g.DT <= 0 {
		return fmt.Errorf("grid: dh and dt must be positive")
	}
	if _, err := source.ParseFormat(c.Source.Mode); err != nil {
		return err
	}
	if c.Source.Count > 0 {
		if c.Source.ReadStep < 1 {
			return fmt.Errorf("source: readStep must be positive")
		}
		if c.Source.ReadStep > c.Source.TotalSteps {
			return fmt.Errorf("source: readStep %d exceeds totalSteps %d", c.Source.ReadStep, c.Source.TotalSteps)
		}
		if c.Steps > c.Source.ReadStep {
			return fmt.Errorf("steps %d exceeds the %d-sample rupture chunk held in memory", c.Steps, c.Source.ReadStep)
		}
	}
	if c.Patches < 1 {
		c.Patches = 1
	}
	return nil
}

// SourceCatalog maps the source section onto the loader's parameter struct.
func (c *Config) SourceCatalog() source.CatalogConfig {
	return source.CatalogConfig{
		Format:      source.MustFormat(c.Source.Mode),
		Count:       c.Source.Count,
		ReadStep:    c.Source.ReadStep,
		TotalSteps:  c.Source.TotalSteps,
		NZ:          c.Grid.NZ,
		Path:        c.Source.Path,
		SplitPrefix: c.Source.SplitPrefix,
		Strict:      c.Source.Strict,
	}
}
