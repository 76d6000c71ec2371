// Package model assembles one partition's share of the simulation and drives
// the timestep loop.
package model

import (
	"fmt"

	awp "github.com/andy-lcw/awp-odc-os"
	"github.com/andy-lcw/awp-odc-os/grid"
	"github.com/andy-lcw/awp-odc-os/source"
)

// Domain holds all per-rank data and is the parent to the timestep loop.
type Domain struct {
	Cfg    *awp.Config
	Rank   int
	Bounds grid.Bounds
	PD     *grid.PatchDecomp
	Src    *source.Sources
}

// NewDomain builds rank's partition: its halo-inclusive bounds, the
// patch-decomposed stress storage, and the filtered fault-source state. All
// catalog errors surface here, before the first timestep.
func NewDomain(cfg *awp.Config, rank int, newField grid.FieldFactory) (*Domain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if newField == nil {
		newField = grid.NewSoA
	}

	d := &grid.Definition{
		NX: cfg.Grid.NX, NY: cfg.Grid.NY, NZ: cfg.Grid.NZ,
		PX: cfg.Grid.PX, PY: cfg.Grid.PY,
		DH: cfg.Grid.DH, DT: cfg.Grid.DT,
	}
	topo, err := grid.NewTopology(d)
	if err != nil {
		return nil, err
	}
	b, err := topo.PartitionBounds(rank)
	if err != nil {
		return nil, err
	}

	pd, err := grid.NewPatchDecomp(b.RangeX(), b.RangeY(), b.RangeZ(), cfg.Patches, newField)
	if err != nil {
		return nil, err
	}

	src, err := source.New(cfg.SourceCatalog(), b, rank, d.DH, d.DT)
	if err != nil {
		return nil, fmt.Errorf(" model.NewDomain rank %d: %v", rank, err)
	}
	if src.Owned() {
		fmt.Printf(" rank %d owns %d fault source nodes\n", rank, src.Count())
	}

	return &Domain{Cfg: cfg, Rank: rank, Bounds: b, PD: pd, Src: src}, nil
}

// NewDomains builds every rank of the topology against one shared catalog
// read, the single-reader alternative to per-rank loads.
func NewDomains(cfg *awp.Config, newField grid.FieldFactory) ([]*Domain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if newField == nil {
		newField = grid.NewSoA
	}

	d := &grid.Definition{
		NX: cfg.Grid.NX, NY: cfg.Grid.NY, NZ: cfg.Grid.NZ,
		PX: cfg.Grid.PX, PY: cfg.Grid.PY,
		DH: cfg.Grid.DH, DT: cfg.Grid.DT,
	}
	topo, err := grid.NewTopology(d)
	if err != nil {
		return nil, err
	}

	shared := source.NewShared(cfg.SourceCatalog())
	doms := make([]*Domain, topo.NumRanks())
	for rank := range doms {
		b, err := topo.PartitionBounds(rank)
		if err != nil {
			return nil, err
		}
		pd, err := grid.NewPatchDecomp(b.RangeX(), b.RangeY(), b.RangeZ(), cfg.Patches, newField)
		if err != nil {
			return nil, err
		}
		src, err := shared.Sources(b, rank, d.DH, d.DT)
		if err != nil {
			return nil, fmt.Errorf(" model.NewDomains rank %d: %v", rank, err)
		}
		doms[rank] = &Domain{Cfg: cfg, Rank: rank, Bounds: b, PD: pd, Src: src}
	}
	return doms, nil
}
