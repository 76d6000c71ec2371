package source

import (
	"sync"

	"github.com/andy-lcw/awp-odc-os/grid"
)

// Sources is one partition's retained fault-source state: the owned node list
// produced at initialization, consumed once per timestep for the lifetime of
// the run.
type Sources struct {
	Local  *Local
	dh, dt float64
}

// New loads the catalog and filters it against the partition's bounds. Every
// rank reads the full catalog independently; use SharedCatalog when a single
// reader is preferred. Load-time errors are resolved here, once; injection
// does not fail afterwards under normal operation.
func New(cfg CatalogConfig, b grid.Bounds, rank int, dh, dt float64) (*Sources, error) {
	cat, err := Load(cfg)
	if err != nil {
		return nil, err
	}
	return FromCatalog(cat, b, rank, dh, dt), nil
}

// FromCatalog filters an already loaded catalog, for callers sharing one
// load across partitions.
func FromCatalog(cat *Catalog, b grid.Bounds, rank int, dh, dt float64) *Sources {
	return &Sources{Local: Filter(cat, b, rank), dh: dh, dt: dt}
}

func (s *Sources) Owned() bool { return s.Local.Owned() }
func (s *Sources) Count() int  { return s.Local.Len() }

// AddSrc injects the rupture perturbation for chunk timestep i.
func (s *Sources) AddSrc(i int, pd *grid.PatchDecomp) error {
	return s.Local.Inject(i, s.dh, s.dt, pd)
}

// SharedCatalog is the single-reader alternative to every-rank catalog
// parsing: the first Load call reads the file, later callers get the cached
// catalog. One failing reader fails every partition, where the per-rank path
// fails each independently.
type SharedCatalog struct {
	cfg  CatalogConfig
	once sync.Once
	cat  *Catalog
	err  error
}

func NewShared(cfg CatalogConfig) *SharedCatalog {
	return &SharedCatalog{cfg: cfg}
}

func (s *SharedCatalog) Load() (*Catalog, error) {
	s.once.Do(func() { s.cat, s.err = Load(s.cfg) })
	return s.cat, s.err
}

// Sources filters the shared catalog for one partition.
func (s *SharedCatalog) Sources(b grid.Bounds, rank int, dh, dt float64) (*Sources, error) {
	cat, err := s.Load()
	if err != nil {
		return nil, err
	}
	return FromCatalog(cat, b, rank, dh, dt), nil
}
