package source

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/maseology/mmio"
)

// Format selects the on-disk catalog variant.
type Format int

const (
	Text         Format = iota // ascii: 3 ints then READ_STEP lines of 6 floats per node
	LegacyBinary               // binary: 3 int32 then NST*6 float32 per node
	Split                      // pre-partitioned per-rank files; not implemented
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case LegacyBinary:
		return "legacy-binary"
	case Split:
		return "split"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a mode string from configuration onto a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text":
		return Text, nil
	case "legacy-binary":
		return LegacyBinary, nil
	case "split":
		return Split, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// MustFormat is ParseFormat for mode strings already validated.
func MustFormat(s string) Format {
	f, err := ParseFormat(s)
	if err != nil {
		panic(err)
	}
	return f
}

type catalogReader interface {
	read(cfg CatalogConfig) (*Catalog, error)
}

func (f Format) reader() (catalogReader, error) {
	switch f {
	case Text:
		return textReader{}, nil
	case LegacyBinary:
		return legacyBinaryReader{}, nil
	case Split:
		return nil, fmt.Errorf("%w: split-mode catalog is not implemented; use the legacy-binary mode", ErrUnsupportedFormat)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Load parses the catalog named by cfg into global coordinates, flipping the
// vertical axis (z = NZ+1-z_file). A Count below 1 succeeds trivially with an
// empty catalog and no file access. A file that cannot be opened degrades to
// an empty catalog with a diagnostic unless cfg.Strict is set.
func Load(cfg CatalogConfig) (*Catalog, error) {
	if cfg.Count < 1 {
		return &Catalog{ReadStep: cfg.ReadStep}, nil
	}
	rd, err := cfg.Format.reader()
	if err != nil {
		return nil, err
	}
	if cfg.ReadStep < 1 || cfg.ReadStep > cfg.TotalSteps {
		return nil, fmt.Errorf(" source.Load: readStep %d not in [1, totalSteps %d]", cfg.ReadStep, cfg.TotalSteps)
	}
	if _, ok := mmio.FileExists(cfg.Path); !ok {
		if cfg.Strict {
			return nil, fmt.Errorf(" source.Load: cannot open catalog %s", cfg.Path)
		}
		fmt.Printf(" can't open catalog %s; continuing with zero sources\n", cfg.Path)
		return &Catalog{ReadStep: cfg.ReadStep}, nil
	}
	return rd.read(cfg)
}

type textReader struct{}

func (textReader) read(cfg CatalogConfig) (*Catalog, error) {
	lines := mmio.ReadTextLines(cfg.Path)
	cur := 0
	next := func() []string {
		for cur < len(lines) {
			fs := strings.Fields(lines[cur])
			cur++
			if len(fs) > 0 {
				return fs
			}
		}
		return nil
	}

	c := newCatalog(cfg.Count, cfg.ReadStep)
	for i := 0; i < cfg.Count; i++ {
		fs := next()
		if len(fs) != 3 {
			return nil, fmt.Errorf("%w: node %d: want 3 indices, got %q", ErrMalformedRecord, i, strings.Join(fs, " "))
		}
		for d, s := range fs {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: node %d: %v", ErrMalformedRecord, i, err)
			}
			switch d {
			case 0:
				c.X[i] = v
			case 1:
				c.Y[i] = v
			case 2:
				c.Z[i] = cfg.NZ + 1 - v // depth on file, upward index internally
			}
		}
		for j := 0; j < cfg.ReadStep; j++ {
			fs := next()
			if len(fs) != 6 {
				return nil, fmt.Errorf("%w: node %d sample %d: want 6 values, got %d", ErrMalformedRecord, i, j, len(fs))
			}
			sr := c.series(i)
			for k, s := range fs {
				v, err := strconv.ParseFloat(s, 32)
				if err != nil {
					return nil, fmt.Errorf("%w: node %d sample %d: %v", ErrMalformedRecord, i, j, err)
				}
				sr[k][j] = float32(v)
			}
		}
	}
	return c, nil
}

type legacyBinaryReader struct{}

type binRecord struct{ X, Y, Z int32 }

// read decodes fixed-size binary records. Known quirk, kept for parity with
// the original implementation: every record carries NST*6 samples and all of
// them are consumed, but only the leading ReadStep are retained, so repeated
// loads re-yield the same leading window rather than consecutive chunks.
func (legacyBinaryReader) read(cfg CatalogConfig) (*Catalog, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf(" source.Load %v", err)
	}
	defer f.Close()
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf(" source.Load mmap %v", err)
	}
	defer m.Unmap()

	b := bytes.NewReader(m)
	c := newCatalog(cfg.Count, cfg.ReadStep)
	scratch := make([]float32, cfg.TotalSteps*6)
	for i := 0; i < cfg.Count; i++ {
		var rec binRecord
		if err := binary.Read(b, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: node %d indices: %v", ErrMalformedRecord, i, err)
		}
		if err := binary.Read(b, binary.LittleEndian, scratch); err != nil {
			return nil, fmt.Errorf("%w: node %d samples: %v", ErrMalformedRecord, i, err)
		}
		c.X[i] = int(rec.X)
		c.Y[i] = int(rec.Y)
		c.Z[i] = cfg.NZ + 1 - int(rec.Z)
		for j := 0; j < cfg.ReadStep; j++ {
			c.Axx[i][j] = scratch[j*6]
			c.Ayy[i][j] = scratch[j*6+1]
			c.Azz[i][j] = scratch[j*6+2]
			c.Axz[i][j] = scratch[j*6+3]
			c.Ayz[i][j] = scratch[j*6+4]
			c.Axy[i][j] = scratch[j*6+5]
		}
	}
	return c, nil
}
