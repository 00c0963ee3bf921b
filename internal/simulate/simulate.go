// Package simulate generates synthetic sequencing reads from reference
// sequences. A Simulator walks each input record region by region, draws
// fragment offsets and lengths for the configured mode, assembles reads
// with randomized strand orientation, and hands them to a caller-supplied
// callback so a whole run never sits in memory at once.
package simulate

import "fmt"

// Mode selects the sequencing library profile to imitate.
type Mode int

const (
	ModeSingle   Mode = iota // single-end short reads
	ModePaired               // paired-end short reads, inward facing
	ModeMatePair             // mate-pair libraries, outward facing
	ModePacBio               // long reads with dispersed lengths
	ModeContig               // tiled contigs, FASTA output
)

// ParseMode maps a command line mode name onto its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "se":
		return ModeSingle, nil
	case "pe":
		return ModePaired, nil
	case "mp":
		return ModeMatePair, nil
	case "pacbio":
		return ModePacBio, nil
	case "contig":
		return ModeContig, nil
	}
	return 0, fmt.Errorf("unknown mode %q (choose se, pe, mp, pacbio or contig)", s)
}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "se"
	case ModePaired:
		return "pe"
	case ModeMatePair:
		return "mp"
	case ModePacBio:
		return "pacbio"
	case ModeContig:
		return "contig"
	}
	return "invalid"
}

// paired reports whether the mode emits two reads per fragment.
func (m Mode) paired() bool { return m == ModePaired || m == ModeMatePair }

// Defaults for the optional Config fields.
const (
	DefaultRegionLength = 200000
	DefaultInsertSize   = 180
	DefaultPrefix       = "r"
)

// Config is the resolved configuration for one run. Zero values for the
// optional fields are filled in by ApplyDefaults.
type Config struct {
	Mode         Mode
	ReadLength   int
	Coverage     float64
	InsertSize   int
	RegionLength int
	Prefix       string
	Systematic   bool
}

// ApplyDefaults fills unset optional fields. Contig mode tiles at depth 1
// unless a coverage is given explicitly.
func (c *Config) ApplyDefaults() {
	if c.RegionLength == 0 {
		c.RegionLength = DefaultRegionLength
	}
	if c.InsertSize == 0 {
		c.InsertSize = DefaultInsertSize
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Coverage == 0 && c.Mode == ModeContig {
		c.Coverage = 1
	}
}

// Validate rejects configurations the samplers cannot honor. It is called
// before any input is read so bad settings never produce partial output.
func (c Config) Validate() error {
	if c.Mode.String() == "invalid" {
		return fmt.Errorf("invalid mode %d", int(c.Mode))
	}
	if c.ReadLength < 1 {
		return fmt.Errorf("read length must be positive, got %d", c.ReadLength)
	}
	if c.Coverage <= 0 {
		return fmt.Errorf("coverage must be positive in %s mode, got %g", c.Mode, c.Coverage)
	}
	if c.RegionLength < 1 {
		return fmt.Errorf("region length must be positive, got %d", c.RegionLength)
	}
	if c.Mode.paired() {
		if c.InsertSize < 1 {
			return fmt.Errorf("insert size must be positive in %s mode, got %d", c.Mode, c.InsertSize)
		}
		if c.InsertSize < c.ReadLength {
			return fmt.Errorf("insert size %d is shorter than read length %d", c.InsertSize, c.ReadLength)
		}
	}
	if c.Mode == ModePacBio && c.ReadLength <= longReadShape {
		return fmt.Errorf("read length must exceed %d in pacbio mode, got %d", longReadShape, c.ReadLength)
	}
	return nil
}

// anchor is the span an offset must leave room for inside its region.
func (c Config) anchor() int {
	if c.Mode.paired() {
		return c.InsertSize
	}
	return c.ReadLength
}

// margin is the overlap carried past a region's nominal end so fragments
// seeded close to the boundary are not truncated.
func (c Config) margin() int {
	switch c.Mode {
	case ModeSingle, ModePaired, ModeMatePair:
		return c.InsertSize
	default:
		return c.ReadLength
	}
}

// Simulator drives read generation for one validated configuration.
type Simulator struct {
	cfg Config
	gen generator
}

// New applies defaults, validates cfg and builds the mode's generator.
func New(cfg Config) (*Simulator, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{cfg: cfg, gen: newGenerator(cfg)}, nil
}

// Config returns the resolved configuration with defaults applied.
func (s *Simulator) Config() Config { return s.cfg }

// Record simulates reads for one input sequence, region by region in
// order. The same ctx must be passed for every record of a run so read
// numbering stays monotonic across the whole input.
func (s *Simulator) Record(ctx *RunContext, rec Record, emit Emit) error {
	for _, reg := range splitRegions(rec, s.cfg) {
		if err := s.gen.run(ctx, reg, emit); err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}
	}
	return nil
}
