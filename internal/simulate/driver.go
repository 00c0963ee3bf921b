package simulate

// generator is one mode's orchestration of offset sampling, length
// sampling and assembly over a single region.
type generator interface {
	run(ctx *RunContext, reg Region, emit Emit) error
}

func newGenerator(cfg Config) generator {
	asm := assembler{cfg: cfg}
	switch cfg.Mode {
	case ModeSingle, ModePacBio:
		return singleGen{cfg: cfg, asm: asm}
	case ModePaired:
		return pairGen{cfg: cfg, asm: asm}
	case ModeMatePair:
		return pairGen{cfg: cfg, asm: asm, outward: true}
	case ModeContig:
		return contigGen{cfg: cfg, asm: asm}
	}
	return nil
}

// fragmentCount derives how many fragments a region owes at the target
// coverage. Paired modes halve it because each fragment yields two reads.
// The real-valued expression truncates toward zero when consumed as a
// sample size.
func fragmentCount(cfg Config, regionLen int) int {
	n := float64(regionLen) * cfg.Coverage / float64(cfg.ReadLength)
	if cfg.Mode.paired() {
		n /= 2
	}
	return int(n)
}

// singleGen drives the one-read-per-fragment modes. se fragments are
// fixed at read length; pacbio draws dispersed lengths unless systematic
// placement pins them to read length too.
type singleGen struct {
	cfg Config
	asm assembler
}

func (g singleGen) run(ctx *RunContext, reg Region, emit Emit) error {
	span := len(reg.Seq) - g.cfg.anchor()
	if span < 0 {
		return nil // region shorter than one read, nothing to place
	}
	count := fragmentCount(g.cfg, len(reg.Seq))
	if count < 1 {
		return nil
	}

	var offs []int
	if g.cfg.Systematic {
		offs = systematicOffsets(span, count)
	} else {
		offs = randomOffsets(ctx, span, count)
	}

	for _, off := range offs {
		length := g.cfg.ReadLength
		if g.cfg.Mode == ModePacBio && !g.cfg.Systematic {
			length = longReadLength(ctx, g.cfg.ReadLength)
		}
		if err := g.asm.single(ctx, reg, off, length, emit); err != nil {
			return err
		}
	}
	return nil
}

// pairGen drives pe and mp. Fragment lengths follow the insert size
// distribution unless systematic placement fixes them at the insert size.
type pairGen struct {
	cfg     Config
	asm     assembler
	outward bool
}

func (g pairGen) run(ctx *RunContext, reg Region, emit Emit) error {
	span := len(reg.Seq) - g.cfg.InsertSize
	if span < 0 {
		return nil // region shorter than one insert
	}
	count := fragmentCount(g.cfg, len(reg.Seq))
	if count < 1 {
		return nil
	}

	var offs []int
	if g.cfg.Systematic {
		offs = systematicOffsets(span, count)
	} else {
		offs = randomOffsets(ctx, span, count)
	}

	for _, off := range offs {
		length := g.cfg.InsertSize
		if !g.cfg.Systematic {
			length = insertLength(ctx, g.cfg.InsertSize, g.cfg.ReadLength)
		}
		if err := g.asm.pair(ctx, reg, off, length, g.outward, emit); err != nil {
			return err
		}
	}
	return nil
}

// contigGen tiles a region between sorted random anchors. One extra
// anchor pads the set so every counted anchor starts a tile; the trailing
// span up to the region end becomes a final tile unless its length comes
// out within ten bases of the previous tile's, which would leave a
// near-duplicate trailing record.
type contigGen struct {
	cfg Config
	asm assembler
}

func (g contigGen) run(ctx *RunContext, reg Region, emit Emit) error {
	span := len(reg.Seq) - g.cfg.ReadLength
	if span < 0 {
		return nil
	}
	count := fragmentCount(g.cfg, len(reg.Seq))
	if count < 1 {
		return nil
	}

	anchors := randomOffsets(ctx, span, count+1)

	prev := 0
	for i := 0; i+1 < len(anchors); i++ {
		length := tileLength(ctx, anchors[i+1]-anchors[i], anchors[i], len(reg.Seq))
		if err := g.asm.tile(ctx, reg, anchors[i], length, emit); err != nil {
			return err
		}
		prev = length
	}

	last := anchors[len(anchors)-1]
	length := tileLength(ctx, len(reg.Seq)-last, last, len(reg.Seq))
	if diff := length - prev; diff > -10 && diff < 10 {
		return nil
	}
	return g.asm.tile(ctx, reg, last, length, emit)
}
