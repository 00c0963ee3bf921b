package simulate

// splitRegions cuts rec into windows at most RegionLength long plus an
// overlap margin, so generation always works on a bounded slice while
// fragments seeded near a window's nominal end still have room to extend.
// Window starts advance by RegionLength, so consecutive windows share the
// margin bases; fragments drawn independently inside that shared span are
// not deduplicated. The terminal window runs to the end of the sequence.
func splitRegions(rec Record, cfg Config) []Region {
	if len(rec.Seq) <= cfg.RegionLength {
		return []Region{{Seq: rec.Seq, Qual: rec.Qual, Offset: 0}}
	}

	m := cfg.margin()
	var regions []Region
	o := 0
	for o+cfg.RegionLength+m < len(rec.Seq) {
		regions = append(regions, window(rec, o, o+cfg.RegionLength+m))
		o += cfg.RegionLength
	}
	return append(regions, window(rec, o, len(rec.Seq)))
}

func window(rec Record, start, end int) Region {
	reg := Region{Seq: rec.Seq[start:end], Offset: start}
	if rec.Qual != nil {
		reg.Qual = rec.Qual[start:end]
	}
	return reg
}
