package voxel

// Cell holds the ordered, non-overlapping Span list for one (x,z) column
// of a Heightfield. Spans are kept sorted by Min ascending; touching or
// overlapping spans are merged as they are inserted.
//
// A growable slice backs the list rather than a linked list of spans:
// filters walk a Cell's spans sequentially bottom to top, and a slice
// keeps that walk cache-friendly.
type Cell struct {
	spans []Span
}

// Spans returns the Cell's current span list, sorted by Min ascending and
// pairwise non-overlapping. The returned slice aliases the Cell's storage
// and must not be retained across a mutating call.
func (c *Cell) Spans() []Span {
	return c.spans
}

// SpanCount returns the number of spans currently in the column.
func (c *Cell) SpanCount() int {
	return len(c.spans)
}

// AddSpan inserts s into the column, merging it with any span it overlaps
// or touches. The merged span's bounds are the union of the merged run;
// its area is that of whichever contributing span reaches highest, ties
// going to the higher-priority area, then to s.
func (c *Cell) AddSpan(s Span) {
	spans := c.spans

	// Find the first span in contact with s from below: the first whose
	// Max reaches at least s.Min.
	lo := 0
	for lo < len(spans) && spans[lo].Max < s.Min {
		lo++
	}

	if lo == len(spans) || spans[lo].Min > s.Max {
		// No overlap: splice s in at position lo.
		c.spans = insertSpanAt(spans, lo, s)
		return
	}

	// Absorb the contiguous run of touching/overlapping spans starting at
	// lo into an accumulator seeded with s, left to right.
	acc := s
	hi := lo
	for hi < len(spans) && spans[hi].Min <= acc.Max {
		acc = acc.merge(spans[hi])
		hi++
	}

	c.spans = replaceRun(spans, lo, hi, acc)
}

// insertSpanAt returns spans with s inserted at index i, preserving order.
func insertSpanAt(spans []Span, i int, s Span) []Span {
	spans = append(spans, Span{})
	copy(spans[i+1:], spans[i:])
	spans[i] = s
	return spans
}

// replaceRun returns spans with the half-open range [lo,hi) replaced by the
// single span s.
func replaceRun(spans []Span, lo, hi int, s Span) []Span {
	spans[lo] = s
	spans = append(spans[:lo+1], spans[hi:]...)
	return spans
}
