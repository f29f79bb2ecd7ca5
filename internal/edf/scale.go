package edf

// Scale converts a raw digital sample to its physical value. The boolean is
// false when the sample is the reserved sentinel, in which case there is no
// physical value. Scaling is linear in float32 with the operand order
// (raw − dmin) × physicalRange / digitalRange + pmin; equal digital bounds
// divide by zero and propagate the resulting Inf/NaN unchanged.
func (b Bounds) Scale(raw int16) (float32, bool) {
	if raw == Sentinel {
		return 0, false
	}
	v := float32(raw)
	digitalRange := b.DigitalMax - b.DigitalMin
	physicalRange := b.PhysicalMax - b.PhysicalMin
	return (v-b.DigitalMin)*physicalRange/digitalRange + b.PhysicalMin, true
}
