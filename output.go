package rng

// Outputs are scaled into [0, 1) by dividing by 2^bits. Words wider than 53
// bits are truncated to their top 53 bits first so that rounding can never
// produce 1.0.

func float31(v uint32) float64  { return float64(v) / (1 << 31) }
func float32s(v uint32) float64 { return float64(v) / (1 << 32) }
func float63(v uint64) float64  { return float64(v>>10) / (1 << 53) }
func float64s(v uint64) float64 { return float64(v>>11) / (1 << 53) }
