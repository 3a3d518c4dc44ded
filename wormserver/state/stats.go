package state

import "math"

// WormStats holds the perception parameters shared by every worm.
type WormStats struct {
	VisionAngle    float64 // full field-of-view arc, in radians
	VisionDistance float64 // hard cutoff on perceived distance
}

func MakeDefaultWormStats() WormStats {
	return WormStats{
		VisionAngle:    5 * math.Pi / 4,
		VisionDistance: 300,
	}
}
