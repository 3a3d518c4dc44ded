package number

import "math"

const epsilon = 1e-9

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func FloatEquals(a float64, b float64) bool {
	return IsZero(a - b)
}

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

func RadianToDegree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// NormalizeAngle wraps an angle into (-Pi, Pi].
func NormalizeAngle(radian float64) float64 {
	wrapped := math.Mod(radian, 2*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	}
	return wrapped
}

// AngleDistance is the wrap-around magnitude of the difference
// between two angles, always in [0, Pi].
func AngleDistance(a float64, b float64) float64 {
	return math.Abs(NormalizeAngle(a - b))
}
