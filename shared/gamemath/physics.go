package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Approach moves value toward target by at most step.
func Approach(value, target, step float64) float64 {
	if value < target {
		value += step
		if value > target {
			return target
		}
		return value
	}
	if value > target {
		value -= step
		if value < target {
			return target
		}
	}
	return value
}
