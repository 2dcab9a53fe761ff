// Package nav holds the IMU calibration policy shared by both nodes:
// the four subsystem scores and the "good" predicate from spec §3.
package nav

// CalibrationInfo carries the four BNO055-style subsystem calibration
// scores, each in 0..3.
type CalibrationInfo struct {
	Mag    uint8
	Accel  uint8
	Gyro   uint8
	System uint8
}

// minGoodScore is the threshold each subsystem score must meet for the
// overall reading to be "good" (spec §3, §8 invariant 7).
const minGoodScore = 2

// Good reports whether every subsystem score is at least minGoodScore.
func (c CalibrationInfo) Good() bool {
	return c.Mag >= minGoodScore &&
		c.Accel >= minGoodScore &&
		c.Gyro >= minGoodScore &&
		c.System >= minGoodScore
}
