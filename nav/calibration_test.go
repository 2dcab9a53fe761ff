package nav

import "testing"

func TestCalibrationGoodPredicate(t *testing.T) {
	cases := []struct {
		name string
		info CalibrationInfo
		good bool
	}{
		{"all zero", CalibrationInfo{}, false},
		{"all at threshold", CalibrationInfo{Mag: 2, Accel: 2, Gyro: 2, System: 2}, true},
		{"all maxed", CalibrationInfo{Mag: 3, Accel: 3, Gyro: 3, System: 3}, true},
		{"one below threshold", CalibrationInfo{Mag: 3, Accel: 1, Gyro: 2, System: 2}, false},
		{"scenario S4 values", CalibrationInfo{Mag: 3, Accel: 2, Gyro: 2, System: 2}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.info.Good(); got != c.good {
				t.Errorf("Good() = %v, want %v", got, c.good)
			}
		})
	}
}
