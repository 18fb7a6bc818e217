package driver

import "time"

// Speed bounds and the delays they map to.
const (
	MinSpeed    = 0
	MaxSpeed    = 100
	MinInterval = 10 * time.Millisecond
	MaxInterval = 200 * time.Millisecond
)

// Interval returns the delay between two steps at the given speed:
// 200 - speed/100*190 milliseconds. speed is clamped to [0,100] and the
// result to [10ms,200ms].
func Interval(speed int) time.Duration {
	speed = min(max(speed, MinSpeed), MaxSpeed)
	ms := 200 - float64(speed)/100*190
	d := time.Duration(ms * float64(time.Millisecond))
	return min(max(d, MinInterval), MaxInterval)
}
