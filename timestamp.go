package sltools

import "time"

// Timestamp is a camera timestamp in nanoseconds since the Unix epoch.
type Timestamp uint64

// ROSTime is a timestamp split in seconds and nanoseconds, as carried by
// message headers.
type ROSTime struct {
	Sec  uint32
	Nsec uint32
}

// ROS converts the camera timestamp to a message timestamp.
func (t Timestamp) ROS() ROSTime {
	return ROSTime{
		Sec:  uint32(uint64(t) / uint64(time.Second)),
		Nsec: uint32(uint64(t) % uint64(time.Second)),
	}
}

// Time returns t as a time.Time.
func (t ROSTime) Time() time.Time {
	return time.Unix(int64(t.Sec), int64(t.Nsec))
}

// Seconds returns t in seconds.
func (t ROSTime) Seconds() float64 {
	return float64(t.Sec) + float64(t.Nsec)*1e-9
}
