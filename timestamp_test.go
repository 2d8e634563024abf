package sltools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampROS(t *testing.T) {
	ts := Timestamp(1_546_300_800_123_456_789)
	r := ts.ROS()
	assert.Equal(t, ROSTime{Sec: 1_546_300_800, Nsec: 123_456_789}, r)
	assert.Equal(t, time.Unix(1_546_300_800, 123_456_789), r.Time())
	assert.InDelta(t, 1_546_300_800.123456789, r.Seconds(), 1e-6)

	assert.Equal(t, ROSTime{}, Timestamp(0).ROS())
}
