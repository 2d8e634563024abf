// Package sltools provides the helpers used between a stereo camera SDK and
// robotics messages: a smoothing mean for noisy measurements, color packing,
// timestamp, rotation and image conversions.
package sltools
