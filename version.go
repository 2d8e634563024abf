package sltools

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is returned when an SDK version string cannot be parsed.
var ErrInvalidVersion = errors.New("invalid SDK version")

// SDKVersion is the version of the camera SDK.
type SDKVersion struct {
	Major    int
	Minor    int
	SubMinor int
}

// ParseSDKVersion parses a "major.minor.sub_minor" version string. Missing
// parts are set to 0 and a leading "v" is accepted.
func ParseSDKVersion(s string) (SDKVersion, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return SDKVersion{}, fmt.Errorf("sltools: could not parse %q: %w: %v", s, ErrInvalidVersion, err)
	}

	return SDKVersion{
		Major:    int(v.Major()),
		Minor:    int(v.Minor()),
		SubMinor: int(v.Patch()),
	}, nil
}

func (v SDKVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.SubMinor)
}

// AtLeast reports whether v is equal to or newer than major.minor.
func (v SDKVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}
