package go_nano

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a major.minor.micro library version.
type Version struct {
	major, minor, micro uint16
	version             string
}

// CurrentVersion is the version of this library.
var CurrentVersion = parseVersion(LIBRARY_VERSION)

// parseVersion parses "major.minor.micro". Missing or malformed segments
// are 0.
func parseVersion(str string) Version {
	v := Version{version: str}
	segments := strings.Split(str, ".")
	if len(segments) > 0 {
		v.major = parseVersionSegment(segments[0], "major", str)
	}
	if len(segments) > 1 {
		v.minor = parseVersionSegment(segments[1], "minor", str)
	}
	if len(segments) > 2 {
		v.micro = parseVersionSegment(segments[2], "micro", str)
	}
	return v
}

func parseVersionSegment(segment, segmentName, fullVersion string) uint16 {
	i, err := strconv.ParseUint(segment, 10, 16)
	if err != nil {
		Warning("Invalid %s version '%s' in '%s', defaulting to 0", segmentName, segment, fullVersion)
		return 0
	}
	return uint16(i)
}

// String returns the version as it was parsed.
func (v Version) String() string {
	if v.version != "" {
		return v.version
	}
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.micro)
}

func (v Version) compare(other Version) int {
	switch {
	case v.major != other.major:
		return cmpUint16(v.major, other.major)
	case v.minor != other.minor:
		return cmpUint16(v.minor, other.minor)
	default:
		return cmpUint16(v.micro, other.micro)
	}
}

func cmpUint16(a, b uint16) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// AtLeast reports whether v is the same as or newer than the version
// string other.
func (v Version) AtLeast(other string) bool {
	return v.compare(parseVersion(other)) >= 0
}
