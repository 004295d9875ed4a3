package go_nano

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"regexp"
)

var configRegex = regexp.MustCompile(`\s*([\w.]+)=\s*(.+?)\s*;\s*`)

// ParseConfig parses a configuration file and calls the callback for each
// key-value pair. Lines look like "nano.workThreshold=fffffff800000000;".
// Lines that do not match are skipped.
func ParseConfig(path string, cb func(string, string)) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer file.Close()

	Debug("Parsing config file '%s'", path)
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		groups := configRegex.FindStringSubmatch(scan.Text())
		if len(groups) != 3 {
			continue
		}
		cb(groups[1], groups[2])
	}
	if err := scan.Err(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// parseUintWithDefault parses a decimal string, returning defaultValue if
// the string is empty or contains anything but digits.
func parseUintWithDefault(s string, defaultValue uint64) uint64 {
	if s == "" {
		return defaultValue
	}

	var result uint64
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return defaultValue
		}
		d := uint64(s[i] - '0')
		if result > (math.MaxUint64-d)/10 {
			return defaultValue
		}
		result = result*10 + d
	}
	return result
}
