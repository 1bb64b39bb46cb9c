package importer

import (
	"fmt"
	"strconv"
)

func parseCompleted(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse completed %q: %w", raw, err)
	}
	return value, nil
}

func parsePID(raw string) (uint32, error) {
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse pid %q: %w", raw, err)
	}
	return uint32(value), nil
}
