package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// encodeYears stores the ordered year axis as a JSON array.
func encodeYears(years []string) (string, error) {
	if years == nil {
		years = []string{}
	}
	b, err := json.Marshal(years)
	if err != nil {
		return "", fmt.Errorf("encoding years: %w", err)
	}
	return string(b), nil
}

func decodeYears(s string) ([]string, error) {
	var years []string
	if err := json.Unmarshal([]byte(s), &years); err != nil {
		return nil, fmt.Errorf("decoding years: %w", err)
	}
	return years, nil
}
