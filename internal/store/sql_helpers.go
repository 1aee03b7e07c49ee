package store

import (
	"strings"
)

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// transports are stored as a comma separated list; hint values
// ("usb", "nfc", "ble", "internal", "hybrid") never contain commas.
func encodeTransports(transports []string) string {
	return strings.Join(transports, ",")
}

func decodeTransports(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
