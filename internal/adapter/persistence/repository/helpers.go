package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Dollar amounts are stored as string attributes so DynamoDB's number type
// never reformats them.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
