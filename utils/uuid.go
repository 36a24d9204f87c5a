package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string, used to correlate
// client requests in log output.
func GenerateID() string {
	return uuid.New().String()
}
