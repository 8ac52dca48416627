// Package utils holds small helpers shared by the transport layer.
package utils

import "github.com/google/uuid"

// NewID returns a random UUID string used for connection and request ids.
func NewID() string {
	return uuid.NewString()
}
