package util

import "github.com/google/uuid"

// NewID generates a unique identifier for records, tool calls and conversations.
func NewID() string { return uuid.NewString() }
