package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Error messages returned to clients.
const (
	msgInvalidBody     = "invalid request body"
	msgWebsiteNotFound = "Website not found"
	msgSectionNotFound = "Section not found"
)
