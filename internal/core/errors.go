// internal/core/errors.go
package core

import "errors"

// Define custom errors for better error handling and classification
var (
	ErrInvalidDomain  = errors.New("invalid domain format")
	ErrDomainNotFound = errors.New("domain does not exist")
	ErrOutputFormat   = errors.New("unsupported output format")
	ErrFileWrite      = errors.New("failed to write to file")
)
