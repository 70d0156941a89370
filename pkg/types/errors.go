package types

import "errors"

// Contact validation errors. AddContact returns these synchronously; the
// caller decides how to surface them. There is no retry.
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidPhone = errors.New("invalid phone number format")
)

// Store errors. A missing backing file is never an error; both stores
// normalize it to an empty result.
var (
	ErrMetadataMalformed = errors.New("metadata document is not well-formed")
)
