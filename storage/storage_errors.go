package storage

import "errors"

var ErrNotFound = errors.New("no saved data")

var ErrMalformedBlob = errors.New("malformed data file")

var ErrUnknownDriver = errors.New("unknown storage driver")
