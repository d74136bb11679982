package fetch

import "errors"

// Sentinel kinds for fetch errors.
var (
	ErrFetch    = errors.New("upstream fetch failed")
	ErrNoData   = errors.New("no snapshot data in page")
	ErrBadShape = errors.New("snapshot data has unexpected shape")
)
