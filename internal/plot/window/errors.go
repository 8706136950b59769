package window

import "errors"

// ErrHeadless is returned by Show in builds tagged headless.
var ErrHeadless = errors.New("built without window support")
