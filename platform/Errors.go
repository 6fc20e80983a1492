package platform

import "errors"

var ErrWindowUnavailable = errors.New("window backend not compiled in; rebuild with -tags window")
