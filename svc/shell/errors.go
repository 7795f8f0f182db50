package shell

import "errors"

var ErrInterrupted = errors.New("input interrupted")

// errCanceled ends an interactive entry without running the command.
var errCanceled = errors.New("entry canceled")
