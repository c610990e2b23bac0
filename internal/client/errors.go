package client

import "errors"

// ErrNotLoggedIn is returned by [App.Run] when the session never started.
var ErrNotLoggedIn = errors.New("operator is not logged in")
