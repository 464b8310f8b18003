package observable

import "errors"

// ErrUnknownAttribute is returned when an attribute name was never registered
// on the observable. Subscription errors for known attributes reuse the
// sentinels of the state package (state.ErrDuplicateSubscriber,
// state.ErrNotSubscribed).
var ErrUnknownAttribute = errors.New("unknown attribute")
