package interfaces

import "errors"

// ErrConditionalCheckFailed is returned by repositories when a conditional write
// was rejected because the stored document no longer satisfies its guard.
var ErrConditionalCheckFailed = errors.New("conditional check failed")
