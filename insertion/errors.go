package insertion

import "errors"

// ErrDispatchFailed is returned (wrapped with the point index) when a
// point's dispatch cannot start: the located tet is no longer live, or
// no cursor exists for the classified edge or face. Errors from the
// dispatched operation itself and outside-hull results are not wrapped
// in ErrDispatchFailed; they are wrapped with the point index directly,
// so their sentinel (meshcore.ErrOutsideHull,
// operation.ErrOrientationViolation, operation.ErrOperationRejected,
// operation.ErrAfterHookFailed) is reachable via errors.Is/errors.As.
var ErrDispatchFailed = errors.New("insertion: point dispatch failed")
