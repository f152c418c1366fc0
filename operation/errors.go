package operation

import "errors"

// Sentinel errors returned by CustomizedOperation. Callers branch with
// errors.Is.
var (
	// ErrOperationRejected indicates Before returned false; the mesh was
	// left untouched.
	ErrOperationRejected = errors.New("operation: rejected by before hook")

	// ErrOrientationViolation indicates a replacement tet failed the
	// positive-orientation check. The topology-level change is still
	// all-or-nothing: this error can only occur before any replacement
	// tet has been installed, since AllocTetSlot itself refuses a
	// non-positively-oriented quadruple.
	ErrOrientationViolation = errors.New("operation: replacement tet has non-positive orientation")

	// ErrAfterHookFailed indicates After returned false. This is NOT
	// rolled back — the mesh is left in the post-operation topology with
	// attributes possibly incomplete — so the caller must treat it as a
	// corrupt-mesh error and abort the pass.
	ErrAfterHookFailed = errors.New("operation: after hook failed, mesh left in post-operation topology")
)
