package ignore

import "errors"

// Sentinel errors for target-path validation.
var (
	// ErrWorkspaceRoot indicates the target normalizes to the workspace root.
	ErrWorkspaceRoot = errors.New("target path is the workspace root")
	// ErrOutsideWorkspace indicates the target escapes the workspace.
	ErrOutsideWorkspace = errors.New("target path is outside the workspace")
	// ErrTargetIsRuleFile indicates the target is the ignore file itself.
	ErrTargetIsRuleFile = errors.New("target path is the ignore file itself")
)
