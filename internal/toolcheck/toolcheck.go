// Package toolcheck answers whether required external binaries can be
// resolved, behind an interface so precondition checks can be stubbed
// in tests without touching the real search path.
package toolcheck

import "os/exec"

// Checker reports whether an external command can be resolved.
type Checker interface {
	CommandAvailable(name string) bool
}

// PathChecker resolves commands via the process's search path.
type PathChecker struct{}

// CommandAvailable returns true when name resolves via $PATH.
func (PathChecker) CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// StaticChecker is a fixed answer table for tests.
type StaticChecker map[string]bool

// CommandAvailable returns the configured answer; unknown commands are
// unavailable.
func (s StaticChecker) CommandAvailable(name string) bool {
	return s[name]
}
