// Package gitinfo resolves best-effort git metadata for source
// repository checkouts, so build reports can say what was built.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// Info identifies the checked-out state of a repository.
type Info struct {
	Commit string // Abbreviated HEAD commit hash
	Branch string // Short ref name, empty on detached HEAD
}

// Resolve returns HEAD information for the checkout at path. Callers
// treat failure as informational: a plain directory that is not a git
// repository is a legitimate input.
func Resolve(path string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Info{}, fmt.Errorf("open repository %s: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return Info{}, fmt.Errorf("resolve HEAD of %s: %w", path, err)
	}

	info := Info{Commit: head.Hash().String()[:12]}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
