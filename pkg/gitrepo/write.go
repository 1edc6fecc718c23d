package gitrepo

import (
	"context"
	"strings"
)

// Write operations used by link and new. Each shells out once and surfaces
// git's own message on failure.

// Clone clones url into dest, relative to the repo path.
func (r *Repo) Clone(ctx context.Context, url, dest string) error {
	_, err := r.git(ctx, "clone", url, dest)
	return err
}

// SubmoduleAdd registers url as a submodule at dest.
func (r *Repo) SubmoduleAdd(ctx context.Context, url, dest string) error {
	_, err := r.git(ctx, "submodule", "add", url, dest)
	return err
}

// Checkout checks out the given ref (tag, branch, or commit).
func (r *Repo) Checkout(ctx context.Context, ref string) error {
	_, err := r.git(ctx, "checkout", ref)
	return err
}

// CheckoutNewBranch creates or resets branch and switches to it.
func (r *Repo) CheckoutNewBranch(ctx context.Context, branch string) error {
	_, err := r.git(ctx, "checkout", "-B", branch)
	return err
}

// Add stages the given paths.
func (r *Repo) Add(ctx context.Context, paths ...string) error {
	_, err := r.git(ctx, append([]string{"add"}, paths...)...)
	return err
}

// Commit records a commit with the given message.
func (r *Repo) Commit(ctx context.Context, message string) error {
	_, err := r.git(ctx, "commit", "-m", message)
	return err
}

// Push pushes branch to the given remote.
func (r *Repo) Push(ctx context.Context, remote, branch string) error {
	_, err := r.git(ctx, "push", remote, branch)
	return err
}

// HasOrigin reports whether an origin remote is configured.
func (r *Repo) HasOrigin(ctx context.Context) bool {
	out, err := r.git(ctx, "remote", "get-url", "origin")
	return err == nil && strings.TrimSpace(out) != ""
}
