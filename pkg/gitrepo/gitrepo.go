// Package gitrepo wraps the handful of git operations the tool needs by
// exec-ing the git binary against a local working copy. Read queries back the
// verifier; write operations back linking and scaffolding.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Repo is a handle on a local working copy.
type Repo struct {
	path string
}

// Open returns a Repo for the working copy at path. The path is not probed
// here; every operation reports its own failure.
func Open(path string) *Repo {
	return &Repo{path: path}
}

// Path returns the working copy path this Repo operates on.
func (r *Repo) Path() string {
	return r.path
}

// git runs a git command in the repo directory and returns its stdout.
// Failures carry the command line and whatever git printed.
func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.path

	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(string(out))
		}
		if detail == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), detail)
	}
	return string(out), nil
}

// RemoteOriginURL returns the URL of the origin remote. Errors when no
// origin is configured; callers treat that as "name cannot be inferred from
// git" and fall back to the directory basename.
func (r *Repo) RemoteOriginURL(ctx context.Context) (string, error) {
	out, err := r.git(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// MainCommits returns every commit hash reachable from main, newest first.
// Errors if main does not exist or the path is not a git repository.
func (r *Repo) MainCommits(ctx context.Context) ([]string, error) {
	if _, err := r.git(ctx, "rev-parse", "--verify", "main"); err != nil {
		return nil, err
	}
	out, err := r.git(ctx, "rev-list", "main")
	if err != nil {
		return nil, err
	}
	return splitNonEmptyLines(out), nil
}

// TagsToCommits resolves every local tag name to the commit it denotes,
// dereferencing annotated tags to the tagged commit. An empty map is valid.
func (r *Repo) TagsToCommits(ctx context.Context) (map[string]string, error) {
	out, err := r.git(ctx, "tag")
	if err != nil {
		return nil, err
	}

	tags := make(map[string]string)
	for _, name := range splitNonEmptyLines(out) {
		sha, err := r.git(ctx, "rev-list", "-n", "1", name)
		if err != nil {
			return nil, err
		}
		sha = strings.TrimSpace(sha)
		if sha != "" {
			tags[name] = sha
		}
	}
	return tags, nil
}

// TrackedFiles returns the relative paths git considers tracked. When git
// cannot answer (not a repository, git missing), it degrades to the top-level
// non-dot entries of the directory so the file-set check still runs.
func (r *Repo) TrackedFiles(ctx context.Context) []string {
	out, err := r.git(ctx, "ls-files")
	if err == nil {
		return splitNonEmptyLines(out)
	}

	entries, err := os.ReadDir(r.path)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, e.Name())
	}
	return files
}

func splitNonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
