package verify

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Repository is the read-only source-control surface the verifier needs.
// Implemented by gitrepo.Repo; faked in tests.
type Repository interface {
	// RemoteOriginURL returns the URL of the origin remote, or an error if
	// none is configured.
	RemoteOriginURL(ctx context.Context) (string, error)

	// MainCommits returns every commit hash reachable from the main branch
	// tip, newest first. Errors if main does not exist or the path is not a
	// git repository.
	MainCommits(ctx context.Context) ([]string, error)

	// TagsToCommits resolves every local tag to the commit it denotes.
	// An empty map is valid: pre-release repositories may have zero tags.
	TagsToCommits(ctx context.Context) (map[string]string, error)

	// TrackedFiles returns the relative paths git considers tracked, falling
	// back to top-level non-dot entries when git cannot answer.
	TrackedFiles(ctx context.Context) []string
}

// Verifier runs the full structural verification of a rule-pack repository.
type Verifier struct {
	path string
	repo Repository
}

// New returns a Verifier for the working copy at path.
func New(path string, repo Repository) *Verifier {
	return &Verifier{path: path, repo: repo}
}

// Run executes all checkers in fixed order and aggregates their violations.
// nameOverride, when non-empty, replaces the derived repository name for the
// README checks.
//
// The tag checks need a working git repository; any failure there is
// downgraded to a single reported error so the filesystem checks still run
// and the result stays complete.
func (v *Verifier) Run(ctx context.Context, nameOverride string) CheckResult {
	var errs []string

	repoName := v.resolveName(ctx, nameOverride)

	errs = append(errs, CheckTrackedFiles(v.repo.TrackedFiles(ctx))...)
	errs = append(errs, CheckLicense(v.path)...)
	errs = append(errs, CheckReadme(v.path, repoName)...)

	if tagErrs, err := v.runTagChecks(ctx); err != nil {
		errs = append(errs, fmt.Sprintf("Git checks failed: %v", err))
	} else {
		errs = append(errs, tagErrs...)
	}

	return newResult(errs)
}

func (v *Verifier) runTagChecks(ctx context.Context) ([]string, error) {
	mainCommits, err := v.repo.MainCommits(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := v.repo.TagsToCommits(ctx)
	if err != nil {
		return nil, err
	}
	return CheckTags(mainCommits, tags), nil
}

// resolveName picks the effective repository name: the override if given,
// else the last path segment of the origin remote URL with any .git suffix
// stripped, else the directory basename. Resolvers are tried in order and
// the first success wins.
func (v *Verifier) resolveName(ctx context.Context, override string) string {
	if override != "" {
		return override
	}
	if origin, err := v.repo.RemoteOriginURL(ctx); err == nil {
		if name := nameFromRemoteURL(origin); name != "" {
			return name
		}
	}
	abs, err := filepath.Abs(v.path)
	if err != nil {
		return filepath.Base(v.path)
	}
	return filepath.Base(abs)
}

// nameFromRemoteURL extracts the repository name from a remote URL, handling
// both https://host/owner/repo.git and scp-like git@host:owner/repo.git forms.
func nameFromRemoteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "/")
	raw = strings.TrimSuffix(raw, ".git")

	idx := strings.LastIndexAny(raw, "/:")
	if idx < 0 || idx == len(raw)-1 {
		return ""
	}
	return raw[idx+1:]
}
