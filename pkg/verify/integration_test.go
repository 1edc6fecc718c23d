package verify_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorcult/cursorcult/pkg/gitrepo"
	"github.com/cursorcult/cursorcult/pkg/scaffold"
	"github.com/cursorcult/cursorcult/pkg/verify"
)

func gitOrSkip(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v\n%s", args, err, output)
	}
}

// buildRulePack creates a real, fully compliant rule-pack repo named UNO:
// template files on main, one tag per commit, contiguous from v0.
func buildRulePack(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	dir := filepath.Join(base, "UNO")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	git(t, dir, "init", "-b", "main")
	git(t, dir, "config", "user.email", "test@test.com")
	git(t, dir, "config", "user.name", "Test User")
	git(t, dir, "remote", "add", "origin", "https://github.com/CursorCult/UNO.git")

	require.NoError(t, scaffold.WriteTemplate(dir))
	git(t, dir, "add", "LICENSE", "README.md", "RULES.md", ".github/workflows/ccverify.yml")
	git(t, dir, "commit", "-m", "Initialize UNO rule pack")
	git(t, dir, "tag", "v0")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "RULES.md"), []byte("# UNO Rule\n\nRefined.\n"), 0o644))
	git(t, dir, "add", "RULES.md")
	git(t, dir, "commit", "-m", "Refine rule")
	git(t, dir, "tag", "v1")

	return dir
}

func TestVerifyRealRepo(t *testing.T) {
	gitOrSkip(t)
	ctx := context.Background()

	t.Run("compliant repo passes", func(t *testing.T) {
		dir := buildRulePack(t)
		result := verify.New(dir, gitrepo.Open(dir)).Run(ctx, "")
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})

	t.Run("untagged commit on main is flagged", func(t *testing.T) {
		dir := buildRulePack(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "RULES.md"), []byte("# UNO Rule\n\nMore.\n"), 0o644))
		git(t, dir, "add", "RULES.md")
		git(t, dir, "commit", "-m", "Untagged change")

		result := verify.New(dir, gitrepo.Open(dir)).Run(ctx, "")
		assert.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Main has 1 untagged commits. Every main commit must have a vN tag.", result.Errors[0])
	})

	t.Run("extra tracked file is flagged", func(t *testing.T) {
		dir := buildRulePack(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "NOTES.md"), []byte("scratch\n"), 0o644))
		git(t, dir, "add", "NOTES.md")
		git(t, dir, "commit", "-m", "Add notes")
		git(t, dir, "tag", "v2")

		result := verify.New(dir, gitrepo.Open(dir)).Run(ctx, "")
		assert.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Extra tracked files not allowed: NOTES.md.", result.Errors[0])
	})

	t.Run("not a git repo still reports filesystem checks", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, "UNO")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, scaffold.WriteTemplate(dir))

		result := verify.New(dir, gitrepo.Open(dir)).Run(ctx, "")
		assert.False(t, result.OK)

		// The fallback file listing cannot see dot directories, so the CI
		// workflow check fires; the git failure is a single downgraded error
		// and the license/README checks still passed.
		require.Len(t, result.Errors, 2)
		assert.True(t, strings.HasPrefix(result.Errors[0], "Missing required CI workflow"), result.Errors[0])
		assert.True(t, strings.HasPrefix(result.Errors[1], "Git checks failed"), result.Errors[1])
	})
}
