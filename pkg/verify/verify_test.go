package verify_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cursorcult/cursorcult/pkg/contract"
	"github.com/cursorcult/cursorcult/pkg/verify"
)

// fakeRepo satisfies verify.Repository without touching git.
type fakeRepo struct {
	origin    string
	originErr error
	main      []string
	mainErr   error
	tags      map[string]string
	tagsErr   error
	tracked   []string
}

func (f *fakeRepo) RemoteOriginURL(context.Context) (string, error) {
	return f.origin, f.originErr
}

func (f *fakeRepo) MainCommits(context.Context) ([]string, error) {
	return f.main, f.mainErr
}

func (f *fakeRepo) TagsToCommits(context.Context) (map[string]string, error) {
	return f.tags, f.tagsErr
}

func (f *fakeRepo) TrackedFiles(context.Context) []string {
	return f.tracked
}

// compliantDir lays down a rule-pack working copy whose filesystem checks all
// pass for the given repo name.
func compliantDir(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "LICENSE", contract.UnlicenseText)
	writeFile(t, dir, "README.md",
		"# "+name+"\n\n```sh\n"+contract.InstallLine+"\n"+contract.LinkCommand+" "+name+"\n```\n")
	writeFile(t, dir, "RULES.md", "# "+name+" Rule\n")
	writeFile(t, dir, ".github/workflows/ccverify.yml", "name: ccverify\n")
	return dir
}

func compliantRepo(name string) *fakeRepo {
	return &fakeRepo{
		origin:  "https://github.com/CursorCult/" + name + ".git",
		main:    []string{"c2", "c1", "c0"},
		tags:    map[string]string{"v0": "c0", "v1": "c1", "v2": "c2"},
		tracked: compliantFiles,
	}
}

func TestVerifierRun(t *testing.T) {
	ctx := context.Background()

	t.Run("fully compliant repo passes", func(t *testing.T) {
		dir := compliantDir(t, "UNO")
		result := verify.New(dir, compliantRepo("UNO")).Run(ctx, "")

		assert.True(t, result.OK)
		assert.Empty(t, result.Errors)
	})

	t.Run("zero tags still passes", func(t *testing.T) {
		dir := compliantDir(t, "UNO")
		repo := compliantRepo("UNO")
		repo.tags = map[string]string{}
		result := verify.New(dir, repo).Run(ctx, "")

		assert.True(t, result.OK)
	})

	t.Run("missing RULES.md reports exactly one error", func(t *testing.T) {
		dir := compliantDir(t, "UNO")
		repo := compliantRepo("UNO")
		repo.tracked = []string{"LICENSE", "README.md", ".github/workflows/ccverify.yml"}
		result := verify.New(dir, repo).Run(ctx, "")

		assert.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "RULES.md")
	})

	t.Run("git failure downgraded to single error", func(t *testing.T) {
		dir := compliantDir(t, "UNO")
		repo := compliantRepo("UNO")
		repo.mainErr = errors.New("fatal: not a git repository")
		result := verify.New(dir, repo).Run(ctx, "")

		assert.False(t, result.OK)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "Git checks failed: fatal: not a git repository", result.Errors[0])
	})

	t.Run("all violations reported in one pass", func(t *testing.T) {
		dir := t.TempDir() // no files at all
		repo := &fakeRepo{
			originErr: errors.New("no origin"),
			main:      []string{"c1", "c0"},
			tags:      map[string]string{"v0": "c0", "v2": "c1"},
		}
		result := verify.New(dir, repo).Run(ctx, "")

		assert.False(t, result.OK)
		// Tracked-files (x2), license, readme, and tag contiguity all fire.
		assert.Len(t, result.Errors, 5)
		assert.Contains(t, result.Errors[len(result.Errors)-1], "contiguous from v0")
	})
}

func TestVerifierNameResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("override wins", func(t *testing.T) {
		dir := compliantDir(t, "DOS")
		result := verify.New(dir, compliantRepo("UNO")).Run(ctx, "DOS")
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})

	t.Run("name derived from https origin", func(t *testing.T) {
		dir := compliantDir(t, "TRES")
		repo := compliantRepo("ignored")
		repo.origin = "https://github.com/CursorCult/TRES.git"
		result := verify.New(dir, repo).Run(ctx, "")
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})

	t.Run("name derived from scp-like origin", func(t *testing.T) {
		dir := compliantDir(t, "QUATRO")
		repo := compliantRepo("ignored")
		repo.origin = "git@github.com:CursorCult/QUATRO.git"
		result := verify.New(dir, repo).Run(ctx, "")
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})

	t.Run("falls back to directory basename without origin", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, "CINCO")
		writeFile(t, dir, "LICENSE", contract.UnlicenseText)
		writeFile(t, dir, "README.md",
			"```sh\n"+contract.InstallLine+"\n"+contract.LinkCommand+" CINCO\n```\n")
		writeFile(t, dir, "RULES.md", "# CINCO Rule\n")
		writeFile(t, dir, ".github/workflows/ccverify.yml", "name: ccverify\n")

		repo := compliantRepo("ignored")
		repo.origin = ""
		repo.originErr = errors.New("no origin remote")
		result := verify.New(dir, repo).Run(ctx, "")
		assert.True(t, result.OK, "errors: %v", result.Errors)
	})
}
