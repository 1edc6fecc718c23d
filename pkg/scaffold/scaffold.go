// Package scaffold creates a new rule-pack repository in the org and seeds it
// with the template files the structural contract requires.
package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cursorcult/cursorcult/pkg/catalog"
	"github.com/cursorcult/cursorcult/pkg/contract"
	"github.com/cursorcult/cursorcult/pkg/gitrepo"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// RepoCreator creates a repository in the remote org. Implemented by
// catalog.Client.
type RepoCreator interface {
	CreateRepo(ctx context.Context, name, description string) error
	Org() string
}

// Create makes the org repository, clones it into ./<name>, writes the
// template files, and pushes the initial commit on main. The local clone is
// left in place for the author to start editing.
func Create(ctx context.Context, creator RepoCreator, name, description string) error {
	if name == "" || !namePattern.MatchString(name) {
		return fmt.Errorf("invalid repo name: use only letters, numbers, '.', '_', and '-'")
	}
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("path already exists: %s", name)
	}

	if description == "" {
		description = "Cursor rule pack: " + name
	}
	if err := creator.CreateRepo(ctx, name, description); err != nil {
		return err
	}

	repoURL := catalog.RepoURL(creator.Org(), name)
	if err := gitrepo.Open(".").Clone(ctx, repoURL, name); err != nil {
		return err
	}
	if err := WriteTemplate(name); err != nil {
		return err
	}

	repo := gitrepo.Open(name)
	if err := repo.CheckoutNewBranch(ctx, "main"); err != nil {
		return err
	}
	if err := repo.Add(ctx, "LICENSE", "README.md", "RULES.md", ".github/workflows/ccverify.yml"); err != nil {
		return err
	}
	if err := repo.Commit(ctx, fmt.Sprintf("Initialize %s rule pack", name)); err != nil {
		return err
	}
	return repo.Push(ctx, "origin", "main")
}

// WriteTemplate writes the four contract files into dir: the Unlicense, the
// starter README and RULES, and the CI workflow.
func WriteTemplate(dir string) error {
	readme, err := RenderReadme(filepath.Base(dir))
	if err != nil {
		return err
	}
	rules, err := RenderRules(filepath.Base(dir))
	if err != nil {
		return err
	}

	workflowDir := filepath.Join(dir, ".github", "workflows")
	if err := os.MkdirAll(workflowDir, 0o755); err != nil {
		return fmt.Errorf("create workflow dir: %w", err)
	}

	files := map[string]string{
		filepath.Join(dir, "LICENSE"):              contract.UnlicenseText,
		filepath.Join(dir, "README.md"):            readme,
		filepath.Join(dir, "RULES.md"):             rules,
		filepath.Join(workflowDir, "ccverify.yml"): contract.CIWorkflowYML,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
