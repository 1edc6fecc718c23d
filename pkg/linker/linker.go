// Package linker pins a rule pack into a consumer project as a git submodule
// checked out at a specific vN tag.
package linker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cursorcult/cursorcult/pkg/catalog"
	"github.com/cursorcult/cursorcult/pkg/contract"
	"github.com/cursorcult/cursorcult/pkg/gitrepo"
)

// Catalog is the subset of the org catalog the linker needs.
type Catalog interface {
	ListPacks(ctx context.Context, includeUntagged bool) ([]catalog.RepoInfo, error)
	Org() string
}

// Result describes a completed link.
type Result struct {
	Name   string
	Tag    string
	Target string
}

// ParseSpec splits "name" or "name:tag". The tag, when present, must follow
// the vN scheme.
func ParseSpec(spec string) (name, tag string, err error) {
	if i := strings.Index(spec, ":"); i >= 0 {
		name = strings.TrimSpace(spec[:i])
		tag = strings.TrimSpace(spec[i+1:])
		if !contract.IsValidTagName(tag) {
			return "", "", fmt.Errorf("invalid tag '%s': use v0, v1, v2, ...", tag)
		}
		return name, tag, nil
	}
	return strings.TrimSpace(spec), "", nil
}

// Link resolves spec against the catalog and adds the pack as a submodule
// under rulesDir, checked out at the requested (or latest) tag. The project
// is expected to already have a rulesDir; linking never creates one.
func Link(ctx context.Context, cat Catalog, rulesDir, spec string) (Result, error) {
	name, requestedTag, err := ParseSpec(spec)
	if err != nil {
		return Result{}, err
	}
	if name == "" {
		return Result{}, fmt.Errorf("rule name is required")
	}

	packs, err := cat.ListPacks(ctx, true)
	if err != nil {
		return Result{}, err
	}
	pack, ok := findPack(packs, name)
	if !ok {
		return Result{}, fmt.Errorf("unknown rule '%s'. Available: %s", name, availableNames(packs))
	}

	tag := requestedTag
	if tag == "" {
		tag = pack.LatestTag()
	}
	if tag == "" {
		return Result{}, fmt.Errorf("rule '%s' has no vN tags to link", name)
	}

	if fi, err := os.Stat(rulesDir); err != nil || !fi.IsDir() {
		return Result{}, fmt.Errorf("no %s directory found at project root. Create it first", rulesDir)
	}
	target := filepath.Join(rulesDir, name)
	if _, err := os.Stat(target); err == nil {
		return Result{}, fmt.Errorf("target path already exists: %s. Remove it or choose another name", target)
	}

	project := gitrepo.Open(".")
	if err := project.SubmoduleAdd(ctx, catalog.RepoURL(cat.Org(), name), target); err != nil {
		return Result{}, err
	}
	if err := gitrepo.Open(target).Checkout(ctx, tag); err != nil {
		return Result{}, err
	}

	return Result{Name: name, Tag: tag, Target: target}, nil
}

func findPack(packs []catalog.RepoInfo, name string) (catalog.RepoInfo, bool) {
	for _, p := range packs {
		if p.Name == name {
			return p, true
		}
	}
	return catalog.RepoInfo{}, false
}

func availableNames(packs []catalog.RepoInfo) string {
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
