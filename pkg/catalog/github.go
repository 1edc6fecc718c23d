package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/google/go-github/v60/github"

	"github.com/cursorcult/cursorcult/pkg/config"
	"github.com/cursorcult/cursorcult/pkg/contract"
)

// Client reads and creates rule-pack repositories in one org.
type Client struct {
	client *github.Client
	org    string
	token  string
}

// NewClient builds a Client from config. A token enables authenticated
// requests; listing works anonymously, creation does not.
func NewClient(cfg *config.Config) (*Client, error) {
	gh := github.NewClient(&http.Client{Timeout: cfg.HTTPTimeout})
	if cfg.Token != "" {
		gh = gh.WithAuthToken(cfg.Token)
	}
	if cfg.APIBaseURL != "" && cfg.APIBaseURL != "https://api.github.com" {
		base, err := url.Parse(strings.TrimSuffix(cfg.APIBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse api base url: %w", err)
		}
		gh.BaseURL = base
	}
	return &Client{client: gh, org: cfg.Org, token: cfg.Token}, nil
}

// Org returns the organization this client operates on.
func (c *Client) Org() string {
	return c.org
}

// ListPacks returns the org's rule packs sorted case-insensitively by name.
// Dot-prefixed repositories and the org meta repository are skipped. Unless
// includeUntagged is set, packs without a valid vN tag are dropped.
func (c *Client) ListPacks(ctx context.Context, includeUntagged bool) ([]RepoInfo, error) {
	var packs []RepoInfo

	opts := &github.RepositoryListByOrgOptions{
		Type:        "public",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := c.client.Repositories.ListByOrg(ctx, c.org, opts)
		if err != nil {
			return nil, fmt.Errorf("list repos for org %s: %w", c.org, err)
		}
		for _, r := range repos {
			name := r.GetName()
			if name == "" || strings.HasPrefix(name, ".") || name == contract.MetaRepo {
				continue
			}
			description := strings.TrimSpace(r.GetDescription())
			if description == "" {
				description = "no description"
			}
			tags, err := c.listTags(ctx, name)
			if err != nil {
				return nil, err
			}
			info := RepoInfo{Name: name, Description: description, Tags: tags}
			if !includeUntagged && info.LatestTag() == "" {
				continue
			}
			packs = append(packs, info)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sort.Slice(packs, func(i, j int) bool {
		return strings.ToLower(packs[i].Name) < strings.ToLower(packs[j].Name)
	})
	return packs, nil
}

func (c *Client) listTags(ctx context.Context, repo string) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		tags, resp, err := c.client.Repositories.ListTags(ctx, c.org, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", c.org, repo, err)
		}
		for _, t := range tags {
			if t.GetName() != "" {
				names = append(names, t.GetName())
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return names, nil
}

// CreateRepo creates a new public repository in the org with issues, wiki,
// and projects disabled. Requires an auth token.
func (c *Client) CreateRepo(ctx context.Context, name, description string) error {
	if c.token == "" {
		return fmt.Errorf("missing GITHUB_TOKEN or GH_TOKEN for GitHub API request")
	}
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(false),
		HasIssues:   github.Bool(false),
		HasProjects: github.Bool(false),
		HasWiki:     github.Bool(false),
	}
	if _, _, err := c.client.Repositories.Create(ctx, c.org, repo); err != nil {
		return fmt.Errorf("create repo %s/%s: %w", c.org, name, err)
	}
	return nil
}
