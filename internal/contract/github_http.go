package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bluefalconink/chad/schema"
)

// ListPageSize is the page size used for all listing endpoints.
const ListPageSize = 100

// GitHubClient implements FleetClient against the GitHub REST API.
// Every request consults the shared call budget before being issued and
// carries the configured timeout via its http.Client.
type GitHubClient struct {
	base   string
	token  string
	client *http.Client
	budget *Budget
}

var _ FleetClient = &GitHubClient{} // Compile-time check

// NewGitHubClient creates a FleetClient for the given API base and token.
// The budget may be nil, in which case calls are unlimited.
func NewGitHubClient(cfg *Config, budget *Budget) *GitHubClient {
	base := cfg.APIBase
	if base == "" {
		base = DefaultAPIBase
	}
	return &GitHubClient{
		base:   base,
		token:  cfg.Token,
		client: &http.Client{Timeout: cfg.Timeout},
		budget: budget,
	}
}

// ghRepo mirrors the subset of the repository JSON the audit consumes.
type ghRepo struct {
	Name  string `json:"name"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	Description   string `json:"description"`
	HTMLURL       string `json:"html_url"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	Archived      bool   `json:"archived"`
	Size          int64  `json:"size"`
	PushedAt      string `json:"pushed_at"`
	DefaultBranch string `json:"default_branch"`
	Language      string `json:"language"`
}

func (r ghRepo) toRecord() schema.RepoRecord {
	branch := r.DefaultBranch
	if branch == "" {
		branch = "main"
	}
	return schema.RepoRecord{
		Name:          r.Name,
		Owner:         r.Owner.Login,
		FullName:      r.Owner.Login + "/" + r.Name,
		Description:   r.Description,
		HTMLURL:       r.HTMLURL,
		Private:       r.Private,
		Fork:          r.Fork,
		Archived:      r.Archived,
		SizeKB:        r.Size,
		PushedAt:      r.PushedAt,
		DefaultBranch: branch,
		Language:      r.Language,
	}
}

// get issues a budgeted GET request and returns the response body.
func (g *GitHubClient) get(ctx context.Context, path string, params url.Values, accept string) ([]byte, error) {
	if !g.budget.Spend() {
		return nil, ErrBudgetExhausted
	}

	u := g.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if g.token != "" {
		req.Header.Set("Authorization", "token "+g.token)
	}
	req.Header.Set("Accept", accept)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
		}
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("api returned %d for %s", resp.StatusCode, path)
	}
}

// getJSON issues a budgeted GET request and decodes the JSON response.
func (g *GitHubClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	body, err := g.get(ctx, path, params, "application/vnd.github.v3+json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func listParams(page int) url.Values {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(ListPageSize))
	params.Set("page", strconv.Itoa(page))
	return params
}

// ListOwnRepos returns one page of repos owned by the authenticated user.
func (g *GitHubClient) ListOwnRepos(ctx context.Context, page int) ([]schema.RepoRecord, error) {
	params := listParams(page)
	params.Set("affiliation", "owner")
	params.Set("sort", "pushed")

	var repos []ghRepo
	if err := g.getJSON(ctx, "/user/repos", params, &repos); err != nil {
		return nil, err
	}
	return toRecords(repos), nil
}

// ListUserRepos returns one page of a user's repos via the public endpoint.
func (g *GitHubClient) ListUserRepos(ctx context.Context, user string, page int) ([]schema.RepoRecord, error) {
	params := listParams(page)
	params.Set("type", "all")

	var repos []ghRepo
	path := "/users/" + url.PathEscape(user) + "/repos"
	if err := g.getJSON(ctx, path, params, &repos); err != nil {
		return nil, err
	}
	return toRecords(repos), nil
}

// ListOrgRepos returns one page of an organization's repos.
func (g *GitHubClient) ListOrgRepos(ctx context.Context, org string, page int) ([]schema.RepoRecord, error) {
	params := listParams(page)
	params.Set("type", "all")

	var repos []ghRepo
	path := "/orgs/" + url.PathEscape(org) + "/repos"
	if err := g.getJSON(ctx, path, params, &repos); err != nil {
		return nil, err
	}
	return toRecords(repos), nil
}

// GetRepo returns the metadata record for a single repo.
func (g *GitHubClient) GetRepo(ctx context.Context, owner, repo string) (schema.RepoRecord, error) {
	var r ghRepo
	apiPath := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	if err := g.getJSON(ctx, apiPath, nil, &r); err != nil {
		return schema.RepoRecord{}, err
	}
	return r.toRecord(), nil
}

// GetFileContent fetches the raw text of a file at a ref.
func (g *GitHubClient) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	params := url.Values{}
	params.Set("ref", ref)

	apiPath := fmt.Sprintf("/repos/%s/%s/contents/%s", url.PathEscape(owner), url.PathEscape(repo), path)
	body, err := g.get(ctx, apiPath, params, "application/vnd.github.v3.raw")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ListDirectory returns the entry names of a directory at a ref.
func (g *GitHubClient) ListDirectory(ctx context.Context, owner, repo, dir, ref string) ([]string, error) {
	params := url.Values{}
	params.Set("ref", ref)

	var entries []struct {
		Name string `json:"name"`
	}
	apiPath := fmt.Sprintf("/repos/%s/%s/contents/%s", url.PathEscape(owner), url.PathEscape(repo), dir)
	if err := g.getJSON(ctx, apiPath, params, &entries); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// ListWorkflowRuns returns the total run count and the most recent runs.
func (g *GitHubClient) ListWorkflowRuns(ctx context.Context, owner, repo string, limit int) (int, []schema.WorkflowRun, error) {
	params := url.Values{}
	params.Set("per_page", strconv.Itoa(limit))

	var result struct {
		TotalCount   int `json:"total_count"`
		WorkflowRuns []struct {
			Name       string `json:"name"`
			Status     string `json:"status"`
			Conclusion string `json:"conclusion"`
			CreatedAt  string `json:"created_at"`
		} `json:"workflow_runs"`
	}
	apiPath := fmt.Sprintf("/repos/%s/%s/actions/runs", url.PathEscape(owner), url.PathEscape(repo))
	if err := g.getJSON(ctx, apiPath, params, &result); err != nil {
		return 0, nil, err
	}

	runs := make([]schema.WorkflowRun, 0, limit)
	for i, r := range result.WorkflowRuns {
		if i >= limit {
			break
		}
		runs = append(runs, schema.WorkflowRun{
			Name:       r.Name,
			Status:     r.Status,
			Conclusion: r.Conclusion,
			CreatedAt:  r.CreatedAt,
		})
	}
	return result.TotalCount, runs, nil
}

// ListSecretNames returns configured Actions secret names, never values.
func (g *GitHubClient) ListSecretNames(ctx context.Context, owner, repo string) ([]string, error) {
	var result struct {
		Secrets []struct {
			Name string `json:"name"`
		} `json:"secrets"`
	}
	apiPath := fmt.Sprintf("/repos/%s/%s/actions/secrets", url.PathEscape(owner), url.PathEscape(repo))
	if err := g.getJSON(ctx, apiPath, nil, &result); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Secrets))
	for _, s := range result.Secrets {
		names = append(names, s.Name)
	}
	return names, nil
}

func toRecords(repos []ghRepo) []schema.RepoRecord {
	records := make([]schema.RepoRecord, 0, len(repos))
	for _, r := range repos {
		records = append(records, r.toRecord())
	}
	return records
}
