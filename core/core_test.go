package core

import (
	"context"
	"sync/atomic"

	"github.com/bluefalconink/chad/internal/contract"
	"github.com/bluefalconink/chad/schema"
)

// stubClient is a configurable FleetClient for tests. Unset hooks behave
// like missing resources.
type stubClient struct {
	listOwnRepos     func(page int) ([]schema.RepoRecord, error)
	listUserRepos    func(user string, page int) ([]schema.RepoRecord, error)
	listOrgRepos     func(org string, page int) ([]schema.RepoRecord, error)
	getRepo          func(owner, repo string) (schema.RepoRecord, error)
	getFileContent   func(owner, repo, path, ref string) (string, error)
	listDirectory    func(owner, repo, dir, ref string) ([]string, error)
	listWorkflowRuns func(owner, repo string, limit int) (int, []schema.WorkflowRun, error)
	listSecretNames  func(owner, repo string) ([]string, error)
}

var _ contract.FleetClient = &stubClient{}

func (s *stubClient) ListOwnRepos(_ context.Context, page int) ([]schema.RepoRecord, error) {
	if s.listOwnRepos == nil {
		return nil, nil
	}
	return s.listOwnRepos(page)
}

func (s *stubClient) ListUserRepos(_ context.Context, user string, page int) ([]schema.RepoRecord, error) {
	if s.listUserRepos == nil {
		return nil, nil
	}
	return s.listUserRepos(user, page)
}

func (s *stubClient) ListOrgRepos(_ context.Context, org string, page int) ([]schema.RepoRecord, error) {
	if s.listOrgRepos == nil {
		return nil, nil
	}
	return s.listOrgRepos(org, page)
}

func (s *stubClient) GetRepo(_ context.Context, owner, repo string) (schema.RepoRecord, error) {
	if s.getRepo == nil {
		return schema.RepoRecord{}, contract.ErrNotFound
	}
	return s.getRepo(owner, repo)
}

func (s *stubClient) GetFileContent(_ context.Context, owner, repo, path, ref string) (string, error) {
	if s.getFileContent == nil {
		return "", contract.ErrNotFound
	}
	return s.getFileContent(owner, repo, path, ref)
}

func (s *stubClient) ListDirectory(_ context.Context, owner, repo, dir, ref string) ([]string, error) {
	if s.listDirectory == nil {
		return nil, contract.ErrNotFound
	}
	return s.listDirectory(owner, repo, dir, ref)
}

func (s *stubClient) ListWorkflowRuns(_ context.Context, owner, repo string, limit int) (int, []schema.WorkflowRun, error) {
	if s.listWorkflowRuns == nil {
		return 0, nil, contract.ErrNotFound
	}
	return s.listWorkflowRuns(owner, repo, limit)
}

func (s *stubClient) ListSecretNames(_ context.Context, owner, repo string) ([]string, error) {
	if s.listSecretNames == nil {
		return nil, contract.ErrNotFound
	}
	return s.listSecretNames(owner, repo)
}

// budgetedClient charges every call against a Budget before delegating,
// mirroring the ledger the HTTP client keeps per request.
type budgetedClient struct {
	inner  contract.FleetClient
	budget *contract.Budget
	calls  atomic.Int64
}

var _ contract.FleetClient = &budgetedClient{}

func (c *budgetedClient) spend() bool {
	if !c.budget.Spend() {
		return false
	}
	c.calls.Add(1)
	return true
}

func (c *budgetedClient) ListOwnRepos(ctx context.Context, page int) ([]schema.RepoRecord, error) {
	if !c.spend() {
		return nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListOwnRepos(ctx, page)
}

func (c *budgetedClient) ListUserRepos(ctx context.Context, user string, page int) ([]schema.RepoRecord, error) {
	if !c.spend() {
		return nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListUserRepos(ctx, user, page)
}

func (c *budgetedClient) ListOrgRepos(ctx context.Context, org string, page int) ([]schema.RepoRecord, error) {
	if !c.spend() {
		return nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListOrgRepos(ctx, org, page)
}

func (c *budgetedClient) GetRepo(ctx context.Context, owner, repo string) (schema.RepoRecord, error) {
	if !c.spend() {
		return schema.RepoRecord{}, contract.ErrBudgetExhausted
	}
	return c.inner.GetRepo(ctx, owner, repo)
}

func (c *budgetedClient) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	if !c.spend() {
		return "", contract.ErrBudgetExhausted
	}
	return c.inner.GetFileContent(ctx, owner, repo, path, ref)
}

func (c *budgetedClient) ListDirectory(ctx context.Context, owner, repo, dir, ref string) ([]string, error) {
	if !c.spend() {
		return nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListDirectory(ctx, owner, repo, dir, ref)
}

func (c *budgetedClient) ListWorkflowRuns(ctx context.Context, owner, repo string, limit int) (int, []schema.WorkflowRun, error) {
	if !c.spend() {
		return 0, nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListWorkflowRuns(ctx, owner, repo, limit)
}

func (c *budgetedClient) ListSecretNames(ctx context.Context, owner, repo string) ([]string, error) {
	if !c.spend() {
		return nil, contract.ErrBudgetExhausted
	}
	return c.inner.ListSecretNames(ctx, owner, repo)
}
