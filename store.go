package letterbox

import (
	"context"

	"github.com/reasonandrage/letterbox/internal/github"
)

// Document is a page body and the blob SHA it was read at.
type Document struct {
	Body string
	SHA  string
}

// Commit is an update of one file on a branch. SHA is the blob SHA the
// update is based on; the store rejects the commit when it is stale.
type Commit struct {
	Path    string
	Body    string
	SHA     string
	Branch  string
	Message string
}

// ReviewRequest opens a pull request from Head into Base.
type ReviewRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// ReviewRef identifies an opened review request.
type ReviewRef struct {
	Number int
	URL    string
}

// DocumentStore is the versioned repository the page lives in.
type DocumentStore interface {
	FetchDocument(ctx context.Context, path string) (Document, error)
	DefaultBranch(ctx context.Context) (string, error)
	BranchHead(ctx context.Context, branch string) (string, error)
	CreateBranch(ctx context.Context, branch, sha string) error
	CommitDocument(ctx context.Context, c Commit) error
	OpenReviewRequest(ctx context.Context, r ReviewRequest) (ReviewRef, error)
	DeleteBranch(ctx context.Context, branch string) error
}

// githubStore adapts the REST client to DocumentStore.
type githubStore struct {
	client *github.Client
}

func newGitHubStore(client *github.Client) *githubStore {
	return &githubStore{client: client}
}

func (g *githubStore) FetchDocument(ctx context.Context, path string) (Document, error) {
	f, err := g.client.GetContents(ctx, path)
	if err != nil {
		return Document{}, err
	}
	return Document{Body: f.Content, SHA: f.SHA}, nil
}

func (g *githubStore) DefaultBranch(ctx context.Context) (string, error) {
	return g.client.GetDefaultBranch(ctx)
}

func (g *githubStore) BranchHead(ctx context.Context, branch string) (string, error) {
	return g.client.GetBranchSHA(ctx, branch)
}

func (g *githubStore) CreateBranch(ctx context.Context, branch, sha string) error {
	return g.client.CreateBranch(ctx, branch, sha)
}

func (g *githubStore) CommitDocument(ctx context.Context, c Commit) error {
	return g.client.UpdateContents(ctx, c.Path, github.FileUpdate{
		Message: c.Message,
		Content: c.Body,
		SHA:     c.SHA,
		Branch:  c.Branch,
	})
}

func (g *githubStore) OpenReviewRequest(ctx context.Context, r ReviewRequest) (ReviewRef, error) {
	pr, err := g.client.CreatePullRequest(ctx, github.NewPullRequest{
		Title: r.Title,
		Head:  r.Head,
		Base:  r.Base,
		Body:  r.Body,
	})
	if err != nil {
		return ReviewRef{}, err
	}
	return ReviewRef{Number: pr.Number, URL: pr.HTMLURL}, nil
}

func (g *githubStore) DeleteBranch(ctx context.Context, branch string) error {
	return g.client.DeleteBranch(ctx, branch)
}

// Compile-time interface check.
var _ DocumentStore = (*githubStore)(nil)
