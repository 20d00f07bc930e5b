package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Defaults for NewClient.
const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultUserAgent = "letterbox"
	DefaultTimeout   = 30 * time.Second

	mediaType = "application/vnd.github.v3+json"

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 16 << 20
)

// Client calls the REST API for a single repository.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	token      string
	owner      string
	repo       string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at another API root, e.g. an Enterprise
// server or a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client for owner/repo authenticated with token.
func NewClient(token, owner, repo string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		token:      token,
		owner:      owner,
		repo:       repo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetContents reads a file and its blob SHA from the default branch.
func (c *Client) GetContents(ctx context.Context, path string) (*File, error) {
	var resp contentsResponse
	if err := c.do(ctx, http.MethodGet, c.repoPath("contents", escapePath(path)), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Type != "" && resp.Type != "file" {
		return nil, fmt.Errorf("%w: %s is a %s, not a file", ErrUnexpectedResponse, path, resp.Type)
	}
	if resp.Encoding != "" && resp.Encoding != "base64" {
		return nil, fmt.Errorf("%w: unsupported content encoding %q", ErrUnexpectedResponse, resp.Encoding)
	}

	// The API wraps base64 content at 60 columns
	raw := strings.NewReplacer("\n", "", "\r", "").Replace(resp.Content)
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding content of %s: %v", ErrUnexpectedResponse, path, err)
	}

	return &File{Content: string(decoded), SHA: resp.SHA}, nil
}

// GetDefaultBranch returns the repository's default branch name.
func (c *Client) GetDefaultBranch(ctx context.Context) (string, error) {
	var resp repositoryResponse
	if err := c.do(ctx, http.MethodGet, c.repoPath(), nil, &resp); err != nil {
		return "", err
	}
	if resp.DefaultBranch == "" {
		return "", fmt.Errorf("%w: repository has no default branch", ErrUnexpectedResponse)
	}
	return resp.DefaultBranch, nil
}

// GetBranchSHA returns the commit SHA a branch points at.
func (c *Client) GetBranchSHA(ctx context.Context, branch string) (string, error) {
	var resp refResponse
	if err := c.do(ctx, http.MethodGet, c.repoPath("git", "ref", "heads", escapePath(branch)), nil, &resp); err != nil {
		return "", err
	}
	if resp.Object.SHA == "" {
		return "", fmt.Errorf("%w: ref heads/%s has no object sha", ErrUnexpectedResponse, branch)
	}
	return resp.Object.SHA, nil
}

// CreateBranch creates refs/heads/<branch> pointing at sha.
func (c *Client) CreateBranch(ctx context.Context, branch, sha string) error {
	body := createRefRequest{Ref: "refs/heads/" + branch, SHA: sha}
	return c.do(ctx, http.MethodPost, c.repoPath("git", "refs"), body, nil)
}

// UpdateContents replaces a file on a branch. The API rejects the update
// with 409 when u.SHA no longer matches the file.
func (c *Client) UpdateContents(ctx context.Context, path string, u FileUpdate) error {
	body := updateContentsRequest{
		Message: u.Message,
		Content: base64.StdEncoding.EncodeToString([]byte(u.Content)),
		SHA:     u.SHA,
		Branch:  u.Branch,
	}
	return c.do(ctx, http.MethodPut, c.repoPath("contents", escapePath(path)), body, nil)
}

// CreatePullRequest opens a pull request from pr.Head into pr.Base.
func (c *Client) CreatePullRequest(ctx context.Context, pr NewPullRequest) (*PullRequest, error) {
	body := createPullRequest(pr)
	var resp PullRequest
	if err := c.do(ctx, http.MethodPost, c.repoPath("pulls"), body, &resp); err != nil {
		return nil, err
	}
	if resp.Number == 0 || resp.HTMLURL == "" {
		return nil, fmt.Errorf("%w: pull request without number or url", ErrUnexpectedResponse)
	}
	return &resp, nil
}

// DeleteBranch deletes refs/heads/<branch>.
func (c *Client) DeleteBranch(ctx context.Context, branch string) error {
	return c.do(ctx, http.MethodDelete, c.repoPath("git", "refs", "heads", escapePath(branch)), nil, nil)
}

// repoPath joins /repos/{owner}/{repo} with already-escaped segments.
func (c *Client) repoPath(segments ...string) string {
	parts := append([]string{"repos", url.PathEscape(c.owner), url.PathEscape(c.repo)}, segments...)
	return "/" + strings.Join(parts, "/")
}

// escapePath escapes each slash-separated segment of p.
func escapePath(p string) string {
	segs := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded
// from a 2xx body when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encoding %s %s: %v", ErrRequest, method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", mediaType)
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequest, method, path, err)
	}

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	_ = resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("%w: reading %s %s: %v", ErrRequest, method, path, readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Method: method, Path: path}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = strings.TrimSpace(eb.Message)
		}
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	return nil
}
