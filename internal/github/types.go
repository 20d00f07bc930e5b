package github

// File is a file's decoded content and blob SHA.
type File struct {
	Content string
	SHA     string
}

// FileUpdate describes a contents update on a branch.
// SHA must be the blob SHA the update is based on.
type FileUpdate struct {
	Message string
	Content string // plain text, encoded by the client
	SHA     string
	Branch  string
}

// NewPullRequest describes a pull request to open.
type NewPullRequest struct {
	Title string
	Head  string
	Base  string
	Body  string
}

// PullRequest is the subset of a created pull request the caller needs.
type PullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

type contentsResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

type repositoryResponse struct {
	DefaultBranch string `json:"default_branch"`
}

type refResponse struct {
	Ref    string `json:"ref"`
	Object struct {
		SHA string `json:"sha"`
	} `json:"object"`
}

type createRefRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

type updateContentsRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch,omitempty"`
}

type createPullRequest struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body"`
}

type errorBody struct {
	Message string `json:"message"`
}
