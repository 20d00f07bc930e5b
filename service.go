package letterbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/reasonandrage/letterbox/internal/assets"
	"github.com/reasonandrage/letterbox/internal/dateutil"
	"github.com/reasonandrage/letterbox/internal/github"
	"github.com/reasonandrage/letterbox/internal/pipeline"
)

// State names one step of the submission sequence.
type State string

// Submission states, in execution order.
const (
	StateValidate               State = "Validate"
	StateFetchDocument          State = "FetchDocument"
	StateLocateInsertionPoint   State = "LocateInsertionPoint"
	StateComposeUpdatedDocument State = "ComposeUpdatedDocument"
	StateResolveDefaultBranch   State = "ResolveDefaultBranch"
	StateResolveBaseRevision    State = "ResolveBaseRevision"
	StateCreateBranch           State = "CreateBranch"
	StateCommitUpdatedDocument  State = "CommitUpdatedDocument"
	StateOpenReviewRequest      State = "OpenReviewRequest"
)

// Service publishes submissions. It holds no per-submission state and is
// safe for concurrent use.
type Service struct {
	cfg        Config
	loc        *time.Location
	store      DocumentStore
	httpClient *http.Client
	formatter  *pipeline.LetterFormatter
	review     *pipeline.ReviewComposer
	now        func() time.Time
	logger     *slog.Logger
}

// New creates a Service from cfg. Empty fields take their defaults.
// Returns an error wrapping ErrConfiguration for an unknown timezone or
// unusable templates. A missing token is only reported by Submit.
func New(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:    cfg.withDefaults(),
		now:    time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	loc, err := dateutil.LoadLocation(s.cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	s.loc = loc

	loader, err := assets.NewAssetResolver(s.cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("%w: templates directory: %w", ErrConfiguration, err)
	}
	if loader.HasCustomLoader() {
		s.logger.Debug("using custom templates", "dir", s.cfg.TemplatesDir)
	}

	if s.formatter, err = pipeline.NewLetterFormatter(loader, loc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if s.review, err = pipeline.NewReviewComposer(loader); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	// Create the GitHub store if not injected (e.g., by tests)
	if s.store == nil {
		client := github.NewClient(s.cfg.Token, s.cfg.Owner, s.cfg.Repo,
			github.WithBaseURL(s.cfg.APIURL),
			github.WithHTTPClient(s.httpClient),
		)
		s.store = newGitHubStore(client)
	}

	return s, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Service) Config() Config {
	return s.cfg
}

// submission carries the values produced by each step to the next ones.
type submission struct {
	Submission

	doc      Document
	insertAt int
	updated  string
	base     string
	baseSHA  string
	branch   string
	created  bool
	review   ReviewRef
}

type step struct {
	state State
	run   func(ctx context.Context, sub *submission) error
}

// steps returns the submission sequence. It has no branches: each step
// either succeeds or ends the sequence.
func (s *Service) steps() []step {
	return []step{
		{StateValidate, s.validate},
		{StateFetchDocument, s.fetchDocument},
		{StateLocateInsertionPoint, s.locateInsertionPoint},
		{StateComposeUpdatedDocument, s.composeUpdatedDocument},
		{StateResolveDefaultBranch, s.resolveDefaultBranch},
		{StateResolveBaseRevision, s.resolveBaseRevision},
		{StateCreateBranch, s.createBranch},
		{StateCommitUpdatedDocument, s.commitUpdatedDocument},
		{StateOpenReviewRequest, s.openReviewRequest},
	}
}

// Submit publishes in as a pull request and returns its number and URL.
// Steps run strictly in order with no retries; the first failure is
// returned and nothing after it runs.
func (s *Service) Submit(ctx context.Context, in Submission) (*Result, error) {
	sub := &submission{Submission: in}

	for _, st := range s.steps() {
		s.logger.DebugContext(ctx, "submission step", "state", string(st.state))
		if err := st.run(ctx, sub); err != nil {
			s.abandon(ctx, sub, st.state)
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "letter submitted",
		"branch", sub.branch,
		"pr_number", sub.review.Number,
		"pr_url", sub.review.URL,
	)

	return &Result{
		Number: sub.review.Number,
		URL:    sub.review.URL,
		Branch: sub.branch,
	}, nil
}

func (s *Service) validate(_ context.Context, sub *submission) error {
	if err := sub.Validate(); err != nil {
		return err
	}
	if s.cfg.Token == "" {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrMissingToken)
	}
	return nil
}

func (s *Service) fetchDocument(ctx context.Context, sub *submission) error {
	doc, err := s.store.FetchDocument(ctx, s.cfg.Path)
	if err != nil {
		return fmt.Errorf("%w: fetching %s: %w", ErrUpstream, s.cfg.Path, err)
	}
	sub.doc = doc
	return nil
}

func (s *Service) locateInsertionPoint(_ context.Context, sub *submission) error {
	pos, err := pipeline.FindInsertionPoint(sub.doc.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrStructure, s.cfg.Path, err)
	}
	sub.insertAt = pos
	return nil
}

func (s *Service) composeUpdatedDocument(_ context.Context, sub *submission) error {
	entry, err := s.formatter.Format(sub.Title, sub.Date, sub.Content)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidDate) {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return fmt.Errorf("formatting letter: %w", err)
	}
	sub.updated = pipeline.InsertEntry(sub.doc.Body, sub.insertAt, entry)
	return nil
}

func (s *Service) resolveDefaultBranch(ctx context.Context, sub *submission) error {
	base, err := s.store.DefaultBranch(ctx)
	if err != nil {
		return fmt.Errorf("%w: resolving default branch: %w", ErrUpstream, err)
	}
	sub.base = base
	return nil
}

func (s *Service) resolveBaseRevision(ctx context.Context, sub *submission) error {
	sha, err := s.store.BranchHead(ctx, sub.base)
	if err != nil {
		return fmt.Errorf("%w: resolving head of %s: %w", ErrUpstream, sub.base, err)
	}
	sub.baseSHA = sha
	return nil
}

func (s *Service) createBranch(ctx context.Context, sub *submission) error {
	sub.branch = s.branchName(sub.Title)
	if err := s.store.CreateBranch(ctx, sub.branch, sub.baseSHA); err != nil {
		return fmt.Errorf("%w: creating branch %s: %w", ErrUpstream, sub.branch, err)
	}
	sub.created = true
	return nil
}

func (s *Service) commitUpdatedDocument(ctx context.Context, sub *submission) error {
	err := s.store.CommitDocument(ctx, Commit{
		Path:    s.cfg.Path,
		Body:    sub.updated,
		SHA:     sub.doc.SHA,
		Branch:  sub.branch,
		Message: s.review.Title(sub.Title),
	})
	if err != nil {
		return fmt.Errorf("%w: updating %s on %s: %w", ErrUpstream, s.cfg.Path, sub.branch, err)
	}
	return nil
}

func (s *Service) openReviewRequest(ctx context.Context, sub *submission) error {
	body, err := s.review.Body(sub.Title, sub.Date)
	if err != nil {
		return fmt.Errorf("composing pull request body: %w", err)
	}

	ref, err := s.store.OpenReviewRequest(ctx, ReviewRequest{
		Title: s.review.Title(sub.Title),
		Body:  body,
		Head:  sub.branch,
		Base:  sub.base,
	})
	if err != nil {
		return fmt.Errorf("%w: opening pull request: %w", ErrUpstream, err)
	}
	sub.review = ref
	return nil
}

// abandon handles a branch created before a failing step. It is deleted
// only when cleanup is enabled; a cleanup failure is logged, never returned.
func (s *Service) abandon(ctx context.Context, sub *submission, failed State) {
	if !sub.created {
		return
	}

	if !s.cfg.CleanupOrphanedBranch {
		s.logger.WarnContext(ctx, "branch left without pull request",
			"branch", sub.branch, "failed_state", string(failed))
		return
	}

	// The request may already be canceled; cleanup still runs
	ctx = context.WithoutCancel(ctx)
	if err := s.store.DeleteBranch(ctx, sub.branch); err != nil {
		s.logger.WarnContext(ctx, "orphaned branch cleanup failed",
			"branch", sub.branch, "failed_state", string(failed), "error", err)
		return
	}
	s.logger.InfoContext(ctx, "deleted orphaned branch", "branch", sub.branch)
}

// branchName applies the configured prefix to BranchName.
func (s *Service) branchName(title string) string {
	return s.cfg.BranchPrefix + BranchName(title, s.now())
}

// Preview returns what Submit would publish for in, without any external call.
func (s *Service) Preview(ctx context.Context, in Submission) (*Preview, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.formatter.Format(in.Title, in.Date, in.Content)
	if err != nil {
		if errors.Is(err, dateutil.ErrInvalidDate) {
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return nil, fmt.Errorf("formatting letter: %w", err)
	}

	body, err := s.review.Body(in.Title, in.Date)
	if err != nil {
		return nil, fmt.Errorf("composing pull request body: %w", err)
	}

	bodyHTML, err := s.review.RenderHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("rendering pull request body: %w", err)
	}

	title := s.review.Title(in.Title)
	return &Preview{
		EntryHTML:  entry,
		Branch:     s.branchName(in.Title),
		Title:      title,
		Body:       body,
		BodyHTML:   bodyHTML,
		CommitText: title,
	}, nil
}

// CheckDocument fetches the configured page and confirms a letter could be
// inserted into it. It writes nothing.
func (s *Service) CheckDocument(ctx context.Context) error {
	if s.cfg.Token == "" {
		return fmt.Errorf("%w: %w", ErrConfiguration, ErrMissingToken)
	}
	sub := &submission{}
	if err := s.fetchDocument(ctx, sub); err != nil {
		return err
	}
	return s.locateInsertionPoint(ctx, sub)
}
