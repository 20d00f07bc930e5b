package letterbox

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/reasonandrage/letterbox/internal/dateutil"
)

// Submission is one letter as received from a client.
type Submission struct {
	Title   string `json:"title"`
	Date    string `json:"date"`    // calendar date, e.g. 2024-03-05
	Content string `json:"content"` // markdown subset, see package docs
}

// Validate checks that all fields are present and the date parses.
// The returned error wraps ErrValidation.
func (s Submission) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Date, validation.Required, validation.By(isCalendarDate)),
		validation.Field(&s.Content, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// isCalendarDate is a validation rule for Submission.Date.
func isCalendarDate(value any) error {
	s, _ := value.(string)
	if _, err := dateutil.ParseCalendarDate(s, time.UTC); err != nil {
		return validation.NewError("validation_is_calendar_date", "must be a date like 2024-03-05")
	}
	return nil
}

// Result identifies the pull request opened for a submission.
type Result struct {
	Number int    `json:"pr_number"`
	URL    string `json:"pr_url"`
	Branch string `json:"branch"`
}

// Preview is what Submit would publish, computed without external calls.
type Preview struct {
	EntryHTML  string `json:"entry_html"`
	Branch     string `json:"branch"`
	Title      string `json:"pr_title"`
	Body       string `json:"pr_body"`
	BodyHTML   string `json:"pr_body_html"`
	CommitText string `json:"commit_message"`
}

// Configuration defaults.
const (
	DefaultOwner    = "reasonandrage"
	DefaultRepo     = "reasonandrage.org"
	DefaultPath     = "index.html"
	DefaultAPIURL   = "https://api.github.com"
	DefaultTimezone = "UTC"
)

// Config is the explicit configuration of a Service.
// Zero-valued fields fall back to the defaults above.
type Config struct {
	Token    string // required by Submit, not by Preview
	Owner    string
	Repo     string
	Path     string // page path inside the repository
	APIURL   string
	Timezone string // IANA zone used to read submitted dates

	// BranchPrefix is prepended to generated branch names.
	BranchPrefix string

	// CleanupOrphanedBranch deletes the created branch when a later step fails.
	CleanupOrphanedBranch bool

	// TemplatesDir overrides the embedded letter and review templates.
	TemplatesDir string
}

// DefaultConfig returns a Config with every default filled in and no token.
func DefaultConfig() Config {
	return Config{
		Owner:    DefaultOwner,
		Repo:     DefaultRepo,
		Path:     DefaultPath,
		APIURL:   DefaultAPIURL,
		Timezone: DefaultTimezone,
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Owner == "" {
		c.Owner = d.Owner
	}
	if c.Repo == "" {
		c.Repo = d.Repo
	}
	if c.Path == "" {
		c.Path = d.Path
	}
	if c.APIURL == "" {
		c.APIURL = d.APIURL
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
	return c
}

// Option configures a Service.
type Option func(*Service)

// WithDocumentStore replaces the GitHub-backed store, e.g. with a fake in tests.
func WithDocumentStore(store DocumentStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithHTTPClient sets the http.Client used by the GitHub-backed store.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Service) {
		s.httpClient = hc
	}
}

// WithClock sets the time source used for branch suffixes.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("letterbox: WithClock requires a non-nil function")
	}
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
