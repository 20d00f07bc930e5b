// Package letterbox publishes submitted letters to a static website as pull
// requests.
//
// # Quick Start
//
//	svc, err := letterbox.New(letterbox.Config{Token: os.Getenv("GITHUB_TOKEN")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := svc.Submit(ctx, letterbox.Submission{
//	    Title:   "Hello",
//	    Date:    "2024-03-05",
//	    Content: "**Dear** reader,\n\n- one\n- two",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.URL)
//
// # Submission Sequence
//
// Submit runs these steps in order and stops at the first failure:
//
//  1. Validate the submission and the configuration
//  2. Fetch the page and its blob SHA
//  3. Locate the letters section and its first entry
//  4. Splice the formatted entry after that first entry
//  5. Resolve the default branch and its head commit
//  6. Create a branch named after the title
//  7. Commit the updated page on that branch, guarded by the blob SHA
//  8. Open a pull request against the default branch
//
// Nothing is retried. A branch created before a later failure is left in
// place unless Config.CleanupOrphanedBranch is set.
//
// # Content Format
//
// Letter content supports a small markdown subset: **bold**, *italic*,
// "- " or "* " list items, and one paragraph per non-blank line. Content is
// not escaped; the title is.
//
// # Errors
//
// Every failure wraps one of ErrValidation, ErrConfiguration, ErrStructure
// or ErrUpstream:
//
//	if errors.Is(err, letterbox.ErrValidation) {
//	    // bad input, nothing was sent upstream
//	}
package letterbox
