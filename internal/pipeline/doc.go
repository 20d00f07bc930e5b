// Package pipeline turns a submitted letter into the markup spliced into the
// published page:
//   - Markup conversion: a fixed markdown subset (bold, italic, unordered
//     lists, paragraphs) to HTML, line by line
//   - Letter formatting: title, date, and converted content wrapped in the
//     entry template
//   - Insertion: locating the first entry of the letters section and
//     splicing the new entry right after it
//   - Review rendering: the pull request body, rendered to HTML via Goldmark
//     for previews
//
// Every stage treats the page as an opaque string. Nothing here parses the
// whole document, so a page that lacks the anchors fails with a structural
// error rather than a parse error.
package pipeline
