// Package assets provides the text templates used to publish a letter.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in templates)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Two templates exist:
//
//	templates/
//	├── letter.html   # entry block spliced into the published page
//	└── review.md     # body of the pull request opened for review
//
// A site whose markup differs from the built-in entry block can point
// templates.dir at a directory holding its own letter.html; review.md keeps
// falling back to the embedded copy.
//
// # Security
//
// Template names are validated against a fixed list. FilesystemLoader
// resolves symlinks and verifies paths stay within its base directory.
package assets
