package assets

import "fmt"

// Template names.
const (
	LetterTemplate = "letter"
	ReviewTemplate = "review"
)

// templateFiles maps a template name to its file under templates/.
var templateFiles = map[string]string{
	LetterTemplate: "letter.html",
	ReviewTemplate: "review.md",
}

// AssetLoader defines the contract for loading templates by name.
type AssetLoader interface {
	// LoadTemplate returns the raw template text.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName for names outside the known set.
	LoadTemplate(name string) (string, error)
}

// templateFile validates name and returns its file name.
func templateFile(name string) (string, error) {
	file, ok := templateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return file, nil
}
