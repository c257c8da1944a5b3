package segmenter

import (
	"fmt"

	"nlu/internal/domain"
)

// New builds the segmenter selected by name ("punkt" or "regex").
// An empty name selects punkt.
func New(name string) (domain.Segmenter, error) {
	switch name {
	case "punkt", "":
		return NewPunktSegmenter()
	case "regex":
		return NewRegexSegmenter(), nil
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", name)
	}
}
