package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

type manifest struct {
	Elements *[]element `json:"elements"`
}

type element struct {
	Text *string `json:"Text"`
}

// ParseManifest returns the non-empty Text values of the manifest elements in order.
func ParseManifest(content string) ([]string, error) {
	var m manifest
	if err := json.Unmarshal([]byte(content), &m); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	if m.Elements == nil {
		return nil, fmt.Errorf("%w: elements list is missing", domain.ErrParse)
	}

	texts := make([]string, 0, len(*m.Elements))
	for _, e := range *m.Elements {
		if e.Text == nil || *e.Text == "" {
			continue
		}

		texts = append(texts, *e.Text)
	}

	return texts, nil
}
