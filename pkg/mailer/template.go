package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template represents an email template with metadata and body.
type Template struct {
	Metadata map[string]any
	Body     string
}

var frontmatterDelim = []byte("---")

// ParseTemplate splits template file content into YAML frontmatter
// metadata and a markdown body. Content without a leading "---" is all
// body.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelim) {
		return &Template{
			Metadata: make(map[string]any),
			Body:     string(content),
		}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelim), "\n\r")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	front, body, found := bytes.Cut(rest, frontmatterDelim)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}
	body = trimLeadingNewline(body)

	metadata := make(map[string]any)
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{
		Metadata: metadata,
		Body:     string(body),
	}, nil
}

// trimLeadingNewline drops the one newline that follows the closing
// delimiter, so the body starts at its first real line. Handles \n and
// \r\n; a lone \r stays.
func trimLeadingNewline(b []byte) []byte {
	switch {
	case bytes.HasPrefix(b, []byte("\r\n")):
		return b[2:]
	case bytes.HasPrefix(b, []byte("\n")):
		return b[1:]
	}
	return b
}
