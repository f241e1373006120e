package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter reports malformed front matter in the input document.
var ErrFrontMatter = errors.New("invalid front matter")

// splitFrontMatter separates a leading YAML or TOML front matter block
// from the document body. The block is returned verbatim so it can be
// reattached byte-for-byte after transformation.
func splitFrontMatter(content string) (prefix, body string, err error) {
	var meta map[string]interface{}
	rest, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	prefix = content[:len(content)-len(rest)]
	return prefix, string(rest), nil
}
