package templates

import (
	"bytes"

	"github.com/uskit/cli/internal/casing"
)

// Placeholder tokens recognized in template file contents. The literal
// filename substring "Module" is handled separately by the rename pass.
const (
	TokenLiteral = "$module$"
	TokenSnake   = "$_module$"
	TokenKebab   = "$-module$"
	TokenPascal  = "$Module$"
	TokenTitle   = "$MoDuLe$"
	TokenUpper   = "$MODULE$"
)

// FilenameToken is the substring replaced in template filenames.
const FilenameToken = "Module"

// placeholders pairs each token with the casing variant that replaces it.
var placeholders = []struct {
	token  string
	render func(casing.Tokens) string
}{
	{TokenSnake, func(t casing.Tokens) string { return t.Snake }},
	{TokenKebab, func(t casing.Tokens) string { return t.Kebab }},
	{TokenPascal, func(t casing.Tokens) string { return t.Pascal }},
	{TokenTitle, func(t casing.Tokens) string { return t.Title }},
	{TokenUpper, func(t casing.Tokens) string { return t.Upper }},
	{TokenLiteral, func(t casing.Tokens) string { return t.Literal }},
}

// Substitute replaces every placeholder token in content with the rendered
// variant. Returns the result and whether anything changed. Content without
// tokens passes through untouched.
func Substitute(content []byte, tokens casing.Tokens) ([]byte, bool) {
	changed := false
	for _, p := range placeholders {
		if bytes.Contains(content, []byte(p.token)) {
			content = bytes.ReplaceAll(content, []byte(p.token), []byte(p.render(tokens)))
			changed = true
		}
	}
	return content, changed
}
