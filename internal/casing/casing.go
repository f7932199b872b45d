// Package casing renders the casing variants of a module name used for
// template placeholder substitution.
package casing

import (
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Tokens holds every rendering of a module name a template can reference.
type Tokens struct {
	// Literal is the name exactly as the user supplied it.
	Literal string

	// Snake is the snake_case rendering.
	Snake string

	// Kebab is the kebab-case rendering.
	Kebab string

	// Pascal is the PascalCase rendering, also used for file renames.
	Pascal string

	// Title is the Title Case rendering (space-separated words).
	Title string

	// Upper is the uppercased literal.
	Upper string
}

// Render computes all casing variants of name. It splits on camelCase
// boundaries as well as existing `-`/`_` separators, so "contactUs",
// "contact-us" and "contact_us" all produce the same derived forms.
func Render(name string) Tokens {
	snake := strcase.ToSnake(name)

	return Tokens{
		Literal: name,
		Snake:   snake,
		Kebab:   strcase.ToKebab(name),
		Pascal:  strcase.ToCamel(name),
		Title:   titleCaser.String(strings.ReplaceAll(snake, "_", " ")),
		Upper:   strings.ToUpper(name),
	}
}
