// ABOUTME: Catalog sources for the theme manager: the Loader contract and simple loaders
// ABOUTME: Static and Builtin loaders never fail; network and file loaders live alongside

package catalog

import (
	"context"

	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// Loader fetches the ordered theme catalog from some source.
type Loader interface {
	FetchThemes(ctx context.Context) ([]theme.Theme, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context) ([]theme.Theme, error)

// FetchThemes calls f.
func (f LoaderFunc) FetchThemes(ctx context.Context) ([]theme.Theme, error) {
	return f(ctx)
}

// Static is a Loader that always returns a copy of its themes.
type Static []theme.Theme

// FetchThemes returns a copy of s. It honours ctx cancellation.
func (s Static) FetchThemes(ctx context.Context) ([]theme.Theme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return theme.Catalog(s).Clone(), nil
}

// Builtin returns a Loader over the built-in catalog.
func Builtin() Loader {
	return Static(theme.Builtins())
}
