package cli

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/measura/measura/internal/catalog"
	"github.com/measura/measura/internal/format"
)

// loadCatalog returns the built-in catalog, with the site catalog from
// --catalog layered on top when one is configured.
func loadCatalog(opts *RootOptions) (*catalog.Catalog, error) {
	base := catalog.Builtin()
	if opts.Catalog == "" {
		return base, nil
	}
	res, errs := catalog.LoadDir(opts.Catalog, base, catalog.FailFast)
	if len(errs) > 0 {
		return nil, fmt.Errorf("loading catalog %s: %w", opts.Catalog, errs[0])
	}
	return res.Catalog, nil
}

// formatOptions builds rendering options from the global flags.
func formatOptions(opts *RootOptions) (format.Options, error) {
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return format.Options{}, fmt.Errorf("invalid locale %q: %w", opts.Locale, err)
	}
	return format.Options{
		Locale:    tag,
		Precision: opts.Precision,
	}, nil
}
