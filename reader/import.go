package reader

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/resource"
)

// importResource processes one import element: validate the location,
// resolve placeholders, then load absolutely or relative to the current
// document. Failures are reported against this element only; sibling
// elements keep processing. The import-processed event fires on every path
// that attempted a load, carrying whatever resources actually made it.
func (r *DocumentReader) importResource(el *document.Node, ctx *Context) {
	location := el.Attr(ResourceAttribute)
	if strings.TrimSpace(location) == "" {
		ctx.Error("resource location must not be empty", el, nil)

		return
	}

	if ctx.Loader == nil {
		ctx.Error("no resource loader configured to process imports", el, nil)

		return
	}

	resolved, err := ctx.Environment.ResolvePlaceholders(location)
	if err != nil {
		ctx.Errorf(el, err, "could not resolve placeholders in location %q", location)

		return
	}

	actual := resource.NewSet()

	if isAbsoluteLocation(resolved) {
		r.importAbsolute(el, resolved, actual, ctx)
	} else {
		r.importRelative(el, resolved, actual, ctx)
	}

	ctx.events().ImportProcessed(ImportEvent{
		Location:  location,
		Resources: actual.Items(),
		Source:    ctx.Source(el),
	})
}

func (r *DocumentReader) importAbsolute(el *document.Node, location string, actual *resource.Set, ctx *Context) {
	count, err := ctx.Loader.LoadByLocation(location, actual)
	if err != nil {
		ctx.Errorf(el, err, "failed to import definitions from location %q", location)

		return
	}

	ctx.logger().Debug("imported definitions", "count", count, "location", location)
}

// importRelative first tries the location against the current document's own
// resource; only when that candidate does not exist does it fall back to
// applying the relative path to the document's base URL.
func (r *DocumentReader) importRelative(el *document.Node, location string, actual *resource.Set, ctx *Context) {
	if ctx.Resource == nil {
		ctx.Error("failed to resolve current resource location", el, nil)

		return
	}

	relative, err := ctx.Resource.Relative(location)
	if err != nil {
		ctx.Error("failed to resolve current resource location", el, err)

		return
	}

	var count int

	if relative.Exists() {
		count, err = ctx.Loader.LoadByResource(relative)
		if err != nil {
			ctx.Errorf(el, err, "failed to import definitions from relative location %q", location)

			return
		}

		actual.Add(relative)
	} else {
		base := ctx.Resource.URL()

		count, err = ctx.Loader.LoadByLocation(resource.ApplyRelativePath(base, location), actual)
		if err != nil {
			ctx.Errorf(el, err, "failed to import definitions from relative location %q", location)

			return
		}
	}

	ctx.logger().Debug("imported definitions", "count", count, "location", location)
}

// isAbsoluteLocation reports whether a location is self-describing: an
// absolute file path or a URL with a scheme. Anything that fails to parse is
// treated as relative.
func isAbsoluteLocation(location string) bool {
	if filepath.IsAbs(location) {
		return true
	}

	parsed, err := url.Parse(location)

	return err == nil && parsed.IsAbs()
}
