package reader_test

import (
	"errors"
	"io"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-conf/environment"
	"github.com/0xalexb/hjarta-conf/reader"
	"github.com/0xalexb/hjarta-conf/resource"
)

// fakeResource is a resource.Resource for exercising import resolution
// without touching a file system.
type fakeResource struct {
	name   string
	exists bool
	// siblings maps relative locations to whether the candidate exists.
	siblings map[string]bool
}

func (r *fakeResource) Name() string { return r.name }
func (r *fakeResource) URL() string  { return "test:" + r.name }
func (r *fakeResource) Key() string  { return r.URL() }
func (r *fakeResource) Exists() bool { return r.exists }

func (r *fakeResource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (r *fakeResource) Relative(location string) (resource.Resource, error) {
	return &fakeResource{
		name:   path.Join(path.Dir(r.name), location),
		exists: r.siblings[location],
	}, nil
}

// stubLoader records the loads an import triggered.
type stubLoader struct {
	locations  []string
	resources  []resource.Resource
	byLocation func(location string, into *resource.Set) (int, error)
	byResource func(res resource.Resource) (int, error)
}

func (l *stubLoader) LoadByLocation(location string, into *resource.Set) (int, error) {
	l.locations = append(l.locations, location)

	if l.byLocation != nil {
		return l.byLocation(location, into)
	}

	return 0, nil
}

func (l *stubLoader) LoadByResource(res resource.Resource) (int, error) {
	l.resources = append(l.resources, res)

	if l.byResource != nil {
		return l.byResource(res)
	}

	return 0, nil
}

func importContext(loader *stubLoader, res resource.Resource) (*reader.Context, *reader.CollectingSink) {
	ctx, _, events := newTestContext(func(ctx *reader.Context) {
		ctx.Loader = loader
		ctx.Resource = res
	})

	return ctx, events
}

func TestImport_EmptyLocation(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "  "}),
	)

	loader := &stubLoader{}
	ctx, events := importContext(loader, &fakeResource{name: "a/b.cfg", exists: true})

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.Problems.Len(), "exactly one validation error")
	assert.Empty(t, loader.locations, "no load is attempted")
	assert.Empty(t, loader.resources)
	assert.Empty(t, events.Imports, "no event for a rejected import")
}

func TestImport_NoLoaderConfigured(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "x.cfg"}),
	)

	ctx, _, _ := newTestContext()

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.Problems.Len())
}

func TestImport_UnresolvedPlaceholder(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "${missing}/x.cfg"}),
	)

	loader := &stubLoader{}
	ctx, events := importContext(loader, &fakeResource{name: "a/b.cfg", exists: true})

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.Problems.Len())
	assert.Empty(t, loader.locations)
	assert.Empty(t, events.Imports)
}

func TestImport_PlaceholderResolved(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "/etc/${app}/base.cfg"}),
	)

	loader := &stubLoader{}
	ctx, _ := importContext(loader, &fakeResource{name: "a/b.cfg", exists: true})
	ctx.Environment = environment.New(
		environment.WithProperty("app", "demo"),
		environment.WithoutOSEnv(),
	)

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	require.Len(t, loader.locations, 1)
	assert.Equal(t, "/etc/demo/base.cfg", loader.locations[0])
}

func TestImport_AbsoluteFailureDoesNotAbortSiblings(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("component", map[string]string{"name": "early", "kind": "a"}),
		el("import", map[string]string{"resource": "/nope/missing.cfg"}),
		el("component", map[string]string{"name": "late", "kind": "b"}),
	)

	loader := &stubLoader{
		byLocation: func(string, *resource.Set) (int, error) {
			return 0, errors.New("resource not found")
		},
	}

	ctx, events := importContext(loader, &fakeResource{name: "a/b.cfg", exists: true})

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.Problems.Len())

	require.Len(t, events.Components, 2, "siblings before and after still register")
	require.Len(t, events.Imports, 1, "the event fires even for a failed import")
	assert.Equal(t, "/nope/missing.cfg", events.Imports[0].Location)
	assert.Empty(t, events.Imports[0].Resources)
}

func TestImport_RelativeCandidateExists(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "c.cfg"}),
	)

	current := &fakeResource{
		name:     "a/b.cfg",
		exists:   true,
		siblings: map[string]bool{"c.cfg": true},
	}

	loader := &stubLoader{byResource: func(resource.Resource) (int, error) { return 2, nil }}
	ctx, events := importContext(loader, current)

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Zero(t, ctx.Problems.Len())
	require.Len(t, loader.resources, 1)
	assert.Equal(t, "a/c.cfg", loader.resources[0].Name(), "resolved against the current document")
	assert.Empty(t, loader.locations, "no base-URL fallback when the candidate exists")

	require.Len(t, events.Imports, 1)
	require.Len(t, events.Imports[0].Resources, 1)
	assert.Equal(t, "a/c.cfg", events.Imports[0].Resources[0].Name())
}

func TestImport_RelativeFallsBackToBaseURL(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "c.cfg"}),
	)

	current := &fakeResource{name: "a/b.cfg", exists: true}

	loader := &stubLoader{}
	ctx, _ := importContext(loader, current)

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	assert.Empty(t, loader.resources)
	require.Len(t, loader.locations, 1)
	assert.Equal(t, "test:a/c.cfg", loader.locations[0], "relative path applied to the base URL")
}

func TestImport_NoCurrentResource(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "c.cfg"}),
	)

	loader := &stubLoader{}
	ctx, _ := importContext(loader, nil)

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	require.Equal(t, 1, ctx.Problems.Len())
	assert.Contains(t, ctx.Problems.Items()[0].Message, "failed to resolve current resource location")
}

func TestImport_EventCarriesOriginalLocation(t *testing.T) {
	t.Parallel()

	root := el("components", nil,
		el("import", map[string]string{"resource": "/data/${app:demo}.cfg"}),
	)

	loader := &stubLoader{
		byLocation: func(_ string, into *resource.Set) (int, error) {
			into.Add(&fakeResource{name: "data/demo.cfg", exists: true})

			return 1, nil
		},
	}

	ctx, events := importContext(loader, &fakeResource{name: "a/b.cfg", exists: true})

	err := reader.New().Register(root, ctx)
	require.NoError(t, err)

	require.Len(t, events.Imports, 1)
	assert.Equal(t, "/data/${app:demo}.cfg", events.Imports[0].Location, "the raw location, not the resolved one")
	assert.Len(t, events.Imports[0].Resources, 1)
}
