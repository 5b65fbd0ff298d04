package conf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"go.uber.org/multierr"

	"github.com/0xalexb/hjarta-conf/document"
	"github.com/0xalexb/hjarta-conf/environment"
	"github.com/0xalexb/hjarta-conf/reader"
	"github.com/0xalexb/hjarta-conf/registry"
	"github.com/0xalexb/hjarta-conf/resource"
)

// ErrResourceNotFound is returned when a location resolves to a resource
// that does not exist.
var ErrResourceNotFound = errors.New("resource not found")

// ErrImportCycle is returned when a document is imported while it is still
// being loaded, i.e. the import chain reaches back to it.
var ErrImportCycle = errors.New("cyclic import detected")

// ErrNoDocumentParser is returned when no document parser is registered for
// a resource's extension.
var ErrNoDocumentParser = errors.New("no document parser registered")

// ErrNoFS is returned when an fs: location is loaded without a configured
// file system.
var ErrNoFS = errors.New("no file system configured for fs: locations")

// Loader loads configuration documents and registers their component
// definitions, aliases and imports into a registry. It owns the collaborators
// of a load — document parsers, element parser, environment, registry, event
// sink — and implements reader.ResourceLoader so import elements can recurse
// through the same pipeline.
type Loader struct {
	reader      *reader.DocumentReader
	parser      reader.ElementParser
	registry    *countingRegistry
	env         environment.Environment
	events      reader.EventSink
	logger      *slog.Logger
	parsers     map[string]document.Parser
	fsys        fs.FS
	problems    *reader.Problems
	loaded      *resource.Set
	loading     map[string]bool
}

// New creates a Loader. Without options it registers into a fresh in-memory
// registry, reads XML and YAML documents from the operating system file
// system, and evaluates profiles against an empty active set.
func New(opts ...Option) *Loader {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &Loader{
		reader:      newDocumentReader(&options),
		parser:      elementParser(&options),
		registry:    &countingRegistry{inner: registryOf(&options)},
		env:         environmentOf(&options),
		events:      eventsOf(&options),
		logger:      loggerOf(&options),
		parsers:     documentParsers(&options),
		fsys:        options.FS,
		problems:    reader.NewProblems(),
		loaded:      resource.NewSet(),
		loading:     make(map[string]bool),
	}
}

// Load loads every location in order and returns the total number of
// definitions registered. The returned error aggregates all problems the
// documents produced plus any location that could not be loaded at all; a
// bad element in one document never stops the others.
func (l *Loader) Load(locations ...string) (int, error) {
	before := l.problems.Len()

	var (
		total int
		fatal error
	)

	for _, location := range locations {
		count, err := l.LoadByLocation(location, nil)
		if err != nil {
			fatal = multierr.Append(fatal, fmt.Errorf("loading %q: %w", location, err))

			continue
		}

		total += count
	}

	return total, multierr.Append(fatal, problemsSince(l.problems, before))
}

// LoadByLocation resolves a location, loads the document behind it and adds
// the resource to the given set on success. It is the absolute-location
// entry point import elements delegate to.
func (l *Loader) LoadByLocation(location string, into *resource.Set) (int, error) {
	res, err := l.resolve(location)
	if err != nil {
		return 0, err
	}

	if !res.Exists() {
		return 0, fmt.Errorf("%w: %s", ErrResourceNotFound, res.Name())
	}

	count, err := l.LoadByResource(res)
	if err != nil {
		return 0, err
	}

	if into != nil {
		into.Add(res)
	}

	return count, nil
}

// LoadByResource runs one resolved resource through the whole pipeline:
// read, parse into an element tree, traverse and register. It returns how
// many definitions the document (including its nested scopes, but not its
// imports' separately counted loads) registered.
func (l *Loader) LoadByResource(res resource.Resource) (int, error) {
	key := res.Key()
	if l.loading[key] {
		return 0, fmt.Errorf("%w: %s", ErrImportCycle, res.Name())
	}

	l.loading[key] = true
	defer delete(l.loading, key)

	parser, err := l.parserFor(res)
	if err != nil {
		return 0, err
	}

	data, err := readAll(res)
	if err != nil {
		return 0, err
	}

	root, err := parser.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("parsing document %s: %w", res.Name(), err)
	}

	before := l.registry.count

	err = l.reader.Register(root, l.newContext(res))
	if err != nil {
		return 0, err
	}

	l.loaded.Add(res)

	count := l.registry.count - before
	l.logger.Debug("loaded document", "resource", res.Name(), "definitions", count)

	return count, nil
}

// Register runs an already parsed element tree through the registration
// pipeline, attributed to the given resource (which may be nil).
func (l *Loader) Register(root *document.Node, res resource.Resource) (int, error) {
	before := l.registry.count

	err := l.reader.Register(root, l.newContext(res))
	if err != nil {
		return 0, err
	}

	return l.registry.count - before, nil
}

// Registry returns the registry definitions are loaded into.
func (l *Loader) Registry() registry.Registry {
	return l.registry.inner
}

// Problems returns every problem accumulated so far, in order.
func (l *Loader) Problems() []reader.Problem {
	return l.problems.Items()
}

// Resources returns the distinct resources loaded so far, in load order.
func (l *Loader) Resources() []resource.Resource {
	return l.loaded.Items()
}

func (l *Loader) newContext(res resource.Resource) *reader.Context {
	return &reader.Context{
		Resource:    res,
		Loader:      l,
		Registry:    l.registry,
		Environment: l.env,
		Parser:      l.parser,
		Problems:    l.problems,
		Events:      l.events,
		Logger:      l.logger,
	}
}

// resolve maps a location string to a resource. fs: locations and, when a
// file system is configured, plain paths are served from that file system;
// file URLs and plain paths otherwise come from the OS.
func (l *Loader) resolve(location string) (resource.Resource, error) {
	if rest, ok := strings.CutPrefix(location, "fs:"); ok {
		if l.fsys == nil {
			return nil, fmt.Errorf("%w: %s", ErrNoFS, location)
		}

		return resource.NewFS(l.fsys, rest), nil
	}

	if rest, ok := strings.CutPrefix(location, "file://"); ok {
		return resource.NewFile(rest), nil
	}

	if parsed, err := url.Parse(location); err == nil && parsed.IsAbs() && len(parsed.Scheme) > 1 {
		return nil, fmt.Errorf("unsupported resource scheme %q in %q", parsed.Scheme, location)
	}

	if l.fsys != nil {
		return resource.NewFS(l.fsys, location), nil
	}

	return resource.NewFile(location), nil
}

func (l *Loader) parserFor(res resource.Resource) (document.Parser, error) {
	ext := strings.ToLower(path.Ext(res.Name()))

	parser, ok := l.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w for extension %q (%s)", ErrNoDocumentParser, ext, res.Name())
	}

	return parser, nil
}

func readAll(res resource.Resource) ([]byte, error) {
	rc, err := res.Open()
	if err != nil {
		return nil, fmt.Errorf("opening resource %s: %w", res.Name(), err)
	}

	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading resource %s: %w", res.Name(), err)
	}

	return data, nil
}

// problemsSince combines the problems recorded after the given mark.
func problemsSince(problems *reader.Problems, mark int) error {
	var err error

	for _, problem := range problems.Items()[mark:] {
		err = multierr.Append(err, problem)
	}

	return err
}

// countingRegistry wraps the target registry to count successful definition
// registrations, so loads can report how many definitions they contributed.
type countingRegistry struct {
	inner registry.Registry
	count int
}

func (c *countingRegistry) RegisterDefinition(name string, def *registry.Definition) error {
	err := c.inner.RegisterDefinition(name, def)
	if err != nil {
		return err //nolint:wrapcheck
	}

	c.count++

	return nil
}

func (c *countingRegistry) RegisterAlias(name, alias string) error {
	return c.inner.RegisterAlias(name, alias) //nolint:wrapcheck
}
