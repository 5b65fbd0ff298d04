package conf

import (
	"io/fs"
	"log/slog"

	"github.com/0xalexb/hjarta-conf/document"
	xmlparser "github.com/0xalexb/hjarta-conf/document/parser/xml"
	yamlparser "github.com/0xalexb/hjarta-conf/document/parser/yaml"
	"github.com/0xalexb/hjarta-conf/environment"
	"github.com/0xalexb/hjarta-conf/parser"
	"github.com/0xalexb/hjarta-conf/reader"
	"github.com/0xalexb/hjarta-conf/registry"
)

// Options holds configuration settings for a Loader.
type Options struct {
	Registry        registry.Registry
	Environment     environment.Environment
	Profiles        []string
	Properties      map[string]string
	FS              fs.FS
	DocumentParsers map[string]document.Parser
	ElementParser   reader.ElementParser
	Handlers        map[string]parser.NamespaceHandler
	Events          reader.EventSink
	Logger          *slog.Logger
	PreProcess      reader.Hook
	PostProcess     reader.Hook
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithRegistry loads definitions into the given registry instead of a fresh
// in-memory one.
func WithRegistry(reg registry.Registry) Option {
	return func(opts *Options) {
		opts.Registry = reg
	}
}

// WithEnvironment replaces the whole environment. When set, WithProfiles and
// WithProperty have no effect.
func WithEnvironment(env environment.Environment) Option {
	return func(opts *Options) {
		opts.Environment = env
	}
}

// WithProfiles activates the given profiles in the default environment.
func WithProfiles(profiles ...string) Option {
	return func(opts *Options) {
		opts.Profiles = append(opts.Profiles, profiles...)
	}
}

// WithProperty sets a placeholder property in the default environment.
func WithProperty(name, value string) Option {
	return func(opts *Options) {
		if opts.Properties == nil {
			opts.Properties = make(map[string]string)
		}

		opts.Properties[name] = value
	}
}

// WithFS serves locations from the given file system instead of the
// operating system. fs: prefixed locations always require this.
func WithFS(fsys fs.FS) Option {
	return func(opts *Options) {
		opts.FS = fsys
	}
}

// WithDocumentParser registers a document parser for a file extension, e.g.
// ".json". The extension includes the dot.
func WithDocumentParser(ext string, p document.Parser) Option {
	return func(opts *Options) {
		if opts.DocumentParsers == nil {
			opts.DocumentParsers = make(map[string]document.Parser)
		}

		opts.DocumentParsers[ext] = p
	}
}

// WithElementParser replaces the default element parser entirely. When set,
// WithNamespaceHandler has no effect.
func WithElementParser(p reader.ElementParser) Option {
	return func(opts *Options) {
		opts.ElementParser = p
	}
}

// WithNamespaceHandler registers a custom-vocabulary handler for a namespace
// URI on the default element parser.
func WithNamespaceHandler(namespace string, handler parser.NamespaceHandler) Option {
	return func(opts *Options) {
		if opts.Handlers == nil {
			opts.Handlers = make(map[string]parser.NamespaceHandler)
		}

		opts.Handlers[namespace] = handler
	}
}

// WithEventSink receives registration events.
func WithEventSink(sink reader.EventSink) Option {
	return func(opts *Options) {
		opts.Events = sink
	}
}

// WithLogger sets the logger for load and traversal logs.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithPreProcess installs a hook invoked before each document sub-tree.
func WithPreProcess(hook reader.Hook) Option {
	return func(opts *Options) {
		opts.PreProcess = hook
	}
}

// WithPostProcess installs a hook invoked after each document sub-tree.
func WithPostProcess(hook reader.Hook) Option {
	return func(opts *Options) {
		opts.PostProcess = hook
	}
}

func newDocumentReader(options *Options) *reader.DocumentReader {
	var readerOpts []reader.Option

	if options.PreProcess != nil {
		readerOpts = append(readerOpts, reader.WithPreProcess(options.PreProcess))
	}

	if options.PostProcess != nil {
		readerOpts = append(readerOpts, reader.WithPostProcess(options.PostProcess))
	}

	return reader.New(readerOpts...)
}

func elementParser(options *Options) reader.ElementParser {
	if options.ElementParser != nil {
		return options.ElementParser
	}

	var parserOpts []parser.Option

	for namespace, handler := range options.Handlers {
		parserOpts = append(parserOpts, parser.WithNamespaceHandler(namespace, handler))
	}

	return parser.New(parserOpts...)
}

func registryOf(options *Options) registry.Registry {
	if options.Registry != nil {
		return options.Registry
	}

	return registry.New()
}

func environmentOf(options *Options) environment.Environment {
	if options.Environment != nil {
		return options.Environment
	}

	envOpts := []environment.Option{environment.WithProfiles(options.Profiles...)}

	for name, value := range options.Properties {
		envOpts = append(envOpts, environment.WithProperty(name, value))
	}

	return environment.New(envOpts...)
}

func eventsOf(options *Options) reader.EventSink {
	if options.Events != nil {
		return options.Events
	}

	return reader.NopSink{}
}

func loggerOf(options *Options) *slog.Logger {
	if options.Logger != nil {
		return options.Logger
	}

	return slog.Default()
}

func documentParsers(options *Options) map[string]document.Parser {
	parsers := map[string]document.Parser{
		".xml":  xmlparser.NewParser(),
		".yaml": yamlparser.NewParser(),
		".yml":  yamlparser.NewParser(),
	}

	for ext, p := range options.DocumentParsers {
		parsers[ext] = p
	}

	return parsers
}
