package reader

import (
	"log/slog"

	"github.com/0xalexb/hjarta-conf/registry"
	"github.com/0xalexb/hjarta-conf/resource"
)

// ImportEvent reports a processed import element: the location as written in
// the document and the resources the import actually loaded, possibly empty
// when the load failed.
type ImportEvent struct {
	Location  string
	Resources []resource.Resource
	Source    string
}

// AliasEvent reports a processed alias element.
type AliasEvent struct {
	Name   string
	Alias  string
	Source string
}

// ComponentEvent reports a registered component definition.
type ComponentEvent struct {
	Holder *registry.Holder
	Source string
}

// EventSink receives registration notifications. Sinks are fire-and-forget;
// the traversal never consumes a return value.
type EventSink interface {
	ImportProcessed(event ImportEvent)
	AliasRegistered(event AliasEvent)
	ComponentRegistered(event ComponentEvent)
}

// NopSink discards all events. It is the default sink.
type NopSink struct{}

func (NopSink) ImportProcessed(ImportEvent) {}

func (NopSink) AliasRegistered(AliasEvent) {}

func (NopSink) ComponentRegistered(ComponentEvent) {}

// LogSink logs every event at debug level.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) ImportProcessed(event ImportEvent) {
	s.Logger.Debug("import processed",
		slog.String("location", event.Location),
		slog.Int("resources", len(event.Resources)),
		slog.String("source", event.Source),
	)
}

func (s LogSink) AliasRegistered(event AliasEvent) {
	s.Logger.Debug("alias registered",
		slog.String("name", event.Name),
		slog.String("alias", event.Alias),
		slog.String("source", event.Source),
	)
}

func (s LogSink) ComponentRegistered(event ComponentEvent) {
	s.Logger.Debug("component registered",
		slog.String("name", event.Holder.Name),
		slog.String("source", event.Source),
	)
}

// CollectingSink records every event, for tests and tooling.
type CollectingSink struct {
	Imports    []ImportEvent
	Aliases    []AliasEvent
	Components []ComponentEvent
}

func (s *CollectingSink) ImportProcessed(event ImportEvent) {
	s.Imports = append(s.Imports, event)
}

func (s *CollectingSink) AliasRegistered(event AliasEvent) {
	s.Aliases = append(s.Aliases, event)
}

func (s *CollectingSink) ComponentRegistered(event ComponentEvent) {
	s.Components = append(s.Components, event)
}
