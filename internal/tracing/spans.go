package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanCatalogBuild  = "emoji.catalog.build"
	SpanMaterialize   = "emoji.rows.materialize"
	SpanCustomSearch  = "emoji.custom.search"
	SpanCustomReload  = "emoji.custom.reload"
	SpanPrefsRecord   = "prefs.recent.record"
	SpanPickerSession = "picker.session"
	SpanTutorialTip   = "tutorial.tip"
)

// Attribute keys.
const (
	AttrSessionID     = "session.id"
	AttrFilter        = "emoji.filter"
	AttrSkinTone      = "emoji.skin_tone"
	AttrRowWidth      = "emoji.row_width"
	AttrRowCount      = "emoji.row_count"
	AttrEmojiCount    = "emoji.count"
	AttrCategoryCount = "emoji.category_count"
	AttrCatalogVer    = "emoji.catalog_version"
	AttrEmptySearch   = "emoji.empty_search"
	AttrCacheHit      = "cache.hit"
	AttrEmojiID       = "emoji.id"
	AttrErrorMessage  = "error.message"
	AttrTelemetryTag  = "tutorial.telemetry_tag"
	AttrTipAction     = "tutorial.action"
	AttrTipStep       = "tutorial.step"
)

// Start opens a span on tracer. A nil tracer gets the global no-op.
func Start(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError marks span failed. A nil err is ignored.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
}
