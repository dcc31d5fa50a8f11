package catalog

// Package catalog decodes the bundled album document into a model.Catalog.
// Any failure to locate, read or decode the document is fatal for startup:
// there is no fallback data source.
