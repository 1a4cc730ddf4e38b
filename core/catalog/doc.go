// Package catalog defines where product documents come from.
//
// The Source interface is implemented by feature/catalog/sources for object storage,
// SQL and MongoDB backends. Services depend on the interface only, so tests use
// in-memory fakes.
package catalog
