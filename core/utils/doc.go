// Package utils provides common utility functions for the storefront application.
// It includes helper functions for type conversion of loosely-typed product documents
// (JSON objects, BSON documents) and other shared logic that doesn't fit into
// domain-specific packages.
package utils
