// Package integrity provides catalog health checks.
//
// While the catalog feature serves products, this package validates the data and
// infrastructure behind it.
//
// # Checks Provided
//
//   - Products: audits each product for data that resolves surprisingly, such as
//     colors no variant references (their size list falls back to every size),
//     duplicate variants or option value ids, references to undefined option
//     values, media bound to unknown colors and missing prices.
//   - Structure: the storage bucket and the catalog prefix folders exist.
//   - Server: the products table matches the ProductRecord model (columns, types).
//   - Sources: presence and key fields of every product across all configured sources.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/products : Audits every product.
//   - GET /integrity/products/:id : Audits one product.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
//   - GET /integrity/sources : Reconciles configured sources.
package integrity
