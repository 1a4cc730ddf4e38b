// Package catalog serves products and resolves color/size selections over HTTP.
//
// Documents are read from the configured catalog.Source, formatted with
// variant.FormatProduct and resolved with the pure functions in core/variant.
// Formatted products and built views are memoized with core/cache; SaveProduct
// and Invalidate drop every cached entry of a product.
//
// # HTTP Endpoints
//
//   - GET /products/:id : formatted product.
//   - GET /products/:id/view?color=&size= : options, sizes for the color, media, defaults and variant.
//   - GET /products/:id/variant?color=&size= : matching variant or 404.
//   - POST /products/:id/cart-line : {"colorId","sizeId"} to a cart line;
//     422 with "missing" when incomplete, 409 when no variant exists.
package catalog
