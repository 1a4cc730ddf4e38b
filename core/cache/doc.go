// Package cache provides a small TTL cache with stampede protection.
//
// Resolution in core/variant is pure and uncached. Callers that resolve on a hot
// path wrap it with a Store keyed by (productId, product build, colorId, sizeId):
//
//	entry, err := products.GetOrBuildEntry(ctx, cache.Key(id), fetch)
//	build := strconv.FormatInt(entry.Built.UnixNano(), 36)
//	view, err := views.GetOrBuild(ctx, cache.Key(id, build, color, size), func(ctx context.Context) (variant.View, error) {
//	    return variant.BuildView(entry.Value, sel), nil
//	})
//
// Key escapes "|" inside parts, and Invalidate(cache.Key(id)) drops every key that
// starts with that id.
//
// Concurrent misses for the same key share one build through singleflight. A zero TTL
// disables storage entirely, which keeps tests and debugging deterministic.
package cache
