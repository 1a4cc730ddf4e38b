package catalog

import (
	"context"
	"fmt"
	"strconv"

	"storefront/core/cache"
	"storefront/core/catalog"
	"storefront/core/logger"
	"storefront/core/variant"

	"go.uber.org/zap"
)

// Service loads products from a source and resolves selections against them.
// Fetched products and built views are memoized; resolution itself stays pure.
type Service struct {
	source   catalog.Source
	logger   *zap.Logger
	products *cache.Store[*variant.Product]
	views    *cache.Store[variant.View]
}

// NewService creates a new catalog service.
func NewService(source catalog.Source, logger *zap.Logger, cfg cache.Config) *Service {
	return &Service{
		source:   source,
		logger:   logger,
		products: cache.New[*variant.Product](cfg.ProductTTL()),
		views:    cache.New[variant.View](cfg.ViewTTL()),
	}
}

// Source returns the underlying product source.
func (s *Service) Source() catalog.Source {
	return s.source
}

// GetProduct fetches and formats a product.
func (s *Service) GetProduct(ctx context.Context, id string) (*variant.Product, error) {
	entry, err := s.product(ctx, id)
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// product returns the cached product entry. Rebuilding a product drops the
// views built from its previous entry.
func (s *Service) product(ctx context.Context, id string) (*cache.Entry[*variant.Product], error) {
	return s.products.GetOrBuildEntry(ctx, cache.Key(id), func(ctx context.Context) (*variant.Product, error) {
		doc, err := s.source.FetchProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		p, err := variant.FormatProduct(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to format product %s: %w", id, err)
		}
		if p.IDString() == "" {
			p.ID = id
		}
		s.views.Invalidate(cache.Key(id))
		logger.WithProduct(s.logger, id).Debug("Product loaded",
			zap.String("source", s.source.Name()),
			zap.Stringer("schema", p.Schema()),
		)
		return p, nil
	})
}

// GetView resolves everything needed to render a selection. Views are keyed by
// the product build they came from, so they never outlive the product they show.
func (s *Service) GetView(ctx context.Context, id string, sel variant.Selection) (variant.View, error) {
	entry, err := s.product(ctx, id)
	if err != nil {
		return variant.View{}, err
	}
	if s.products.TTL() == 0 {
		return variant.BuildView(entry.Value, sel), nil
	}

	build := strconv.FormatInt(entry.Built.UnixNano(), 36)
	key := cache.Key(id, build, variant.NormalizeString(sel.ColorID), variant.NormalizeString(sel.SizeID))
	return s.views.GetOrBuild(ctx, key, func(ctx context.Context) (variant.View, error) {
		return variant.BuildView(entry.Value, sel), nil
	})
}

// ResolveVariant returns the variant matching sel, or nil when none does.
func (s *Service) ResolveVariant(ctx context.Context, id string, sel variant.Selection) (*variant.Variant, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return variant.ResolveSelection(p, sel), nil
}

// CartLine commits a selection into the payload handed to the cart.
func (s *Service) CartLine(ctx context.Context, id string, sel variant.Selection) (*variant.CartLine, error) {
	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	line, err := variant.Commit(p, sel)
	if err != nil {
		logger.WithProduct(s.logger, id).Info("Selection rejected", zap.Error(err))
		return nil, err
	}
	return line, nil
}

// SaveProduct writes a document to the source and drops cached state for it.
func (s *Service) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	if err := s.source.SaveProduct(ctx, id, doc); err != nil {
		return err
	}
	s.Invalidate(id)
	return nil
}

// Invalidate drops the cached product and every cached view of it.
func (s *Service) Invalidate(id string) {
	s.products.Invalidate(cache.Key(id))
	s.views.Invalidate(cache.Key(id))
}
