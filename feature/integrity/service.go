package integrity

import (
	"context"
	"fmt"
	"sync"

	"storefront/core/catalog"
	"storefront/core/reconcile"
	"storefront/core/storage"
	"storefront/core/variant"
	"storefront/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// maxConcurrentAudits bounds product fetches during a catalog audit.
const maxConcurrentAudits = 8

// ProductsReport is the audit result for a whole catalog.
type ProductsReport struct {
	Source     string                 `json:"source"`
	Total      int                    `json:"total"`
	WithIssues int                    `json:"with_issues"`
	Products   []checks.ProductReport `json:"products"`
	Errors     []string               `json:"errors"`
}

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	storage storage.Config
	logger  *zap.Logger
	db      *gorm.DB
	sources []catalog.Source
}

// NewService creates a new integrity service. The first source is the one the
// catalog serves from; the rest only take part in the sources reconciliation.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB, sources []catalog.Source) *Service {
	return &Service{
		client:  client,
		storage: cfg,
		logger:  logger,
		db:      db,
		sources: sources,
	}
}

// CheckStructure returns the catalog folders missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.storage.Bucket, checks.RequiredFolders(s.storage.Prefix))
}

// FixStructure creates the bucket when needed and the missing folders. It returns
// the folders it created.
func (s *Service) FixStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client is not configured")
	}
	created, err := checks.EnsureBucket(ctx, s.client, s.storage.Bucket, s.storage.Region)
	if err != nil {
		return nil, err
	}
	if created {
		s.logger.Info("Created missing bucket", zap.String("bucket", s.storage.Bucket))
	}

	missing, err := s.CheckStructure(ctx)
	if err != nil {
		return nil, err
	}
	if err := checks.FixStructure(ctx, s.client, s.storage.Bucket, s.logger, missing); err != nil {
		return missing, err
	}
	return missing, nil
}

// CheckServer verifies the products table schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}

// CheckProduct audits a single product from the serving source.
func (s *Service) CheckProduct(ctx context.Context, id string) (*checks.ProductReport, error) {
	src, err := s.primary()
	if err != nil {
		return nil, err
	}
	doc, err := src.FetchProduct(ctx, id)
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
	report := checks.CheckProduct(p)
	return &report, nil
}

// CheckProducts audits every product of the serving source.
// Products that fail to load are listed in Errors instead of aborting the audit.
func (s *Service) CheckProducts(ctx context.Context) (*ProductsReport, error) {
	src, err := s.primary()
	if err != nil {
		return nil, err
	}
	ids, err := src.ListProductIDs(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]*checks.ProductReport, len(ids))
	var (
		mu       sync.Mutex
		failures []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAudits)
	for i, id := range ids {
		g.Go(func() error {
			report, err := s.CheckProduct(gctx, id)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", id, err))
				mu.Unlock()
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	_ = g.Wait()

	result := &ProductsReport{
		Source:   src.Name(),
		Products: []checks.ProductReport{},
		Errors:   []string{},
	}
	for _, r := range reports {
		if r == nil {
			continue
		}
		result.Products = append(result.Products, *r)
		if len(r.Issues) > 0 {
			result.WithIssues++
		}
	}
	result.Total = len(result.Products)
	if len(failures) > 0 {
		result.Errors = failures
	}

	s.logger.Info("Product audit completed",
		zap.String("source", result.Source),
		zap.Int("total", result.Total),
		zap.Int("with_issues", result.WithIssues),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

// CheckSources reconciles product presence and content across configured sources.
func (s *Service) CheckSources(ctx context.Context) (*checks.SourcesReport, error) {
	return checks.CheckSources(ctx, s.sources)
}

// PlanSync reconciles the sources and plans the repairs opts asks for.
func (s *Service) PlanSync(ctx context.Context, opts reconcile.Options) (*reconcile.Plan, error) {
	primary, err := s.primary()
	if err != nil {
		return nil, err
	}
	report, err := s.CheckSources(ctx)
	if err != nil {
		return nil, err
	}
	mirrors := make([]string, 0, len(s.sources)-1)
	for _, m := range s.sources[1:] {
		mirrors = append(mirrors, m.Name())
	}
	return reconcile.BuildPlan(primary.Name(), mirrors, report.Results, opts), nil
}

// ApplySync executes a plan against the mirrors. It does nothing unless
// opts.Confirmed is set.
func (s *Service) ApplySync(ctx context.Context, plan *reconcile.Plan, opts reconcile.Options) (int, error) {
	primary, err := s.primary()
	if err != nil {
		return 0, err
	}
	executed, err := reconcile.ApplyPlan(ctx, primary, s.sources[1:], plan, opts)
	if executed > 0 {
		s.logger.Info("Applied sync actions", zap.Int("executed", executed), zap.Int("planned", len(plan.Actions)))
	}
	return executed, err
}

func (s *Service) primary() (catalog.Source, error) {
	if len(s.sources) == 0 || s.sources[0] == nil {
		return nil, fmt.Errorf("no product source is configured")
	}
	return s.sources[0], nil
}
