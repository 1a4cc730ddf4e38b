package integrity

import (
	"context"
	"sort"
	"testing"

	"storefront/core/catalog"
	"storefront/core/database"
	"storefront/core/reconcile"
	"storefront/core/storage"
	"storefront/core/storage/mocks"
	"storefront/core/variant"
	"storefront/feature/catalog/sources"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", Prefix: "catalog/products/"}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// seededSource returns a sqlite-backed source holding one clean and one broken product.
func seededSource(t *testing.T) (*gorm.DB, *sources.DatabaseSource) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	src := sources.NewDatabaseSource(db)
	ctx := context.Background()
	require.NoError(t, src.Migrate(ctx))
	require.NoError(t, src.SaveProduct(ctx, "tee", map[string]any{
		"id": "tee", "price": 25,
		"colors":   []any{"White", "Black"},
		"sizes":    []any{"S"},
		"variants": []any{map[string]any{"id": "t1", "color": "White", "size": "S"}},
	}))
	require.NoError(t, src.SaveProduct(ctx, "bag", map[string]any{"id": "bag", "price": 120}))
	return db, src
}

func emptyListing() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())

	svc := NewService(mockClient, testStorage, zap.NewNop(), nil, nil)
	missing, err := svc.CheckStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"catalog", "catalog/products"}, missing)
}

func TestService_FixStructure(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil).Once()
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := NewService(mockClient, testStorage, zap.NewNop(), nil, nil)
	fixed, err := svc.FixStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"catalog", "catalog/products"}, fixed)
	mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestService_StructureWithoutStorage(t *testing.T) {
	svc := NewService(nil, testStorage, zap.NewNop(), nil, nil)
	_, err := svc.CheckStructure(context.Background())
	assert.EqualError(t, err, "storage client is not configured")
}

func TestService_CheckServer(t *testing.T) {
	db, _ := seededSource(t)
	svc := NewService(nil, testStorage, zap.NewNop(), db, nil)

	report, err := svc.CheckServer()
	require.NoError(t, err)
	assert.True(t, report.Matched)
}

func TestService_CheckProducts(t *testing.T) {
	_, src := seededSource(t)
	svc := NewService(nil, testStorage, zap.NewNop(), nil, []catalog.Source{src})

	report, err := svc.CheckProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "database", report.Source)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.WithIssues)
	assert.Empty(t, report.Errors)

	require.Len(t, report.Products, 2)
	assert.Equal(t, "bag", report.Products[0].ID)
	assert.Equal(t, "tee", report.Products[1].ID)
	assert.Equal(t, "COLOR_WITHOUT_VARIANTS", string(report.Products[1].Issues[0].Code))
}

func TestService_CheckProduct(t *testing.T) {
	_, src := seededSource(t)
	svc := NewService(nil, testStorage, zap.NewNop(), nil, []catalog.Source{src})

	report, err := svc.CheckProduct(context.Background(), "bag")
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)

	_, err = svc.CheckProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestService_NoSources(t *testing.T) {
	svc := NewService(nil, testStorage, zap.NewNop(), nil, nil)

	_, err := svc.CheckProducts(context.Background())
	assert.EqualError(t, err, "no product source is configured")

	report, err := svc.CheckSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
}

// mirrorSource is an in-memory stand-in for a mongo mirror.
type mirrorSource struct {
	docs map[string]variant.Document
}

func (m *mirrorSource) Name() string { return catalog.KindMongo }

func (m *mirrorSource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return doc, nil
}

func (m *mirrorSource) ListProductIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	for id := range m.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *mirrorSource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	m.docs[id] = doc
	return nil
}

func (m *mirrorSource) DeleteProduct(ctx context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func TestService_Sync(t *testing.T) {
	ctx := context.Background()
	_, primary := seededSource(t)
	mirror := &mirrorSource{docs: map[string]variant.Document{
		"bag": {"id": "bag", "price": 99},
		"cap": {"id": "cap"},
	}}
	svc := NewService(nil, testStorage, zap.NewNop(), nil, []catalog.Source{primary, mirror})

	opts := reconcile.Options{DoCopy: true, DoSync: true, DoPurge: true}
	plan, err := svc.PlanSync(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, "database", plan.Primary)
	assert.Equal(t, 3, plan.Summary.TotalItems)
	assert.Equal(t, 1, plan.Summary.CopyActions)
	assert.Equal(t, 1, plan.Summary.SyncActions)
	assert.Equal(t, 1, plan.Summary.PurgeActions)

	executed, err := svc.ApplySync(ctx, plan, opts)
	require.NoError(t, err)
	assert.Zero(t, executed)

	opts.Confirmed = true
	executed, err = svc.ApplySync(ctx, plan, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, executed)

	report, err := svc.CheckSources(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Incomplete)
	assert.Equal(t, 0, report.Mismatched)
}
