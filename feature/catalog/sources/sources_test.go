package sources

import (
	"testing"

	"storefront/core/catalog"
	"storefront/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	src, err := New(catalog.KindStorage, Deps{Storage: new(mocks.Client), Bucket: "b", Prefix: "p/"})
	require.NoError(t, err)
	assert.IsType(t, &StorageSource{}, src)

	_, err = New(catalog.KindDatabase, Deps{})
	assert.EqualError(t, err, "source database: database connection is nil")

	_, err = New(catalog.KindMongo, Deps{})
	assert.EqualError(t, err, "source mongo: mongo collection is nil")

	_, err = New("redis", Deps{})
	assert.EqualError(t, err, `unknown product source "redis"`)
}
