package server_test

import (
	"testing"

	"storefront/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"Storage", server.SourceStorage, true},
		{"Database", server.SourceDatabase, true},
		{"Mongo", server.SourceMongo, true},
		{"Invalid", "firestore", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Source: tt.source}
			assert.Equal(t, tt.want, c.IsValidSource())
		})
	}
}

func TestConfig_MirrorSources(t *testing.T) {
	c := server.Config{Source: server.SourceStorage, Mirrors: " mongo, storage,database,mongo,redis"}
	assert.Equal(t, []string{server.SourceMongo, server.SourceDatabase}, c.MirrorSources())
	assert.True(t, c.Uses(server.SourceStorage))
	assert.True(t, c.Uses(server.SourceDatabase))

	plain := server.Config{Source: server.SourceDatabase}
	assert.Empty(t, plain.MirrorSources())
	assert.False(t, plain.Uses(server.SourceMongo))
}
