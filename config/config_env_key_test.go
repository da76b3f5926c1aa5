package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":            "",
			"connectTimeout": "5s",
		},
		"assets": map[string]any{
			"publicBaseUrl":   "",
			"maxUploadSizeMB": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_CONNECTTIMEOUT", want: "mongo.connectTimeout"},
		{envKey: "ASSETS_PUBLICBASEURL", want: "assets.publicBaseUrl"},
		{envKey: "ASSETS_MAXUPLOADSIZEMB", want: "assets.maxUploadSizeMB"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Mongo:  &MongoConfig{URI: "mongodb://localhost:27017"},
		Assets: &AssetsConfig{Bucket: "images"},
	}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultAdminName, cfg.Admin.Name)
	assert.EqualValues(t, defaultMaxUploadSizeMB, cfg.Assets.MaxUploadSizeMB)
}

func TestValidate(t *testing.T) {
	t.Run("mongo requires uri", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: StorageDriverMongo}}
		cfg.SecretKey.Access = "secret"
		require.Error(t, cfg.Validate())
	})

	t.Run("memory needs only a secret", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: StorageDriverMemory}}
		require.Error(t, cfg.Validate())

		cfg.SecretKey.Access = "secret"
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Storage: StorageConfig{Driver: "cassandra"}}
		cfg.SecretKey.Access = "secret"
		assert.ErrorContains(t, cfg.Validate(), "unknown storage driver")
	})
}
