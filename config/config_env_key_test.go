package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	yamlKeys := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "1MB",
			"allowOrigins":       []any{"*"},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"catalog":   map[string]any{"maxPageSize": 100},
		"auth":      map[string]any{"bcryptCost": 12},
		"secretKey": map[string]any{"access": ""},
	}

	cases := map[string]string{
		"HTTP_MAXREQUESTBODYSIZE":  "http.maxRequestBodySize",
		"HTTP_ALLOWORIGINS":        "http.allowOrigins",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"CATALOG_MAXPAGESIZE":      "catalog.maxPageSize",
		"AUTH_BCRYPTCOST":          "auth.bcryptCost",
		"SECRETKEY_ACCESS":         "secretKey.access",
		"UNKNOWN__KEY":             "unknown.key",
		"QRCODE_SIZE":              "qrcode.size",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, yamlKeys))
		})
	}
}
