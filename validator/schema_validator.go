package validator

import (
	"fmt"
	"strings"

	"github.com/featherduino/optionsScreener/model"

	"github.com/Oudwins/zog"
)

var ConfigShape = zog.Shape{
	"Port":            zog.String().Required(),
	"TrueDataToken":   zog.String().Required(),
	"TrueDataBaseURL": zog.String().Required(),
	"ExpiryURL":       zog.String().Required(),
}

// CacheBackendTest rejects CACHE_ENABLED=true without a REDIS_URL.
func CacheBackendTest(dataPtr any, ctx zog.Ctx) bool {
	cfg, ok := dataPtr.(*model.EnvConfig)
	if !ok {
		return true
	}

	if cfg.CacheEnabled && cfg.RedisURL == "" {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "redisUrl",
			Message: "REDIS_URL is required when CACHE_ENABLED=true",
		})
		return false
	}
	return true
}

var configSchema = zog.Struct(ConfigShape).TestFunc(CacheBackendTest)

// ValidateConfig runs the schema over a loaded config and flattens any
// issues into a single error.
func ValidateConfig(cfg *model.EnvConfig) error {
	issues := configSchema.Validate(cfg)
	if len(issues) == 0 {
		return nil
	}

	var parts []string
	for field, fieldIssues := range issues {
		for _, issue := range fieldIssues {
			parts = append(parts, fmt.Sprintf("%s: %s", field, issue.Message))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(parts, "; "))
}
