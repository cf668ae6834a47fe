package domain_test

import (
	"testing"

	"github.com/openkraft/plugval/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
}

func TestProjectConfig_ValidateLogLevel(t *testing.T) {
	cfg := domain.ProjectConfig{Log: domain.LogConfig{Level: "WARN"}}
	assert.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log.level")
}

func TestProjectConfig_ValidateJobs(t *testing.T) {
	cfg := domain.ProjectConfig{Jobs: -1}
	assert.ErrorContains(t, cfg.Validate(), "jobs must be >= 0")
}

func TestProjectConfig_ValidateEmptyPropertyKey(t *testing.T) {
	cfg := domain.ProjectConfig{Properties: map[string]string{" ": "x"}}
	assert.Error(t, cfg.Validate())
}

func TestProjectConfig_InvalidReportLevelIsNotAConfigError(t *testing.T) {
	cfg := domain.ProjectConfig{Properties: map[string]string{domain.ValidationLevelKey: "bogus"}}
	assert.NoError(t, cfg.Validate())
}

func TestProjectConfig_WithProperties(t *testing.T) {
	base := domain.ProjectConfig{Properties: map[string]string{"a": "1", "b": "2"}}
	merged := base.WithProperties(map[string]string{"b": "3", "c": "4"})

	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, merged.Properties)
	assert.Equal(t, "2", base.Properties["b"], "base must not be modified")

	v, ok := merged.Property("c")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	_, ok = merged.Property("missing")
	assert.False(t, ok)
}
