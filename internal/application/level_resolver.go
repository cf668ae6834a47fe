package application

import (
	"fmt"

	"github.com/openkraft/plugval/internal/domain"
)

// LevelResolver maps the configured report level string to a ReportLevel.
// It never fails: empty means DEFAULT, anything unrecognized logs a
// warning and also means DEFAULT.
type LevelResolver struct {
	logger domain.Logger
}

// NewLevelResolver creates a resolver that warns through logger. A nil
// logger silences the warning.
func NewLevelResolver(logger domain.Logger) *LevelResolver {
	return &LevelResolver{logger: logger}
}

// Resolve maps value to a level.
func (r *LevelResolver) Resolve(value string) domain.ReportLevel {
	if value == "" {
		return domain.LevelDefault
	}
	level, err := domain.ParseReportLevel(value)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn(fmt.Sprintf(
				"Invalid value specified for property %s: '%s'. Supported values are (case insensitive): %s",
				domain.ValidationLevelKey, value, domain.ReportLevelNames()))
		}
		return domain.LevelDefault
	}
	return level
}

// ResolveSession reads the level property from the session.
func (r *LevelResolver) ResolveSession(s domain.Session) domain.ReportLevel {
	if s == nil {
		return domain.LevelDefault
	}
	value, _ := s.Property(domain.ValidationLevelKey)
	return r.Resolve(value)
}
