package domain_test

import (
	"testing"

	"github.com/openkraft/plugval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportLevel_CaseInsensitive(t *testing.T) {
	for _, s := range []string{"VERBOSE", "verbose", "VeRbOsE"} {
		l, err := domain.ParseReportLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, domain.LevelVerbose, l, s)
	}
}

func TestParseReportLevel_AllNames(t *testing.T) {
	for _, want := range domain.ReportLevels {
		got, err := domain.ParseReportLevel(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseReportLevel_Unknown(t *testing.T) {
	l, err := domain.ParseReportLevel("bogus")
	assert.Error(t, err)
	assert.Equal(t, domain.LevelDefault, l)
}

func TestReportLevelNames(t *testing.T) {
	assert.Equal(t, "[NONE, INLINE, BRIEF, DEFAULT, VERBOSE]", domain.ReportLevelNames())
}

func TestReportLevel_StringUnknown(t *testing.T) {
	assert.Equal(t, "ReportLevel(42)", domain.ReportLevel(42).String())
}

func TestReportLevel_Descriptions(t *testing.T) {
	for _, l := range domain.ReportLevels {
		assert.NotEmpty(t, l.Description(), l.String())
	}
}
