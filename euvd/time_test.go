package euvd_test

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuln-tools/euvd-mcp/euvd"
)

func TestVulnerabilityTimestamps(t *testing.T) {
	vuln := euvd.Vulnerability{
		ID:            "EUVD-2024-45012",
		DatePublished: lo.ToPtr("2024-01-01T00:00:00Z"),
		DateUpdated:   lo.ToPtr("Dec 13, 2024"),
	}

	published, err := vuln.PublishedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), published.UTC())

	updated, err := vuln.UpdatedAt()
	require.NoError(t, err)
	assert.Equal(t, 2024, updated.Year())
	assert.Equal(t, time.December, updated.Month())
	assert.Equal(t, 13, updated.Day())
}

func TestTimestampErrors(t *testing.T) {
	vuln := euvd.Vulnerability{ID: "EUVD-2024-45012"}
	_, err := vuln.PublishedAt()
	assert.Error(t, err)

	vuln.DatePublished = lo.ToPtr("not a date")
	_, err = vuln.PublishedAt()
	assert.Error(t, err)
}

func TestAdvisoryTimestamps(t *testing.T) {
	advisory := euvd.Advisory{
		ID:            "test-advisory-001",
		DatePublished: lo.ToPtr("2024-01-01T00:00:00Z"),
	}

	published, err := advisory.PublishedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), published.UTC())

	_, err = advisory.UpdatedAt()
	assert.Error(t, err)
}
