package report_generator_test

import (
	"bytes"
	"testing"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
	"github.com/kurochkinivan/transcript_extractor/internal/infrastructure/report_generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateReport(t *testing.T) {
	t.Parallel()

	heading, name, score := "Data Analytics with Python", "JANE DOE", "78"

	pdf, err := report_generator.New().GenerateReport([]*domain.Record{
		{Heading: &heading, Name: &name, Score: &score},
		{},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerator_GenerateReport_NoRecords(t *testing.T) {
	t.Parallel()

	pdf, err := report_generator.New().GenerateReport(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
