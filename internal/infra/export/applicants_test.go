//go:build unit

package export_test

import (
	"testing"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra/export"
	"careerlaunch/internal/infra/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestApplicants(t *testing.T) {
	buf, err := export.Applicants(seed.Applicants(), seed.Jobs())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Applicants"}, f.GetSheetList())

	rows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(seed.Applicants()))

	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "John Smith", rows[1][1])
	assert.Equal(t, "Senior Frontend Developer", rows[1][4], "job id resolves to its title")
	assert.Equal(t, "review", rows[1][5])
	assert.Equal(t, "2023-03-05", rows[1][8])
}

func TestApplicantsUnknownJobAndEmptyList(t *testing.T) {
	t.Run("unknown job keeps the id", func(t *testing.T) {
		buf, err := export.Applicants([]recruiter.Applicant{{ID: "a", JobID: "job-x", Name: "N"}}, nil)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		v, err := f.GetCellValue("Applicants", "E2")
		require.NoError(t, err)
		assert.Equal(t, "job-x", v)
	})

	t.Run("no applicants still yields a header row", func(t *testing.T) {
		buf, err := export.Applicants(nil, nil)
		require.NoError(t, err)

		f, err := excelize.OpenReader(buf)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Applicants")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
