package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/render"
	apperrors "github.com/noah-isme/eval-report-engine/pkg/errors"
	"github.com/noah-isme/eval-report-engine/pkg/storage"
)

func testDataset() *models.EvaluationDataset {
	return &models.EvaluationDataset{
		Meta: models.ReportMeta{
			ProfessorName: "Maria Perez",
			SubjectName:   "Calculus I",
			ReportDate:    "2025-01-15",
		},
		NumericResponses: []models.ResponseSet{
			{QuestionID: "q1", Title: "Clarity", Kind: models.ResponseKindNumeric, Numbers: []float64{5, 4, 0}},
		},
	}
}

func recorderFactory() render.Surface {
	return render.NewCommandRecorder(595.28, 841.89)
}

func newServiceForTest(t *testing.T) (*ReportService, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewReportService(store, recorderFactory, render.DefaultStyle(),
		ReportConfig{InstitutionName: "Facultad", ResultTTL: time.Hour}, nil)
	return svc, store
}

func TestGenerateStoresReport(t *testing.T) {
	svc, store := newServiceForTest(t)

	result, err := svc.Generate(context.Background(), testDataset())
	require.NoError(t, err)
	require.Equal(t, "Report_MariaPerez_CalculusI_2025-01-15.pdf", result.RelativePath)
	require.Greater(t, result.Pages, 0)

	file, err := store.Open(result.RelativePath)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func TestGenerateRejectsInvalidDataset(t *testing.T) {
	svc, _ := newServiceForTest(t)

	ds := testDataset()
	ds.NumericResponses[0].Kind = "weird"

	_, err := svc.Generate(context.Background(), ds)
	require.Error(t, err)
	require.Equal(t, apperrors.ErrInvalidDataset.Code, apperrors.FromError(err).Code)
}

func TestGenerateHonoursCancelledContext(t *testing.T) {
	svc, _ := newServiceForTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Generate(ctx, testDataset())
	require.ErrorIs(t, err, context.Canceled)
}

type flakyStore struct {
	failures int
	saved    []string
}

func (f *flakyStore) Save(filename string, data []byte) (string, error) {
	if f.failures > 0 {
		f.failures--
		return "", errors.New("disk full")
	}
	f.saved = append(f.saved, filename)
	return filename, nil
}

func (f *flakyStore) CleanupOlderThan(ttl time.Duration) ([]string, error) { return nil, nil }

func (f *flakyStore) Path(filename string) string { return filename }

func TestGenerateFallsBackToGenericFilename(t *testing.T) {
	store := &flakyStore{failures: 1}
	svc := NewReportService(store, recorderFactory, render.DefaultStyle(), ReportConfig{}, nil)

	result, err := svc.Generate(context.Background(), testDataset())
	require.NoError(t, err)
	require.Equal(t, genericReportFilename, result.RelativePath)
}

func TestGenerateSurfacesSecondSaveFailure(t *testing.T) {
	store := &flakyStore{failures: 2}
	svc := NewReportService(store, recorderFactory, render.DefaultStyle(), ReportConfig{}, nil)

	_, err := svc.Generate(context.Background(), testDataset())
	require.Error(t, err)
	require.Equal(t, apperrors.ErrSaveFailed.Code, apperrors.FromError(err).Code)
}

func TestBuildFilename(t *testing.T) {
	tests := []struct {
		name string
		meta models.ReportMeta
		want string
	}{
		{
			name: "strips non-alphanumerics",
			meta: models.ReportMeta{ProfessorName: "Dr. Ana-Lucia G.", SubjectName: "Fisica II", ReportDate: "2025-06-30"},
			want: "Report_DrAnaLuciaG_FisicaII_2025-06-30.pdf",
		},
		{
			name: "missing professor falls back",
			meta: models.ReportMeta{SubjectName: "Fisica II"},
			want: genericReportFilename,
		},
		{
			name: "missing subject falls back",
			meta: models.ReportMeta{ProfessorName: "Ana"},
			want: genericReportFilename,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, BuildFilename(tc.meta))
		})
	}
}

func TestCleanupDelegatesToStorage(t *testing.T) {
	svc, _ := newServiceForTest(t)

	_, err := svc.Generate(context.Background(), testDataset())
	require.NoError(t, err)

	// Nothing is old enough yet.
	deleted, err := svc.Cleanup(time.Hour)
	require.NoError(t, err)
	require.Empty(t, deleted)
}
