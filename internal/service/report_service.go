package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/eval-report-engine/internal/models"
	"github.com/noah-isme/eval-report-engine/internal/render"
	apperrors "github.com/noah-isme/eval-report-engine/pkg/errors"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
	Path(filename string) string
}

// SurfaceFactory builds a fresh drawing surface per render; each document
// gets its own cursor and backend, never shared across renders.
type SurfaceFactory func() render.Surface

// ReportConfig tunes report generation behaviour.
type ReportConfig struct {
	InstitutionName string
	ResultTTL       time.Duration
}

// ReportResult captures successful generation metadata.
type ReportResult struct {
	RelativePath string
	Pages        int
	GeneratedAt  time.Time
}

// genericReportFilename is the fallback used when metadata is missing or the
// first save attempt fails.
const genericReportFilename = "Evaluation_Report.pdf"

// ReportService validates datasets, renders them through the composer and
// persists the finished document.
type ReportService struct {
	storage    fileStorage
	newSurface SurfaceFactory
	style      render.StyleConfig
	logger     *zap.Logger
	cfg        ReportConfig
}

// NewReportService constructs a ReportService.
func NewReportService(storage fileStorage, newSurface SurfaceFactory, style render.StyleConfig, cfg ReportConfig, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 30 * 24 * time.Hour
	}
	return &ReportService{
		storage:    storage,
		newSurface: newSurface,
		style:      style,
		logger:     logger,
		cfg:        cfg,
	}
}

// Generate renders the dataset into a stored PDF. Cancellation is
// coarse-grained: the context is only consulted before rendering starts,
// since renderers are not safe to interrupt between a height estimate and
// its draw.
func (s *ReportService) Generate(ctx context.Context, ds *models.EvaluationDataset) (*ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ds.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidDataset.Code, apperrors.ErrInvalidDataset.Message)
	}

	runID := uuid.NewString()
	start := time.Now()

	surface := s.newSurface()
	composer := render.NewComposer(s.style, s.cfg.InstitutionName, s.logger)
	if err := composer.Render(surface, ds); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrRenderFailed.Code, apperrors.ErrRenderFailed.Message)
	}

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrRenderFailed.Code, apperrors.ErrRenderFailed.Message)
	}

	filename := BuildFilename(ds.Meta)
	relPath, err := s.storage.Save(filename, buf.Bytes())
	if err != nil {
		s.logger.Warn("report save failed, retrying with generic filename",
			zap.String("run_id", runID),
			zap.String("filename", filename),
			zap.Error(err))
		relPath, err = s.storage.Save(genericReportFilename, buf.Bytes())
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrSaveFailed.Code, apperrors.ErrSaveFailed.Message)
		}
	}

	s.logger.Info("report generated",
		zap.String("run_id", runID),
		zap.String("path", relPath),
		zap.Int("pages", surface.PageCount()),
		zap.Duration("elapsed", time.Since(start)))

	return &ReportResult{
		RelativePath: relPath,
		Pages:        surface.PageCount(),
		GeneratedAt:  start,
	}, nil
}

// Cleanup removes reports older than ttl (defaults to the configured
// ResultTTL when ttl <= 0).
func (s *ReportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

// Path resolves a stored report name to its absolute location.
func (s *ReportService) Path(filename string) string {
	return s.storage.Path(filename)
}

// BuildFilename derives "Report_{professor}_{subject}_{date}.pdf" with
// non-alphanumeric characters stripped from the professor and subject
// segments. Missing metadata falls back to the generic filename.
func BuildFilename(meta models.ReportMeta) string {
	prof := stripNonAlnum(meta.ProfessorName)
	subject := stripNonAlnum(meta.SubjectName)
	if prof == "" || subject == "" {
		return genericReportFilename
	}
	date := meta.ReportDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	date = strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-").Replace(date)
	return "Report_" + prof + "_" + subject + "_" + date + ".pdf"
}

func stripNonAlnum(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
