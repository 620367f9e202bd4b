package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"alcyxob/coach-diet/internal/diet"
	"alcyxob/coach-diet/internal/domain"
	"alcyxob/coach-diet/internal/llm"
	"alcyxob/coach-diet/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Error Definitions ---
var (
	ErrInvalidImagePayload = errors.New("invalid image payload")
	ErrImageAnalysisFailed = errors.New("could not analyze the food image")
)

const foodAnalysisPrompt = `Analiza esta imagen de comida. Actúa como un nutricionista experto.
Identifica los alimentos presentes y estima sus valores nutricionales.

Responde EXCLUSIVAMENTE con un JSON válido con la siguiente estructura:
{
  "foodName": "Nombre del plato/alimento",
  "calories": 0,
  "protein": 0,
  "carbs": 0,
  "fat": 0,
  "healthScore": 0,
  "suggestion": "Breve consejo sobre si es adecuado para una dieta de pérdida de peso"
}
El healthScore va del 1 al 10, siendo 10 muy saludable.`

// ScanService analyzes food photos. There is deliberately no fallback tier
// here: a made-up food identification would be actively misleading, so any
// failure propagates to the caller as an error.
type ScanService interface {
	AnalyzeFood(ctx context.Context, imagePayload string) (*domain.FoodAnalysis, error)
}

// scanService implements the ScanService interface.
type scanService struct {
	vision      llm.VisionAnalyzer
	fileStorage storage.FileStorage // nil disables scan archival
	logger      *zap.Logger
}

// NewScanService creates a new instance of scanService. Passing a nil
// fileStorage disables image archival; analysis still works.
func NewScanService(vision llm.VisionAnalyzer, fileStorage storage.FileStorage, logger *zap.Logger) ScanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &scanService{
		vision:      vision,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// AnalyzeFood decodes the image payload, dispatches a single vision call and
// parses the model's JSON estimate. On success the image is archived
// best-effort; an archive failure is logged, never surfaced.
func (s *scanService) AnalyzeFood(ctx context.Context, imagePayload string) (*domain.FoodAnalysis, error) {
	format, imageData, err := decodeImagePayload(imagePayload)
	if err != nil {
		return nil, err
	}

	raw, err := s.vision.AnalyzeImage(ctx, foodAnalysisPrompt, format, imageData)
	if err != nil {
		s.logger.Warn("food image analysis failed", zap.Error(err))
		return nil, ErrImageAnalysisFailed
	}

	var analysis domain.FoodAnalysis
	if err := json.Unmarshal([]byte(diet.StripFences(raw)), &analysis); err != nil {
		s.logger.Warn("food analysis response is not valid JSON", zap.Error(err))
		return nil, ErrImageAnalysisFailed
	}

	s.archiveScan(ctx, format, imageData, &analysis)
	return &analysis, nil
}

// archiveScan stores the analyzed image and attaches a temporary download
// URL to the result. Best-effort: the analysis already succeeded.
func (s *scanService) archiveScan(ctx context.Context, format string, imageData []byte, analysis *domain.FoodAnalysis) {
	if s.fileStorage == nil {
		return
	}

	objectKey := path.Join("scans", fmt.Sprintf("%s.%s", uuid.NewString(), format))
	if err := s.fileStorage.Upload(ctx, objectKey, "image/"+format, imageData); err != nil {
		s.logger.Warn("failed to archive scan image",
			zap.String("objectKey", objectKey),
			zap.Error(err),
		)
		return
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.logger.Warn("failed to presign scan image URL",
			zap.String("objectKey", objectKey),
			zap.Error(err),
		)
		return
	}
	analysis.ImageURL = url
}

// decodeImagePayload accepts either bare base64 or a data URI
// (data:image/jpeg;base64,...) and returns the image format plus raw bytes.
func decodeImagePayload(payload string) (string, []byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", nil, fmt.Errorf("%w: payload is empty", ErrInvalidImagePayload)
	}

	format := "jpeg"
	if strings.HasPrefix(payload, "data:") {
		header, body, found := strings.Cut(payload, ",")
		if !found {
			return "", nil, fmt.Errorf("%w: malformed data URI", ErrInvalidImagePayload)
		}
		if f := parseImageFormat(header); f != "" {
			format = f
		}
		payload = body
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImagePayload, err)
	}
	return format, data, nil
}

// parseImageFormat pulls the subtype out of a data URI header like
// "data:image/png;base64".
func parseImageFormat(header string) string {
	header = strings.TrimPrefix(header, "data:")
	mime, _, _ := strings.Cut(header, ";")
	if sub, ok := strings.CutPrefix(mime, "image/"); ok {
		return sub
	}
	return ""
}
