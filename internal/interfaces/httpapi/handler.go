package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/lucasveiga/palpiteiro/internal/platform/logging"
	"github.com/lucasveiga/palpiteiro/internal/usecase"
)

type Handler struct {
	reportService     *usecase.ReportService
	predictionService *usecase.PredictionService
	authService       *usecase.AuthService
	collectService    *usecase.CollectService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	reportService *usecase.ReportService,
	predictionService *usecase.PredictionService,
	authService *usecase.AuthService,
	collectService *usecase.CollectService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		reportService:     reportService,
		predictionService: predictionService,
		authService:       authService,
		collectService:    collectService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type parseReportRequest struct {
	Texto string `json:"texto" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type collectJobRequest struct {
	MaxWorkers int  `json:"max_workers" validate:"omitempty,min=1,max=32"`
	DryRun     bool `json:"dry_run"`
}

type parseReportResponse struct {
	TipoConteudo string `json:"tipo_conteudo"`
	Documento    any    `json:"documento"`
}

type userResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	CriadoEm time.Time `json:"criado_em"`
	IsAdmin  bool      `json:"is_admin"`
}

type loginResponse struct {
	Token string `json:"token"`
}
