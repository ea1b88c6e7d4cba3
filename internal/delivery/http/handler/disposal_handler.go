package handler

import (
	"github.com/conecta-coleta/internal/pkg/errors"
	"github.com/conecta-coleta/internal/pkg/utils"
	"github.com/conecta-coleta/internal/pkg/validator"
	"github.com/conecta-coleta/internal/usecase"
	"github.com/conecta-coleta/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DisposalHandler - обработчик поиска пунктов приёма
type DisposalHandler struct {
	disposalUC *usecase.DisposalUseCase
	logger     *zap.Logger
}

// NewDisposalHandler - создание нового DisposalHandler
func NewDisposalHandler(disposalUC *usecase.DisposalUseCase, logger *zap.Logger) *DisposalHandler {
	return &DisposalHandler{
		disposalUC: disposalUC,
		logger:     logger,
	}
}

// Rank godoc
// @Summary Пункты приёма по расстоянию
// @Description Сортирует ecopontos и PEV по расстоянию (Haversine) от координат или адреса. Фильтр - категория или поиск по материалам, но не оба сразу.
// @Tags Disposal
// @Accept json
// @Produce json
// @Param request body dto.RankRequest true "Точка отсчёта и фильтр"
// @Success 200 {object} utils.SuccessResponse{data=dto.RankResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/disposal/rank [post]
func (h *DisposalHandler) Rank(c *fiber.Ctx) error {
	req, err := parseRankRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.disposalUC.Rank(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Nearest godoc
// @Summary Ближайший пункт приёма
// @Description Возвращает ближайший подходящий пункт; point = null, если ни один не подошёл под фильтр.
// @Tags Disposal
// @Accept json
// @Produce json
// @Param request body dto.RankRequest true "Точка отсчёта и фильтр"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearestResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/disposal/nearest [post]
func (h *DisposalHandler) Nearest(c *fiber.Ctx) error {
	req, err := parseRankRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.disposalUC.Nearest(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetPoint godoc
// @Summary Пункт приёма по ID
// @Tags Disposal
// @Produce json
// @Param id path string true "ID пункта"
// @Success 200 {object} utils.SuccessResponse{data=domain.DisposalPoint}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/disposal/points/{id} [get]
func (h *DisposalHandler) GetPoint(c *fiber.Ctx) error {
	result, err := h.disposalUC.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func parseRankRequest(c *fiber.Ctx) (dto.RankRequest, error) {
	var req dto.RankRequest
	if err := c.BodyParser(&req); err != nil {
		return req, errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}

	if err := validator.Validate(&req); err != nil {
		return req, err
	}

	return req, nil
}
