package handler

import (
	"github.com/conecta-coleta/internal/pkg/utils"
	"github.com/conecta-coleta/internal/pkg/validator"
	"github.com/conecta-coleta/internal/usecase"
	"github.com/conecta-coleta/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TruckHandler - обработчик симуляции мусоровоза
type TruckHandler struct {
	truckUC *usecase.TruckUseCase
	logger  *zap.Logger
}

// NewTruckHandler - создание нового TruckHandler
func NewTruckHandler(truckUC *usecase.TruckUseCase, logger *zap.Logger) *TruckHandler {
	return &TruckHandler{
		truckUC: truckUC,
		logger:  logger,
	}
}

// GetCountdown godoc
// @Summary Обратный отсчёт до прибытия мусоровоза
// @Description Оставшееся расстояние и ETA по циклической модели. Значение периодично с периодом цикла.
// @Tags Truck
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CountdownResponse}
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/truck/countdown [get]
func (h *TruckHandler) GetCountdown(c *fiber.Ctx) error {
	result, err := h.truckUC.GetCountdown(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetPosition godoc
// @Summary Положение мусоровоза на маршруте
// @Description Вершина маршрута, соответствующая текущей доле цикла. Точки не интерполируются.
// @Tags Truck
// @Produce json
// @Param route_id query string false "ID маршрута (по умолчанию - маршрут из конфигурации)"
// @Success 200 {object} utils.SuccessResponse{data=dto.PositionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/truck/position [get]
func (h *TruckHandler) GetPosition(c *fiber.Ctx) error {
	var req dto.TruckQuery
	req.RouteID = c.Query("route_id")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.truckUC.GetPosition(c.UserContext(), req.RouteID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetStatus godoc
// @Summary Полный статус мусоровоза
// @Description Положение на маршруте и обратный отсчёт на один момент времени; модели независимы.
// @Tags Truck
// @Produce json
// @Param route_id query string false "ID маршрута"
// @Success 200 {object} utils.SuccessResponse{data=domain.TruckStatus}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/truck/status [get]
func (h *TruckHandler) GetStatus(c *fiber.Ctx) error {
	var req dto.TruckQuery
	req.RouteID = c.Query("route_id")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.truckUC.GetStatus(c.UserContext(), req.RouteID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetLastPosition godoc
// @Summary Последняя опубликованная позиция мусоровоза
// @Description Событие, которое трекер последним записал в стрим; хранится в Redis.
// @Tags Truck
// @Produce json
// @Param truck_id query string true "ID мусоровоза"
// @Success 200 {object} utils.SuccessResponse{data=domain.TruckPositionEvent}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/truck/last [get]
func (h *TruckHandler) GetLastPosition(c *fiber.Ctx) error {
	var req dto.LastPositionQuery
	req.TruckID = c.Query("truck_id")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.truckUC.GetLastPosition(c.UserContext(), req.TruckID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
