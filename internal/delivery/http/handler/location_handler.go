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

// LocationHandler - обработчик геокодирования
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Tags Location
// @Produce json
// @Param q query string true "Адрес (минимум 3 символа)"
// @Param limit query int false "Максимальное количество результатов" default(5)
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/location/geocode [get]
func (h *LocationHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	req.Query = c.Query("q")
	req.Limit = c.QueryInt("limit", 5)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.Geocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Results),
	})
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Tags Location
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param limit query int false "Максимальное количество результатов" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/location/reverse [get]
func (h *LocationHandler) ReverseGeocode(c *fiber.Ctx) error {
	if c.Query("lat") == "" || c.Query("lon") == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("lat and lon are required"))
	}

	var req dto.ReverseGeocodeRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	result, err := h.locationUC.ReverseGeocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
