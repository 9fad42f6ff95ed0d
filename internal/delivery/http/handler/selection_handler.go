package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/winery-map/internal/pkg/errors"
	"github.com/winery-map/internal/pkg/utils"
	"github.com/winery-map/internal/pkg/validator"
	"github.com/winery-map/internal/usecase"
	"github.com/winery-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// SelectionHandler - намерения выбора и чтение выбранной винодельни
type SelectionHandler struct {
	selectionUC *usecase.SelectionUseCase
	logger      *zap.Logger
}

// NewSelectionHandler - создание нового SelectionHandler
func NewSelectionHandler(selectionUC *usecase.SelectionUseCase, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		selectionUC: selectionUC,
		logger:      logger,
	}
}

// GetSelection godoc
// @Summary Resolve the selected winery
// @Description Derives the selected record from the winery id and picks the surface for the viewport width
// @Tags Selection
// @Produce json
// @Param winery query string false "Selected winery id"
// @Param width query int false "Viewport width in px"
// @Param from query int false "Viewport width before a resize; reclassified reports a breakpoint crossing"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/selection [get]
func (h *SelectionHandler) GetSelection(c *fiber.Ctx) error {
	var q dto.SelectionQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	return utils.SendSuccess(c, h.selectionUC.Resolve(q), nil)
}

// Select godoc
// @Summary Select a winery
// @Description Writes winery=<id> into the given page location. Selecting the current id is a no-op.
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body dto.SelectRequest true "Page location and winery id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/selection/select [post]
func (h *SelectionHandler) Select(c *fiber.Ctx) error {
	var req dto.SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	nav, err := h.selectionUC.Select(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, nav, nil)
}

// Clear godoc
// @Summary Clear the selection
// @Description Removes winery from the given page location. Shared close pathway for every surface.
// @Tags Selection
// @Accept json
// @Produce json
// @Param request body dto.ClearRequest true "Page location"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/selection/clear [post]
func (h *SelectionHandler) Clear(c *fiber.Ctx) error {
	var req dto.ClearRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	nav, err := h.selectionUC.Clear(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, nav, nil)
}
