package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/pkg/utils"
	"github.com/winery-map/internal/usecase"
	"go.uber.org/zap"
)

// WineryHandler - отдаёт коллекцию виноделен для слоя карты
type WineryHandler struct {
	directoryUC *usecase.DirectoryUseCase
	marker      domain.MarkerStyle
	logger      *zap.Logger
}

// NewWineryHandler - создание нового WineryHandler
func NewWineryHandler(directoryUC *usecase.DirectoryUseCase, marker domain.MarkerStyle, logger *zap.Logger) *WineryHandler {
	return &WineryHandler{
		directoryUC: directoryUC,
		marker:      marker,
		logger:      logger,
	}
}

// WineriesResponse - коллекция и стиль маркеров
type WineriesResponse struct {
	Collection *domain.SpatialCollection `json:"collection"`
	Marker     domain.MarkerStyle        `json:"marker"`
	BBox       []float64                 `json:"bbox,omitempty"` // [minLon, minLat, maxLon, maxLat]
}

// GetWineries godoc
// @Summary Get wineries as GeoJSON
// @Description Returns the spatial collection of wineries. collection is null when the store returned no records.
// @Tags Wineries
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse "Record store fetch failed"
// @Failure 503 {object} utils.ErrorResponse "Still loading"
// @Router /api/v1/wineries [get]
func (h *WineryHandler) GetWineries(c *fiber.Ctx) error {
	coll, err := h.directoryUC.Collection()
	if err != nil {
		return utils.SendError(c, err)
	}

	snap := h.directoryUC.Snapshot()
	resp := WineriesResponse{
		Collection: coll,
		Marker:     h.marker,
	}
	if snap.HasData() {
		b := snap.Collection.Bound()
		resp.BBox = []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:     coll.Len(),
		SessionID: snap.SessionID,
		State:     string(snap.State),
	})
}
