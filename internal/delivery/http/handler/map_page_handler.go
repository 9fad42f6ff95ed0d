package handler

import (
	"context"
	"embed"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/winery-map/internal/config"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/usecase"
	"github.com/winery-map/internal/usecase/dto"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewportCookie - ширина окна, которую скрипт страницы сохраняет при ресайзе
const ViewportCookie = "vw"

// MapPageData - данные для шаблона страницы карты
type MapPageData struct {
	Title       string
	Description string
	State       domain.LoadState
	Error       string
	AccessToken string
	MapStyle    string
	MapCenter   MapCenterCoords
	MapZoom     float64
	Breakpoint  int
	Collection  *domain.SpatialCollection
	Marker      domain.MarkerStyle
	Selection   dto.SelectionView
}

// MapCenterCoords - координаты центра карты
type MapCenterCoords struct {
	Lat float64
	Lon float64
}

// MapPageHandler - серверный рендеринг страницы карты и фрагмента поверхности
type MapPageHandler struct {
	templates   *template.Template
	directoryUC *usecase.DirectoryUseCase
	selectionUC *usecase.SelectionUseCase
	mapbox      config.MapboxConfig
	breakpoint  int
	loadWait    time.Duration
	marker      domain.MarkerStyle
	logger      *zap.Logger
}

// NewMapPageHandler - создание нового хендлера страницы карты
func NewMapPageHandler(
	cfg *config.Config,
	directoryUC *usecase.DirectoryUseCase,
	selectionUC *usecase.SelectionUseCase,
	marker domain.MarkerStyle,
	logger *zap.Logger,
) (*MapPageHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join":    strings.Join,
		"percent": func(f float64) string { return strconv.FormatFloat(f*100, 'f', 2, 64) + "%" },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &MapPageHandler{
		templates:   tmpl,
		directoryUC: directoryUC,
		selectionUC: selectionUC,
		mapbox:      cfg.Mapbox,
		breakpoint:  cfg.Presentation.Breakpoint,
		loadWait:    cfg.Presentation.LoadWait,
		marker:      marker,
		logger:      logger,
	}, nil
}

// RenderMap - рендеринг страницы: loading, errored или карта с активной поверхностью
func (h *MapPageHandler) RenderMap(c *fiber.Ctx) error {
	snap := h.directoryUC.Snapshot()
	if snap.State == domain.StateLoading && h.loadWait > 0 {
		// короткое ожидание вместо лишнего цикла meta refresh при холодном старте
		ctx, cancel := context.WithTimeout(c.UserContext(), h.loadWait)
		if err := h.directoryUC.Wait(ctx); err == nil {
			snap = h.directoryUC.Snapshot()
		}
		cancel()
	}

	data := MapPageData{
		Title:       "Wineries in Valencia",
		Description: "Find the best Wineries in Valencia",
		State:       snap.State,
		Error:       snap.Error,
		AccessToken: h.mapbox.AccessToken,
		MapStyle:    h.mapbox.Style,
		MapCenter: MapCenterCoords{
			Lat: h.mapbox.CenterLat,
			Lon: h.mapbox.CenterLon,
		},
		MapZoom:    h.mapbox.Zoom,
		Breakpoint: h.breakpoint,
		Collection: snap.Collection,
		Marker:     h.marker,
	}

	if snap.State == domain.StateReady {
		data.Selection = h.selectionUC.Resolve(dto.SelectionQuery{
			ID:    c.Query(usecase.SelectionParam),
			Width: viewportWidth(c),
		})
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "base.html", data)
}

// RenderSurface - фрагмент активной поверхности; скрипт страницы подменяет им панель
// после клика, закрытия и навигации по истории. При ресайзе скрипт передаёт from;
// если класс окна не сменился, ответ 204 и текущая поверхность остаётся.
func (h *MapPageHandler) RenderSurface(c *fiber.Ctx) error {
	width := c.QueryInt("width", 0)
	if width <= 0 {
		width = viewportWidth(c)
	}
	from := c.QueryInt("from", 0)

	view := h.selectionUC.Resolve(dto.SelectionQuery{
		ID:    c.Query(usecase.SelectionParam),
		Width: width,
		From:  from,
	})

	if from > 0 && !view.Reclassified {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return h.templates.ExecuteTemplate(c.Response().BodyWriter(), "surface.html", view)
}

// viewportWidth - ширина окна из client hints или cookie; 0 если неизвестна
func viewportWidth(c *fiber.Ctx) int {
	for _, raw := range []string{
		c.Get("Sec-CH-Viewport-Width"),
		c.Get("Viewport-Width"),
		c.Cookies(ViewportCookie),
	} {
		if raw == "" {
			continue
		}
		if w, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && w > 0 {
			return w
		}
	}
	return 0
}
