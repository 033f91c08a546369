package search

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"foundry.GO/api"
	"foundry.GO/config"
	"foundry.GO/core/cache"
	searchRepo "foundry.GO/model/repository/search"
	exportService "foundry.GO/service/export"
)

func init() {
	api.RegisterRoute(RegisterSearchRoutes)
}

// SearchRequest is the query screen's request body.
type SearchRequest struct {
	SearchType string            `json:"searchType"`
	SearchTerm string            `json:"searchTerm"`
	Filters    map[string]string `json:"filters"`
}

// ExportRequest carries previously returned results back for CSV export.
type ExportRequest struct {
	SearchType string                   `json:"searchType"`
	Results    []map[string]interface{} `json:"results"`
}

const (
	optionsCacheKey = "foundry:search:options"
	optionsCacheTTL = 60 * time.Second
)

func RegisterSearchRoutes(e *echo.Echo, db *gorm.DB) {
	repo := searchRepo.GetSearchRepository(db)

	// POST /search – one bounded query per call, newest records first
	e.POST("/search", func(c echo.Context) error {
		var body SearchRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		kind, ok := searchRepo.ParseKind(body.SearchType)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid search type"})
		}
		results, err := repo.Search(c.Request().Context(), kind, body.SearchTerm, body.Filters)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Search failed"})
		}
		return c.JSON(http.StatusOK, results)
	})

	// GET /search/options – picker lists, cached (redis when configured)
	e.GET("/search/options", func(c echo.Context) error {
		if blob, ok := cachedOptions(); ok {
			return c.JSONBlob(http.StatusOK, blob)
		}
		opts, err := repo.Options(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch search options"})
		}
		blob, err := json.Marshal(opts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		storeOptions(blob)
		return c.JSONBlob(http.StatusOK, blob)
	})

	// POST /search/export – CSV of posted results, order preserved
	e.POST("/search/export", func(c echo.Context) error {
		var body ExportRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		kind, ok := searchRepo.ParseKind(body.SearchType)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid search type"})
		}
		csvData, err := exportService.CSV(kind, body.Results)
		if err != nil {
			if errors.Is(err, exportService.ErrNoResults) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "No results to export"})
			}
			if errors.Is(err, searchRepo.ErrUnknownKind) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid search type"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Export failed"})
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			`attachment; filename="`+exportService.Filename(kind)+`"`)
		return c.Blob(http.StatusOK, "text/csv", []byte(csvData))
	})
}

func cachedOptions() ([]byte, bool) {
	if config.RedisClient != nil {
		blob, err := config.RedisClient.Get(config.RedisCtx(), optionsCacheKey).Bytes()
		if err == nil {
			return blob, true
		}
		return nil, false
	}
	if v, ok := cache.GetInstance().Get(optionsCacheKey); ok {
		if blob, isBlob := v.([]byte); isBlob {
			return blob, true
		}
	}
	return nil, false
}

func storeOptions(blob []byte) {
	if config.RedisClient != nil {
		config.RedisClient.Set(config.RedisCtx(), optionsCacheKey, blob, optionsCacheTTL)
		return
	}
	cache.GetInstance().Set(optionsCacheKey, blob, int64(optionsCacheTTL/time.Second), []string{"search"})
}
