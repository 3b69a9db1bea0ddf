package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/roofcompare/internal/directory"
	"github.com/octobees/roofcompare/internal/ingest"
	"github.com/octobees/roofcompare/internal/middleware"
	"github.com/octobees/roofcompare/internal/repository"
)

// AdminHandler serves the authenticated admin endpoints: CSV dataset
// replacement and the submissions inbox.
type AdminHandler struct {
	store         *directory.Store
	subs          repository.SubmissionsRepository
	datasetPath   string
	cityIndexPath string
	logger        *zap.Logger
}

// NewAdminHandler wires the admin endpoints.
func NewAdminHandler(store *directory.Store, subs repository.SubmissionsRepository, datasetPath, cityIndexPath string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		store:         store,
		subs:          subs,
		datasetPath:   datasetPath,
		cityIndexPath: cityIndexPath,
		logger:        logger,
	}
}

// UploadCSV handles POST /admin/upload-csv. A valid upload rewrites both
// dataset artifacts and swaps the in-memory dataset, so the new companies
// serve immediately.
func (h *AdminHandler) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	result, err := ingest.Transform(file)
	if err != nil {
		var validationErr ingest.CSVValidationError
		if errors.As(err, &validationErr) {
			return Error(c, http.StatusBadRequest, validationErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to process csv")
	}

	if err := ingest.WriteDataset(h.datasetPath, result.Companies); err != nil {
		h.logger.Error("write dataset", zap.String("path", h.datasetPath), zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to write dataset")
	}
	if err := ingest.WriteCityIndex(h.cityIndexPath, result.Cities); err != nil {
		h.logger.Error("write city index", zap.String("path", h.cityIndexPath), zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to write city index")
	}

	h.store.Replace(result.Companies)

	h.logger.Info("dataset replaced",
		zap.String("request_id", middleware.RequestIDFromContext(c)),
		zap.Int("companies", result.Report.Companies),
		zap.Int("cities", result.Report.Cities),
		zap.Int("warnings", len(result.Report.Warnings)))

	return Success(c, http.StatusOK, "companies CSV processed", result.Report)
}

// Submissions handles GET /admin/submissions. The optional limit query
// parameter caps the page size.
func (h *AdminHandler) Submissions(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return Error(c, http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	submissions, err := h.subs.Recent(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("list submissions", zap.Error(err))
		return Error(c, http.StatusInternalServerError, "failed to list submissions")
	}

	return Success(c, http.StatusOK, "submissions retrieved", submissions)
}
