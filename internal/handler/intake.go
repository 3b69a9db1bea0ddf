package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/octobees/roofcompare/internal/dto"
	"github.com/octobees/roofcompare/internal/entity"
	"github.com/octobees/roofcompare/internal/middleware"
	"github.com/octobees/roofcompare/internal/notify"
	"github.com/octobees/roofcompare/internal/repository"
	"github.com/octobees/roofcompare/internal/siteconfig"
)

// IntakeHandler accepts visitor lead and quote submissions. Storage and
// email delivery are best effort: the visitor always gets an acknowledgement
// once the payload is valid, and downstream failures are logged instead of
// surfaced.
type IntakeHandler struct {
	site   *siteconfig.Config
	subs   repository.SubmissionsRepository
	sender notify.EmailSender
	logger *zap.Logger
}

// NewIntakeHandler wires the intake endpoints.
func NewIntakeHandler(site *siteconfig.Config, subs repository.SubmissionsRepository, sender notify.EmailSender, logger *zap.Logger) *IntakeHandler {
	return &IntakeHandler{site: site, subs: subs, sender: sender, logger: logger}
}

// LeadCapture handles POST /api/lead-capture.
func (h *IntakeHandler) LeadCapture(c echo.Context) error {
	var req dto.LeadCaptureRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return Error(c, http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		return Error(c, http.StatusBadRequest, "phone or email is required")
	}

	submission := entity.Submission{
		ID:            uuid.New(),
		Kind:          entity.SubmissionKindLead,
		Name:          req.Name,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		ZipCode:       strings.TrimSpace(req.ZipCode),
		ServiceOption: strings.TrimSpace(req.ServiceNeeded),
		SubmittedAt:   time.Now().UTC(),
	}

	h.record(c, submission)

	message := h.site.Monetization.LeadCapture.SuccessMessage
	if message == "" {
		message = "Thanks! We'll be in touch shortly."
	}
	return Success(c, http.StatusOK, message, dto.SubmissionAck{ID: submission.ID.String()})
}

// Quote handles POST /api/quote.
func (h *IntakeHandler) Quote(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return Error(c, http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		return Error(c, http.StatusBadRequest, "phone or email is required")
	}

	submission := entity.Submission{
		ID:            uuid.New(),
		Kind:          entity.SubmissionKindQuote,
		Name:          req.Name,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		ServiceOption: strings.TrimSpace(req.ServiceOption),
		Message:       strings.TrimSpace(req.Message),
		CompanyName:   strings.TrimSpace(req.CompanyName),
		CompanySlug:   strings.TrimSpace(req.CompanySlug),
		SubmittedAt:   time.Now().UTC(),
	}

	h.record(c, submission)

	if msg, err := notify.BuildQuoteEmail(h.site, submission); err != nil {
		h.logger.Error("build quote email",
			zap.String("request_id", middleware.RequestIDFromContext(c)),
			zap.Error(err))
	} else if err := h.sender.Send(c.Request().Context(), msg); err != nil {
		h.logger.Error("send quote email",
			zap.String("request_id", middleware.RequestIDFromContext(c)),
			zap.String("company_slug", submission.CompanySlug),
			zap.Error(err))
	}

	message := h.site.QuoteForm.SuccessMessage
	if message == "" {
		message = "Quote request sent."
	}
	return Success(c, http.StatusOK, message, dto.SubmissionAck{ID: submission.ID.String()})
}

func (h *IntakeHandler) record(c echo.Context, submission entity.Submission) {
	h.logger.Info("submission received",
		zap.String("request_id", middleware.RequestIDFromContext(c)),
		zap.String("submission_id", submission.ID.String()),
		zap.String("kind", submission.Kind),
		zap.String("company_slug", submission.CompanySlug))

	if err := h.subs.Save(c.Request().Context(), submission); err != nil {
		h.logger.Error("store submission",
			zap.String("request_id", middleware.RequestIDFromContext(c)),
			zap.String("submission_id", submission.ID.String()),
			zap.Error(err))
	}
}
