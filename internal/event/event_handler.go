package event

import (
	"net/http"

	"rikumates/internal/shared/apperror"
	"rikumates/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("event.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("event request failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	resp, err := h.service.List(c.Request.Context(), userID, c.Query("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	resp, err := h.service.GetByID(c.Request.Context(), userID, c.Param("event_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, c.Param("event_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	resp, err := h.service.Delete(c.Request.Context(), userID, c.Param("event_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
