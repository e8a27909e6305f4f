package profile

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
	l := zap.L().Named("profile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("profile request failed", zap.String("code", httpErr.Code), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Get(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	resp, err := h.service.Get(c.Request.Context(), callerID, c.Param("profile_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), callerID, c.Param("profile_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	callerID := c.GetString("user_id_validated")

	if err := h.service.Delete(c.Request.Context(), callerID, c.Param("profile_id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "profile deleted"})
}
