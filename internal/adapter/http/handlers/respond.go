package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jupiter-12/kanban/internal/adapter/http/middleware"
	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondDomainError translates domain sentinels to HTTP status codes and
// message keys. Anything unrecognized is logged and reported as a 500.
func respondDomainError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	status, msgKey := http.StatusInternalServerError, apierrors.MsgInternalError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgUserNotFound
	case errors.Is(err, domain.ErrProjectNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgProjectNotFound
	case errors.Is(err, domain.ErrColumnNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgColumnNotFound
	case errors.Is(err, domain.ErrTaskNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrCommentNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgCommentNotFound
	case errors.Is(err, domain.ErrPermissionDenied):
		status, msgKey = http.StatusForbidden, apierrors.MsgPermissionDenied
	case errors.Is(err, domain.ErrUnauthenticated):
		status, msgKey = http.StatusUnauthorized, apierrors.MsgUnauthenticated
	case errors.Is(err, domain.ErrUserDisabled):
		status, msgKey = http.StatusForbidden, apierrors.MsgUserDisabled
	case errors.Is(err, domain.ErrUsernameTaken):
		status, msgKey = http.StatusConflict, apierrors.MsgUsernameTaken
	case errors.Is(err, domain.ErrEmailTaken):
		status, msgKey = http.StatusConflict, apierrors.MsgEmailTaken
	case errors.Is(err, domain.ErrOwnerSelfUpdate):
		status, msgKey = http.StatusConflict, apierrors.MsgOwnerSelfUpdate
	case errors.Is(err, domain.ErrEmptyComment):
		status, msgKey = http.StatusBadRequest, apierrors.MsgEmptyComment
	case errors.Is(err, domain.ErrEmptyReorderList):
		status, msgKey = http.StatusBadRequest, apierrors.MsgEmptyReorder
	case errors.Is(err, domain.ErrReorderScope):
		status, msgKey = http.StatusBadRequest, apierrors.MsgReorderScope
	case errors.Is(err, domain.ErrCrossProjectMove):
		status, msgKey = http.StatusBadRequest, apierrors.MsgCrossProjectMove
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
	)
}

// pathID parses a positive numeric path parameter; it writes the 400 response
// itself and returns false on failure.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		lang := middleware.GetLang(c)
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
		)
		return 0, false
	}
	return id, true
}
