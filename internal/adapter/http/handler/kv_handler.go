package handler

import (
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	. "userapp/internal/adapter/http/helper"
	. "userapp/internal/adapter/http/validation"
	"userapp/internal/core/model/request"
	"userapp/internal/core/port"
)

const htmlContentType = "text/html; charset=utf-8"

type KVHandler struct {
	svc    port.KVService
	logger *otelzap.Logger
}

func NewKVHandler(svc port.KVService, logger *otelzap.Logger) *KVHandler {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}

	return &KVHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *KVHandler) Get(c *gin.Context) {
	id, ok := bindKey(c)

	if !ok {
		return
	}

	text, given := c.GetQuery("text")

	if !given {
		text = "null"
	}

	value, found, err := h.svc.Get(c.Request.Context(), id)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	if !found {
		c.Data(http.StatusNotFound, htmlContentType, []byte("<p>not id:"+html.EscapeString(id)+"</p>"))
		return
	}

	page := "<p>" + html.EscapeString(value) + "<br><b>" + html.EscapeString(text) + "</b></p>"
	c.Data(http.StatusOK, htmlContentType, []byte(page))
}

func (h *KVHandler) Set(c *gin.Context) {
	id, ok := bindKey(c)

	if !ok {
		return
	}

	if err := h.svc.Set(c.Request.Context(), id); err != nil {
		SendStoreError(c, err)
		return
	}

	c.String(http.StatusOK, "OK")
}

func (h *KVHandler) Watch(c *gin.Context) {
	ctx := c.Request.Context()
	healthy, err := h.svc.Watch(ctx)

	if err != nil {
		h.logger.Ctx(ctx).Error("kv ping failed", zap.Error(err))
	}

	if err != nil || !healthy {
		c.String(http.StatusRequestTimeout, "NG")
		return
	}

	c.String(http.StatusOK, "OK")
}

func bindKey(c *gin.Context) (string, bool) {
	var params request.KVRequest

	if err := c.ShouldBindQuery(&params); err != nil {
		SendBadRequestError(c, "id", "Invalid query parameters")
		return "", false
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return "", false
	}

	return params.ID, true
}
