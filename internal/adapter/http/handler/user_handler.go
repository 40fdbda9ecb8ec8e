package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	. "userapp/internal/adapter/http/helper"
	. "userapp/internal/adapter/http/validation"
	"userapp/internal/core/domain"
	"userapp/internal/core/model/request"
	"userapp/internal/core/model/response"
	"userapp/internal/core/port"
)

const userIndex = `userapi
GET    /users
GET    /user/:id
POST   /create
PUT    /update/:id
PUT    /delete/:id
DELETE /delete/physics/:id
GET    /alive
`

type UserHandler struct {
	svc    port.UserService
	logger *otelzap.Logger
}

func NewUserHandler(svc port.UserService, logger *otelzap.Logger) *UserHandler {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}

	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *UserHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, userIndex)
}

func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.svc.FindAll(c.Request.Context())

	if err != nil {
		SendStoreError(c, err)
		return
	}

	SendList(c, response.NewUserResponses(users))
}

func (h *UserHandler) FindByID(c *gin.Context) {
	id, ok := userID(c)

	if !ok {
		return
	}

	user, err := h.svc.FindByID(c.Request.Context(), id)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) Create(c *gin.Context) {
	var params request.UserRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request body")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), params)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.CreatedResponse{ID: id})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)

	if !ok {
		return
	}

	var params request.UpdateRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		SendBadRequestError(c, "request", "Invalid request body")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, params)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	if !updated {
		sendUserNotFound(c, id)
		return
	}

	SendSuccess(c, http.StatusOK, response.UpdatedResponse{Updated: true})
}

func (h *UserHandler) SoftDelete(c *gin.Context) {
	id, ok := userID(c)

	if !ok {
		return
	}

	deleted, err := h.svc.SoftDelete(c.Request.Context(), id)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	if !deleted {
		sendUserNotFound(c, id)
		return
	}

	SendSuccess(c, http.StatusOK, response.DeletedResponse{Deleted: true})
}

func (h *UserHandler) HardDelete(c *gin.Context) {
	id, ok := userID(c)

	if !ok {
		return
	}

	rows, err := h.svc.HardDelete(c.Request.Context(), id)

	if err != nil {
		SendStoreError(c, err)
		return
	}

	if rows == 0 {
		sendUserNotFound(c, id)
		return
	}

	SendSuccess(c, http.StatusOK, response.RemovedResponse{Rows: rows}, "user removed")
}

// Alive answers NG both when the marker value does not come back and when
// the store cannot be reached.
func (h *UserHandler) Alive(c *gin.Context) {
	ctx := c.Request.Context()
	alive, err := h.svc.Alive(ctx)

	if err != nil {
		h.logger.Ctx(ctx).Error("alive check failed", zap.Error(err))
	}

	if err != nil || !alive {
		c.String(http.StatusRequestTimeout, "NG")
		return
	}

	c.String(http.StatusOK, "OK")
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil || id <= 0 {
		SendStoreError(c, domain.Invalid("id", "must be a positive integer"))
		return 0, false
	}

	return id, true
}

func sendUserNotFound(c *gin.Context, id int64) {
	SendNotFoundError(c, "user "+strconv.FormatInt(id, 10)+": record not found")
}
