package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shop-services/internal/domain"
	"go-shop-services/internal/service"
	resp "go-shop-services/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.DirectoryService
}

func NewUserHandler(svc *service.DirectoryService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), listParamsFromQuery(c))
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.Err(c, http.StatusNotFound, "user not found")
		return
	}
	v, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Err(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

type createUserIn struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	RoleID *uint  `json:"role_id"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var in createUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	m := &domain.User{Name: in.Name, Email: in.Email, RoleID: in.RoleID}
	v, err := h.svc.Create(c.Request.Context(), m)
	if errors.Is(err, domain.ErrConflict) {
		resp.Err(c, http.StatusConflict, "email already exists")
		return
	}
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, v)
}

type updateUserIn struct {
	Name   *string `json:"name" binding:"omitempty,max=64"`
	Email  *string `json:"email" binding:"omitempty,email"`
	RoleID *uint   `json:"role_id"`
}

// Update PUT /users/:id 部分更新：只落传了的字段
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.Err(c, http.StatusNotFound, "user not found")
		return
	}
	var in updateUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.RoleID != nil {
		fields["role_id"] = *in.RoleID
	}
	if len(fields) == 0 {
		resp.Err(c, http.StatusBadRequest, "no data to update")
		return
	}
	v, err := h.svc.Update(c.Request.Context(), id, fields)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Err(c, http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrConflict):
		resp.Err(c, http.StatusConflict, "email already exists")
	case err != nil:
		resp.Err(c, http.StatusInternalServerError, err.Error())
	default:
		c.JSON(http.StatusOK, v)
	}
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.Err(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Message(c, "user deleted")
}

func (h *UserHandler) Roles(c *gin.Context) {
	items, err := h.svc.Roles(c.Request.Context())
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}
