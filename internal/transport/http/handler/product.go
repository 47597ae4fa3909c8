package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-shop-services/internal/domain"
	"go-shop-services/internal/service"
	resp "go-shop-services/internal/transport/http/response"
)

type ProductHandler struct {
	svc *service.CatalogService
}

func NewProductHandler(svc *service.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List GET /products?limit=&offset=&order=，返回裸 JSON 数组（缓存命中与否同形）
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), listParamsFromQuery(c))
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.Err(c, http.StatusNotFound, "product not found")
		return
	}
	v, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		resp.Err(c, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

type createProductIn struct {
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required"`
	CategoryID *uint    `json:"category_id" binding:"required"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in createProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	m := &domain.Product{Name: in.Name, Price: *in.Price, CategoryID: in.CategoryID}
	v, err := h.svc.Create(c.Request.Context(), m)
	if errors.Is(err, domain.ErrConflict) {
		resp.Err(c, http.StatusConflict, "product already exists")
		return
	}
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, v)
}

// Delete 幂等，删不存在的 id 也返回 200
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		resp.Err(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	resp.Message(c, "product deleted")
}

// Categories GET /categories 全量、id 升序、不走缓存
func (h *ProductHandler) Categories(c *gin.Context) {
	items, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		resp.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}
