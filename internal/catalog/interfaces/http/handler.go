// Package http 商品目录 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/storefront/internal/catalog/application"
	"github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// CatalogHandler HTTP 处理器
// 负责处理商品浏览与后台商品管理请求
type CatalogHandler struct {
	cmd   *application.CatalogCommandService
	query *application.CatalogQueryService
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(cmd *application.CatalogCommandService, query *application.CatalogQueryService) *CatalogHandler {
	return &CatalogHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由，admin 分组需已挂载管理员鉴权中间件
func (h *CatalogHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	products := public.Group("/products")
	{
		products.GET("", h.ListProducts)   // 商品列表
		products.GET("/:id", h.GetProduct) // 商品详情
	}

	adminProducts := admin.Group("/products")
	{
		adminProducts.POST("", h.CreateProduct)       // 创建商品
		adminProducts.PUT("/:id", h.UpdateProduct)    // 更新商品
		adminProducts.DELETE("/:id", h.DeleteProduct) // 删除商品
	}
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Title         string   `json:"title" binding:"required"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	SKU           string   `json:"sku" binding:"required"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Quantity      int      `json:"quantity"`
	Availability  bool     `json:"availability"`
	Images        []string `json:"images"`
}

// CreateProduct 创建商品
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	product, err := h.cmd.CreateProduct(c.Request.Context(), application.CreateProductCommand{
		Title:         req.Title,
		Brand:         req.Brand,
		Category:      req.Category,
		SKU:           req.SKU,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Quantity:      req.Quantity,
		Availability:  req.Availability,
		Images:        req.Images,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, product)
}

// UpdateProductRequest 更新商品请求
type UpdateProductRequest struct {
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Quantity      *int     `json:"quantity"`
	Availability  *bool    `json:"availability"`
	Images        []string `json:"images"`
}

// UpdateProduct 更新商品
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	product, err := h.cmd.UpdateProduct(c.Request.Context(), application.UpdateProductCommand{
		ProductID:     c.Param("id"),
		Title:         req.Title,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Quantity:      req.Quantity,
		Availability:  req.Availability,
		Images:        req.Images,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.cmd.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetProduct 商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.query.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, product)
}

// ListProducts 商品列表
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query struct {
		Category string `form:"category"`
		Brand    string `form:"brand"`
		Page     int    `form:"page,default=1"`
		Limit    int    `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	// 在此收敛分页参数，使响应回显的 page/limit 与实际生效值一致
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}

	products, total, err := h.query.ListProducts(c.Request.Context(), domain.ProductFilter{
		Category: query.Category,
		Brand:    query.Brand,
		Page:     query.Page,
		Limit:    query.Limit,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithPagination(c, products, response.Pagination{
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	})
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *CatalogHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrDuplicateSKU),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrSKURequired),
		errors.Is(err, domain.ErrInvalidPrice):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "Catalog request failed", "error", err)
		response.InternalError(c)
	}
}
