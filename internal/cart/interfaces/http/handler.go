// Package http 购物车 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	"github.com/wyfcoding/storefront/internal/cart/application"
	"github.com/wyfcoding/storefront/internal/cart/domain"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// CartHandler HTTP 处理器
type CartHandler struct {
	svc *application.CartApplicationService
}

// NewCartHandler 创建 HTTP 处理器实例
func NewCartHandler(svc *application.CartApplicationService) *CartHandler {
	return &CartHandler{svc: svc}
}

// RegisterRoutes 注册路由，分组需已挂载认证中间件
func (h *CartHandler) RegisterRoutes(authed *gin.RouterGroup) {
	cart := authed.Group("/cart")
	{
		cart.POST("", h.AddItem)       // 加购/累加
		cart.GET("", h.GetCart)        // 查询购物车
		cart.DELETE("", h.RemoveItem)  // 移除商品行
		cart.PUT("", h.UpdateQuantity) // 覆写数量
	}
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// AddItem 加入商品
func (h *CartHandler) AddItem(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.svc.AddItem(c.Request.Context(), principal.UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// GetCart 查询购物车
func (h *CartHandler) GetCart(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	view, err := h.svc.GetCart(c.Request.Context(), principal.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveItemRequest 移除商品行请求
type RemoveItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// RemoveItem 移除商品行
func (h *CartHandler) RemoveItem(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.svc.RemoveItem(c.Request.Context(), principal.UserID, req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// UpdateQuantityRequest 覆写数量请求
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantity 覆写数量
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cart, err := h.svc.UpdateQuantity(c.Request.Context(), principal.UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, cart)
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *CartHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, domain.ErrCartNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidQuantity):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "Cart request failed", "error", err)
		response.InternalError(c)
	}
}
