// Package http 心愿单 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/wishlist/application"
	"github.com/wyfcoding/storefront/internal/wishlist/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// WishlistHandler HTTP 处理器
type WishlistHandler struct {
	svc *application.WishlistApplicationService
}

// NewWishlistHandler 创建 HTTP 处理器实例
func NewWishlistHandler(svc *application.WishlistApplicationService) *WishlistHandler {
	return &WishlistHandler{svc: svc}
}

// RegisterRoutes 注册路由，分组需已挂载认证中间件
func (h *WishlistHandler) RegisterRoutes(authed *gin.RouterGroup) {
	wishlist := authed.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist) // 查询心愿单
		wishlist.POST("", h.Toggle)     // 添加/移除商品
	}
}

// GetWishlist 查询心愿单
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	view, err := h.svc.GetWishlist(c.Request.Context(), principal.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, view)
}

// ToggleRequest 添加/移除商品请求
type ToggleRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

// Toggle 添加或移除商品
func (h *WishlistHandler) Toggle(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	view, err := h.svc.Toggle(c.Request.Context(), principal.UserID, req.ProductID, req.Action)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, view)
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *WishlistHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidAction):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "Wishlist request failed", "error", err)
		response.InternalError(c)
	}
}
