// Package http 订单 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	"github.com/wyfcoding/storefront/internal/order/application"
	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// OrderHandler HTTP 处理器
// 负责处理与订单相关的 HTTP 请求
type OrderHandler struct {
	cmd   *application.OrderCommandService
	query *application.OrderQueryService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(cmd *application.OrderCommandService, query *application.OrderQueryService) *OrderHandler {
	return &OrderHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由，authed 分组需已挂载认证中间件，
// admin 分组需已挂载管理员鉴权中间件
func (h *OrderHandler) RegisterRoutes(authed, admin *gin.RouterGroup) {
	orders := authed.Group("/orders")
	{
		orders.POST("", h.CreateOrder) // 从购物车创建订单
		orders.GET("", h.ListOrders)   // 分页查询订单
	}

	adminOrders := admin.Group("/orders")
	{
		adminOrders.PATCH("", h.UpdateStatus) // 更新订单状态
	}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
}

// CreateOrder 从购物车创建订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	order, err := h.cmd.CreateOrder(c.Request.Context(), application.CreateOrderCommand{
		UserID: principal.UserID,
		Email:  principal.Email,
		Shipping: domain.ShippingDetails{
			FullName:   req.FullName,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.Country,
			Phone:      req.Phone,
		},
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, order)
}

// ListOrders 分页查询订单（普通用户仅见自己的）
func (h *OrderHandler) ListOrders(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var query struct {
		Page  int `form:"page,default=1"`
		Limit int `form:"limit,default=20"`
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

	orders, total, err := h.query.ListOrders(c.Request.Context(), principal, query.Page, query.Limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.SuccessWithPagination(c, orders, response.Pagination{
		Page:  query.Page,
		Limit: query.Limit,
		Total: total,
	})
}

// UpdateStatusRequest 更新订单状态请求
type UpdateStatusRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// UpdateStatus 更新订单状态（仅管理员）
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	order, err := h.cmd.UpdateStatus(c.Request.Context(), application.UpdateStatusCommand{
		OrderID: req.OrderID,
		Status:  req.Status,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, order)
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, cartdomain.ErrCartNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrMissingShippingDetails):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "Order request failed", "error", err)
		response.InternalError(c)
	}
}
