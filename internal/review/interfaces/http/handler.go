// Package http 评论 HTTP 处理器
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authmw "github.com/wyfcoding/storefront/internal/auth/interfaces/middleware"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/review/application"
	"github.com/wyfcoding/storefront/internal/review/domain"
	"github.com/wyfcoding/storefront/pkg/logger"
	"github.com/wyfcoding/storefront/pkg/response"
)

// ReviewHandler HTTP 处理器
type ReviewHandler struct {
	svc *application.ReviewApplicationService
}

// NewReviewHandler 创建 HTTP 处理器实例
func NewReviewHandler(svc *application.ReviewApplicationService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// RegisterRoutes 注册路由；列表公开，发表需认证
func (h *ReviewHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/reviews/:productId", h.ListReviews) // 商品评论列表
	authed.POST("/reviews", h.AddReview)             // 发表评论
}

// AddReviewRequest 发表评论请求
type AddReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
}

// AddReview 发表评论
func (h *ReviewHandler) AddReview(c *gin.Context) {
	principal, _ := authmw.GetPrincipal(c)

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	review, err := h.svc.AddReview(c.Request.Context(), application.AddReviewCommand{
		ProductID: req.ProductID,
		UserID:    principal.UserID,
		UserName:  principal.Email,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, review)
}

// ListReviews 商品评论列表（公开）
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.svc.ListReviews(c.Request.Context(), c.Param("productId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, reviews)
}

// writeError 将领域错误映射为 HTTP 状态码
func (h *ReviewHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidReviewText),
		errors.Is(err, domain.ErrDuplicateReview):
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
	default:
		logger.Error(c.Request.Context(), "Review request failed", "error", err)
		response.InternalError(c)
	}
}
