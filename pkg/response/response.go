// Package response 提供统一的 HTTP JSON 响应封装
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应结构
type Body struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// PagedBody 带分页信息的响应结构
type PagedBody struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success 返回 200 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Code: 0, Message: "ok", Data: data})
}

// Created 返回 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Body{Code: 0, Message: "ok", Data: data})
}

// SuccessWithPagination 返回带分页信息的成功响应
func SuccessWithPagination(c *gin.Context, data interface{}, p Pagination) {
	if p.Limit > 0 {
		p.TotalPages = (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	c.JSON(http.StatusOK, PagedBody{Code: 0, Message: "ok", Data: data, Pagination: p})
}

// ErrorWithStatus 返回指定状态码的错误响应
func ErrorWithStatus(c *gin.Context, status int, message string, code string) {
	body := gin.H{"code": status, "message": message}
	if code != "" {
		body["error_code"] = code
	}
	c.JSON(status, body)
}

// InternalError 返回 500，对客户端隐藏具体原因
func InternalError(c *gin.Context) {
	ErrorWithStatus(c, http.StatusInternalServerError, "internal server error", "")
}
