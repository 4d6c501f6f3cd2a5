package presenter

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response は統一レスポンス構造を定義します
type Response struct {
	Data any `json:"data"`
	Meta any `json:"meta"`
}

// Meta はメタ情報を定義します
type Meta struct {
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

// OK は成功レスポンスを返します
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: nil,
	})
}

// Created は作成成功レスポンスを返します
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, Response{
		Data: data,
		Meta: nil,
	})
}

// NoContent はコンテンツなしレスポンスを返します
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// List はリスト取得レスポンスを返します
func List(c echo.Context, data any, total int) error {
	return c.JSON(http.StatusOK, Response{
		Data: data,
		Meta: Meta{Total: &total},
	})
}
