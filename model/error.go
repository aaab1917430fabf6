// Package model は、描画パラメータの値オブジェクトとエラー定義を提供します。
package model

import "errors"

// センチネルエラー - 描画を中断すべき入力
var (
	ErrEmptyData        = errors.New("empty data")
	ErrInvalidWidth     = errors.New("invalid width")
	ErrSurfaceDestroyed = errors.New("surface destroyed")
)

// ValidationError はバリデーションエラーを表す型
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
