// Package config はアプリケーション設定を管理します。
package config

import (
	"os"
	"strconv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// HTTPサーバーのポート
	Port string

	// ラベル文字色（ホストテーマに相当）
	FontColor string

	// ラベルフォントサイズ
	FontSize float64

	// ラベルのロケールタグ
	Locale string
}

// NewConfig は環境変数から設定を読み込み、Configインスタンスを生成します。
func NewConfig() *Config {
	// ポートの設定
	port := os.Getenv("SHIBAFU_SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// 文字色の設定
	fontColor := os.Getenv("SHIBAFU_FONT_COLOR")
	if fontColor == "" {
		fontColor = "#666"
	}

	// フォントサイズの設定
	fontSize := 14.0
	if v := os.Getenv("SHIBAFU_FONT_SIZE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			fontSize = parsed
		}
	}

	// ロケールの設定
	locale := os.Getenv("SHIBAFU_LOCALE")
	if locale == "" {
		locale = "en"
	}

	return &Config{
		Port:      port,
		FontColor: fontColor,
		FontSize:  fontSize,
		Locale:    locale,
	}
}
