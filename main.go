// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stsysd/shibafu/api"
	"github.com/stsysd/shibafu/config"
	"github.com/stsysd/shibafu/heatmap"
	"github.com/stsysd/shibafu/sample"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shibafu",
		Short: "GitHub-style calendar activity heatmap renderer",
	}
	rootCmd.AddCommand(newServeCmd(), newRenderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newServeCmd はプレビューサーバーを起動するコマンドを生成します。
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// .envがあれば読み込む（無くてもエラーにしない）
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				log.Printf("Skipping .env: %v", err)
			}

			// 設定の読み込み
			cfg := config.NewConfig()

			// サーバーインスタンスの作成と起動
			server := api.NewServer(cfg)
			return server.Run(":" + cfg.Port)
		},
	}
}

// newRenderCmd はサンプルデータのSVGを標準出力へ書き出すコマンドを生成します。
func newRenderCmd() *cobra.Command {
	var (
		width    float64
		fontSize float64
		locale   string
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a sample heatmap SVG to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := sample.YearData(time.Now(), seed)

			doc, err := heatmap.Render(data, &heatmap.Options{
				Width:    width,
				FontSize: fontSize,
				Locale:   locale,
			})
			if err != nil {
				return err
			}

			fmt.Println(doc.SVG)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 700, "canvas width in pixels")
	cmd.Flags().Float64Var(&fontSize, "font-size", 14, "label font size in pixels")
	cmd.Flags().StringVar(&locale, "locale", "en", "label locale tag")
	cmd.Flags().Int64Var(&seed, "seed", 1, "sample data seed")

	return cmd
}
