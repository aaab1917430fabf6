// Package api はshibafuのプレビューサーバー実装を提供します。
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/stsysd/shibafu/config"
	"github.com/stsysd/shibafu/heatmap"
	"github.com/stsysd/shibafu/model"
	"github.com/stsysd/shibafu/sample"
)

// Server はプレビューサーバーの構造体です。状態は一切保持しません。
type Server struct {
	router *http.ServeMux
	config *config.Config
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// NewServer は新しいプレビューサーバーインスタンスを生成します。
func NewServer(config *config.Config) *Server {
	s := &Server{
		router: http.NewServeMux(),
		config: config,
	}
	s.routes()
	return s
}

// routes はエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// Graph endpoints - support both with and without .svg extension
	s.router.HandleFunc("GET /graph.svg", s.handleGetGraph)
	s.router.HandleFunc("GET /graph", s.handleGetGraph)

	// Stateless render endpoint
	s.router.HandleFunc("POST /render", s.handleRender)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{"status": "ok"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// GetGraphParams represents parameters for the sample graph endpoint.
type GetGraphParams struct {
	Width     *model.Width
	FontSize  *model.FontSize
	DateRange *model.DateRange
	Seed      *model.Seed
	Locale    string
}

// NewGetGraphParams creates parameters for graph generation from HTTP request.
func NewGetGraphParams(r *http.Request, cfg *config.Config) (*GetGraphParams, error) {
	query := r.URL.Query()

	widthStr := query.Get("width")
	if widthStr == "" {
		widthStr = "700"
	}
	width, err := model.NewWidth(widthStr)
	if err != nil {
		return nil, err
	}

	fontSize, err := model.NewFontSize(query.Get("font_size"))
	if err != nil {
		return nil, err
	}

	dateRange, err := model.NewDateRange(query.Get("from"), query.Get("to"))
	if err != nil {
		return nil, err
	}

	seed, err := model.NewSeed(query.Get("seed"))
	if err != nil {
		return nil, err
	}

	locale := query.Get("locale")
	if locale == "" {
		locale = cfg.Locale
	}

	return &GetGraphParams{
		Width:     width,
		FontSize:  fontSize,
		DateRange: dateRange,
		Seed:      seed,
		Locale:    locale,
	}, nil
}

// handleGetGraph はサンプルデータのヒートマップを生成・返却するハンドラーです。
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewGetGraphParams(r, s.config)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// プレースホルダーデータの生成
	data := sample.RangeData(params.DateRange.From(), params.DateRange.To(), params.Seed.Int64())

	// SVGの生成
	doc, err := heatmap.Render(data, &heatmap.Options{
		Width:     params.Width.Float(),
		FontColor: s.config.FontColor,
		FontSize:  params.FontSize.Float(),
		Locale:    params.Locale,
	})
	if err != nil {
		log.Printf("Error rendering graph: %v", err)
		writeJSONError(w, "Failed to render graph", http.StatusInternalServerError)
		return
	}

	// レスポンスの返却
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(doc.SVG))
}

// RenderParams represents parameters for the stateless render endpoint.
type RenderParams struct {
	Data      []heatmap.DataPoint
	Width     float64
	FontColor string
	FontSize  float64
	Locale    string
}

// NewRenderParams creates parameters for rendering from HTTP request.
func NewRenderParams(r *http.Request, cfg *config.Config) (*RenderParams, error) {
	// Parse request body
	var requestBody struct {
		DataPoints []struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"data_points"`
		Width     float64 `json:"width"`
		FontColor string  `json:"font_color"`
		FontSize  float64 `json:"font_size"`
		Locale    string  `json:"locale"`
	}

	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}

	data := make([]heatmap.DataPoint, 0, len(requestBody.DataPoints))
	for _, p := range requestBody.DataPoints {
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", p.Date)
		}
		if p.Count < 0 {
			return nil, model.NewValidationError(fmt.Sprintf("count for %s must be non-negative", p.Date))
		}
		data = append(data, heatmap.DataPoint{Date: date, Count: p.Count})
	}

	fontColor := requestBody.FontColor
	if fontColor == "" {
		fontColor = cfg.FontColor
	}
	fontSize := requestBody.FontSize
	if fontSize == 0 {
		fontSize = cfg.FontSize
	}
	locale := requestBody.Locale
	if locale == "" {
		locale = cfg.Locale
	}

	return &RenderParams{
		Data:      data,
		Width:     requestBody.Width,
		FontColor: fontColor,
		FontSize:  fontSize,
		Locale:    locale,
	}, nil
}

// handleRender は渡されたデータポイント列をそのままSVGに変換するハンドラーです。
// 何も保存しません。
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewRenderParams(r, s.config)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// SVGの生成
	doc, err := heatmap.Render(params.Data, &heatmap.Options{
		Width:     params.Width,
		FontColor: params.FontColor,
		FontSize:  params.FontSize,
		Locale:    params.Locale,
	})
	if err != nil {
		// 入力不備は400、それ以外は500を返す
		if errors.Is(err, model.ErrEmptyData) || errors.Is(err, model.ErrInvalidWidth) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
		} else {
			log.Printf("Error rendering: %v", err)
			writeJSONError(w, "Failed to render", http.StatusInternalServerError)
		}
		return
	}

	// レスポンスの返却
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(doc.SVG))
}

// Run はサーバーを指定されたアドレスで起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s)
}
