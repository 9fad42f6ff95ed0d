package payload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/winery-map/internal/config"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/domain/repository"
	"go.uber.org/zap"
)

// maxErrorBody ограничивает тело ответа, попадающее в лог и ошибку
const maxErrorBody = 512

type client struct {
	httpClient *http.Client
	recordsURL string
	logger     *zap.Logger
}

// NewClient создает клиент REST API хранилища записей (Payload CMS)
func NewClient(cfg *config.Config, logger *zap.Logger) repository.RecordRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RecordStore.RequestTimeout,
		},
		recordsURL: cfg.GetRecordsURL(),
		logger:     logger,
	}
}

// FetchRecords запрашивает GET <base>/api/<collection>?limit=N и возвращает документы из docs
func (c *client) FetchRecords(ctx context.Context, limit int) ([]domain.RawRecord, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	reqURL := c.recordsURL + "?" + query.Encode()

	c.logger.Debug("Calling record store",
		zap.String("url", reqURL),
		zap.Int("limit", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := body
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		c.logger.Error("Record store returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(snippet)))
		return nil, fmt.Errorf("record store error: status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		c.logger.Error("Record store returned malformed JSON")
		return nil, fmt.Errorf("failed to decode response: malformed JSON")
	}

	records, err := decodeDocs(body)
	if err != nil {
		c.logger.Error("Failed to decode docs", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Record store call successful", zap.Int("docs", len(records)))

	return records, nil
}

// decodeDocs читает массив docs; отсутствие docs (или не-массив) - ноль записей
func decodeDocs(body []byte) ([]domain.RawRecord, error) {
	docs := gjson.GetBytes(body, "docs")
	if !docs.IsArray() {
		return nil, nil
	}

	items := docs.Array()
	records := make([]domain.RawRecord, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			continue
		}

		var rec domain.RawRecord
		if err := json.Unmarshal([]byte(item.Raw), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode doc %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}
