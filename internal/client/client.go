// Package client talks to the lanchonete REST API and unwraps its response
// envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/internal/domain/enum"
	"github.com/sangkips/lanchonete-pos/pkg/apperror"
	"github.com/sirupsen/logrus"
)

// IdempotencyKeyHeader carries the per-line checkout key.
const IdempotencyKeyHeader = "Idempotency-Key"

// Client is a REST client for the /api routes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// New creates a client for baseURL, e.g. http://localhost:5000/api. A nil
// httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

// SaleInput is the body of POST /vendas.
type SaleInput struct {
	OrderID       string           `json:"pedido_id,omitempty"`
	Tipo          enum.ProductType `json:"tipo"`
	Item          string           `json:"item"`
	Quantidade    int              `json:"quantidade"`
	ValorUnitario float64          `json:"valor_unitario"`
	ValorTotal    float64          `json:"valor_total"`
	Data          string           `json:"data"`
}

// ExpenseInput is the body of POST /despesas.
type ExpenseInput struct {
	Descricao string  `json:"descricao"`
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
	Data      string  `json:"data"`
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Errors  []apperror.FieldError `json:"errors"`
}

type created struct {
	ID uint `json:"id"`
}

// Menu fetches GET /cardapio.
func (c *Client) Menu(ctx context.Context) (*entity.Menu, error) {
	var menu entity.Menu
	if err := c.do(ctx, http.MethodGet, "/cardapio", nil, nil, nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// ExpenseCategories fetches GET /categorias-despesa.
func (c *Client) ExpenseCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, http.MethodGet, "/categorias-despesa", nil, nil, nil, &categories)
	return categories, err
}

// ListSales lists sales newest first. An empty date lists every day.
func (c *Client) ListSales(ctx context.Context, date string) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := c.do(ctx, http.MethodGet, "/vendas", dateQuery("data", date), nil, nil, &sales)
	return sales, err
}

// CreateSale records one line. A non-empty idempotencyKey makes a retry of
// the same line replay the stored response.
func (c *Client) CreateSale(ctx context.Context, in SaleInput, idempotencyKey string) (uint, error) {
	var headers http.Header
	if idempotencyKey != "" {
		headers = http.Header{IdempotencyKeyHeader: []string{idempotencyKey}}
	}
	var out created
	err := c.do(ctx, http.MethodPost, "/vendas", nil, in, headers, &out)
	return out.ID, err
}

// UpdateSaleQuantity sends PUT /vendas/{id}.
func (c *Client) UpdateSaleQuantity(ctx context.Context, id uint, quantity int) error {
	body := map[string]int{"quantidade": quantity}
	return c.do(ctx, http.MethodPut, "/vendas/"+strconv.FormatUint(uint64(id), 10), nil, body, nil, nil)
}

// DeleteSale sends DELETE /vendas/{id}.
func (c *Client) DeleteSale(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/vendas/"+strconv.FormatUint(uint64(id), 10), nil, nil, nil, nil)
}

// ListExpenses fetches GET /despesas, filtered by date when not empty.
func (c *Client) ListExpenses(ctx context.Context, date string) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := c.do(ctx, http.MethodGet, "/despesas", dateQuery("data", date), nil, nil, &expenses)
	return expenses, err
}

// CreateExpense posts one expense and returns its id.
func (c *Client) CreateExpense(ctx context.Context, in ExpenseInput) (uint, error) {
	var out created
	err := c.do(ctx, http.MethodPost, "/despesas", nil, in, nil, &out)
	return out.ID, err
}

// DeleteExpense sends DELETE /despesas/{id}.
func (c *Client) DeleteExpense(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/despesas/"+strconv.FormatUint(uint64(id), 10), nil, nil, nil, nil)
}

// DailyReport fetches GET /relatorio/diario.
func (c *Client) DailyReport(ctx context.Context, date string) (*entity.Report, error) {
	var report entity.Report
	if err := c.do(ctx, http.MethodGet, "/relatorio/diario", dateQuery("data", date), nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// PeriodReport fetches GET /relatorio/periodo.
func (c *Client) PeriodReport(ctx context.Context, start, end string) (*entity.Report, error) {
	q := url.Values{}
	q.Set("data_inicio", start)
	q.Set("data_fim", end)

	var report entity.Report
	if err := c.do(ctx, http.MethodGet, "/relatorio/periodo", q, nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// PrintReceipt asks the server to print the receipt of an order. A non-empty
// warning means the receipt was built but the printer failed.
func (c *Client) PrintReceipt(ctx context.Context, orderKey string) (string, error) {
	var out struct {
		Warning string `json:"warning"`
	}
	err := c.do(ctx, http.MethodPost, "/pedidos/"+url.PathEscape(orderKey)+"/recibo", nil, nil, nil, &out)
	return out.Warning, err
}

func dateQuery(key, date string) url.Values {
	if date == "" {
		return nil
	}
	return url.Values{key: []string{date}}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, headers http.Header, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Debug("Request failed")
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Debug("Reading response failed")
		return &TransportError{Method: method, Path: path, Err: err}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Method: method, Path: path, Status: resp.StatusCode, Message: env.Message, Fields: env.Errors}
		if decodeErr != nil {
			statusErr.Message = http.StatusText(resp.StatusCode)
		}
		return statusErr
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, decodeErr)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
