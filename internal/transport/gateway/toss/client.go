package toss

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL       = "https://api.tosspayments.com"
	RoutePaymentsConfirm = "/v1/payments/confirm"
)

type confirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPClient подтверждает платежи в Toss Payments.
type HTTPClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func New(baseURL, secretKey string) HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return HTTPClient{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: http.DefaultClient,
	}
}

// Confirm подтверждает платеж paymentKey на сумму amount.
// Ответ 5xx и сетевые ошибки оборачивают domain.ErrGatewayUnavailable, ответ 4xx возвращает *RejectedError.
//
//nolint:nonamedreturns
func (c HTTPClient) Confirm(
	ctx context.Context,
	paymentKey string,
	orderCode string,
	amount decimal.Decimal,
) (err error) {
	payload, jsonErr := json.Marshal(confirmRequest{
		PaymentKey: paymentKey,
		OrderID:    orderCode,
		Amount:     amount.IntPart(),
	})
	if jsonErr != nil {
		return fmt.Errorf("marshal request: %s", jsonErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+RoutePaymentsConfirm,
		bytes.NewReader(payload),
	)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.secretKey+":")))

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		if errors.Is(doErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, context.DeadlineExceeded)
		}
		return fmt.Errorf("%w: do request: %s", domain.ErrGatewayUnavailable, doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, NewStatusCodeError(resp.StatusCode))
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	var errResp errorResponse
	// Тело ответа может быть не JSON, тогда возвращаем отказ без кода.
	_ = json.Unmarshal(body, &errResp)
	return NewRejectedError(resp.StatusCode, errResp.Code, errResp.Message)
}
