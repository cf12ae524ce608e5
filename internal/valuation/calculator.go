// internal/valuation/calculator.go
package valuation

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Calculator is the external calculation collaborator for the stock branch.
// Implementations keep rounding rules centralized; callers must treat any
// error as "use the local formula".
type Calculator interface {
	Profit(sellingPrice, costPrice float64) (Valuation, error)
}

// HTTPCalculator talks to the central calculation service.
type HTTPCalculator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPCalculator(baseURL string) *HTTPCalculator {
	return &HTTPCalculator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type profitResponse struct {
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
	ProfitStatus  string  `json:"profit_status"`
}

func (c *HTTPCalculator) Profit(sellingPrice, costPrice float64) (Valuation, error) {
	q := url.Values{}
	q.Set("selling_price", strconv.FormatFloat(sellingPrice, 'f', 2, 64))
	q.Set("cost_price", strconv.FormatFloat(costPrice, 'f', 2, 64))

	resp, err := c.client.Get(c.baseURL + "/profit?" + q.Encode())
	if err != nil {
		logrus.WithError(err).Warn("Calculation service unreachable, using local formula")
		return Valuation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("calculation service returned status %d", resp.StatusCode)
		logrus.WithError(err).Warn("Calculation service error, using local formula")
		return Valuation{}, err
	}

	var body profitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Valuation{}, fmt.Errorf("failed to decode calculation response: %w", err)
	}

	return Valuation{
		Amount:  body.Profit,
		Percent: body.MarginPercent,
		Status:  Status(body.ProfitStatus),
	}, nil
}
