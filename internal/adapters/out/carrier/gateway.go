// Package carrier implements the outbound carrier gateway over the carrier
// bridge's internal HTTP API. The bridge hides the individual carrier wire
// formats; this adapter only speaks its JSON contract.
package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// HTTPCarrierGateway implements CarrierGateway against the carrier bridge.
type HTTPCarrierGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCarrierGateway creates a gateway for the bridge at baseURL.
func NewHTTPCarrierGateway(baseURL string) *HTTPCarrierGateway {
	return &HTTPCarrierGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type labelRequestBody struct {
	OrderID      string `json:"order_id"`
	MethodID     string `json:"method_id"`
	PackageCount int    `json:"package_count"`
	TotalWeight  string `json:"total_weight"`
}

type labelResponseBody struct {
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url"`
}

// CreateLabel registers the consolidated shipment with the carrier bridge.
func (g *HTTPCarrierGateway) CreateLabel(
	ctx context.Context,
	request ports.LabelRequest,
) (*ports.ShippingLabel, error) {
	payload, err := json.Marshal(labelRequestBody{
		OrderID:      request.OrderID.String(),
		MethodID:     request.MethodID.String(),
		PackageCount: request.PackageCount,
		TotalWeight:  request.TotalWeight.String(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/labels", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("carrier label request failed: %s", resp.Status)
	}

	var body labelResponseBody
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	return &ports.ShippingLabel{
		TrackingNumber: body.TrackingNumber,
		LabelURL:       body.LabelURL,
	}, nil
}
