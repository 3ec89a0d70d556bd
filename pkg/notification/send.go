package notification

import (
	"time"

	"github.com/rorygeddes/Luni.ca/pkg/httpclient"
)

const (
	deliveryTimeout = 10 * time.Second
	userAgent       = "Luni-Survey-App/1.0"
)

// DeliveryResult captures the outcome of a webhook delivery. Deliver never
// fails past its own boundary; callers log the result and move on.
type DeliveryResult struct {
	OK         bool
	StatusCode int
	Body       string
	Err        error
}

type Service struct {
	client httpclient.ClientConfig
}

func NewService(webhookURL string) *Service {
	return &Service{
		client: httpclient.ClientConfig{
			RootURL:   webhookURL,
			UserAgent: userAgent,
			Timeout:   deliveryTimeout,
		},
	}
}

func (s *Service) Deliver(payload Payload) DeliveryResult {
	status, body, err := s.client.RunHTTPcall("", payload)
	if err != nil {
		return DeliveryResult{OK: false, StatusCode: status, Err: err}
	}

	return DeliveryResult{
		OK:         status >= 200 && status < 300,
		StatusCode: status,
		Body:       string(body),
	}
}
