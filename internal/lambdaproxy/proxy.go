// Package lambdaproxy runs an http.Handler behind an API Gateway HTTP API
// (payload format 2.0) Lambda integration.
package lambdaproxy

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/ankitraj/portfolio/pkg/logging"
)

const requestIDHeader = "X-Request-ID"

// Proxy adapts API Gateway v2 events to an http.Handler.
type Proxy struct {
	adapter *httpadapter.HandlerAdapterV2
	logger  *logging.Logger
}

// New wraps handler.
func New(handler http.Handler, logger *logging.Logger) *Proxy {
	if logger == nil {
		logger = logging.Default()
	}
	return &Proxy{adapter: httpadapter.NewV2(handler), logger: logger}
}

// Handle serves one event. Events the adapter cannot convert produce a 400
// response rather than a Lambda error so API Gateway returns something
// sensible.
func (p *Proxy) Handle(ctx context.Context, evt events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	evt.Headers = withRequestID(evt)

	resp, err := p.adapter.ProxyWithContext(ctx, evt)
	if err != nil {
		p.logger.Warn("api gateway event not served",
			"error", err,
			"method", evt.RequestContext.HTTP.Method,
			"path", evt.RawPath,
			"request_id", evt.RequestContext.RequestID,
		)
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
			Body:       "invalid request",
		}, nil
	}
	return resp, nil
}

// withRequestID copies the event headers, adding the API Gateway request id
// as X-Request-ID unless the caller already sent one.
func withRequestID(evt events.APIGatewayV2HTTPRequest) map[string]string {
	headers := make(map[string]string, len(evt.Headers)+1)
	present := false
	for k, v := range evt.Headers {
		headers[k] = v
		if strings.EqualFold(k, requestIDHeader) && strings.TrimSpace(v) != "" {
			present = true
		}
	}
	if id := strings.TrimSpace(evt.RequestContext.RequestID); id != "" && !present {
		headers[strings.ToLower(requestIDHeader)] = id
	}
	return headers
}
