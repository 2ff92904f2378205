package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	mifosx "github.com/binaryking/mifosx-api"
)

// Header names required by the MifosX platform.
const (
	headerTenant        = "X-Mifos-Platform-TenantId"
	headerAuthorization = "Authorization"
)

// RESTSender is the production Sender. It issues one blocking HTTP request
// per Send call against the configured tenant, attaching the basic-auth
// key and the tenant header, and converts the outcome into the Fault
// taxonomy. It performs no retries and holds no mutable state.
type RESTSender struct {
	config mifosx.Config
}

var _ Sender = (*RESTSender)(nil)

// NewRESTSender creates a sender bound to the given configuration.
func NewRESTSender(config mifosx.Config) *RESTSender {
	return &RESTSender{config: config}
}

// Send implements Sender.
func (s *RESTSender) Send(ctx context.Context, req Request) (json.RawMessage, error) {
	httpReq, err := s.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := s.config.HTTPClient().Do(httpReq)
	if err != nil {
		return nil, NetworkFault(err)
	}
	defer resp.Body.Close()

	// A body read failure past the status line still identifies the
	// response; the fault keeps whatever was read.
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, HTTPFault(resp.StatusCode, body)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, ConversionFault(errInvalidJSON)
	}
	return json.RawMessage(body), nil
}

var errInvalidJSON = &jsonError{}

type jsonError struct{}

func (*jsonError) Error() string { return "response body is not valid JSON" }

func (s *RESTSender) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := s.config.BaseURL().JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var (
		payload     io.Reader
		contentType string
	)
	switch body := req.Body.(type) {
	case nil:
	case string:
		payload = strings.NewReader(body)
		contentType = "text/plain"
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, ConversionFault(err)
		}
		payload = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), payload)
	if err != nil {
		return nil, ConversionFault(err)
	}

	httpReq.Header.Set(headerAuthorization, "Basic "+s.config.AuthenticationKey())
	httpReq.Header.Set(headerTenant, s.config.Tenant())
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	return httpReq, nil
}
