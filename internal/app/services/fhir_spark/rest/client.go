package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"vaxtrack-service/internal/pkg/constvars"
	"vaxtrack-service/internal/pkg/exceptions"
	"vaxtrack-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the single HTTP gateway towards the Spark FHIR store. Every
// typed resource client goes through it, so the outbound rate limit and
// the request timeout apply uniformly to the whole service.
type Client struct {
	BaseUrl string
	Log     *zap.Logger

	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseUrl string, timeout time.Duration, requestsPerSecond int, logger *zap.Logger) *Client {
	return &Client{
		BaseUrl:    baseUrl,
		Log:        logger,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

func (c *Client) Read(ctx context.Context, resourceType, resourceID string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, resourceID)
	resp, err := c.do(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNotFound, constvars.StatusGone:
		c.Log.Info("sparkRestClient.Read resource not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.String(constvars.LoggingResourceIDKey, resourceID),
		)
		return exceptions.ErrFHIRResourceNotFound(nil, resourceType)
	default:
		return c.outcomeError(ctx, resp, resourceType, exceptions.ErrGetFHIRResource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("sparkRestClient.Read error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, resourceType)
	}
	return nil
}

// Search returns the raw entry resources of the result bundle. A search
// that matches nothing yields an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, resourceType string, params url.Values) ([]json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	resp, err := c.do(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.outcomeError(ctx, resp, resourceType, exceptions.ErrGetFHIRResource)
	}

	var bundle fhir_dto.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundle); err != nil {
		c.Log.Error("sparkRestClient.Search error decoding bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}

	resources := make([]json.RawMessage, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		resources = append(resources, entry.Resource)
	}

	c.Log.Info("sparkRestClient.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Int(constvars.LoggingResourceCountKey, len(resources)),
	)
	return resources, nil
}

func (c *Client) Create(ctx context.Context, resourceType string, resource, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.BaseUrl, resourceType)
	resp, err := c.do(ctx, constvars.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return c.outcomeError(ctx, resp, resourceType, exceptions.ErrCreateFHIRResource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("sparkRestClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, resourceType)
	}
	return nil
}

// Update writes the resource at its caller-chosen id. The store treats
// this as an upsert, which is what create-with-custom-id relies on.
func (c *Client) Update(ctx context.Context, resourceType, resourceID string, resource, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(resource)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, resourceID)
	resp, err := c.do(ctx, constvars.MethodPut, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return c.outcomeError(ctx, resp, resourceType, exceptions.ErrUpdateFHIRResource)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("sparkRestClient.Update error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, resourceType)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (*http.Response, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		c.Log.Error("sparkRestClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("sparkRestClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func (c *Client) outcomeError(ctx context.Context, resp *http.Response, resourceType string, build func(error, string) *exceptions.CustomError) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return build(err, resourceType)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
		c.Log.Error("sparkRestClient FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, resourceType),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErrorIssue),
		)
		return build(fhirErrorIssue, resourceType)
	}

	statusErr := fmt.Errorf("unexpected status %d", resp.StatusCode)
	c.Log.Error("sparkRestClient unexpected response status",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return build(statusErr, resourceType)
}
