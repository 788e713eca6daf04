package quote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "quotes/quote"

// HTTPServiceParams holds configuration for creating an HTTPService.
type HTTPServiceParams struct {
	Endpoint string       // defaults to DefaultEndpoint
	Client   *http.Client // defaults to http.DefaultClient
	Logger   *log.Logger  // defaults to log.Default()
	Tracer   oteltrace.Tracer
}

// HTTPService fetches quotes with a plain GET against a fixed endpoint.
// It performs no retries and sets no timeout of its own.
type HTTPService struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
	tracer   oteltrace.Tracer
}

// Ensure HTTPService implements Service.
var _ Service = (*HTTPService)(nil)

// NewHTTPService creates an HTTPService from the given params.
func NewHTTPService(p HTTPServiceParams) *HTTPService {
	s := &HTTPService{
		endpoint: p.Endpoint,
		client:   p.Client,
		logger:   p.Logger,
		tracer:   p.Tracer,
	}
	if s.endpoint == "" {
		s.endpoint = DefaultEndpoint
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Endpoint returns the URL this service fetches from.
func (s *HTTPService) Endpoint() string {
	return s.endpoint
}

// FetchRandomQuote issues one GET request and decodes the body.
func (s *HTTPService) FetchRandomQuote(ctx context.Context) (Quote, error) {
	fetchID := uuid.NewString()
	logger := s.logger.With("fetch_id", fetchID)

	ctx, span := s.tracer.Start(ctx, "quote.fetch", oteltrace.WithAttributes(
		attribute.String("quote.endpoint", s.endpoint),
		attribute.String("quote.fetch_id", fetchID),
	))
	defer span.End()

	start := time.Now()
	logger.Debug("fetching random quote", "endpoint", s.endpoint)

	q, status, err := s.fetch(ctx)
	span.SetAttributes(attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("quote fetch failed", "err", err, "status", status, "elapsed", time.Since(start))
		return Quote{}, err
	}

	span.SetStatus(codes.Ok, "")
	logger.Debug("quote fetched", "author", q.Author, "status", status, "elapsed", time.Since(start))
	return q, nil
}

func (s *HTTPService) fetch(ctx context.Context) (Quote, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return Quote{}, 0, &NetworkError{Cause: fmt.Errorf("building request: %w", err)}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Quote{}, 0, &NetworkError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, resp.StatusCode, &NetworkError{Cause: err}
	}

	// The status code is not checked: error payloads fail decoding instead.
	q, err := DecodeQuote(body)
	if err != nil {
		return Quote{}, resp.StatusCode, err
	}
	return q, resp.StatusCode, nil
}
