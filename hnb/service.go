package hnb

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
	"go-hnbex/domain"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const ApiUrlBase = "https://api.hnb.hr/tecajn-eur/v3"

// Service wraps the HNB exchange rate REST API
type Service interface {
	// Daily loads the rates applicable on date. An empty currency loads every currency.
	Daily(ctx context.Context, date time.Time, currency domain.Currency) (domain.Rates, error)

	// Range loads the rates of one currency from..to inclusive, ordered by date.
	Range(ctx context.Context, currency domain.Currency, from time.Time, to time.Time) (domain.Rates, error)
}

// service HNB API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client

	logger log.Logger
}

// NewService constructs a valid HNB Service.
func NewService(baseURL string, timeout time.Duration, logger log.Logger) Service {
	if baseURL == "" {
		baseURL = ApiUrlBase
	}
	return &service{
		url: baseURL,
		client: http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (s *service) Daily(ctx context.Context, date time.Time, currency domain.Currency) (domain.Rates, error) {
	query := url.Values{}
	query.Set("datum-primjene", domain.FormatDate(date))
	if currency != "" {
		query.Set("valuta", string(currency))
	}
	return s.get(ctx, query)
}

func (s *service) Range(ctx context.Context, currency domain.Currency, from time.Time, to time.Time) (domain.Rates, error) {
	query := url.Values{}
	query.Set("valuta", string(currency))
	query.Set("datum-primjene-od", domain.FormatDate(from))
	query.Set("datum-primjene-do", domain.FormatDate(to))
	return s.get(ctx, query)
}

// record one entry of the API response
type record struct {
	Date     string `json:"datum_primjene"`
	Currency string `json:"valuta"`
	Buying   string `json:"kupovni_tecaj"`
	Median   string `json:"srednji_tecaj"`
	Selling  string `json:"prodajni_tecaj"`
}

// get runs one GET against the API. Every failure is reported as domain.ErrRetrieval.
func (s *service) get(ctx context.Context, query url.Values) (domain.Rates, error) {
	endpoint := s.url + "?" + query.Encode()

	level.Debug(s.logger).Log("msg", ">>> GET", "url", endpoint)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building http request: %v", domain.ErrRetrieval, err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		level.Error(s.logger).Log("msg", "<<< request failed", "url", endpoint, "err", err)
		return nil, fmt.Errorf("%w: http get: %v", domain.ErrRetrieval, err)
	}
	defer httpResponse.Body.Close()

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		level.Error(s.logger).Log("msg", "<<< reading body failed", "url", endpoint, "err", err)
		return nil, fmt.Errorf("%w: reading json: %v", domain.ErrRetrieval, err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		level.Error(s.logger).Log("msg", "<<< unexpected status", "url", endpoint, "status", httpResponse.StatusCode, "body", string(bytes))
		return nil, fmt.Errorf("%w: GET %s: status %d", domain.ErrRetrieval, endpoint, httpResponse.StatusCode)
	}

	level.Debug(s.logger).Log("msg", "<<<", "body", string(bytes))

	var records []record
	err = json.Unmarshal(bytes, &records)
	if err != nil {
		level.Error(s.logger).Log("msg", "<<< bad payload", "url", endpoint, "err", err, "body", string(bytes))
		return nil, fmt.Errorf("%w: decoding json: %v", domain.ErrRetrieval, err)
	}

	rates := make(domain.Rates, 0, len(records))
	for _, r := range records {
		rate, err := r.toRate()
		if err != nil {
			level.Error(s.logger).Log("msg", "<<< bad payload", "url", endpoint, "err", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
		}
		rates = append(rates, rate)
	}

	return rates, nil
}

func (r record) toRate() (domain.Rate, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("bad date %q: %w", r.Date, err)
	}
	buying, err := parseDecimal(r.Buying)
	if err != nil {
		return domain.Rate{}, err
	}
	median, err := parseDecimal(r.Median)
	if err != nil {
		return domain.Rate{}, err
	}
	selling, err := parseDecimal(r.Selling)
	if err != nil {
		return domain.Rate{}, err
	}
	return domain.Rate{
		Date:     date,
		Currency: domain.Currency(r.Currency),
		Buying:   buying,
		Median:   median,
		Selling:  selling,
	}, nil
}

// parseDecimal accepts both decimal separators, the API uses a comma.
func parseDecimal(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.Replace(value, ",", ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad rate value %q: %w", value, err)
	}
	return d, nil
}
