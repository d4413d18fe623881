// Package client is the data layer consumed by the presentation code:
// it fetches and caches the ad collection, submits new ads, and reports
// outcomes through a Notifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/odolbodol/adboard/internal/api/handler/v1/request"
	"github.com/odolbodol/adboard/internal/domain"
)

// adsResource is both the endpoint path and the cache key of the ad
// collection.
const adsResource = "/api/ads"

const (
	createdMessage = "Your ad has been submitted successfully!"
	// Premium is paid manually, out-of-band. The confirmation message
	// carries the payment instructions.
	createdPremiumMessage = "Your ad has been submitted successfully! " +
		"To activate premium, send 5 Tk via bKash to 01711223344."

	fetchFailedMessage  = "Failed to fetch ads"
	createFailedMessage = "Failed to create ad"
)

var (
	ErrFetchFailed  = errors.New(fetchFailedMessage)
	ErrCreateFailed = errors.New(createFailedMessage)
)

// Notifier receives success/failure outcomes of CreateAd, e.g. to show
// a toast. Delivery is an observable side effect only, never part of
// the data contract.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithNotifier(notifier Notifier) Option {
	return func(c *Client) {
		c.notifier = notifier
	}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier
	cache      *resourceCache
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		notifier:   noopNotifier{},
		cache:      newResourceCache(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListAds returns the full ad collection. The result is cached under
// the list resource key; repeated calls reuse the cache until a
// successful CreateAd invalidates it, so a read issued after a create
// always observes that create.
func (c *Client) ListAds(ctx context.Context) ([]domain.Ad, error) {
	if ads, ok := c.cache.get(adsResource); ok {
		return ads, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+adsResource, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w -> %v", ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, ErrFetchFailed
	}

	var ads []domain.Ad
	if err = json.NewDecoder(res.Body).Decode(&ads); err != nil {
		return nil, fmt.Errorf("%w -> %v", ErrFetchFailed, err)
	}

	c.cache.put(adsResource, ads)

	return c.cache.copyOf(ads), nil
}

// CreateAd validates and submits a candidate ad. The validation rules
// are the same request package the server binds, so a request the
// client accepts is one the server accepts. On success the cached
// collection is invalidated and the notifier is told; on failure the
// server-provided message (validation message for a 400, a generic one
// otherwise) is surfaced without panicking past the caller.
func (c *Client) CreateAd(ctx context.Context, ad request.CreateAdRequest) (domain.Ad, error) {
	ad.ApplyDefaults()
	if err := ad.Validate(); err != nil {
		c.notifier.Error(err.Error())

		return domain.Ad{}, err
	}

	body, err := json.Marshal(ad)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+adsResource, bytes.NewReader(body))
	if err != nil {
		return domain.Ad{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.notifier.Error(createFailedMessage)

		return domain.Ad{}, fmt.Errorf("%w -> %v", ErrCreateFailed, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusCreated:
		var created domain.Ad
		if err = json.NewDecoder(res.Body).Decode(&created); err != nil {
			c.notifier.Error(createFailedMessage)

			return domain.Ad{}, fmt.Errorf("%w -> %v", ErrCreateFailed, err)
		}

		c.cache.invalidate(adsResource)

		if created.IsPremium {
			c.notifier.Success(createdPremiumMessage)
		} else {
			c.notifier.Success(createdMessage)
		}

		return created, nil

	case http.StatusBadRequest:
		var apiErr struct {
			Message string `json:"message"`
			Field   string `json:"field"`
		}
		if err = json.NewDecoder(res.Body).Decode(&apiErr); err != nil {
			c.notifier.Error(createFailedMessage)

			return domain.Ad{}, fmt.Errorf("%w -> %v", ErrCreateFailed, err)
		}

		c.notifier.Error(apiErr.Message)

		return domain.Ad{}, &request.FieldError{
			Field:   apiErr.Field,
			Message: apiErr.Message,
		}

	default:
		c.notifier.Error(createFailedMessage)

		return domain.Ad{}, ErrCreateFailed
	}
}
