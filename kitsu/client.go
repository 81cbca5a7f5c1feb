package kitsu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/metrics"
	"github.com/anisan-cli/animedex/network"
	"github.com/spf13/viper"
)

const (
	opPage = "page"
	opOne  = "one"

	mediaType = "application/vnd.api+json"
)

// Client talks to one anime collection endpoint.
type Client struct {
	base      string
	userAgent string
	http      *http.Client
}

// New returns a client for the collection at base.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		base: strings.TrimSuffix(base, "/"),
		http: httpClient,
	}
}

// NewFromConfig builds a client from api.base_url, api.user_agent and api.timeout.
func NewFromConfig() *Client {
	c := New(viper.GetString(key.APIBaseURL), network.New())
	c.userAgent = viper.GetString(key.APIUserAgent)
	return c
}

// WithUserAgent sets the User-Agent header sent with every request.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// Base returns the collection URL.
func (c *Client) Base() string {
	return c.base
}

type pageResponse struct {
	Data *[]Record `json:"data"`
	Meta *struct {
		Count *int `json:"count"`
	} `json:"meta"`
}

type oneResponse struct {
	Data *Record `json:"data"`
}

// document is a decoded response that knows which required members it lacks.
type document interface {
	missing() string
}

func (r *pageResponse) missing() string {
	switch {
	case r.Data == nil:
		return "data"
	case r.Meta == nil || r.Meta.Count == nil:
		return "meta.count"
	default:
		return ""
	}
}

func (r *oneResponse) missing() string {
	if r.Data == nil {
		return "data"
	}
	return ""
}

// FetchPage returns limit records starting at offset together with the collection size.
func (c *Client) FetchPage(ctx context.Context, limit, offset int) (*Page, error) {
	query := url.Values{}
	query.Set("page[limit]", strconv.Itoa(limit))
	query.Set("page[offset]", strconv.Itoa(offset))

	var response pageResponse
	if err := c.get(ctx, opPage, c.base+"?"+query.Encode(), &response); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"limit": limit, "offset": offset, "count": *response.Meta.Count}).
		Info("fetched page")

	return &Page{Records: *response.Data, Count: *response.Meta.Count}, nil
}

// FetchOne returns the record with the given id. Unknown ids fail with HTTPStatus.
func (c *Client) FetchOne(ctx context.Context, id string) (*Record, error) {
	var response oneResponse
	if err := c.get(ctx, opOne, c.base+"/"+url.PathEscape(id), &response); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"id": id}).Info("fetched record")
	return response.Data, nil
}

// get performs the request and decodes the body into v. Every failure is a *FetchError.
func (c *Client) get(ctx context.Context, op, target string, v document) (err error) {
	started := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = KindOf(err).String()
		}
		metrics.ObserveRequest(op, outcome, time.Since(started))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return c.fail(ctx, op, &FetchError{Kind: Network, Op: op, Err: fmt.Errorf("create request: %w", err)})
	}

	req.Header.Set("Accept", mediaType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.WithFields(log.Fields{"op": op, "url": target}).Debug("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, op, &FetchError{Kind: Network, Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, op, &FetchError{
			Kind:       HTTPStatus,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		})
	}

	if err = json.NewDecoder(resp.Body).Decode(v); err != nil {
		return c.fail(ctx, op, &FetchError{Kind: Decode, Op: op, Err: err})
	}

	if member := v.missing(); member != "" {
		return c.fail(ctx, op, &FetchError{Kind: Decode, Op: op, Err: fmt.Errorf("response has no %s", member)})
	}

	// the body may have been fully read just as the caller gave up
	if errors.Is(ctx.Err(), context.Canceled) {
		return c.fail(ctx, op, nil)
	}

	return nil
}

// fail logs fe and returns it, replacing it with a Cancelled error
// whenever ctx was cancelled. A deadline is reported as the original failure.
func (c *Client) fail(ctx context.Context, op string, fe *FetchError) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return &FetchError{Kind: Cancelled, Op: op, Err: context.Canceled}
	}

	log.WithFields(log.Fields{"op": op, "kind": fe.Kind.String()}).Error(fe)
	return fe
}
