package dawa

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/specialistvlad/dawaclient/internal/ctxlog"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the public registry host.
	DefaultBaseURL = "https://dawa.aws.dk"

	searchPath = "/adresser"
	// structureMini asks the registry for flat records.
	structureMini = "mini"
)

// SearchURL builds the address search URL for a street name and house number.
// The query keeps the order vejnavn, husnr, struktur and both user values are
// query-escaped.
func SearchURL(baseURL, streetName, houseNumber string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(searchPath)
	b.WriteString("?vejnavn=")
	b.WriteString(url.QueryEscape(streetName))
	b.WriteString("&husnr=")
	b.WriteString(url.QueryEscape(houseNumber))
	b.WriteString("&struktur=")
	b.WriteString(structureMini)
	return b.String()
}

// Client performs address searches against one registry host.
type Client struct {
	baseURL string
	rest    *resty.Client
}

// NewClient returns a Client for baseURL. It never retries and keeps the
// transport's default timeouts.
func NewClient(baseURL string) *Client {
	rc := resty.New().
		SetRetryCount(0).
		SetDisableWarn(true)
	return &Client{
		baseURL: baseURL,
		rest:    rc,
	}
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	return c.rest.Close()
}

// Fetch issues the search request and returns the status code and the fully
// read body. Any failure to obtain them is a *TransportError.
func (c *Client) Fetch(ctx context.Context, streetName, houseNumber string) (int, []byte, error) {
	logger := ctxlog.FromContext(ctx)
	reqURL := SearchURL(c.baseURL, streetName, houseNumber)
	logger.Info("Sending request", "url", reqURL)

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResponseBodyUnlimitedReads(true).
		Get(reqURL)
	if err != nil {
		return 0, nil, &TransportError{URL: reqURL, Err: err}
	}

	body := resp.Bytes()
	logger.Debug("Received response", "status", resp.StatusCode(), "bytes", len(body))
	return resp.StatusCode(), body, nil
}

// SearchAddresses fetches and decodes the addresses matching streetName and
// houseNumber. An empty result is not an error.
func (c *Client) SearchAddresses(ctx context.Context, streetName, houseNumber string) ([]Address, error) {
	status, body, err := c.Fetch(ctx, streetName, houseNumber)
	if err != nil {
		return nil, err
	}
	if status == http.StatusOK {
		ctxlog.FromContext(ctx).Debug("Decoding addresses", "bytes", len(body))
	}
	return DecodeResponse(status, body)
}
