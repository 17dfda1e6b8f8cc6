package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"zaazu/client/internal/config"
)

const accessKeyHeader = "X-Access-Key"

type (
	Params struct {
		Method   string
		Path     string
		Body     interface{}
		Response interface{}
	}

	Client interface {
		Do(ctx context.Context, param Params) error
	}

	client struct {
		httpClient *http.Client
		baseURL    string
		accessKey  string
	}
)

func NewClient(cfg config.Config) Client {
	host := cfg.Host
	if !strings.HasSuffix(host, "/") {
		host += "/"
	}
	host += "v1/"

	return &client{
		httpClient: &http.Client{},
		baseURL:    host,
		accessKey:  cfg.AccessKey,
	}
}

func (c *client) Do(ctx context.Context, param Params) error {
	requestURL, err := url.Parse(c.baseURL + param.Path)
	if err != nil {
		return err
	}

	var body io.Reader
	if param.Body != nil {
		raw, err := json.Marshal(param.Body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, param.Method, requestURL.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessKey != "" {
		req.Header.Set(accessKeyHeader, c.accessKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseError(responseBody)
	}

	if param.Response != nil {
		if err := json.Unmarshal(responseBody, param.Response); err != nil {
			return errors.Wrap(err, "failed to parse response")
		}
	}
	return nil
}

func parseError(body []byte) error {
	var e struct {
		Error   interface{} `json:"error"`
		Message string      `json:"message"`
		Details string      `json:"details"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return errors.New(string(body))
	}

	if msg, isString := e.Error.(string); isString && msg != "" {
		if e.Details != "" {
			return errors.Errorf("%s: %s", msg, e.Details)
		}
		return errors.New(msg)
	}
	if e.Message != "" {
		return errors.New(e.Message)
	}
	return errors.New(string(body))
}
