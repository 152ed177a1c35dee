package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// HTTPSender sends messages through a Kavenegar compatible REST gateway.
type HTTPSender struct {
	baseURL    string
	apiKey     string
	sender     string
	httpClient *http.Client
}

func NewHTTPSender(baseURL, apiKey, sender string, timeout time.Duration) *HTTPSender {
	return &HTTPSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		sender:  sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type sendResponse struct {
	Return struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"return"`
}

func (s *HTTPSender) Send(ctx context.Context, input SendSMSInput) error {
	if err := input.Validate(); err != nil {
		return errors.Wrap(err, "invalid sms input")
	}

	form := url.Values{}
	form.Set("receptor", input.To)
	form.Set("message", input.Message)
	if s.sender != "" {
		form.Set("sender", s.sender)
	}

	endpoint := fmt.Sprintf("%s/%s/sms/send.json", s.baseURL, url.PathEscape(s.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "create sms request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// the url path holds the api key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = errors.Wrap(urlErr.Err, urlErr.Op)
		}
		return errors.Wrap(err, "do sms request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read sms response")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("sms gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return errors.Wrap(err, "decode sms response")
	}

	if out.Return.Status != http.StatusOK {
		return errors.Errorf("sms gateway rejected message: %d %s", out.Return.Status, out.Return.Message)
	}

	return nil
}
