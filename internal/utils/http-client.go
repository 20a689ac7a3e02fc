package utils

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

type HTTPClientConfig struct {
	Timeout   time.Duration
	ProxyURL  string
	UserAgent string
	Headers   map[string]string
	Cookies   map[string]string
}

// Session carries the user agent, headers and cookies across every request it issues.
type Session struct {
	client *http.Client
	config HTTPClientConfig
}

func NewSession(cfg HTTPClientConfig) *Session {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DesktopUserAgent
	}
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	if cfg.Cookies == nil {
		cfg.Cookies = make(map[string]string)
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
	}
	if cfg.ProxyURL != "" {
		if proxyURL, err := url.Parse(cfg.ProxyURL); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}
	// cookiejar.New only fails on a bad PublicSuffixList
	jar, _ := cookiejar.New(nil)
	return &Session{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			Jar:       jar,
		},
		config: cfg,
	}
}

func (s *Session) SetHeader(key, value string) {
	s.config.Headers[key] = value
}

func (s *Session) SetCookies(cookies map[string]string) {
	for k, v := range cookies {
		s.config.Cookies[k] = v
	}
}

func (s *Session) UserAgent() string {
	return s.config.UserAgent
}

func (s *Session) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", s.config.UserAgent)
	for k, v := range s.config.Headers {
		req.Header.Set(k, v)
	}
	// Manual cookies are host-agnostic, the jar only holds what servers set
	for name, value := range s.config.Cookies {
		if _, err := req.Cookie(name); err == http.ErrNoCookie {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}
	}
	return s.client.Do(req)
}

func (s *Session) Get(ctx context.Context, link string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	return s.Do(req)
}

// GetText fetches link and returns the body, failing on non-2xx statuses.
func (s *Session) GetText(ctx context.Context, link string) (string, int, error) {
	resp, err := s.Get(ctx, link)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if err := CheckStatus(resp); err != nil {
		return "", resp.StatusCode, err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

func CheckStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, URL: resp.Request.URL.String()}
	}
	return nil
}
