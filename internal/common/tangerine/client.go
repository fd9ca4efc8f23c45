package tangerine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/httpclient"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/metrics"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/models"
	"github.com/MarcDufresne/tangerine-account-checker/internal/monitoring"
)

const (
	serviceName = "tangerine"
	logPrefix   = "[TANGERINE]"

	pathInitTransaction  = "/web/InitTransaction.xhtml"
	pathTangerine        = "/web/Tangerine.html"
	pathSecurityQuestion = "/web/rest/v1/customers/my/security-question"
	pathCustomer         = "/web/rest/v1/customers/my"
	pathAccounts         = "/web/rest/pfm/v1/accounts"
	pathAccount          = "/web/rest/v1/accounts/%s"

	statusSuccess = "SUCCESS"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// Client is a cookie based web session against Tangerine.
type Client interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	// WithSession logs in, runs fn and always logs out once login succeeded.
	WithSession(ctx context.Context, fn func(ctx context.Context) error) error
	ListAccounts(ctx context.Context) ([]models.AccountSummary, error)
	GetAccount(ctx context.Context, number string) (models.AccountDetail, error)
}

type client struct {
	cfg   config.TangerineConfig
	creds config.TangerineCredentials
	req   *httpclient.RequestWrapper

	mu       sync.Mutex
	loggedIn bool
}

var _ Client = (*client)(nil)

func New(cfg config.TangerineConfig, creds config.TangerineCredentials, mtc metrics.Metrics) Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTransport(monitoring.NewMiddlewareRoundTripper(nil)).
		SetHeader("Accept", "application/json").
		SetHeader("x-web-flavour", "fbe").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &client{
		cfg:   cfg,
		creds: creds,
		req:   httpclient.NewRequestWrapper(rc, mtc, serviceName, logPrefix),
	}
}

type responseStatus struct {
	ResponseStatus struct {
		StatusCode string `json:"status_code"`
	} `json:"response_status"`
}

func (c *client) Login(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	xlog.Info(ctx, logPrefix, xlog.String("message", "login to tangerine"))

	if err = c.displayLogin(ctx); err != nil {
		return c.loginErr("display login", err)
	}

	if err = c.postForm(ctx, "PersonalCIF", map[string]string{
		"command": "PersonalCIF",
		"ACN":     c.creds.Username,
	}); err != nil {
		return c.loginErr("send username", err)
	}

	if err = c.answerSecurityQuestion(ctx); err != nil {
		return c.loginErr("security question", err)
	}

	if err = c.postForm(ctx, "validatePINCommand", map[string]string{
		"locale":     c.cfg.Locale,
		"command":    "validatePINCommand",
		"BUTTON":     "Go",
		"PIN":        c.creds.Password,
		"Go":         "Next",
		"callSource": "4",
	}); err != nil {
		return c.loginErr("send password", err)
	}

	if _, err = c.getPage(ctx, pathTangerine, "displayAccountSummary", map[string]string{
		"command": "displayAccountSummary",
		"fill":    "1",
	}); err != nil {
		return c.loginErr("account summary", err)
	}

	var status responseStatus
	if err = c.getJSON(ctx, pathCustomer, pathCustomer, &status); err != nil {
		return c.loginErr("session check", err)
	}
	if status.ResponseStatus.StatusCode != statusSuccess {
		return c.loginErr("session check", fmt.Errorf("status %q", status.ResponseStatus.StatusCode))
	}

	c.mu.Lock()
	c.loggedIn = true
	c.mu.Unlock()

	xlog.Info(ctx, logPrefix, xlog.String("message", "logged in"))
	return nil
}

func (c *client) Logout(ctx context.Context) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	_, err = c.getPage(ctx, pathInitTransaction, "displayLogout", map[string]string{
		"command": "displayLogout",
		"device":  "web",
		"locale":  c.cfg.Locale,
	})

	c.mu.Lock()
	c.loggedIn = false
	c.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	xlog.Info(ctx, logPrefix, xlog.String("message", "logged out"))
	return nil
}

func (c *client) WithSession(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err = c.Login(ctx); err != nil {
		return err
	}

	defer func() {
		if logoutErr := c.Logout(ctx); logoutErr != nil {
			err = errors.Join(err, logoutErr)
		}
	}()

	return fn(ctx)
}

type listAccountsResponse struct {
	responseStatus
	Accounts []models.AccountSummary `json:"accounts"`
}

func (c *client) ListAccounts(ctx context.Context) (accounts []models.AccountSummary, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = c.requireSession(); err != nil {
		return nil, err
	}

	var res listAccountsResponse
	if err = c.getJSON(ctx, pathAccounts, pathAccounts, &res); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return res.Accounts, nil
}

type getAccountResponse struct {
	responseStatus
	AccountSummary models.RawAccountDetail `json:"account_summary"`
}

func (c *client) GetAccount(ctx context.Context, number string) (detail models.AccountDetail, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if err = c.requireSession(); err != nil {
		return detail, err
	}

	var res getAccountResponse
	endpoint := fmt.Sprintf(pathAccount, "{number}")
	if err = c.getJSON(ctx, endpoint, fmt.Sprintf(pathAccount, url.PathEscape(number)), &res); err != nil {
		return detail, fmt.Errorf("failed to get account: %w", err)
	}

	detail, err = res.AccountSummary.ToAccountDetail()
	if err != nil {
		return detail, fmt.Errorf("failed to parse account %s: %w", res.AccountSummary.DisplayName, err)
	}
	if detail.Number == "" {
		detail.Number = number
	}

	return detail, nil
}

func (c *client) requireSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loggedIn {
		return common.ErrNotLoggedIn
	}
	return nil
}

func (c *client) loginErr(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrLoginFailed, step, err)
}

func (c *client) displayLogin(ctx context.Context) error {
	_, err := c.getPage(ctx, pathInitTransaction, "displayLogin", map[string]string{
		"command": "displayLogin",
		"device":  "web",
		"locale":  c.cfg.Locale,
	})
	return err
}

type securityQuestionResponse struct {
	responseStatus
	Question string `json:"question"`
}

func (c *client) answerSecurityQuestion(ctx context.Context) error {
	var res securityQuestionResponse
	if err := c.getJSON(ctx, pathSecurityQuestion, pathSecurityQuestion, &res); err != nil {
		return err
	}

	answer, ok := c.creds.Answer(res.Question)
	if !ok {
		return fmt.Errorf("%w: %q", common.ErrUnknownSecurityQuestion, res.Question)
	}

	return c.postForm(ctx, "verifyChallengeQuestion", map[string]string{
		"command": "verifyChallengeQuestion",
		"BUTTON":  "Next",
		"Answer":  answer,
		"Next":    "Next",
	})
}

func (c *client) getPage(ctx context.Context, path, command string, query map[string]string) (*resty.Response, error) {
	res, err := c.req.DoRequest(ctx, http.MethodGet, path+"#"+command, path, func(r *resty.Request) *resty.Request {
		return r.SetQueryParams(query)
	})
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, newAPIError(http.MethodGet, path, res)
	}
	return res, nil
}

func (c *client) postForm(ctx context.Context, command string, form map[string]string) error {
	res, err := c.req.DoRequest(ctx, http.MethodPost, pathTangerine+"#"+command, pathTangerine, func(r *resty.Request) *resty.Request {
		return r.SetFormData(form)
	})
	if err != nil {
		return err
	}
	if res.IsError() {
		return newAPIError(http.MethodPost, pathTangerine, res)
	}
	return nil
}

func (c *client) getJSON(ctx context.Context, endpoint, path string, out interface{}) error {
	res, err := c.req.DoRequest(ctx, http.MethodGet, endpoint, path, nil)
	if err != nil {
		return err
	}
	if res.IsError() {
		return newAPIError(http.MethodGet, endpoint, res)
	}

	if err := json.Unmarshal(res.Body(), out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}
