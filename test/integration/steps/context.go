// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estateshare/backend/config"
	"github.com/estateshare/backend/internal/infra/dependency"
	"github.com/estateshare/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	injector     *dependency.Injector
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string
	users       map[string]uuid.UUID

	// Saved response values, referenced as {{name}}
	saved map[string]string

	cfg *config.Config
	db  *mock.Db
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

var resendServer *mock.ResendMock

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		mock.NewDb()
		mock.NewRedis()
		resendServer = mock.NewResendServer()
	})

	ctx.AfterSuite(func() {
		if resendServer != nil {
			resendServer.Close()
		}
	})
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.TxIsolation = ""
	cfg.JWT.Secret = testJWTSecret
	cfg.Ledger.Currency = "NGN"
	cfg.Ledger.FXRates = config.ParseRates("USD:NGN=1500")
	cfg.Email.AppBaseURL = "https://app.estateshare.test"
	cfg.RateLimit.PurchaseAttempts = 3
	return cfg
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.ClearDB(); err != nil {
			return ctx, err
		}
		rdb := mock.NewRedis()
		if err := mock.ClearRedis(rdb); err != nil {
			return ctx, err
		}
		resendServer.Reset()

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			users:          make(map[string]uuid.UUID),
			saved:          make(map[string]string),
			cfg:            testConfig(),
			db:             db,
		}
		tc.injector = dependency.NewInjector(tc.cfg, db.DbConn, rdb)
		tc.server = httptest.NewServer(tc.injector.Router.Setup(tc.cfg.Server.Environment))

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerLedgerSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, theResponseHeaderShouldContain)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, body)
}

func sendRequest(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var payload io.Reader
	if body != nil {
		payload = bytes.NewBufferString(tc.replacePlaceholders(body.Content))
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.replacePlaceholders(endpoint), payload)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

var placeholder = regexp.MustCompile(`\{\{([a-z_]+)(?::([A-Za-z0-9_-]+))?\}\}`)

// replacePlaceholders expands {{name}} with a saved response value and
// {{user:alias}} with the id of a named user.
func (tc *TestContext) replacePlaceholders(content string) string {
	return placeholder.ReplaceAllStringFunc(content, func(match string) string {
		parts := placeholder.FindStringSubmatch(match)
		if parts[1] == "user" && parts[2] != "" {
			return tc.userID(parts[2]).String()
		}
		if value, ok := tc.saved[parts[1]]; ok {
			return value
		}
		return match
	})
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	expected = tc.replacePlaceholders(expected)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.responseField(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if actual := tc.response.Header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return ctx, err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

// responseField resolves a dotted path such as "payouts.0.amount".
func (tc *TestContext) responseField(path string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, key := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[key]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
			}
			current = value
		case []interface{}:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", key, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}
