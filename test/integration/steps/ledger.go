package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/integration/adapters"
	"github.com/estateshare/backend/internal/integration/email"
	"github.com/estateshare/backend/internal/integration/email/templates"
	"github.com/estateshare/backend/internal/integration/persistence"
	"github.com/estateshare/backend/test/integration/mock"
)

// registerLedgerSteps registers identity, fixture and ledger state steps.
func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am authenticated as (investor|underwriter|admin) "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^"([^"]*)" is an? (investor|underwriter) with (PENDING|APPROVED|REJECTED) KYC$`, anInvestorProfileExists)
	ctx.Step(`^"([^"]*)" has opted out of payout emails$`, hasOptedOutOfPayoutEmails)

	ctx.Step(`^the db should contain (\d+) rows in the "([^"]*)" table$`, theDbShouldContainRowsInTheTable)
	ctx.Step(`^the db should contain (\d+) rows in "([^"]*)" with the values:$`, theDbShouldContainRowsWithTheValues)

	ctx.Step(`^the email provider rejects messages$`, theEmailProviderRejectsMessages)
	ctx.Step(`^the email worker runs$`, theEmailWorkerRuns)
	ctx.Step(`^(\d+) emails? should have been sent to "([^"]*)"$`, emailsShouldHaveBeenSentTo)
	ctx.Step(`^the last email to "([^"]*)" should contain "([^"]*)"$`, theLastEmailShouldContain)
}

func emailOf(alias string) string {
	return alias + "@estateshare.test"
}

// userID returns a stable id for the alias within the scenario.
func (tc *TestContext) userID(alias string) uuid.UUID {
	id, ok := tc.users[alias]
	if !ok {
		id = uuid.New()
		tc.users[alias] = id
	}
	return id
}

func iAmAuthenticatedAs(ctx context.Context, role, alias string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	now := time.Now()
	claims := adapters.CustomClaims{
		UserID:    tc.userID(alias).String(),
		Email:     emailOf(alias),
		Role:      strings.ToUpper(role),
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return ctx, fmt.Errorf("failed to sign token: %w", err)
	}
	tc.accessToken = token
	return SetTestContext(ctx, tc), nil
}

func anInvestorProfileExists(ctx context.Context, alias, role, kyc string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	user := entity.NewUser(tc.userID(alias), emailOf(alias), alias)
	user.Role = entity.UserRole(strings.ToUpper(role))
	user.KYCStatus = entity.KYCStatus(kyc)
	return tc.injector.UoW.Repositories().Users.Upsert(ctx, user)
}

func hasOptedOutOfPayoutEmails(ctx context.Context, alias string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	users := tc.injector.UoW.Repositories().Users
	user, err := users.FindByID(ctx, tc.userID(alias))
	if err != nil {
		return err
	}
	user.EmailNotifications = false
	return users.Update(ctx, user)
}

func theDbShouldContainRowsInTheTable(ctx context.Context, quantity int, table string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	count, err := tc.db.Count(table, nil)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d rows in '%s', got %d", quantity, table, count)
	}
	return nil
}

func theDbShouldContainRowsWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var criteria map[string]any
	if err := json.Unmarshal([]byte(tc.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	count, err := tc.db.Count(table, criteria)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d rows in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func theEmailProviderRejectsMessages(ctx context.Context) error {
	resendServer.FailWith(http.StatusUnprocessableEntity)
	return nil
}

func theEmailWorkerRuns(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return err
	}

	sender := email.NewResendClient(
		"re_test_key",
		tc.cfg.Email.FromName,
		tc.cfg.Email.FromEmail,
		email.WithBaseURL(resendServer.URL()),
	)
	workerCfg := email.DefaultWorkerConfig()
	workerCfg.AppBaseURL = tc.cfg.Email.AppBaseURL

	worker := email.NewWorker(persistence.NewEmailQueueRepository(tc.db.DbConn), sender, renderer, workerCfg)
	worker.ProcessNow(ctx)
	return nil
}

func emailsShouldHaveBeenSentTo(ctx context.Context, count int, alias string) error {
	if got := len(sentTo(alias)); got != count {
		return fmt.Errorf("expected %d emails to %s, got %d", count, emailOf(alias), got)
	}
	return nil
}

func theLastEmailShouldContain(ctx context.Context, alias, expected string) error {
	sent := sentTo(alias)
	if len(sent) == 0 {
		return fmt.Errorf("no email sent to %s", emailOf(alias))
	}
	last := sent[len(sent)-1]
	if !strings.Contains(last.Text, expected) && !strings.Contains(last.HTML, expected) {
		return fmt.Errorf("last email to %s does not contain '%s': %s", emailOf(alias), expected, last.Text)
	}
	return nil
}

func sentTo(alias string) []mock.SentEmail {
	var sent []mock.SentEmail
	for _, msg := range resendServer.Sent() {
		for _, to := range msg.To {
			if to == emailOf(alias) {
				sent = append(sent, msg)
				break
			}
		}
	}
	return sent
}
