// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	authusecase "github.com/salon-pos/backend/internal/application/usecase/auth"
	"github.com/salon-pos/backend/internal/application/usecase/ledger"
	"github.com/salon-pos/backend/internal/application/usecase/report"
	"github.com/salon-pos/backend/internal/domain/entity"
	"github.com/salon-pos/backend/internal/infra/server/router"
	"github.com/salon-pos/backend/internal/integration/adapters"
	"github.com/salon-pos/backend/internal/integration/entrypoint/controller"
	"github.com/salon-pos/backend/internal/integration/entrypoint/middleware"
	"github.com/salon-pos/backend/internal/integration/persistence"
	"github.com/salon-pos/backend/internal/integration/persistence/model"
	"github.com/salon-pos/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds per-scenario state.
type testContext struct {
	db     *mock.Db
	server *httptest.Server
	client *http.Client

	accessToken    string
	responseStatus int
	responseBody   map[string]any

	currentUserID uuid.UUID
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"customers":      &model.CustomerModel{},
			"sales":          &model.SaleModel{},
			"bookings":       &model.BookingModel{},
			"expenses":       &model.ExpenseModel{},
			"daily_balances": &model.DailyBalanceModel{},
		}),
	}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.db.Reset(); err != nil {
			return c, err
		}
		test.accessToken = ""
		test.responseStatus = 0
		test.responseBody = nil
		test.startServer()
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		return c, nil
	})

	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)
	ctx.Given(`^a completed sale of "([^"]*)" sold at "([^"]*)"$`, test.aCompletedSaleSoldAt)
	ctx.Given(`^a completed sale of "([^"]*)" sold today$`, test.aCompletedSaleSoldToday)
	ctx.Given(`^a pending sale of "([^"]*)" sold at "([^"]*)"$`, test.aPendingSaleSoldAt)
	ctx.Given(`^an expense of "([^"]*)" on "([^"]*)"$`, test.anExpenseOn)
	ctx.Given(`^a "([^"]*)" booking scheduled at "([^"]*)"$`, test.aBookingScheduledAt)

	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
}

// startServer wires the application against the shared test database.
func (t *testContext) startServer() {
	db := t.db.DbConn

	userRepo := persistence.NewUserRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	balanceRepo := persistence.NewDailyBalanceRepository(db)
	salesRepo := persistence.NewSalesRepository(db)
	customerRepo := persistence.NewCustomerRepository(db)
	bookingRepo := persistence.NewBookingRepository(db)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)

	registerUseCase := authusecase.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := authusecase.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	recordExpenseUseCase := ledger.NewRecordExpenseUseCase(expenseRepo)
	getExpensesUseCase := ledger.NewGetExpensesUseCase(expenseRepo)
	updateDailyBalanceUseCase := ledger.NewUpdateDailyBalanceUseCase(balanceRepo, expenseRepo, salesRepo)
	getOpeningBalanceUseCase := ledger.NewGetOpeningBalanceUseCase(balanceRepo)
	getTodaysIncomeUseCase := ledger.NewGetTodaysIncomeUseCase(salesRepo)

	assembler := report.NewAssembler(balanceRepo, expenseRepo, salesRepo, customerRepo, bookingRepo, nil, nil)

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	ledgerController := controller.NewLedgerController(
		recordExpenseUseCase,
		getExpensesUseCase,
		updateDailyBalanceUseCase,
		getOpeningBalanceUseCase,
		getTodaysIncomeUseCase,
		nil,
	)
	reportController := controller.NewReportController(
		report.NewBuildDailyReportUseCase(assembler),
		report.NewBuildWeeklyReportUseCase(assembler),
		report.NewBuildMonthlyReportUseCase(assembler),
	)

	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		reportController,
		middleware.NewRateLimiterWithConfig(1000, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)

	t.server = httptest.NewServer(r.Setup("test"))
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) iAmAuthenticatedAs(email string) error {
	passwordService := adapters.NewPasswordService()
	hash, err := passwordService.Hash("integration-password")
	if err != nil {
		return err
	}

	user := entity.NewUser("Test Staff", email, hash, entity.UserRoleStaff)
	if err := t.db.DbConn.Create(model.UserFromEntity(user)).Error; err != nil {
		return err
	}
	t.currentUserID = user.ID

	tokenService := adapters.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokenService.GenerateAccessToken(context.Background(), user)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) seedSale(amount, soldAt string, status entity.SaleStatus) error {
	when, err := time.Parse(time.DateOnly, soldAt)
	if err != nil {
		return err
	}

	customer := &model.CustomerModel{
		ID:        uuid.New(),
		Name:      "Walk-in",
		CreatedAt: time.Now().UTC(),
	}
	if err := t.db.DbConn.Create(customer).Error; err != nil {
		return err
	}

	sale := &model.SaleModel{
		ID:              uuid.New(),
		CustomerID:      customer.ID,
		ServiceCategory: "haircut",
		Amount:          decimal.RequireFromString(amount),
		AdvancePaid:     decimal.Zero,
		BalanceDue:      decimal.Zero,
		Status:          string(status),
		SoldAt:          when.Add(10 * time.Hour),
		CreatedAt:       time.Now().UTC(),
	}
	return t.db.DbConn.Create(sale).Error
}

func (t *testContext) aCompletedSaleSoldAt(amount, soldAt string) error {
	return t.seedSale(amount, soldAt, entity.SaleStatusCompleted)
}

func (t *testContext) aCompletedSaleSoldToday(amount string) error {
	return t.seedSale(amount, time.Now().UTC().Format(time.DateOnly), entity.SaleStatusCompleted)
}

func (t *testContext) aPendingSaleSoldAt(amount, soldAt string) error {
	return t.seedSale(amount, soldAt, entity.SaleStatusPending)
}

func (t *testContext) anExpenseOn(amount, date string) error {
	when, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return err
	}

	expense := entity.NewExpense("seeded expense", decimal.RequireFromString(amount), uuid.New(), when)
	return t.db.DbConn.Create(model.ExpenseFromEntity(expense)).Error
}

func (t *testContext) aBookingScheduledAt(status, scheduledAt string) error {
	when, err := time.Parse(time.DateOnly, scheduledAt)
	if err != nil {
		return err
	}

	booking := &model.BookingModel{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		ServiceCategory: "haircut",
		Status:          status,
		ScheduledAt:     when.Add(9 * time.Hour),
		CreatedAt:       time.Now().UTC(),
	}
	return t.db.DbConn.Create(booking).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.sendRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.sendRequest(method, path, []byte(body.Content))
}

func (t *testContext) sendRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.responseStatus = resp.StatusCode
	t.responseBody = nil
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.responseStatus != expected {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expected, t.responseStatus, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.resolveField(path)
	if err != nil {
		return err
	}

	got := fmt.Sprint(value)
	if got != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.resolveField(path)
	return err
}

// resolveField walks a dot-separated path through the decoded response body.
func (t *testContext) resolveField(path string) (any, error) {
	if t.responseBody == nil {
		return nil, fmt.Errorf("response body is empty")
	}

	var current any = t.responseBody
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q: %q is not an object", path, segment)
		}
		current, ok = obj[segment]
		if !ok {
			return nil, fmt.Errorf("field %q not found (missing %q)", path, segment)
		}
	}
	return current, nil
}
