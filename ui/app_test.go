package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loansight/app"
	"loansight/domain/profile"
)

func testApp(t *testing.T) *App {
	t.Helper()
	corpus := []profile.LabeledProfile{
		{Profile: profile.BorrowerProfile{CreditScore: 750, AnnualIncome: 90000, LoanAmount: 180000, DebtToIncomeRatio: 0.2, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeHome}, LoanApproved: 1},
		{Profile: profile.BorrowerProfile{CreditScore: 710, AnnualIncome: 70000, LoanAmount: 140000, DebtToIncomeRatio: 0.3, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeHome}, LoanApproved: 1},
		{Profile: profile.BorrowerProfile{CreditScore: 600, AnnualIncome: 40000, LoanAmount: 170000, DebtToIncomeRatio: 0.5, PreviousLoanDefaults: 1, EmploymentStatus: profile.EmploymentUnemployed, LoanPurpose: profile.PurposeAuto}, LoanApproved: 0},
		{Profile: profile.BorrowerProfile{CreditScore: 570, AnnualIncome: 32000, LoanAmount: 150000, DebtToIncomeRatio: 0.55, BankruptcyHistory: 1, EmploymentStatus: profile.EmploymentEmployed, LoanPurpose: profile.PurposeAuto}, LoanApproved: 0},
	}
	advisor, err := app.NewAdvisorService(corpus, 1)
	require.NoError(t, err)
	return NewApp(advisor)
}

func doRequest(t *testing.T, a *App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["tier"])
}

func TestHandlePredict(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodPost, "/api/predict",
		`{"credit_score":750,"annual_income":90000,"loan_amount":180000,"debt_to_income_ratio":0.22}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var assessment app.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))
	assert.Equal(t, "APPROVED", assessment.Decision)
	assert.Greater(t, assessment.Probability, 0.5)

	rec = doRequest(t, a, http.MethodPost, "/api/predict", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePredict_ZeroIncomeRejected(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodPost, "/api/predict",
		`{"credit_score":700,"loan_amount":50000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	// The rejected request must not degrade the model for later callers.
	rec = doRequest(t, a, http.MethodPost, "/api/predict",
		`{"credit_score":750,"annual_income":90000,"loan_amount":180000,"debt_to_income_ratio":0.22}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var assessment app.Assessment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assessment))
	assert.Equal(t, "structured", assessment.Tier)
}

func TestHandleSimilar_Validation(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodPost, "/api/similar",
		`{"credit_score":710,"annual_income":70000,"loan_amount":140000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, http.MethodPost, "/api/similar",
		`{"credit_score":710,"annual_income":70000,"loan_amount":140000,"top_k":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHandleGenerate(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodPost, "/api/generate", `{"count":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count    int                      `json:"count"`
		Profiles []profile.LabeledProfile `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.Count)
	assert.Len(t, body.Profiles, 5)

	rec = doRequest(t, a, http.MethodPost, "/api/generate", `{"count":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReport_RendersHTML(t *testing.T) {
	rec := doRequest(t, testApp(t), http.MethodPost, "/api/report",
		`{"credit_score":640,"annual_income":45000,"loan_amount":160000,"debt_to_income_ratio":0.45}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1")
	assert.Contains(t, rec.Body.String(), "Loan Approval Assessment")
}

func TestHandleShape(t *testing.T) {
	a := testApp(t)

	rec := doRequest(t, a, http.MethodGet, "/api/stats/shape/CreditScore", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, http.MethodGet, "/api/stats/shape/LoanPurpose", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
