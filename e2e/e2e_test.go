//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/ibankit/pkg/auth"
	"github.com/bibbank/ibankit/pkg/iso20022"
	"github.com/bibbank/ibankit/pkg/testutil"
)

var (
	gatewayURL string
	token      string
)

func TestMain(m *testing.M) {
	gatewayURL = os.Getenv("GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "http://localhost:8080"
	}

	var err error
	token, err = clientToken()
	if err != nil {
		fmt.Fprintln(os.Stderr, "e2e: cannot obtain token:", err)
		os.Exit(1)
	}

	// Wait for gateway to be ready
	for i := 0; i < 30; i++ {
		resp, err := http.Get(gatewayURL + "/readyz")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		time.Sleep(2 * time.Second)
	}

	os.Exit(m.Run())
}

// clientToken uses E2E_TOKEN when set and otherwise signs one with the
// development secret the gateway and service share.
func clientToken() (string, error) {
	if t := os.Getenv("E2E_TOKEN"); t != "" {
		return t, nil
	}
	secret := envOr("JWT_SECRET", "dev-secret-change-in-prod")
	svc, err := auth.NewTokenService(auth.TokenConfig{
		Secret: secret,
		Issuer: envOr("JWT_ISSUER", "ibankit-gateway"),
		TTL:    time.Hour,
	})
	if err != nil {
		return "", err
	}
	return svc.Issue(testutil.TestClientID, testutil.TestTenantID, []string{auth.ScopeAdmin})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func TestHealthCheck(t *testing.T) {
	resp, err := http.Get(gatewayURL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestUnauthenticatedRejected(t *testing.T) {
	resp, err := http.Post(gatewayURL+"/api/v1/iban/validate", "application/json", strings.NewReader(`{"iban":"x"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidateIBAN(t *testing.T) {
	body := postJSON(t, "/api/v1/iban/validate", map[string]string{"iban": "DE89 3704 0044 0532 0130 00"}, http.StatusOK)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "DE89 3704 0044 0532 0130 00", body["friendly"])

	body = postJSON(t, "/api/v1/iban/validate", map[string]string{"iban": testutil.BadChecksumIBAN}, http.StatusOK)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "WrongIBANChecksum", firstReason(t, body))
}

func TestQRIBANPolicy(t *testing.T) {
	body := postJSON(t, "/api/v1/iban/validate", map[string]interface{}{
		"iban":          testutil.ValidSwissQRIBAN,
		"allow_qr_iban": false,
	}, http.StatusOK)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "QRIBANNotAllowed", firstReason(t, body))
}

func TestComposeAndExtract(t *testing.T) {
	composed := postJSON(t, "/api/v1/iban/compose", map[string]string{
		"country_code": "DE",
		"bban":         testutil.GermanBBAN,
	}, http.StatusOK)
	require.Equal(t, true, composed["composed"])
	assert.Equal(t, testutil.ValidGermanIBAN, composed["iban"])

	extracted := postJSON(t, "/api/v1/iban/extract", map[string]string{"iban": testutil.ValidBritishIBAN}, http.StatusOK)
	assert.Equal(t, true, extracted["valid"])
	assert.Equal(t, "NWBK", extracted["bank_identifier"])
	assert.Equal(t, "601613", extracted["branch_identifier"])
	assert.Equal(t, "31926819", extracted["account_number"])
}

func TestComposeUnknownCountry(t *testing.T) {
	postJSON(t, "/api/v1/iban/compose", map[string]string{"country_code": "1X", "bban": "123"}, http.StatusBadRequest)
}

func TestValidateBBANAndBIC(t *testing.T) {
	bban := postJSON(t, "/api/v1/bban/validate", map[string]string{"country_code": "NO", "bban": "86011117947"}, http.StatusOK)
	assert.Equal(t, true, bban["valid"])

	bic := postJSON(t, "/api/v1/bic/validate", map[string]string{"bic": testutil.ValidTestBIC}, http.StatusOK)
	assert.Equal(t, true, bic["valid"])
	assert.Equal(t, true, bic["test_bic"])
}

func TestListCountries(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, gatewayURL+"/api/v1/countries?sepa_only=true", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Countries []struct {
			Code string `json:"code"`
			SEPA bool   `json:"sepa"`
		} `json:"countries"`
		TotalCount int `json:"total_count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, len(body.Countries), body.TotalCount)
	assert.NotEmpty(t, body.Countries)
	for _, c := range body.Countries {
		assert.True(t, c.SEPA, c.Code)
	}
}

func TestScreenPayment(t *testing.T) {
	msg := iso20022.CreditTransferInitiation{
		Header: iso20022.MessageHeader{MessageID: "E2E-1", CreationDate: time.Now().UTC(), InitiatingParty: "E2E"},
		PaymentInfo: []iso20022.PaymentInstructionInfo{{
			PaymentInfoID: "PMT-1",
			DebtorName:    "Debtor",
			DebtorAccount: testutil.ValidGermanIBAN,
			DebtorAgent:   testutil.ValidBIC,
			Transactions: []iso20022.CreditTransferTransaction{{
				EndToEndID:      "E2E-TX-1",
				Amount:          "10.00",
				Currency:        "EUR",
				CreditorName:    "Creditor",
				CreditorAccount: testutil.BadChecksumIBAN,
			}},
		}},
	}
	doc, err := msg.ToXML()
	require.NoError(t, err)

	body := postJSON(t, "/api/v1/payments/screen", map[string]string{"document": string(doc)}, http.StatusOK)
	assert.Equal(t, "pain.001.001.12", body["message_type"])
	assert.Equal(t, false, body["clean"])
}

func postJSON(t *testing.T, path string, payload interface{}, wantStatus int) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, gatewayURL+path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func firstReason(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	reasons, ok := body["reasons"].([]interface{})
	require.True(t, ok, "reasons missing: %v", body)
	require.NotEmpty(t, reasons)
	return reasons[0].(map[string]interface{})["name"].(string)
}
