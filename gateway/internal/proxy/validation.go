package proxy

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
)

// ValidationHealthService is the health name the validation service serves.
const ValidationHealthService = "ibankit.validation.v1.ValidationService"

const validationService = "/" + ValidationHealthService + "/"

// ValidationProxy proxies HTTP requests to the validation gRPC service.
type ValidationProxy struct {
	conn   *ServiceConn
	logger *slog.Logger
}

// NewValidationProxy creates a new validation service proxy.
func NewValidationProxy(conn *ServiceConn, logger *slog.Logger) *ValidationProxy {
	return &ValidationProxy{conn: conn, logger: logger}
}

// Conn returns the backend connection, which may be nil.
func (p *ValidationProxy) Conn() *ServiceConn {
	return p.conn
}

// --- Request types matching the validation service handler ---

type ibanReq struct {
	IBAN        string `json:"iban"`
	AllowQRIBAN *bool  `json:"allow_qr_iban,omitempty"`
}

type bbanReq struct {
	BBAN        string `json:"bban"`
	CountryCode string `json:"country_code"`
}

type composeReq struct {
	CountryCode string `json:"country_code"`
	BBAN        string `json:"bban"`
}

type bicReq struct {
	BIC string `json:"bic"`
}

type listCountriesReq struct {
	SEPAOnly    bool   `json:"sepa_only"`
	IBANOnly    bool   `json:"iban_only"`
	CountryCode string `json:"country_code,omitempty"`
}

type screenReq struct {
	Document    string `json:"document"`
	AllowQRIBAN *bool  `json:"allow_qr_iban,omitempty"`
}

// forward reads a JSON body into req, calls method and writes the backend
// response through unchanged.
func (p *ValidationProxy) forward(w http.ResponseWriter, r *http.Request, method string, req interface{}) {
	if err := readJSON(r, req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.call(w, r, method, req)
}

func (p *ValidationProxy) call(w http.ResponseWriter, r *http.Request, method string, req interface{}) {
	var resp json.RawMessage
	if err := p.conn.Invoke(outgoingContext(r), validationService+method, req, &resp); err != nil {
		handleGRPCError(w, err, p.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ValidateIBAN handles POST /api/v1/iban/validate.
func (p *ValidationProxy) ValidateIBAN(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, "ValidateIBAN", &ibanReq{})
}

// ExtractIBAN handles POST /api/v1/iban/extract.
func (p *ValidationProxy) ExtractIBAN(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, "ExtractIBAN", &ibanReq{})
}

// ComposeIBAN handles POST /api/v1/iban/compose.
func (p *ValidationProxy) ComposeIBAN(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, "ComposeIBAN", &composeReq{})
}

// ValidateBBAN handles POST /api/v1/bban/validate.
func (p *ValidationProxy) ValidateBBAN(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, "ValidateBBAN", &bbanReq{})
}

// ValidateBIC handles POST /api/v1/bic/validate.
func (p *ValidationProxy) ValidateBIC(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, "ValidateBIC", &bicReq{})
}

// ListCountries handles GET /api/v1/countries?sepa_only=&iban_only=&country=.
func (p *ValidationProxy) ListCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := listCountriesReq{CountryCode: strings.TrimSpace(q.Get("country"))}

	var err error
	if req.SEPAOnly, err = queryBool(q.Get("sepa_only")); err != nil {
		writeError(w, http.StatusBadRequest, "sepa_only: "+err.Error())
		return
	}
	if req.IBANOnly, err = queryBool(q.Get("iban_only")); err != nil {
		writeError(w, http.StatusBadRequest, "iban_only: "+err.Error())
		return
	}
	p.call(w, r, "ListCountries", &req)
}

// ScreenPayment handles POST /api/v1/payments/screen. The body is either a
// JSON envelope or the raw ISO 20022 XML document.
func (p *ValidationProxy) ScreenPayment(w http.ResponseWriter, r *http.Request) {
	if !isXML(r.Header.Get("Content-Type")) {
		p.forward(w, r, "ScreenPaymentMessage", &screenReq{})
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("read body: %v", err))
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}
	if len(body) > maxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxBodyBytes))
		return
	}

	req := screenReq{Document: string(body)}
	if v := r.URL.Query().Get("allow_qr_iban"); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "allow_qr_iban: "+err.Error())
			return
		}
		req.AllowQRIBAN = &allow
	}
	p.call(w, r, "ScreenPaymentMessage", &req)
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

func isXML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/xml" || mediaType == "text/xml" || strings.HasSuffix(mediaType, "+xml")
}
