package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/AbdelwaliNour/Hospital/pkg/api"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: Error Response Structure
// Every rejected request carries a machine-readable code and a message
func TestProperty_ErrorResponseStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ts := newTestServer(t)

	type scenario struct {
		method string
		path   string
		body   interface{}
		status int
		code   string
	}
	scenarios := map[string]scenario{
		"invalid_json_appointment": {http.MethodPost, "/api/appointments", `{invalid json`, http.StatusBadRequest, api.CodeValidationError},
		"json_array_appointment":   {http.MethodPost, "/api/appointments", `[1,2,3]`, http.StatusBadRequest, api.CodeValidationError},
		"unknown_field_update":     {http.MethodPatch, "/api/appointments/1", `{"id":7}`, http.StatusBadRequest, api.CodeValidationError},
		"bad_path_id":              {http.MethodGet, "/api/patients/abc", nil, http.StatusBadRequest, api.CodeValidationError},
		"unknown_window":           {http.MethodGet, "/api/visits/history?window=lastYear", nil, http.StatusBadRequest, api.CodeValidationError},
		"malformed_report_id":      {http.MethodGet, "/api/reports/report-1", nil, http.StatusBadRequest, api.CodeValidationError},
		"missing_appointment":      {http.MethodGet, "/api/appointments/404", nil, http.StatusNotFound, api.CodeNotFound},
		"missing_patient_vitals":   {http.MethodGet, "/api/patients/77/vitals", nil, http.StatusNotFound, api.CodeNotFound},
	}

	properties.Property("error responses carry a code and a message", prop.ForAll(
		func(name string) bool {
			sc := scenarios[name]
			w := ts.do(sc.method, sc.path, sc.body)

			if w.Code != sc.status {
				t.Logf("scenario %s: expected status %d, got %d", name, sc.status, w.Code)
				return false
			}
			var errorResp api.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &errorResp); err != nil {
				t.Logf("scenario %s: failed to parse error response: %v, body: %s", name, err, w.Body.String())
				return false
			}
			if errorResp.Code != sc.code {
				t.Logf("scenario %s: expected code %q, got %q", name, sc.code, errorResp.Code)
				return false
			}
			if errorResp.Message == "" {
				t.Logf("scenario %s: error response missing message", name)
				return false
			}
			return true
		},
		gen.OneConstOf(
			"invalid_json_appointment",
			"json_array_appointment",
			"unknown_field_update",
			"bad_path_id",
			"unknown_window",
			"malformed_report_id",
			"missing_appointment",
			"missing_patient_vitals",
		),
	))

	properties.TestingRun(t)
}

// Property: Request Validation Completeness
// Out-of-range values are rejected with a field error naming the offending input
func TestProperty_RequestValidationCompleteness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ts := newTestServer(t)

	properties.Property("invalid inputs are rejected with field errors", prop.ForAll(
		func(kind string, n int) bool {
			var method, path, field string
			var body interface{}
			switch kind {
			case "heart_rate_too_high":
				method, path, field = http.MethodPost, "/api/patients/1/health-metrics", "heartRate"
				body = map[string]interface{}{"heartRate": 251 + n}
			case "sleep_negative":
				method, path, field = http.MethodPost, "/api/patients/1/health-metrics", "sleepHours"
				body = map[string]interface{}{"sleepHours": -1 - n}
			case "negative_page":
				method, path, field = http.MethodGet, fmt.Sprintf("/api/visits/history?page=%d", -1-n), "page"
			case "negative_page_size":
				method, path, field = http.MethodGet, fmt.Sprintf("/api/visits/history?pageSize=%d", -1-n), "pageSize"
			case "non_positive_doctor":
				method, path, field = http.MethodPost, "/api/appointments", "doctorId"
				body = map[string]interface{}{"patientId": 1, "doctorId": -n, "date": "2018-04-06", "time": "09:00 AM"}
			default:
				return true
			}

			w := ts.do(method, path, body)
			if w.Code != http.StatusBadRequest {
				t.Logf("%s: expected 400, got %d: %s", kind, w.Code, w.Body.String())
				return false
			}

			var errorResp api.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &errorResp); err != nil {
				t.Logf("%s: failed to parse error response: %v", kind, err)
				return false
			}
			if errorResp.Code != api.CodeValidationError || errorResp.Errors == nil {
				t.Logf("%s: unexpected error response %s", kind, w.Body.String())
				return false
			}
			for _, f := range *errorResp.Errors {
				if f.Field == field && f.Message != "" {
					return true
				}
			}
			t.Logf("%s: no field error for %q in %s", kind, field, w.Body.String())
			return false
		},
		gen.OneConstOf(
			"heart_rate_too_high",
			"sleep_negative",
			"negative_page",
			"negative_page_size",
			"non_positive_doctor",
		),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
