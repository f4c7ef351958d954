package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema names of request bodies
const (
	SchemaNewAppointment        = "NewAppointment"
	SchemaAppointmentUpdate     = "AppointmentUpdate"
	SchemaNewHealthMetric       = "NewHealthMetric"
	SchemaGenerateReportRequest = "GenerateReportRequest"
)

// Validator checks request bodies against the component schemas of the
// embedded OpenAPI document
type Validator struct {
	schemas openapi3.Schemas
}

// NewValidator loads the embedded document
func NewValidator() (*Validator, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	if doc.Components == nil {
		return nil, errors.New("openapi document has no components")
	}
	return &Validator{schemas: doc.Components.Schemas}, nil
}

// Validate checks body against the named schema and returns one FieldError
// per violation. An empty result means the body is valid.
func (v *Validator) Validate(schemaName string, body []byte) ([]FieldError, error) {
	ref, ok := v.schemas[schemaName]
	if !ok || ref.Value == nil {
		return nil, fmt.Errorf("unknown schema %q", schemaName)
	}

	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return []FieldError{{Field: "body", Message: "request body must be valid JSON"}}, nil
	}

	err := ref.Value.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil, nil
	}

	fieldErrors := flattenSchemaError(err)
	sort.SliceStable(fieldErrors, func(i, j int) bool { return fieldErrors[i].Field < fieldErrors[j].Field })
	return fieldErrors, nil
}

func flattenSchemaError(err error) []FieldError {
	switch e := err.(type) {
	case openapi3.MultiError:
		var out []FieldError
		for _, inner := range e {
			out = append(out, flattenSchemaError(inner)...)
		}
		return out
	case *openapi3.SchemaError:
		field := strings.Join(e.JSONPointer(), ".")
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: e.Reason}}
	default:
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
}
