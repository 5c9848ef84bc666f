package dawa

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports missing fields by their JSON name rather than the Go one.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeResponse turns a registry status and body into address records.
//
// Any status other than 200 yields a *RegistryError carrying the raw body.
// A 200 body must be a JSON array of records with every required field
// present; otherwise a *DecodeError is returned and no records at all.
// Records keep the order the registry sent them in.
func DecodeResponse(status int, body []byte) ([]Address, error) {
	if status != http.StatusOK {
		return nil, &RegistryError{StatusCode: status, Body: string(body)}
	}

	var wire []wireAddress
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if wire == nil {
		// A literal null is not an array.
		return nil, &DecodeError{Err: errors.New("response body is not a JSON array")}
	}

	addrs := make([]Address, 0, len(wire))
	for i := range wire {
		if err := validate.Struct(&wire[i]); err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("record %d: %w", i, describeValidation(err))}
		}
		addrs = append(addrs, wire[i].toAddress())
	}
	return addrs, nil
}

// describeValidation rewrites validator errors into "missing required field"
// messages keyed by JSON name.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%q", fe.Field()))
	}
	return fmt.Errorf("missing required field(s) %s", strings.Join(fields, ", "))
}
