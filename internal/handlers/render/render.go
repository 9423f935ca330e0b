package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report on 'TagName' json tag instead of struct name
	// Look at documentation of 'RegisterTagNameFunc' for more details
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		// skip if tag key says it should be ignored
		if name == "-" {
			return ""
		}
		return name
	})
}

type Struct any

// ErrorResponse is the single error payload shape the API produces.
// Details carries the request URI the error happened on.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

func JSON(w http.ResponseWriter, data any) {
	jsonWithStatus(w, data, http.StatusOK)
}

// Created sets the Location header and responds with 201 and no body
func Created(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// Error renders the error payload with the given status code
func Error(w http.ResponseWriter, r *http.Request, message string, code int) {
	response := ErrorResponse{
		Message: message,
		Details: "uri=" + r.URL.Path,
	}

	jsonWithStatus(w, response, code)
}

// DecodeError renders a 400 for malformed request bodies
func DecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var message string

	// Try to provide more specific error message based on error type
	switch err := err.(type) {
	case *json.UnmarshalTypeError:
		message = fmt.Sprintf("Invalid data type for field '%s'", err.Field)
	default:
		message = fmt.Sprintf("Failed to parse JSON: %s", err.Error())
	}

	Error(w, r, message, http.StatusBadRequest)
}

// ValidationErrors renders a 400 naming the first failing field
func ValidationErrors(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors) {
	fields := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		fields = append(fields, fieldError.Field())
	}

	message := fmt.Sprintf("Request validation failed for fields: %s", strings.Join(fields, ", "))
	Error(w, r, message, http.StatusBadRequest)
}

// BindAndValidate decodes JSON request body into type T and validates it using struct tags.
// Returns the decoded value and writes appropriate error responses for decoding or validation failures.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, r, err)
		return value, err
	}

	err = validate.Struct(value)
	if err != nil {
		// pretty sure cast will be ok cause expecting T is valid struct
		errs := err.(validator.ValidationErrors)
		ValidationErrors(w, r, errs)
		return value, err
	}

	return value, nil
}

// jsonWithStatus sends data as json and enforces status code
func jsonWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}
