package httperr

import (
	"net/http"
	"reflect"
	"strings"

	"pickup-rsvp/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidBody marks request bodies that failed to decode or bind.
var ErrInvalidBody = errs.New("invalid request body")

// Response is the error body every endpoint returns.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError names a request field that failed a binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes resp for status and records err on the context so the
// request log carries the cause the caller never sees.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	abort(c, err, NewResponse(status, msg))
}

// AbortBinding rejects a body that did not bind. Validation failures list the
// offending fields by their JSON names.
func AbortBinding(c *gin.Context, err error) {
	resp := NewResponse(http.StatusBadRequest, "Invalid request")
	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
	}
	abort(c, errs.Mark(err, ErrInvalidBody), resp)
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// UseJSONFieldNames makes binding errors report json tag names instead of Go
// field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
