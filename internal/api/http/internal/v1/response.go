package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type messageResponse struct {
	Message string `json:"message"`
}

func errorResponse(c *gin.Context, code ErrorCode) {
	c.AbortWithStatusJSON(http.StatusBadRequest, getErrorStruct(code))
}

func errorStatusResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

func internalErrorResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, getErrorStruct(UnknownErrorCode))
}

// validationErrorResponse reports binding failures. Errors that are not field
// validation errors (malformed JSON, wrong types) get an empty field list.
func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       []ValidationError{},
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		response.Errors = out
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "این فیلد الزامی است"
	case "email":
		return "فرمت ایمیل نادرست است"
	case "number", "numeric":
		return "این فیلد باید عددی باشد"
	case "min":
		return fmt.Sprintf("حداقل مقدار این فیلد %v است", value)
	case "max":
		return fmt.Sprintf("حداکثر مقدار این فیلد %v است", value)
	case "len":
		return fmt.Sprintf("طول این فیلد باید %v باشد", value)
	case "eqfield":
		return "تکرار رمز عبور با رمز عبور یکسان نیست"
	case "phonenumber":
		return "شماره موبایل باید با 09 شروع شود و 11 رقم باشد"
	case "username":
		return "نام کاربری فقط شامل حروف انگلیسی، عدد و _ و بین 3 تا 150 کاراکتر است"
	case "uuid":
		return "شناسه نامعتبر است"
	}
	return tag
}
