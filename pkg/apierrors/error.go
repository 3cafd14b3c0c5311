package apierrors

import (
	"fmt"

	"taskmanager/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every anticipated failure.
type ErrorResponse struct {
	ErrorNumber      ErrorNumber `json:"errorNumber"`
	ErrorDescription string      `json:"errorDescription"`
	ParameterName    *string     `json:"parameterName"`
	ParameterValue   *string     `json:"parameterValue"`
}

// Error implements the error interface for ErrorResponse.
func (e ErrorResponse) Error() string {
	if e.ParameterName == nil {
		return fmt.Sprintf("Number: %d, Description: %s", e.ErrorNumber, e.ErrorDescription)
	}
	return fmt.Sprintf("Number: %d, Description: %s, Parameter: %s", e.ErrorNumber, e.ErrorDescription, *e.ParameterName)
}

// CreateError builds an ErrorResponse that is not tied to a parameter.
func CreateError(number ErrorNumber, lang string) ErrorResponse {
	return ErrorResponse{
		ErrorNumber:      number,
		ErrorDescription: GetTransErrorMsg(number, lang),
	}
}

// CreateParamError builds an ErrorResponse naming the offending parameter.
// A nil value is serialized as null.
func CreateParamError(number ErrorNumber, lang, paramName string, paramValue *string) ErrorResponse {
	resp := CreateError(number, lang)
	resp.ParameterName = &paramName
	if paramValue != nil {
		value := *paramValue
		resp.ParameterValue = &value
	}
	return resp
}

// GetTransErrorMsg retrieves the translated description for number, falling
// back to the English text.
func GetTransErrorMsg(number ErrorNumber, lang string) string {
	desc, ok := descriptions[number]
	if !ok {
		return fmt.Sprintf("unknown error %d", number)
	}
	if translator.Translator == nil {
		return desc.english
	}

	l := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: desc.msgKey, Other: desc.english},
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", desc.msgKey), zap.Error(err))
		return desc.english
	}
	return msg
}
