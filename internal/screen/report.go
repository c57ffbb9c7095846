package screen

import (
	"errors"

	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

// Severity tells how an outcome is shown to the user.
type Severity string

const (
	SeveritySilent  Severity = "silent"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice is a dialog-ready description of an operation outcome.
type Notice struct {
	Severity Severity
	Title    string
	Message  string
}

// Success describes a completed operation.
func Success(message string) Notice {
	return Notice{Severity: SeverityInfo, Title: "Success", Message: message}
}

// Report classifies an operation error. Validation and duplicate failures are
// warnings raised before any network call, gateway and transport failures are
// errors, and a declined confirmation is silent.
func Report(err error) Notice {
	if err == nil {
		return Notice{Severity: SeveritySilent}
	}
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		return Notice{Severity: SeverityError, Title: "Error", Message: err.Error()}
	}

	switch {
	case errors.Is(err, appErrors.ErrAborted):
		return Notice{Severity: SeveritySilent}
	case appErrors.IsValidation(err):
		return Notice{Severity: SeverityWarning, Title: "Validation", Message: appErr.Message}
	case errors.Is(err, appErrors.ErrDuplicate):
		return Notice{Severity: SeverityWarning, Title: "Duplicate", Message: appErr.Message}
	case errors.Is(err, appErrors.ErrForbidden):
		return Notice{Severity: SeverityWarning, Title: "Permission", Message: appErr.Message}
	case errors.Is(err, appErrors.ErrInvalidState):
		return Notice{Severity: SeverityWarning, Title: "Invalid operation", Message: appErr.Message}
	case errors.Is(err, appErrors.ErrGateway):
		return Notice{Severity: SeverityError, Title: "API error", Message: appErr.Message}
	default:
		return Notice{Severity: SeverityError, Title: "Error", Message: err.Error()}
	}
}
