package config

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"

	oerrors "github.com/adminkit/extmake/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks the configuration and returns ValidationErrors when invalid.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ValidationErrors{{Field: "config", Message: "configuration is missing"}}
	}

	var errs ValidationErrors

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, ValidationError{
				Field:   fieldPath(fe.Namespace()),
				Message: tagMessage(fe),
			})
		}
	}

	d := cfg.Extension.Default

	if d.Version != "" {
		if _, err := semver.StrictNewVersion(strings.TrimPrefix(d.Version, "v")); err != nil {
			errs = append(errs, ValidationError{
				Field:   "extension.default.version",
				Message: fmt.Sprintf("%q is not a semantic version", d.Version),
			})
		}
	}

	errs = append(errs, validatePaths("extension.default.dirs", d.Dirs)...)

	stubs := make([]string, 0, len(d.Files))
	for src := range d.Files {
		stubs = append(stubs, src)
	}
	sort.Strings(stubs)
	for _, src := range stubs {
		dst := d.Files[src]
		if dst == "" {
			continue
		}
		if !IsRelativePath(dst) {
			errs = append(errs, ValidationError{
				Field:   "extension.default.files." + src,
				Message: fmt.Sprintf("destination %q must stay inside the extension directory", dst),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsRelativePath reports whether p is a relative slash path that stays
// inside the directory it is joined to.
func IsRelativePath(p string) bool {
	p = strings.ReplaceAll(p, `\`, "/")
	if p == "" || strings.HasPrefix(p, "/") {
		return false
	}
	clean := path.Clean(p)
	return clean != ".." && !strings.HasPrefix(clean, "../")
}

func validatePaths(field string, paths []string) ValidationErrors {
	var errs ValidationErrors
	for i, p := range paths {
		if !IsRelativePath(p) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("directory %q must stay inside the extension directory", p),
			})
		}
	}
	return errs
}

// fieldPath turns "Config.Extension.Default.Authors[0].Email" into
// "extension.default.authors[0].email".
func fieldPath(ns string) string {
	ns = strings.TrimPrefix(ns, "Config.")
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return fmt.Sprintf("%q must be a valid email address", fe.Value())
	case "url":
		return fmt.Sprintf("%q must be a valid URL", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
