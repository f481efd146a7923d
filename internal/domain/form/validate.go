package form

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError is a client-facing rule violation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ValidateDefinition checks a field list before it is persisted.
func ValidateDefinition(fields []FieldInput, sectionCount int) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f.FieldName)
		if name == "" {
			return invalid("fields[%d]: field_name is required", i)
		}
		if strings.TrimSpace(f.FieldLabel) == "" {
			return invalid("fields[%d]: field_label is required", i)
		}
		if !f.FieldType.Known() {
			return invalid("fields[%d]: unknown field_type %q", i, f.FieldType)
		}
		if seen[name] {
			return invalid("duplicate field_name %q", name)
		}
		seen[name] = true

		if f.SectionIndex != nil && (*f.SectionIndex < 0 || *f.SectionIndex >= sectionCount) {
			return invalid("field %q: section_index out of range", name)
		}
		if f.FieldType.IsGrid() {
			if f.GridOptions == nil || len(f.GridOptions.Rows) == 0 || len(f.GridOptions.Columns) == 0 {
				return invalid("field %q: grid fields need at least one row and one column", name)
			}
		}
		if f.FieldType.IsChoice() && len(f.Options) == 0 {
			return invalid("field %q: choice fields need at least one option", name)
		}
		if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
			return invalid("field %q: min_length exceeds max_length", name)
		}
		if f.Pattern != nil && *f.Pattern != "" {
			if _, err := regexp.Compile(*f.Pattern); err != nil {
				return invalid("field %q: invalid pattern", name)
			}
		}
	}
	return nil
}

// ValidateAnswers checks answers against the form's active fields. Required-field and
// format rules are only enforced when the response is being submitted.
func ValidateAnswers(fields []FormField, answers []FieldResponseInput, submitting bool) error {
	byID := make(map[uint]FormField, len(fields))
	for _, f := range fields {
		if f.IsActive {
			byID[f.ID] = f
		}
	}

	answered := make(map[uint]bool, len(answers))
	for _, a := range answers {
		f, ok := byID[a.FieldID]
		if !ok {
			return invalid("unknown field_id %d", a.FieldID)
		}
		if answered[a.FieldID] {
			return invalid("field %q answered more than once", f.FieldName)
		}
		if a.FieldValue != nil && len(a.FieldValues) > 0 {
			return invalid("field %q accepts either field_value or field_values", f.FieldName)
		}
		if !hasAnswer(a) {
			continue
		}
		answered[a.FieldID] = true
		if submitting && a.FieldValue != nil {
			if err := checkScalar(f, *a.FieldValue); err != nil {
				return err
			}
		}
	}

	if !submitting {
		return nil
	}
	var missing []string
	for _, f := range byID {
		if f.IsRequired && !answered[f.ID] {
			missing = append(missing, f.FieldName)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

func hasAnswer(a FieldResponseInput) bool {
	if a.FieldValue != nil {
		return strings.TrimSpace(*a.FieldValue) != ""
	}
	v := strings.TrimSpace(string(a.FieldValues))
	return v != "" && v != "null" && v != "[]" && v != "{}"
}

func checkScalar(f FormField, v string) error {
	n := utf8.RuneCountInString(v)
	if f.MinLength != nil && n < *f.MinLength {
		return invalid("field %q must be at least %d characters", f.FieldName, *f.MinLength)
	}
	if f.MaxLength != nil && n > *f.MaxLength {
		return invalid("field %q must be at most %d characters", f.FieldName, *f.MaxLength)
	}
	if f.Pattern != nil && *f.Pattern != "" {
		re, err := regexp.Compile(*f.Pattern)
		if err == nil && !re.MatchString(v) {
			return invalid("field %q has an invalid format", f.FieldName)
		}
	}
	if (f.FieldType == FieldTypeSelect || f.FieldType == FieldTypeRadio) && len(f.Options) > 0 {
		for _, o := range f.Options {
			if o.IsActive && o.OptionType == OptionTypeStandard && o.OptionValue == v {
				return nil
			}
		}
		return invalid("field %q: %q is not a valid option", f.FieldName, v)
	}
	return nil
}
