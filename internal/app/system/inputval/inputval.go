// Package inputval validates request bodies for the content API.
//
// Rules are expressed with ozzo-validation. Validate* functions return a
// Result whose entries are sorted by field name, so the first message is
// stable across runs.
package inputval

import (
	"sort"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects the failures of one validation pass.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// First returns the first message, or "" when valid.
func (r *Result) First() string {
	if !r.HasErrors() {
		return ""
	}
	return r.Errors[0].Message
}

// FirstField returns the field of the first failure, or "".
func (r *Result) FirstField() string {
	if !r.HasErrors() {
		return ""
	}
	return r.Errors[0].Field
}

// All joins every message with "; ".
func (r *Result) All() string {
	if !r.HasErrors() {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// FromError converts an ozzo error into a Result. Non-validation errors
// become a single entry without a field.
func FromError(err error) *Result {
	if err == nil {
		return &Result{}
	}
	verrs, ok := err.(validation.Errors)
	if !ok {
		return &Result{Errors: []FieldError{{Message: err.Error()}}}
	}
	fields := make([]string, 0, len(verrs))
	for k := range verrs {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	res := &Result{}
	for _, f := range fields {
		res.Errors = append(res.Errors, FieldError{
			Field:   f,
			Message: f + " " + verrs[f].Error(),
		})
	}
	return res
}

// IsValidHTTPURL reports whether s is an absolute http(s) URL.
func IsValidHTTPURL(s string) bool {
	return urlutil.IsValidAbsHTTPURL(strings.TrimSpace(s))
}

// HTTPURL is a rule accepting empty strings and absolute http(s) URLs.
var HTTPURL = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" || IsValidHTTPURL(s) {
		return nil
	}
	return validation.NewError("validation_is_http_url", "must be an absolute http(s) URL")
})

var required = validation.Required.Error("is required")

func oneOf(values []string) validation.InRule {
	in := make([]interface{}, len(values))
	for i, v := range values {
		in[i] = v
	}
	return validation.In(in...).Error("must be one of: " + strings.Join(values, ", "))
}

// Project checks a project about to be created. Status may be empty; the
// store fills in the default.
func Project(p models.Project) *Result {
	return FromError(validation.ValidateStruct(&p,
		validation.Field(&p.Title, required, validation.Length(1, 200)),
		validation.Field(&p.Status, oneOf(models.ProjectStatuses)),
		validation.Field(&p.Position, validation.Min(0)),
		validation.Field(&p.GithubLink, HTTPURL),
		validation.Field(&p.LiveLink, HTTPURL),
		validation.Field(&p.PlaystoreLink, HTTPURL),
	))
}

// ProjectPatch checks the fields present in a project update.
func ProjectPatch(p models.ProjectPatch) *Result {
	res := &Result{}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		res.Errors = append(res.Errors, FieldError{Field: "title", Message: "title is required"})
	}
	if p.Status != nil && *p.Status != "" {
		if err := oneOf(models.ProjectStatuses).Validate(*p.Status); err != nil {
			res.Errors = append(res.Errors, FieldError{Field: "status", Message: "status " + err.Error()})
		}
	}
	for field, link := range map[string]*string{
		"githubLink":    p.GithubLink,
		"liveLink":      p.LiveLink,
		"playstoreLink": p.PlaystoreLink,
	} {
		if link != nil && *link != "" && !IsValidHTTPURL(*link) {
			res.Errors = append(res.Errors, FieldError{Field: field, Message: field + " must be an absolute http(s) URL"})
		}
	}
	sort.Slice(res.Errors, func(i, j int) bool { return res.Errors[i].Field < res.Errors[j].Field })
	return res
}

// NotableProject checks a featured project about to be created.
func NotableProject(p models.NotableProject) *Result {
	return FromError(validation.ValidateStruct(&p,
		validation.Field(&p.Title, required, validation.Length(1, 200)),
		validation.Field(&p.GithubLink, HTTPURL),
		validation.Field(&p.LiveLink, HTTPURL),
		validation.Field(&p.PlaystoreLink, HTTPURL),
	))
}

// Experience checks an experience entry about to be created.
func Experience(e models.Experience) *Result {
	return FromError(validation.ValidateStruct(&e,
		validation.Field(&e.Title, required),
		validation.Field(&e.Company, required),
		validation.Field(&e.StartDate, required),
		validation.Field(&e.CompanyURL, HTTPURL),
	))
}

// Responsibility checks a new position of responsibility.
func Responsibility(r models.Responsibility) *Result {
	return FromError(validation.ValidateStruct(&r,
		validation.Field(&r.Title, required),
		validation.Field(&r.Organization, required),
		validation.Field(&r.Duration, required),
		validation.Field(&r.Type, required, oneOf(models.ResponsibilityTypes)),
	))
}

// Education checks a full education document. Both lists must be present.
func Education(d models.EducationDoc) *Result {
	res := &Result{}
	if d.EducationData == nil {
		res.Errors = append(res.Errors, FieldError{Field: "educationData", Message: "educationData is required"})
	}
	if d.ResponsibilitiesData == nil {
		res.Errors = append(res.Errors, FieldError{Field: "responsibilitiesData", Message: "responsibilitiesData is required"})
	}
	for _, item := range d.ResponsibilitiesData {
		if item.Type == "" {
			continue
		}
		if err := oneOf(models.ResponsibilityTypes).Validate(item.Type); err != nil {
			res.Errors = append(res.Errors, FieldError{Field: "responsibilitiesData", Message: "responsibility type " + err.Error()})
			break
		}
	}
	return res
}

// Skills checks a full skills document. All four lists must be present.
func Skills(d models.SkillsDoc) *Result {
	res := &Result{}
	lists := []struct {
		field string
		items []models.SkillItem
	}{
		{"frameworks", d.Frameworks},
		{"languages", d.Languages},
		{"softSkills", d.SoftSkills},
		{"tools", d.Tools},
	}
	for _, l := range lists {
		if l.items == nil {
			res.Errors = append(res.Errors, FieldError{Field: l.field, Message: l.field + " is required"})
		}
	}
	return res
}

// SkillItem checks one skill item operation.
func SkillItem(skillType string, item models.SkillItem) *Result {
	res := &Result{}
	if _, ok := models.SkillField(skillType); !ok {
		res.Errors = append(res.Errors, FieldError{Field: "type", Message: "type must be one of: " + strings.Join(models.SkillTypes, ", ")})
	}
	if strings.TrimSpace(item.Name) == "" {
		res.Errors = append(res.Errors, FieldError{Field: "name", Message: "name is required"})
	}
	return res
}
