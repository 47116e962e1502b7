package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strings"

	structvalidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Rule kinds accepted in a RuleDef.
const (
	KindRequired      = "required"
	KindEmail         = "email"
	KindMinLength     = "min_length"
	KindMaxLength     = "max_length"
	KindAlphanumeric  = "alphanumeric"
	KindAlphabetic    = "alphabetic"
	KindNumeric       = "numeric"
	KindPhone         = "phone"
	KindRegionalPhone = "regional_phone"
	KindURL           = "url"
	KindPassword      = "password"
	KindPattern       = "pattern"
	KindExpression    = "expression"
	KindOneOf         = "one_of"
	KindNoneOf        = "none_of"
	KindSlug          = "slug"
	KindDomain        = "domain"
	KindUUID          = "uuid"
	KindCreditCard    = "credit_card"
	KindNumberRange   = "number_range"
	KindDate          = "date"
)

// Document is a set of field definitions, usually one per form.
type Document struct {
	Fields []FieldDef `yaml:"fields" validate:"required,min=1,unique=Name,dive"`
}

// FieldDef describes one field: its rules and how it validates.
type FieldDef struct {
	Name       string    `yaml:"name" validate:"required"`
	RealTime   bool      `yaml:"real_time"`
	HelperText string    `yaml:"helper_text"`
	Rules      []RuleDef `yaml:"rules" validate:"dive"`
}

// RuleDef describes one rule. Which parameters apply depends on Kind.
type RuleDef struct {
	Kind string `yaml:"kind" validate:"required,oneof=required email min_length max_length alphanumeric alphabetic numeric phone regional_phone url password pattern expression one_of none_of slug domain uuid credit_card number_range date"`

	// Message replaces the catalog message. Required for pattern and expression.
	Message string `yaml:"message" validate:"required_if=Kind pattern,required_if=Kind expression"`
	// WhileEditing defaults to true.
	WhileEditing *bool `yaml:"while_editing"`

	// Value is the length for min_length and max_length (required there),
	// the minimum length for password and the version for uuid (0 accepts any
	// version).
	Value   int      `yaml:"value" validate:"required_if=Kind min_length,required_if=Kind max_length,gte=0"`
	Region  string   `yaml:"region" validate:"omitempty,len=2,alpha"`
	Pattern string   `yaml:"pattern" validate:"required_if=Kind pattern"`
	Expr    string   `yaml:"expr" validate:"required_if=Kind expression"`
	Options []string `yaml:"options" validate:"required_if=Kind one_of,required_if=Kind none_of"`
	// IgnoreCase makes one_of compare case-insensitively. none_of always does.
	IgnoreCase bool   `yaml:"ignore_case"`
	Layout     string `yaml:"layout"`

	// Min and Max bound number_range; an unset side is open.
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`

	// Numbers and Special toggle password requirements; both default to true.
	Numbers *bool `yaml:"numbers"`
	Special *bool `yaml:"special"`
}

var structs = newStructValidator()

func newStructValidator() *structvalidator.Validate {
	v := structvalidator.New(structvalidator.WithRequiredStructEnabled())
	// Report YAML keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parse decodes and checks a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the document's structure and that every rule can be built.
func (d *Document) Validate() error {
	if err := structs.Struct(d); err != nil {
		return errors.Join(ErrInvalidDocument, err)
	}
	for _, f := range d.Fields {
		if _, err := f.RuleSet(); err != nil {
			return err
		}
	}
	return nil
}

// Field looks a definition up by name.
func (d *Document) Field(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Controllers builds a controller per field, in document order.
// opts are applied to every controller after the field's own settings.
func (d *Document) Controllers(opts ...field.Option) ([]*field.Controller, error) {
	out := make([]*field.Controller, 0, len(d.Fields))
	for _, f := range d.Fields {
		c, err := f.Controller(opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// RuleSet builds the field's rules in the order they are listed.
func (f FieldDef) RuleSet() (validator.RuleSet, error) {
	rules := make(validator.RuleSet, 0, len(f.Rules))
	for i, def := range f.Rules {
		r, err := def.Rule()
		if err != nil {
			return nil, fmt.Errorf("field %q rule %d: %w", f.Name, i, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Controller builds a controller configured from the definition.
func (f FieldDef) Controller(opts ...field.Option) (*field.Controller, error) {
	rules, err := f.RuleSet()
	if err != nil {
		return nil, err
	}

	base := []field.Option{
		field.WithName(f.Name),
		field.WithRealTime(f.RealTime),
		field.WithHelperText(f.HelperText),
	}
	return field.NewController(rules, append(base, opts...)...), nil
}

// Rule builds the catalog rule the definition describes.
func (d RuleDef) Rule() (validator.Rule, error) {
	var opts []validator.RuleOption
	if d.Message != "" {
		opts = append(opts, validator.WithMessage(d.Message))
	}
	if d.WhileEditing != nil {
		opts = append(opts, validator.WhileEditing(*d.WhileEditing))
	}

	switch d.Kind {
	case KindRequired:
		return validator.Required(opts...), nil
	case KindEmail:
		return validator.Email(opts...), nil
	case KindMinLength, KindMaxLength:
		if d.Value <= 0 {
			return validator.Rule{}, fmt.Errorf("%w: %s needs a positive value", ErrInvalidRule, d.Kind)
		}
		if d.Kind == KindMinLength {
			return validator.MinLength(d.Value, opts...), nil
		}
		return validator.MaxLength(d.Value, opts...), nil
	case KindAlphanumeric:
		return validator.Alphanumeric(opts...), nil
	case KindAlphabetic:
		return validator.Alphabetic(opts...), nil
	case KindNumeric:
		return validator.Numeric(opts...), nil
	case KindPhone:
		return validator.PhoneNumber(opts...), nil
	case KindRegionalPhone:
		return validator.RegionalPhoneNumber(d.Region, opts...), nil
	case KindURL:
		return validator.URL(opts...), nil
	case KindPassword:
		return validator.Password(d.passwordPolicy(), opts...), nil
	case KindPattern:
		r, err := validator.Matches(d.Pattern, d.Message, opts...)
		if err != nil {
			return validator.Rule{}, errors.Join(ErrInvalidRule, err)
		}
		return r, nil
	case KindExpression:
		r, err := validator.Expression(d.Expr, d.Message, opts...)
		if err != nil {
			return validator.Rule{}, errors.Join(ErrInvalidRule, err)
		}
		return r, nil
	case KindOneOf:
		if d.IgnoreCase {
			return validator.OneOfFold(d.Options, opts...), nil
		}
		return validator.OneOf(d.Options, opts...), nil
	case KindNoneOf:
		return validator.NoneOf(d.Options, opts...), nil
	case KindSlug:
		return validator.Slug(opts...), nil
	case KindDomain:
		return validator.DomainName(opts...), nil
	case KindUUID:
		if d.Value > 0 {
			return validator.UUIDVersion(d.Value, opts...), nil
		}
		return validator.UUID(opts...), nil
	case KindCreditCard:
		return validator.CreditCard(opts...), nil
	case KindNumberRange:
		lo, hi := math.Inf(-1), math.Inf(1)
		if d.Min != nil {
			lo = *d.Min
		}
		if d.Max != nil {
			hi = *d.Max
		}
		if lo > hi {
			return validator.Rule{}, fmt.Errorf("%w: min %g is greater than max %g", ErrInvalidRule, lo, hi)
		}
		return validator.NumberRange(lo, hi, opts...), nil
	case KindDate:
		return validator.Date(d.Layout, opts...), nil
	default:
		return validator.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRuleKind, d.Kind)
	}
}

func (d RuleDef) passwordPolicy() validator.PasswordPolicy {
	p := validator.DefaultPasswordPolicy()
	if d.Value > 0 {
		p.MinLength = d.Value
	}
	if d.Numbers != nil {
		p.RequireNumbers = *d.Numbers
	}
	if d.Special != nil {
		p.RequireSpecialChars = *d.Special
	}
	return p
}
