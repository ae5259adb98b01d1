package forge

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/materials"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so messages match what clients send
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateTemplate checks struct tags, then resolves every name against the
// catalog. All problems are reported together.
func (o *orchestrator) validateTemplate(tmpl *itemdef.Template) error {
	vb := errors.NewValidationBuilder()

	if err := o.validate.Struct(tmpl); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.Wrap(err, "failed to validate template")
		}
		for _, fe := range verrs {
			vb.Field(fieldPath(fe), tagMessage(fe))
		}
	}

	if !fitsInt32(tmpl.Amount) {
		vb.Field("amount", "is out of range")
	}
	if !fitsInt32(tmpl.Durability) {
		vb.Field("durability", "is out of range")
	}

	if tmpl.Material != "" {
		m, ok := o.catalog.Material(tmpl.Material)
		if !ok {
			vb.InvalidField("material", fmt.Sprintf("unknown material %q", tmpl.Material))
		} else if limit := materials.MaxDurability(m); limit > 0 && tmpl.Durability >= limit {
			// damage at the limit breaks the item
			vb.InvalidField("durability", fmt.Sprintf("must be below %d for %s", limit, tmpl.Material))
		}
	}

	if tmpl.AmountRoll != "" {
		if _, _, err := parseDiceNotation(tmpl.AmountRoll); err != nil {
			vb.InvalidField("amount_roll", errors.GetMessage(err))
		}
	}

	for i, name := range tmpl.Flags {
		if _, ok := itemdef.FlagFromString(name); !ok {
			vb.InvalidField(fmt.Sprintf("flags[%d]", i), fmt.Sprintf("unknown flag %q", name))
		}
	}

	for name, level := range tmpl.Enchantments {
		field := fmt.Sprintf("enchantments[%s]", name)
		if _, ok := o.catalog.Enchantment(name); !ok {
			vb.InvalidField(field, fmt.Sprintf("unknown enchantment %q", name))
			continue
		}
		if level <= 0 {
			vb.InvalidField(field, "level must be positive")
		}
	}

	return vb.Build()
}

func fitsInt32(n int) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

// fieldPath strips the struct name validator prefixes namespaces with
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must have at most %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return "is invalid"
	}
}
