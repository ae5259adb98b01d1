package v1alpha1

import (
	"time"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
)

// TemplateFromProto converts a wire template to the stored form
func TemplateFromProto(p *forgev1alpha1.Template) *itemdef.Template {
	if p == nil {
		return nil
	}

	tmpl := &itemdef.Template{
		ID:          p.Id,
		Name:        p.Name,
		Material:    p.Material,
		Amount:      int(p.Amount),
		AmountRoll:  p.AmountRoll,
		Durability:  int(p.Durability),
		DisplayName: p.DisplayName,
		Colorize:    p.Colorize,
		Lore:        p.Lore,
		Flags:       p.Flags,
	}

	if len(p.Enchantments) > 0 {
		tmpl.Enchantments = make(map[string]int, len(p.Enchantments))
		for name, level := range p.Enchantments {
			tmpl.Enchantments[name] = int(level)
		}
	}

	return tmpl
}

// TemplateToProto converts a stored template to its wire form
func TemplateToProto(tmpl *itemdef.Template) *forgev1alpha1.Template {
	if tmpl == nil {
		return nil
	}

	p := &forgev1alpha1.Template{
		Id:          tmpl.ID,
		Name:        tmpl.Name,
		Material:    tmpl.Material,
		Amount:      int32(tmpl.Amount),
		AmountRoll:  tmpl.AmountRoll,
		Durability:  int32(tmpl.Durability),
		DisplayName: tmpl.DisplayName,
		Colorize:    tmpl.Colorize,
		Lore:        tmpl.Lore,
		Flags:       tmpl.Flags,
		CreatedAt:   unixOrZero(tmpl.CreatedAt),
		UpdatedAt:   unixOrZero(tmpl.UpdatedAt),
	}

	if len(tmpl.Enchantments) > 0 {
		p.Enchantments = make(map[string]int32, len(tmpl.Enchantments))
		for name, level := range tmpl.Enchantments {
			p.Enchantments[name] = int32(level)
		}
	}

	return p
}

func convertItemToProto(built *forge.BuiltItem) *forgev1alpha1.Item {
	if built == nil || built.Summary == nil {
		return nil
	}

	s := built.Summary
	p := &forgev1alpha1.Item{
		Material:    s.Material,
		Amount:      int32(s.Amount),
		Durability:  int32(s.Durability),
		DisplayName: s.DisplayName,
		Lore:        s.Lore,
		Flags:       s.Flags,
	}

	if len(s.Enchantments) > 0 {
		p.Enchantments = make(map[string]int32, len(s.Enchantments))
		for name, level := range s.Enchantments {
			p.Enchantments[name] = int32(level)
		}
	}

	return p
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
