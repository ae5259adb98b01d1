// Package materials resolves the names used in templates and on the command
// line to host item kinds and enchantment types.
package materials

import (
	"sort"
	"strings"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/df-mc/dragonfly/server/world"
)

const namespace = "minecraft:"

// Air is the host's empty item kind
var Air world.Item = block.Air{}

// Catalog is a read-only index of materials and enchantments by name
type Catalog struct {
	materials    map[string]world.Item
	enchantments map[string]item.EnchantmentType
}

// NewCatalog indexes the given item kinds by Name and enchantments by
// EnchantmentName. Aliases map extra enchantment names to canonical ones.
func NewCatalog(kinds []world.Item, enchants []item.EnchantmentType, aliases map[string]string) *Catalog {
	c := &Catalog{
		materials:    make(map[string]world.Item, len(kinds)),
		enchantments: make(map[string]item.EnchantmentType, len(enchants)+len(aliases)),
	}

	for _, k := range kinds {
		c.materials[Name(k)] = k
	}
	for _, e := range enchants {
		c.enchantments[EnchantmentName(e)] = e
	}
	for alias, canonical := range aliases {
		if e, ok := c.enchantments[normaliseEnchantment(canonical)]; ok {
			c.enchantments[normaliseEnchantment(alias)] = e
		}
	}

	return c
}

// Default returns the catalog of kinds and enchantments shipped with the forge
func Default() *Catalog {
	return NewCatalog(defaultMaterials(), defaultEnchantments(), bukkitEnchantmentAliases)
}

// Material looks a material up by name. Names are case-insensitive and may
// carry the "minecraft:" namespace. Kinds outside the catalog are resolved
// through the host item registry.
func (c *Catalog) Material(name string) (world.Item, bool) {
	key := normaliseMaterial(name)
	if key == "" {
		return nil, false
	}
	if m, ok := c.materials[key]; ok {
		return m, true
	}
	return world.ItemByName(namespace+strings.ToLower(key), 0)
}

// Enchantment looks an enchantment type up by name ("sharpness",
// "Fire Aspect" and the Bukkit "DAMAGE_ALL" style are all accepted)
func (c *Catalog) Enchantment(name string) (item.EnchantmentType, bool) {
	e, ok := c.enchantments[normaliseEnchantment(name)]
	return e, ok
}

// Materials returns every catalogued material name, sorted
func (c *Catalog) Materials() []string {
	names := make([]string, 0, len(c.materials))
	for name := range c.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enchantments returns every canonical enchantment name, sorted
func (c *Catalog) Enchantments() []string {
	names := make([]string, 0, len(c.enchantments))
	for name, e := range c.enchantments {
		if EnchantmentName(e) == name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Name returns the upper snake case name of an item kind, such as
// DIAMOND_SWORD. A nil kind is air.
func Name(m world.Item) string {
	if m == nil {
		m = Air
	}
	id, _ := m.EncodeItem()
	return strings.ToUpper(strings.TrimPrefix(id, namespace))
}

// MaxStackSize returns how many items of kind m fit in one stack
func MaxStackSize(m world.Item) int {
	if m == nil {
		m = Air
	}
	return item.NewStack(m, 1).MaxCount()
}

// MaxDurability returns how much damage kind m can take before breaking, or
// 0 when m has no durability
func MaxDurability(m world.Item) int {
	if d, ok := m.(item.Durable); ok {
		return d.DurabilityInfo().MaxDurability
	}
	return 0
}

// EnchantmentName returns the lower snake case name of an enchantment type,
// such as fire_aspect
func EnchantmentName(e item.EnchantmentType) string {
	if e == nil {
		return ""
	}
	return normaliseEnchantment(e.Name())
}

func normaliseMaterial(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= len(namespace) && strings.EqualFold(name[:len(namespace)], namespace) {
		name = name[len(namespace):]
	}
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	return strings.ToUpper(name)
}

func normaliseEnchantment(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	return strings.ToLower(name)
}

func defaultMaterials() []world.Item {
	return []world.Item{
		block.Air{},
		block.Stone{},
		block.Dirt{},
		item.Stick{},
		item.Diamond{},
		item.Emerald{},
		item.GoldIngot{},
		item.IronIngot{},
		item.Apple{},
		item.GoldenApple{},
		item.Bread{},
		item.Arrow{},
		item.Snowball{},
		item.EnderPearl{},
		item.Book{},
		item.EnchantedBook{},
		item.Totem{},
		item.Bow{},
		item.Shears{},
		item.Sword{Tier: item.ToolTierWood},
		item.Sword{Tier: item.ToolTierStone},
		item.Sword{Tier: item.ToolTierIron},
		item.Sword{Tier: item.ToolTierGold},
		item.Sword{Tier: item.ToolTierDiamond},
		item.Sword{Tier: item.ToolTierNetherite},
		item.Pickaxe{Tier: item.ToolTierIron},
		item.Pickaxe{Tier: item.ToolTierDiamond},
		item.Axe{Tier: item.ToolTierIron},
		item.Axe{Tier: item.ToolTierDiamond},
		item.Helmet{Tier: item.ArmourTierDiamond{}},
		item.Chestplate{Tier: item.ArmourTierDiamond{}},
		item.Leggings{Tier: item.ArmourTierDiamond{}},
		item.Boots{Tier: item.ArmourTierDiamond{}},
	}
}

func defaultEnchantments() []item.EnchantmentType {
	return []item.EnchantmentType{
		enchantment.AquaAffinity,
		enchantment.BlastProtection,
		enchantment.CurseOfVanishing,
		enchantment.Efficiency,
		enchantment.FeatherFalling,
		enchantment.FireAspect,
		enchantment.FireProtection,
		enchantment.Flame,
		enchantment.Infinity,
		enchantment.Knockback,
		enchantment.Mending,
		enchantment.Power,
		enchantment.ProjectileProtection,
		enchantment.Protection,
		enchantment.Punch,
		enchantment.Respiration,
		enchantment.Sharpness,
		enchantment.SilkTouch,
		enchantment.Thorns,
		enchantment.Unbreaking,
	}
}

// bukkitEnchantmentAliases lets templates written for Bukkit servers keep
// their legacy enchantment names
var bukkitEnchantmentAliases = map[string]string{
	"DAMAGE_ALL":               "sharpness",
	"DIG_SPEED":                "efficiency",
	"DURABILITY":               "unbreaking",
	"ARROW_DAMAGE":             "power",
	"ARROW_KNOCKBACK":          "punch",
	"ARROW_FIRE":               "flame",
	"ARROW_INFINITE":           "infinity",
	"PROTECTION_ENVIRONMENTAL": "protection",
	"PROTECTION_FIRE":          "fire_protection",
	"PROTECTION_FALL":          "feather_falling",
	"PROTECTION_EXPLOSIONS":    "blast_protection",
	"PROTECTION_PROJECTILE":    "projectile_protection",
	"OXYGEN":                   "respiration",
	"WATER_WORKER":             "aqua_affinity",
	"VANISHING_CURSE":          "curse_of_vanishing",
}
