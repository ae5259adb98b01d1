package forgev1alpha1

// Template is a stored item definition
type Template struct {
	Id           string           `json:"id,omitempty"`
	Name         string           `json:"name,omitempty"`
	Material     string           `json:"material,omitempty"`
	Amount       int32            `json:"amount,omitempty"`
	AmountRoll   string           `json:"amount_roll,omitempty"`
	Durability   int32            `json:"durability,omitempty"`
	DisplayName  string           `json:"display_name,omitempty"`
	Colorize     bool             `json:"colorize,omitempty"`
	Lore         []string         `json:"lore,omitempty"`
	Flags        []string         `json:"flags,omitempty"`
	Enchantments map[string]int32 `json:"enchantments,omitempty"`
	// Unix seconds
	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Item describes a built stack
type Item struct {
	Material     string           `json:"material,omitempty"`
	Amount       int32            `json:"amount,omitempty"`
	Durability   int32            `json:"durability,omitempty"`
	DisplayName  string           `json:"display_name,omitempty"`
	Lore         []string         `json:"lore,omitempty"`
	Flags        []string         `json:"flags,omitempty"`
	Enchantments map[string]int32 `json:"enchantments,omitempty"`
}

// CreateTemplateRequest stores a new template; an empty id is generated
type CreateTemplateRequest struct {
	Template *Template `json:"template,omitempty"`
}

// CreateTemplateResponse returns the stored template
type CreateTemplateResponse struct {
	Template *Template `json:"template,omitempty"`
}

// GetTemplateRequest loads one template
type GetTemplateRequest struct {
	TemplateId string `json:"template_id,omitempty"`
}

// GetTemplateResponse returns the template
type GetTemplateResponse struct {
	Template *Template `json:"template,omitempty"`
}

// ListTemplatesRequest pages through templates ordered by id
type ListTemplatesRequest struct {
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

// ListTemplatesResponse returns one page of templates
type ListTemplatesResponse struct {
	Templates     []*Template `json:"templates,omitempty"`
	NextPageToken string      `json:"next_page_token,omitempty"`
	TotalSize     int32       `json:"total_size,omitempty"`
}

// UpdateTemplateRequest replaces a stored template
type UpdateTemplateRequest struct {
	Template *Template `json:"template,omitempty"`
}

// UpdateTemplateResponse returns the stored template
type UpdateTemplateResponse struct {
	Template *Template `json:"template,omitempty"`
}

// DeleteTemplateRequest removes a template
type DeleteTemplateRequest struct {
	TemplateId string `json:"template_id,omitempty"`
}

// DeleteTemplateResponse is empty
type DeleteTemplateResponse struct{}

// BuildItemRequest builds a stored template
type BuildItemRequest struct {
	TemplateId string `json:"template_id,omitempty"`
	// Amount overrides the template's amount when positive
	Amount int32 `json:"amount,omitempty"`
}

// BuildItemResponse returns the built item and its rendered tooltip
type BuildItemResponse struct {
	Item    *Item  `json:"item,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// BuildTemplateRequest builds a template without storing it
type BuildTemplateRequest struct {
	Template *Template `json:"template,omitempty"`
}

// BuildTemplateResponse returns the built item and its rendered tooltip
type BuildTemplateResponse struct {
	Item    *Item  `json:"item,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}
