package domain

// Location is where units of an item are kept
type Location struct {
	Room      string `json:"room" yaml:"room"`
	Container string `json:"container,omitempty" yaml:"container"`
	Specific  string `json:"specific,omitempty" yaml:"specific"`
}

// InventoryItem is a loanable item. Name is the human key; UUID pins one
// physical unit when several share a name.
type InventoryItem struct {
	Name              string     `json:"name" yaml:"name"`
	UUID              *string    `json:"uuid" yaml:"uuid"`
	SpecificName      string     `json:"specific_name,omitempty" yaml:"specific_name"`
	SerialNumber      string     `json:"serial_number,omitempty" yaml:"serial_number"`
	ModelNumber       string     `json:"model_number,omitempty" yaml:"model_number"`
	Brand             string     `json:"brand,omitempty" yaml:"brand"`
	QuantityTotal     *int       `json:"quantity_total" yaml:"quantity_total"`
	QuantityAvailable *int       `json:"quantity_available" yaml:"quantity_available"`
	Locations         []Location `json:"locations" yaml:"locations"`
	ReorderURL        string     `json:"reorder_url,omitempty" yaml:"reorder_url"`
	Kit               bool       `json:"kit" yaml:"kit"`
}

// HasUUID reports whether the item carries a uuid
func (i *InventoryItem) HasUUID() bool {
	return i.UUID != nil && *i.UUID != ""
}

// Clone returns a deep copy
func (i InventoryItem) Clone() InventoryItem {
	i.UUID = clonePtr(i.UUID)
	i.QuantityTotal = clonePtr(i.QuantityTotal)
	i.QuantityAvailable = clonePtr(i.QuantityAvailable)
	i.Locations = append([]Location(nil), i.Locations...)
	if i.Locations == nil {
		i.Locations = []Location{}
	}
	return i
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
