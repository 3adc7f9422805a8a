package model

// Quantity bounds offered by the add form.
const (
	MinQuantity = 1
	MaxQuantity = 20
)

// Item is one thing to pack for the trip.
// ID is unique for the whole session and never reused.
type Item struct {
	ID       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Packed   bool   `json:"packed" yaml:"packed"`
}

// ValidQuantity reports whether q is one of the form's choices.
func ValidQuantity(q int) bool {
	return q >= MinQuantity && q <= MaxQuantity
}
