package models

// Item is a to-do entry stored in a List. Items carry no ID; they are
// addressed by their position in the list.
type Item struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewItem creates an incomplete item with the given title.
func NewItem(title string) *Item {
	return &Item{Title: title}
}

// IsComplete reports whether the item is done.
func (i *Item) IsComplete() bool {
	return i.Completed
}

// MarkComplete marks the item done.
func (i *Item) MarkComplete() {
	i.Completed = true
}
