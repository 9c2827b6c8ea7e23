package main

// BatchHeader and LineItem are the demo's own stand-in entities: a minimal
// header/repeating-group pair, just enough to exercise RecordParser.
// ParseGraph end to end. A real integration registers its own domain
// types the same way main() registers these.
type BatchHeader struct {
	BatchID    string
	SourceTag  string
	LineCount  int
	ImportedAt string
	Items      LineItems
}

// LineItem is one occurs-group child.
type LineItem struct {
	Seq  int64
	Code string
}

// LineItems is the addressable collection entity.GetAdder writes into; the
// Add method is the contract entity.buildAdder looks for.
type LineItems []LineItem

// Add appends item to the collection.
func (l *LineItems) Add(item LineItem) {
	*l = append(*l, item)
}
