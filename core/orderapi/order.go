package orderapi

// Order is the order document returned by the order-management API.
// Field names follow the wire format.
type Order struct {
	OrderID     string      `json:"OrderId"`
	NumOrderID  uint64      `json:"NumOrderId"`
	Processed   bool        `json:"Processed"`
	GeneralInfo GeneralInfo `json:"GeneralInfo"`
	FolderName  []string    `json:"FolderName"`
	Items       []Item      `json:"Items"`
	Notes       []Note      `json:"Notes"`
}

// GeneralInfo carries order-level reference and source fields.
type GeneralInfo struct {
	Status               int    `json:"Status"`
	ReferenceNum         string `json:"ReferenceNum"`
	SecondaryReference   string `json:"SecondaryReference"`
	ExternalReferenceNum string `json:"ExternalReferenceNum"`
	Source               string `json:"Source"`
	SubSource            string `json:"SubSource"`
	NumItems             int    `json:"NumItems"`
}

// Item is one order line.
type Item struct {
	ItemID       string `json:"ItemId"`
	ItemNumber   string `json:"ItemNumber"`
	SKU          string `json:"SKU"`
	Title        string `json:"Title"`
	Quantity     int    `json:"Quantity"`
	CategoryName string `json:"CategoryName"`
}

// Note is one free-text order note. Marketplace tags are parsed out of the
// Note text during reconciliation.
type Note struct {
	OrderNoteID string `json:"OrderNoteId"`
	NoteDate    string `json:"NoteDate"`
	Internal    bool   `json:"Internal"`
	Note        string `json:"Note"`
	CreatedBy   string `json:"CreatedBy"`
}
