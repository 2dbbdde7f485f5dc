package entity

// ReceiptHeader is the branch block printed at the top of a receipt
type ReceiptHeader struct {
	BranchName string `json:"branch_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// ReceiptItem is one printed line of a receipt
type ReceiptItem struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
	Total     float64  `json:"total"`
	Extras    []string `json:"extras,omitempty"`
}

// Receipt is the printable projection of an order. It is never persisted;
// handlers return it as JSON when no printer is configured.
type Receipt struct {
	Header         ReceiptHeader `json:"header"`
	OrderNumber    string        `json:"order_number"`
	OrderType      string        `json:"order_type"`
	Date           string        `json:"date"`
	Customer       string        `json:"customer,omitempty"`
	Currency       string        `json:"currency"`
	Items          []ReceiptItem `json:"items"`
	SubTotal       float64       `json:"sub_total"`
	Discount       float64       `json:"discount"`
	Tax            float64       `json:"tax"`
	ServiceCharges float64       `json:"service_charges"`
	Tip            float64       `json:"tip"`
	Total          float64       `json:"total"`
}
