package plaid

// GetTransactionsRequest is the request body for /transactions/get. Dates are
// strings with the format YYYY-MM-DD; both ends of the range are inclusive.
type GetTransactionsRequest struct {
	AccessToken string              `json:"access_token"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Options     *TransactionOptions `json:"options,omitempty"`
}

// TransactionOptions carries the paging and filtering options for
// /transactions/get. Count defaults to 100 entries per page server-side;
// Offset is measured from the start of the date range.
type TransactionOptions struct {
	AccountIDs                 []string `json:"account_ids,omitempty"`
	Count                      int      `json:"count,omitempty"`
	Offset                     int      `json:"offset,omitempty"`
	IncludeOriginalDescription bool     `json:"include_original_description,omitempty"`
}

// GetTransactionsResponse is the response body for /transactions/get.
// TotalTransactions is the full unfiltered count for the date range, not the
// size of this page.
type GetTransactionsResponse struct {
	Accounts          []Account     `json:"accounts"`
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"total_transactions"`
	Item              Item          `json:"item"`
	RequestID         string        `json:"request_id"`
}

// Transaction describes a single transaction on a depository, credit, or
// loan-type account.
type Transaction struct {
	// TransactionType is deprecated upstream and will be removed.
	TransactionType        string               `json:"transaction_type"`
	PendingTransactionID   string               `json:"pending_transaction_id,omitempty"`
	CategoryID             string               `json:"category_id,omitempty"`
	Category               []string             `json:"category,omitempty"`
	Location               *TransactionLocation `json:"location,omitempty"`
	PaymentMeta            *PaymentMeta         `json:"payment_meta,omitempty"`
	AccountOwner           string               `json:"account_owner,omitempty"`
	Name                   string               `json:"name"`
	OriginalDescription    string               `json:"original_description,omitempty"`
	AccountID              string               `json:"account_id"`
	Amount                 float64              `json:"amount"`
	ISOCurrencyCode        string               `json:"iso_currency_code,omitempty"`
	UnofficialCurrencyCode string               `json:"unofficial_currency_code,omitempty"`
	Date                   string               `json:"date"`
	Pending                bool                 `json:"pending"`
	TransactionID          string               `json:"transaction_id"`
	PaymentChannel         string               `json:"payment_channel"`
	MerchantName           string               `json:"merchant_name,omitempty"`
	AuthorizedDate         string               `json:"authorized_date,omitempty"`
	AuthorizedDatetime     string               `json:"authorized_datetime,omitempty"`
	Datetime               string               `json:"datetime,omitempty"`
	CheckNumber            string               `json:"check_number,omitempty"`
	TransactionCode        string               `json:"transaction_code,omitempty"`
}

// TransactionLocation is where a transaction occurred.
type TransactionLocation struct {
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Region      string   `json:"region,omitempty"`
	PostalCode  string   `json:"postal_code,omitempty"`
	Country     string   `json:"country,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	StoreNumber string   `json:"store_number,omitempty"`
}

// PaymentMeta carries transaction details specific to inter-bank transfers.
type PaymentMeta struct {
	ReferenceNumber  string `json:"reference_number,omitempty"`
	PPDID            string `json:"ppd_id,omitempty"`
	Payee            string `json:"payee,omitempty"`
	ByOrderOf        string `json:"by_order_of,omitempty"`
	Payer            string `json:"payer,omitempty"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	PaymentProcessor string `json:"payment_processor,omitempty"`
	Reason           string `json:"reason,omitempty"`
}

// RefreshTransactionsRequest is the request body for /transactions/refresh.
type RefreshTransactionsRequest struct {
	AccessToken string `json:"access_token"`
}

// RefreshTransactionsResponse is the response body for /transactions/refresh.
type RefreshTransactionsResponse struct {
	RequestID string `json:"request_id"`
}

// GetCategoriesRequest is the request body for /categories/get. The endpoint
// takes no parameters and requires no authentication.
type GetCategoriesRequest struct{}

// GetCategoriesResponse is the response body for /categories/get.
type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
	RequestID  string     `json:"request_id"`
}

// Category is one entry in the transaction category taxonomy.
type Category struct {
	CategoryID string   `json:"category_id" yaml:"category_id"`
	Group      string   `json:"group"       yaml:"group"`
	Hierarchy  []string `json:"hierarchy"   yaml:"hierarchy"`
}
