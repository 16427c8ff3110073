package model

const (
	ReviewStatusApproved = "Approved"
	ReviewStatusPending  = "Pending"
	ReviewStatusRejected = "Rejected"
)

// Review is read/delete only from this client; the backend exposes no
// create or update route for it.
type Review struct {
	ID         string `json:"id"`
	ProductID  string `json:"productId"`
	CustomerID string `json:"customerId"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	ReviewDate string `json:"reviewDate"`
	Helpful    int    `json:"helpful"`
	NotHelpful int    `json:"notHelpful"`
	Verified   bool   `json:"verified"`
	Status     string `json:"status"`
}

func (r Review) EntityID() string { return r.ID }
