package dto

// ReviewRequest submits a rating for a completed order.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReportRequest files a problem report against a delivered order.
type ReportRequest struct {
	Reason    string   `json:"reason"`
	ImageRefs []string `json:"image_refs,omitempty"`
}

// PartialSubmissionResponse is returned when the order was created upstream
// but a follow-up step failed; the client must not retry the submission.
type PartialSubmissionResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
