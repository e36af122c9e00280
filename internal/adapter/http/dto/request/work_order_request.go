package request

// SubmitWorkOrderRequest carries the inspection outcome, GOOD or REPLACE.
type SubmitWorkOrderRequest struct {
	Remark string `json:"remark"`
}
