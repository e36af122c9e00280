package request

import "strings"

// CreateServiceRequestRequest is the customer payload for POST /requests. The short
// aliases (name, phone, type) are accepted for older clients.
type CreateServiceRequestRequest struct {
	CustomerName string `json:"customer_name"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	RequestType  string `json:"request_type"`
	Type         string `json:"type"`
	Description  string `json:"description"`
}

func (r CreateServiceRequestRequest) ResolveCustomerName() string {
	return firstNonBlank(r.CustomerName, r.Name)
}

func (r CreateServiceRequestRequest) ResolvePhoneNumber() string {
	return firstNonBlank(r.PhoneNumber, r.Phone)
}

func (r CreateServiceRequestRequest) ResolveRequestType() string {
	return firstNonBlank(r.RequestType, r.Type)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
