package response

import (
	"time"

	"petpromise/internal/domain/adoption"
	"petpromise/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RequestResponse struct {
	ID               string    `json:"id"`
	PetID            string    `json:"petId"`
	OwnerEmail       string    `json:"ownerEmail"`
	RequestorEmail   string    `json:"requestorEmail"`
	RequestorName    string    `json:"requestorName,omitempty"`
	RequestorPhone   string    `json:"requestorPhone,omitempty"`
	RequestorAddress string    `json:"requestorAddress,omitempty"`
	PetName          string    `json:"petName,omitempty"`
	PetImage         string    `json:"petImage,omitempty"`
	IsRequested      bool      `json:"isRequested"`
	Adopted          bool      `json:"adopted"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromRequest(r *adoption.Request) *RequestResponse {
	var resp RequestResponse
	_ = copier.Copy(&resp, r)
	resp.ID = r.ID.String()
	resp.PetID = r.PetID.String()
	return &resp
}

type RequestListResponse struct {
	Total  int64             `json:"total"`
	Result []RequestResponse `json:"result"`
}

func FromRequestList(page queries.PageResult[adoption.Request]) RequestListResponse {
	items := make([]RequestResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *FromRequest(&page.Items[i])
	}
	return RequestListResponse{Total: page.TotalCount, Result: items}
}
