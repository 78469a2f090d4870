package request

import "petpromise/internal/usecase/commands"

type SubmitRequestRequest struct {
	RequestorEmail   string `json:"requestorEmail" binding:"required,email"`
	RequestorName    string `json:"requestorName"`
	RequestorPhone   string `json:"requestorPhone"`
	RequestorAddress string `json:"requestorAddress"`
}

func (r SubmitRequestRequest) ToInput() commands.SubmitRequestInput {
	return commands.SubmitRequestInput{
		RequestorEmail:   r.RequestorEmail,
		RequestorName:    r.RequestorName,
		RequestorPhone:   r.RequestorPhone,
		RequestorAddress: r.RequestorAddress,
	}
}
