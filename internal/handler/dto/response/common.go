package response

// InsertResponse mirrors the create-operation envelope the frontend already
// consumes: the new record's id, or a null id with a message when the write
// was skipped (existing user, replayed donation).
type InsertResponse struct {
	Acknowledged bool   `json:"acknowledged,omitempty"`
	InsertedID   any    `json:"insertedId"`
	Message      string `json:"message,omitempty"`
}

func Inserted(id any) InsertResponse {
	return InsertResponse{Acknowledged: true, InsertedID: id}
}

func NotInserted(message string) InsertResponse {
	return InsertResponse{InsertedID: nil, Message: message}
}
