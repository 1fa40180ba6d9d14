package response

type HistoryEntryResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

type GetHistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}
