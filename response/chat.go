package response

type ChatResponse struct {
	Answer string `json:"answer"`
}

type TranscriptionResponse struct {
	Text string `json:"text"`
}
