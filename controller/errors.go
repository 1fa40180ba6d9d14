package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrCreateAssistant = errors.New("failed to create an assistant")
	ErrProcessMessage  = errors.New("failed to process chat message")
	ErrSaveHistory     = errors.New("failed to save chat history")
	ErrGetHistory      = errors.New("failed to get chat history")

	ErrGetAudioFile    = errors.New("failed to get audio file")
	ErrTranscribeAudio = errors.New("failed to transcribe audio")
)
