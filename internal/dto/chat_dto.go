package dto

import "phonefinder-be/pkg/advisor/conversation"

type OpenChatResponse struct {
	Greeting string              `json:"greeting"`
	History  []conversation.Turn `json:"history"`
}

type SendChatRequest struct {
	Chat string `json:"chat" validate:"required"`
}

type SendChatResponse struct {
	Reply   string              `json:"reply"`
	History []conversation.Turn `json:"history"`
}
