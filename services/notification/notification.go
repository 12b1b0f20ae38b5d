package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// MessageBuilder formats booking lifecycle announcements.
type MessageBuilder struct {
	code      string
	hotelName string
	status    string
}

func NewMessageBuilder(code, hotelName, status string) *MessageBuilder {
	return &MessageBuilder{
		code:      code,
		hotelName: hotelName,
		status:    status,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("Booking %s at %s is now %s.", b.code, b.hotelName, b.status)
}
