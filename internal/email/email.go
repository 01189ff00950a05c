package email

import (
	"context"
	"fmt"

	"github.com/dortiz91/aerolinea/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("notify customer %s: %s, %d ticket(s) for flight %s on %s\n", event.CustomerID, event.Type, event.Quantity, event.RouteCode, event.Date)
	return nil
}
