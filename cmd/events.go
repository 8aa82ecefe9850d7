package main

import (
	"github.com/centrifugal/centrifuge"

	"github.com/jimmyqrg/parkoreen-sub001/internal/coordinator"
)

type clientSender struct {
	client *centrifuge.Client
}

func (s clientSender) Send(data []byte) error {
	return s.client.Send(data)
}

// onConnect hands every connection to the coordinator: a session is
// registered on connect, inbound messages are forwarded in arrival
// order, and disconnect runs the leave side effects.
func onConnect(coord *coordinator.Coordinator) func(*centrifuge.Client) {
	return func(client *centrifuge.Client) {
		sessionID := client.UserID()

		coord.Connect(sessionID, clientSender{client: client})

		client.OnMessage(func(e centrifuge.MessageEvent) {
			coord.HandleMessage(sessionID, e.Data)
		})

		client.OnDisconnect(func(e centrifuge.DisconnectEvent) {
			coord.Disconnect(sessionID)
		})
	}
}
