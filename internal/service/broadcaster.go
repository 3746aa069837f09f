package service

import "teampulse/internal/model"

// Broadcaster pushes engine events to connected admin feeds. The ws
// hub implements it; services depend on the interface so the transport
// layer stays out of their import graph.
type Broadcaster interface {
	BroadcastCheckinReceived(userID string, count int)
	BroadcastEarlySignal(userID string, signal model.EarlySignal)
}
