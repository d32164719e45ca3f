// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// SessionOpenedEvent is published when a gaming session is checked in. It
// carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type SessionOpenedEvent struct {
	SessionID       uint64 `json:"session_id"`
	UserID          uint64 `json:"user_id"`
	StationID       uint64 `json:"station_id"`
	StationName     string `json:"station_name"`
	NumberOfPlayers uint32 `json:"number_of_players"`
	CheckInTime     string `json:"check_in_time"`
	CheckOutTime    string `json:"check_out_time"`
	GamingCost      string `json:"gaming_cost"`
	IsWalkIn        bool   `json:"is_walk_in"`
}

// SessionClosedEvent is published when a session reaches a terminal state.
type SessionClosedEvent struct {
	SessionID        uint64 `json:"session_id"`
	UserID           uint64 `json:"user_id"`
	StationID        uint64 `json:"station_id"`
	StationName      string `json:"station_name"`
	SessionStatus    string `json:"session_status"`
	TotalSessionCost string `json:"total_session_cost"`
	ClosedAt         string `json:"closed_at"`
}
