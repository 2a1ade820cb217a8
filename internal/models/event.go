package models

// Ownership event operations published to Kafka.
const (
	CarCreated   = "car_created"
	CarUpdated   = "car_updated"
	CarDeleted   = "car_deleted"
	CarAssigned  = "car_assigned"
	CarReleased  = "car_released"
	UserDeleted  = "user_deleted"
)

// OwnershipEvent records a change to the user/car ownership graph.
type OwnershipEvent struct {
	EventID      string `json:"event_id"`
	Timestamp    int64  `json:"timestamp"`
	Operation    string `json:"operation"`
	UserID       *int64 `json:"user_id,omitempty"`
	CarID        int64  `json:"car_id,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
}
