package model

// Trip is one scheduled daily trip. The backend joins route and deployment
// columns into the daily-trips listing, so VehicleID/DriverID may be present
// even before a deployment is fetched explicitly.
type Trip struct {
	TripID           int    `json:"trip_id"`
	DisplayName      string `json:"display_name"`
	RouteID          int    `json:"route_id"`
	ScheduledDate    string `json:"scheduled_date"`
	RouteDisplayName string `json:"route_display_name,omitempty"`
	VehicleID        *int   `json:"vehicle_id,omitempty"`
	DriverID         *int   `json:"driver_id,omitempty"`
}

// Route is a transport route.
type Route struct {
	RouteID     int    `json:"route_id"`
	DisplayName string `json:"route_display_name"`
}

// Deployment assigns a vehicle (and optionally a driver) to a trip.
type Deployment struct {
	DeploymentID int  `json:"deployment_id"`
	TripID       int  `json:"trip_id,omitempty"`
	VehicleID    int  `json:"vehicle_id"`
	DriverID     *int `json:"driver_id"`
}

// Booking is one passenger booking row on a trip. Status may be blank on
// older rows; blank counts as confirmed.
type Booking struct {
	BookingID     int    `json:"booking_id"`
	TripID        int    `json:"trip_id"`
	PassengerName string `json:"passenger_name"`
	Status        string `json:"status"`
}

// Booking status values recognised by the tripsheet report. Anything else is
// left uncounted.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)
