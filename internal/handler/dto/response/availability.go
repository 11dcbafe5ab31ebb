package response

import "venue-booking/internal/usecase/queries"

type SlotResponse struct {
	StartTime           string  `json:"start_time"`
	EndTime             string  `json:"end_time"`
	Capacity            int     `json:"capacity"`
	Booked              int     `json:"booked"`
	Available           int     `json:"available"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
	IsHalfPrice         bool    `json:"is_half_price"`
	Price               int64   `json:"price"`
}

type AvailabilityResponse struct {
	Date           string         `json:"date"`
	AudienceType   string         `json:"audience_type"`
	IsClosed       bool           `json:"is_closed"`
	OpenTime       *string        `json:"open_time,omitempty"`
	CloseTime      *string        `json:"close_time,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Currency       string         `json:"currency"`
	Slots          []SlotResponse `json:"slots"`
	TotalCapacity  int            `json:"total_capacity"`
	TotalBooked    int            `json:"total_booked"`
	TotalAvailable int            `json:"total_available"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var res AvailabilityResponse
	if err := copyInto(&res, v); err != nil {
		return nil, err
	}
	if res.Slots == nil {
		res.Slots = []SlotResponse{}
	}
	return &res, nil
}
