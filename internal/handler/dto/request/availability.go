package request

type AvailabilityQuery struct {
	Date         string `form:"date" binding:"required"`
	AudienceType string `form:"audience"`
}
