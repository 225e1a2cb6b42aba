package dto

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type UpdateClassRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Location    string  `json:"location"`
	Price       float64 `json:"price" binding:"gte=0"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time" binding:"required,datetime=15:04"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
}
