package holiday

type CreateHolidayRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Name     string `json:"name" binding:"required,max=150"`
	Optional bool   `json:"optional"`
}

type HolidayResponse struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Name     string `json:"name"`
	Optional bool   `json:"optional"`
}
