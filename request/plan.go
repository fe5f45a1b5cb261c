package request

type AddPlanRequest struct {
	Date string `json:"date" binding:"required"`
	Item string `json:"item" binding:"required"`
}

type DeletePlanRequest struct {
	ID string `json:"id" binding:"required"`
}
