package worker

type CreateWorkerRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Email     string `json:"email" binding:"required,email"`
	DailyRate string `json:"daily_rate" binding:"required"`
}

type UpdateWorkerRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Email     string `json:"email" binding:"required,email"`
	DailyRate string `json:"daily_rate" binding:"required"`
}

type WorkerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	DailyRate string `json:"daily_rate"`
}
