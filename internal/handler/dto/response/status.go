package response

const (
	StatusOK    = "ok"
	StatusError = "error"

	InternalErrorDetail = "An internal server error occurred."
	HealthMessage       = "Hotel bot is running"
)

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func OK() StatusResponse {
	return StatusResponse{Status: StatusOK}
}

func Healthy() StatusResponse {
	return StatusResponse{Status: StatusOK, Message: HealthMessage}
}

// InternalError is returned with 200 so Telegram does not redeliver the update.
func InternalError() StatusResponse {
	return StatusResponse{Status: StatusError, Detail: InternalErrorDetail}
}
