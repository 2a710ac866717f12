package dto

type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DeleteBackupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
