package internal

import (
	"gramhaat-backend/internal/service"
)

func Initialize() {
	// initialize service
	service.Initialize()
}
