package health

import (
	"mathmaster-otp-service/internal/pkg/constvars"
	"mathmaster-otp-service/internal/pkg/dto/responses"
	"mathmaster-otp-service/internal/pkg/utils"
	"net/http"
	"time"
)

type HealthController struct {
	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewHealthController() *HealthController {
	return &HealthController{
		Now: time.Now,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, &responses.Health{
		OK:  true,
		App: constvars.AppName,
		Now: ctrl.Now().UnixMilli(),
	})
}
