package components

import (
	"careerlaunch/internal/handler"
	"careerlaunch/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNotificationHandler,
		api.NewJobHandler,
		api.NewApplicantHandler,
		api.NewEmailTemplateHandler,
		api.NewInterviewHandler,
		api.NewDashboardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
