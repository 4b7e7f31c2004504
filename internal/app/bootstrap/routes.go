// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	dashboardfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/dashboard"
	donationsfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/donations"
	groupsfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/groups"
	healthfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/health"
	membersfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/members"
	registrationsfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/registrations"
	reportsfeature "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/features/reports"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. Each feature area mounts its
// own subrouter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	db := deps.MongoDatabase

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Entity management
	groupsHandler := groupsfeature.NewHandler(db, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler))

	membersHandler := membersfeature.NewHandler(db, logger)
	r.Mount("/members", membersfeature.Routes(membersHandler))

	donationsHandler := donationsfeature.NewHandler(db, logger)
	r.Mount("/donations", donationsfeature.Routes(donationsHandler))

	registrationsHandler := registrationsfeature.NewHandler(db, logger)
	r.Mount("/registrations", registrationsfeature.Routes(registrationsHandler))

	// Reporting
	reportsHandler := reportsfeature.NewHandler(db, logger, appCfg.ProgramStartYear, appCfg.ProgramStartMonth)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler))

	dashboardHandler := dashboardfeature.NewHandler(db, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r, nil
}
