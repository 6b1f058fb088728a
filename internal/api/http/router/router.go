package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/fintrack/fintrack-server/internal/api/http/handler"
	"github.com/fintrack/fintrack-server/internal/api/http/middleware"
	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
	"github.com/fintrack/fintrack-server/internal/service"
)

// Router assembles the HTTP API: route registration, authentication and
// logging middleware, and the CORS policy.
type Router struct {
	authService        *service.Auth
	userService        *service.User
	transactionService *service.Transaction
	tokenService       *service.TokenService
	contextManager     model.ContextManager
	allowedOrigins     []string
	logger             *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	transactionService *service.Transaction,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:        authService,
		userService:        userService,
		transactionService: transactionService,
		tokenService:       tokenService,
		contextManager:     contextManager,
		allowedOrigins:     allowedOrigins,
		logger:             logger,
	}
}

// Register builds the routing tree and returns the root handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	transactionHandler := handler.NewTransaction(r.transactionService, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)
	m.NotFoundHandler = logging.Handle(http.HandlerFunc(notFound))
	m.MethodNotAllowedHandler = logging.Handle(http.HandlerFunc(notFound))

	api := m.PathPrefix("/api").Subrouter()
	api.HandleFunc("", info).Methods(http.MethodGet)
	api.HandleFunc("/", info).Methods(http.MethodGet)

	// Public credential endpoints; everything below requires a token.
	api.HandleFunc("/users/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", authHandler.Login).Methods(http.MethodPost)

	users := api.PathPrefix("/users").Subrouter()
	users.Use(authenticate.Handle)
	users.HandleFunc("", userHandler.List).Methods(http.MethodGet)
	users.HandleFunc("/{id}", userHandler.GetByID).Methods(http.MethodGet)
	users.HandleFunc("/{id}", userHandler.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id}", userHandler.Delete).Methods(http.MethodDelete)

	transactions := api.PathPrefix("/transactions").Subrouter()
	transactions.Use(authenticate.Handle)
	transactions.HandleFunc("", transactionHandler.Create).Methods(http.MethodPost)
	transactions.HandleFunc("", transactionHandler.List).Methods(http.MethodGet)
	transactions.HandleFunc("/{id}", transactionHandler.Get).Methods(http.MethodGet)
	transactions.HandleFunc("/{id}", transactionHandler.Update).Methods(http.MethodPut)
	transactions.HandleFunc("/{id}", transactionHandler.Delete).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowedOrigins(r.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		handlers.AllowCredentials(),
	)

	return cors(m)
}

func info(w http.ResponseWriter, _ *http.Request) {
	handler.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the Financial Management API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"users":        "/api/users",
			"transactions": "/api/transactions",
		},
	})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	handler.WriteError(w, model.ErrNotFound)
}
