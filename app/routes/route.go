package routes

import (
	"log/slog"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/client"
	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/handlers"
	"github.com/Rakhulsr/go-catalog/app/handlers/api"
	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/middlewares"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// NewAPIRouter wires the JSON API. The returned handler is wrapped with CORS
// so preflight requests are answered before route matching.
func NewAPIRouter(db *gorm.DB, env configs.ENV, logger *slog.Logger) http.Handler {
	productRepo := repositories.NewProductRepository(db)
	colorRepo := repositories.NewColorRepository(db)
	productTypeRepo := repositories.NewProductTypeRepository(db)

	productService := services.NewProductService(productRepo, colorRepo, productTypeRepo, logger)

	return newAPIHandler(productService, env, logger)
}

func newAPIHandler(productService services.ProductService, env configs.ENV, logger *slog.Logger) http.Handler {
	h := api.NewProductHandler(productService, helpers.NewValidator(), render.New(render.Options{}), logger)
	boundary := middlewares.NewErrorBoundary(logger)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger(logger))
	router.Use(boundary.Recover)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Handle("/colors", boundary.Handle(h.GetColors)).Methods(http.MethodGet)
	apiRouter.Handle("/product-types", boundary.Handle(h.GetProductTypes)).Methods(http.MethodGet)
	apiRouter.Handle("/products", boundary.Handle(h.GetProducts)).Methods(http.MethodGet)
	apiRouter.Handle("/products", boundary.Handle(h.CreateProduct)).Methods(http.MethodPost)
	apiRouter.Handle("/products/{id}", boundary.Handle(h.GetProduct)).Methods(http.MethodGet)

	return middlewares.CORS(env.AllowedOrigin)(router)
}

// NewWebRouter wires the server-rendered frontend. It talks to the API only
// through the data client.
func NewWebRouter(env configs.ENV, keys *configs.SessionKeys, logger *slog.Logger) http.Handler {
	catalog := client.New(env.APIBaseURL, logger)
	store := sessions.NewCookieSessionStore(!env.IsProduction(), keys.AuthKey, keys.EncKey)

	protect := csrf.Protect(
		keys.AuthKey[:32],
		csrf.Secure(env.IsProduction()),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)
	csrfMiddleware := protect
	if !env.IsProduction() {
		// Plain HTTP in development skips the HTTPS-only Referer check.
		csrfMiddleware = func(next http.Handler) http.Handler {
			h := protect(next)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
			})
		}
	}

	return newWebHandler(catalog, store, renderer.New(env.TemplatesDir), env, logger, csrfMiddleware)
}

func newWebHandler(
	catalog client.CatalogClient,
	store sessions.FlashStore,
	r *render.Render,
	env configs.ENV,
	logger *slog.Logger,
	csrfMiddleware func(http.Handler) http.Handler,
) http.Handler {
	pages := handlers.NewProductPageHandler(catalog, store, helpers.NewValidator(), r, logger)
	boundary := middlewares.NewErrorBoundary(logger)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger(logger))
	router.Use(boundary.Recover)
	router.Use(csrfMiddleware)

	router.HandleFunc("/", pages.ProductList).Methods(http.MethodGet)
	router.HandleFunc("/products", pages.ProductList).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", pages.ProductDetail).Methods(http.MethodGet)
	router.HandleFunc("/create-product", pages.CreateProductForm).Methods(http.MethodGet)
	router.HandleFunc("/create-product", pages.CreateProductPost).Methods(http.MethodPost)

	return router
}
