package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/vfg2006/domain-ranking-api/pkg/apiErrors"
)

// Route descreve um endpoint e a cadeia própria dele, executada de fora para dentro
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type Router struct {
	mux *httprouter.Router
}

// Option altera o Router durante a construção
type Option func(*Router)

func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

// New monta o mux com respostas JSON para rota desconhecida e método errado
func New(opts ...Option) Router {
	mux := httprouter.New()
	mux.HandleMethodNotAllowed = true
	mux.NotFound = http.HandlerFunc(notFound)
	mux.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	r := Router{mux: mux}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
	}
}

func notFound(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", req.URL.Path)
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Método não permitido", req.Method)
}
