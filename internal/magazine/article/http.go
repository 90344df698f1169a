package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tigerlilly/api/internal/platform/middleware"
	requestutil "github.com/tigerlilly/api/internal/platform/request"
	"github.com/tigerlilly/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/articleTitle/{articleTitle}", handler.getArticleByTitle)
	router.Get("/authors/{handle}", handler.listArticlesByAuthor)
	router.Get("/keywords/{keyword}", handler.listArticlesByKeyword)
	router.Get("/search/{terms}", handler.searchArticles)
	router.Get("/{id}", handler.getArticle)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listArticles)
		adminRoute.Post("/", handler.createArticle)
		adminRoute.Patch("/{id}", handler.updateArticle)
		adminRoute.Delete("/{id}", handler.deleteArticle)
	})
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.service.ListArticles(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": articles})
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.GetArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": a})
}

func (handler *Handler) getArticleByTitle(writer http.ResponseWriter, request *http.Request) {
	title := requestutil.Param(request, "articleTitle")

	a, err := handler.service.GetArticleByTitle(request.Context(), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": a})
}

func (handler *Handler) listArticlesByAuthor(writer http.ResponseWriter, request *http.Request) {
	handle := requestutil.Param(request, "handle")

	articles, err := handler.service.ListArticlesByAuthor(request.Context(), handle)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": articles})
}

func (handler *Handler) listArticlesByKeyword(writer http.ResponseWriter, request *http.Request) {
	keyword := requestutil.Param(request, "keyword")

	articles, err := handler.service.ListArticlesByKeyword(request.Context(), keyword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": articles})
}

func (handler *Handler) searchArticles(writer http.ResponseWriter, request *http.Request) {
	terms := requestutil.Param(request, "terms")

	results, err := handler.service.Search(request.Context(), terms)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"results": results})
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateArticle(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"articles": created})
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch UpdateInput
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateArticle(request.Context(), articleID, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"articles": updated})
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"articles": deleted})
}
