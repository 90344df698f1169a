package keyword

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
	router.Get("/{articleId}", handler.listArticleKeywords)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listAssociations)
		adminRoute.Post("/", handler.add)
		adminRoute.Patch("/{articleId}", handler.rename)
		adminRoute.Delete("/{articleId}/{keyword}", handler.remove)
	})
}

func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	input := &AddInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Add(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"keywords": result})
}

func (handler *Handler) listAssociations(writer http.ResponseWriter, request *http.Request) {
	associations, err := handler.service.ListAssociations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"keywords": associations})
}

func (handler *Handler) listArticleKeywords(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	keywords, err := handler.service.ListArticleKeywords(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"keywords": keywords})
}

func (handler *Handler) rename(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := &EditInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Rename(request.Context(), articleID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"updateKeywords": result})
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	keyword := requestutil.Param(request, "keyword")

	result, err := handler.service.Remove(request.Context(), articleID, keyword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"updateKeywords": result})
}
