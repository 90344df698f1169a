package comment

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
	router.Get("/users/{userId}", handler.listByUser)
	router.Get("/articles/{articleId}", handler.listByArticle)

	// Logged-in users
	router.With(middleware.RequireAuth).Post("/", handler.createComment)

	// Admin only
	router.With(middleware.RequireAdmin).Get("/{id}", handler.getComment)

	// Comment owner or admin
	router.With(middleware.RequireSelfOrAdmin("id")).Patch("/{id}", handler.updateComment)
	router.With(middleware.RequireSelfOrAdmin("id")).Delete("/{id}", handler.deleteComment)
}

func (handler *Handler) createComment(writer http.ResponseWriter, request *http.Request) {
	input := &CreateInput{}
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateComment(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"comments": created})
}

func (handler *Handler) listByUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListByUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"comments": comments})
}

func (handler *Handler) listByArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntParam(request, "articleId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comments, err := handler.service.ListByArticle(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"comments": comments})
}

func (handler *Handler) getComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.GetComment(request.Context(), commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"comments": c})
}

func (handler *Handler) updateComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := &UpdateInput{}
	if err := requestutil.DecodeJSON(request, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateComment(request.Context(), commentID, patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"comments": updated})
}

func (handler *Handler) deleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteComment(request.Context(), commentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"comments": deleted})
}
