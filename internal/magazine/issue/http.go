package issue

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
	router.Get("/", handler.listIssues)
	router.Get("/currentIssue", handler.getCurrentIssue)
	router.Get("/issueTitle/{issueTitle}", handler.getIssueByTitle)
	router.Get("/{id}", handler.getIssue)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createIssue)
		adminRoute.Patch("/{id}", handler.updateIssue)
		adminRoute.Delete("/{id}", handler.deleteIssue)
	})
}

func (handler *Handler) listIssues(writer http.ResponseWriter, request *http.Request) {
	issues, err := handler.service.ListIssues(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"issues": issues})
}

func (handler *Handler) getCurrentIssue(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.GetCurrentIssue(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"issues": rows})
}

func (handler *Handler) getIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rows, err := handler.service.GetIssue(request.Context(), issueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"issues": rows})
}

func (handler *Handler) getIssueByTitle(writer http.ResponseWriter, request *http.Request) {
	title := requestutil.Param(request, "issueTitle")

	rows, err := handler.service.GetIssueByTitle(request.Context(), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"issues": rows})
}

func (handler *Handler) createIssue(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateIssue(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"issues": created})
}

func (handler *Handler) updateIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch UpdateInput
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateIssue(request.Context(), issueID, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"issues": updated})
}

func (handler *Handler) deleteIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteIssue(request.Context(), issueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"issues": deleted})
}
