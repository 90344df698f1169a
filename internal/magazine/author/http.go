package author

import (
	"io"
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
	router.Get("/", handler.listAuthors)
	router.Get("/authorHandle/{authorHandle}", handler.getAuthor)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createAuthor)
		adminRoute.Patch("/{id}", handler.updateAuthor)
		adminRoute.Delete("/{id}", handler.deleteAuthor)
	})
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"authors": authors})
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	handle := requestutil.Param(request, "authorHandle")

	a, err := handler.service.GetAuthor(request.Context(), handle)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"authors": a})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	input, iconFile, err := decodeAuthorBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateAuthor(request.Context(), input, iconFile)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"authors": created})
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch, iconFile, err := decodeAuthorBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateAuthor(request.Context(), authorID, patch, iconFile)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"authors": updated})
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"authors": deleted})
}

// decodeAuthorBody reads the author fields from either a JSON body or a
// multipart form with an optional icon file.
func decodeAuthorBody(request *http.Request) (*Author, io.Reader, error) {
	if !requestutil.IsMultipart(request) {
		input := &Author{}
		if err := requestutil.DecodeJSON(request, input); err != nil {
			return nil, nil, err
		}
		return input, nil, nil
	}

	file, _, err := requestutil.FormFile(request, "icon")
	if err != nil {
		return nil, nil, err
	}

	input := &Author{
		AuthorFirst:  request.FormValue("authorFirst"),
		AuthorLast:   request.FormValue("authorLast"),
		AuthorHandle: request.FormValue("authorHandle"),
		AuthorSlogan: request.FormValue("authorSlogan"),
		AuthorBio:    request.FormValue("authorBio"),
	}

	if file == nil {
		return input, nil, nil
	}
	return input, file, nil
}
