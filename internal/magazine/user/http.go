package user

import (
	"io"
	"net/http"
	"strconv"

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
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/feedback", handler.feedback)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listUsers)
		adminRoute.Post("/", handler.register)
	})

	// Owner or admin
	router.With(middleware.RequireSelfOrAdmin("username")).Get("/username/{username}", handler.getUser)
	router.With(middleware.RequireSelfOrAdmin("id")).Patch("/{id}", handler.updateUser)
	router.With(middleware.RequireSelfOrAdmin("id")).Delete("/{id}", handler.deleteUser)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	input, iconFile, err := decodeRegisterBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	u, token, err := handler.service.Register(request.Context(), input, iconFile)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"user": u, "token": token})
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var creds Credentials
	if err := requestutil.DecodeJSON(request, &creds); err != nil {
		respond.Error(writer, request, err)
		return
	}

	u, token, err := handler.service.Authenticate(request.Context(), &creds)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"user": u, "token": token})
}

func (handler *Handler) feedback(writer http.ResponseWriter, request *http.Request) {
	var input Feedback
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	stored, err := handler.service.SubmitFeedback(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Payload{"feedback": stored})
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"users": users})
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	username := requestutil.Param(request, "username")

	u, err := handler.service.GetUser(request.Context(), username)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"users": u})
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch, iconFile, err := decodeUpdateBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	u, token, err := handler.service.Update(request.Context(), userID, patch, iconFile)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"user": u, "token": token})
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.Delete(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Payload{"users": deleted})
}

// decodeRegisterBody reads the registration fields from either a JSON body or
// a multipart form with an optional icon file.
func decodeRegisterBody(request *http.Request) (*RegisterInput, io.Reader, error) {
	if !requestutil.IsMultipart(request) {
		input := &RegisterInput{}
		if err := requestutil.DecodeJSON(request, input); err != nil {
			return nil, nil, err
		}
		return input, nil, nil
	}

	file, _, err := requestutil.FormFile(request, "icon")
	if err != nil {
		return nil, nil, err
	}

	isAdmin, _ := strconv.ParseBool(request.FormValue("isAdmin"))
	input := &RegisterInput{
		Username:  request.FormValue("username"),
		Password:  request.FormValue("password"),
		UserFirst: request.FormValue("userFirst"),
		UserLast:  request.FormValue("userLast"),
		Email:     request.FormValue("email"),
		IsAdmin:   isAdmin,
	}

	if file == nil {
		return input, nil, nil
	}
	return input, file, nil
}

func decodeUpdateBody(request *http.Request) (*UpdateInput, io.Reader, error) {
	if !requestutil.IsMultipart(request) {
		patch := &UpdateInput{}
		if err := requestutil.DecodeJSON(request, patch); err != nil {
			return nil, nil, err
		}
		return patch, nil, nil
	}

	file, _, err := requestutil.FormFile(request, "icon")
	if err != nil {
		return nil, nil, err
	}

	isAdmin, _ := strconv.ParseBool(request.FormValue("isAdmin"))
	patch := &UpdateInput{
		Username:  request.FormValue("username"),
		Password:  request.FormValue("password"),
		UserFirst: request.FormValue("userFirst"),
		UserLast:  request.FormValue("userLast"),
		Email:     request.FormValue("email"),
		IsAdmin:   isAdmin,
	}

	if file == nil {
		return patch, nil, nil
	}
	return patch, file, nil
}
