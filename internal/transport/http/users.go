package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sugar-studio/booking-api/internal/domain"
)

// UserCollection is the minimal interface needed for the /users collection
// endpoints.
type UserCollection interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// UserItem is the minimal interface needed for single-user endpoints.
type UserItem interface {
	Get(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, id string, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) (domain.User, error)
}

// UserFinder is the minimal interface needed for username lookup.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// LoginChecker is the minimal interface needed for the login endpoint.
type LoginChecker interface {
	Login(ctx context.Context, username, password string) (bool, error)
}

// HandleUsers returns an HTTP handler for creating and listing users.
func HandleUsers(svc UserCollection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			users, err := svc.List(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]userResponse, 0, len(users))
			for _, u := range users {
				resp = append(resp, newUserResponse(u))
			}
			writeJSON(w, http.StatusOK, resp)
		case http.MethodPost:
			var req userRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
				return
			}

			created, err := svc.Create(r.Context(), req.toDomain())
			if err != nil {
				writeUserError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, newUserResponse(created))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleUserByID returns an HTTP handler for get/update/delete of one user.
func HandleUserByID(svc UserItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseItemPath(r.URL.Path, "users")
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		switch r.Method {
		case http.MethodGet:
			u, err := svc.Get(r.Context(), id)
			if err != nil {
				writeUserError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newUserResponse(u))
		case http.MethodPut:
			var req userRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
				return
			}

			updated, err := svc.Update(r.Context(), id, req.toDomain())
			if err != nil {
				writeUserError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newUserResponse(updated))
		case http.MethodDelete:
			removed, err := svc.Delete(r.Context(), id)
			if err != nil {
				writeUserError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, newUserResponse(removed))
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
		}
	}
}

// HandleUserByUsername returns an HTTP handler for username lookup.
func HandleUserByUsername(svc UserFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		username, ok := parseUsernamePath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		u, err := svc.GetByUsername(r.Context(), username)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, newUserResponse(u))
	}
}

// HandleLogin returns an HTTP handler for the credential check. The response
// is always 200; only the success flag changes.
func HandleLogin(svc LoginChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req loginRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
			return
		}

		ok, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: ok})
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeError(w, http.StatusBadRequest, codeMissingField, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func parseUsernamePath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "users" || parts[1] != "username" || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
	}
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
		Name:     u.Name,
		Email:    u.Email,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
}
