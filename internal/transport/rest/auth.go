package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
	"github.com/heartmarshall/mooddiary-backend/internal/service/account"
)

// sessionService defines the session operations needed by AccountHandler.
type sessionService interface {
	CurrentOwner(ctx context.Context) (domain.OwnerID, bool, error)
	StartAnonymousSession(ctx context.Context) (domain.OwnerID, error)
}

// accountService defines the account operations needed by AccountHandler.
type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (int64, error)
	Login(ctx context.Context, input account.LoginInput) (*domain.Account, error)
	Logout(ctx context.Context) error
	Withdraw(ctx context.Context) bool
	Profile(ctx context.Context) (*domain.Profile, error)
	UpdateNickname(ctx context.Context, nickname string) error
	UpdateProfileImage(ctx context.Context, uri string) error
	ServiceDays(ctx context.Context) (int, error)
	IsEmailAvailable(ctx context.Context, email string) (bool, error)
}

// AccountHandler serves session, auth and profile endpoints.
type AccountHandler struct {
	session sessionService
	account accountService
	log     *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(session sessionService, account accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{session: session, account: account, log: logger.With("handler", "account")}
}

type sessionResponse struct {
	OwnerID  string `json:"ownerId,omitempty"`
	Bound    bool   `json:"bound"`
	IsMember bool   `json:"isMember"`
}

func toSessionResponse(owner domain.OwnerID, bound bool) sessionResponse {
	return sessionResponse{OwnerID: owner.String(), Bound: bound, IsMember: owner.IsUser()}
}

type registerRequest struct {
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	OwnerID  string `json:"ownerId"`
}

// StartAnonymous handles POST /session/anonymous.
func (h *AccountHandler) StartAnonymous(w http.ResponseWriter, r *http.Request) {
	owner, err := h.session.StartAnonymousSession(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(owner, true))
}

// Current handles GET /session.
func (h *AccountHandler) Current(w http.ResponseWriter, r *http.Request) {
	owner, ok, err := h.session.CurrentOwner(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(owner, ok))
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	id, err := h.account.Register(r.Context(), account.RegisterInput{
		Email:           req.Email,
		Nickname:        req.Nickname,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"ownerId": domain.NewUserOwner(id).String(),
	})
}

// EmailAvailable handles GET /auth/email-available?email=.
func (h *AccountHandler) EmailAvailable(w http.ResponseWriter, r *http.Request) {
	ok, err := h.account.IsEmailAvailable(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": ok})
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	acc, err := h.account.Login(r.Context(), account.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		ID:       acc.ID,
		Nickname: acc.Nickname,
		Email:    acc.Email,
		OwnerID:  acc.Owner().String(),
	})
}

// Logout handles POST /auth/logout.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.account.Logout(r.Context()); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Withdraw handles DELETE /account.
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if !h.account.Withdraw(r.Context()) {
		writeError(w, r, h.log, domain.ErrAuthFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Profile handles GET /profile.
func (h *AccountHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.account.Profile(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	days, err := h.account.ServiceDays(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := profileResponse{
		OwnerID:         p.OwnerID.String(),
		IsMember:        p.IsMember,
		Nickname:        p.Nickname,
		Email:           p.Email,
		ProfileImageURI: p.ProfileImageURI,
		ServiceDays:     days,
	}
	if p.SelectedBadge != nil {
		b := toBadgeResponse(*p.SelectedBadge)
		resp.SelectedBadge = &b
	}
	writeJSON(w, http.StatusOK, resp)
}

// UpdateProfile handles PATCH /profile. Omitted fields are left unchanged.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nickname        *string `json:"nickname"`
		ProfileImageURI *string `json:"profileImageUri"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if req.Nickname != nil {
		if err := h.account.UpdateNickname(r.Context(), *req.Nickname); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}
	if req.ProfileImageURI != nil {
		if err := h.account.UpdateProfileImage(r.Context(), *req.ProfileImageURI); err != nil {
			writeError(w, r, h.log, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
