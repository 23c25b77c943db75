package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-cred-auth/internal/app"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/metrics"
	"github.com/MKhiriev/go-cred-auth/internal/utils"
	"github.com/MKhiriev/go-cred-auth/models"
)

const (
	maxBodyBytes   = 1 << 20
	signInRedirect = "/"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.metrics.RecordRegistration(metrics.ResultInvalidInput)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		resp := registrationErrorFromError(err)
		log.Err(err).Int("status", resp.status).Msg("registration failed")
		h.metrics.RecordRegistration(resp.result)
		http.Error(w, resp.message, resp.status)
		return
	}

	h.metrics.RecordRegistration(metrics.ResultSuccess)
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// signIn is the credentials sign-in callback. It never reveals why an
// attempt was rejected: every verifier failure answers 401 CredentialsSignin.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		log.Err(err).Msg("undecodable sign-in body")
		h.metrics.RecordSignIn(metrics.ResultInvalidInput)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authorize(ctx, credentials)
	if err != nil {
		result := signInResultFromError(err)
		if result == metrics.ResultError {
			log.Err(err).Msg("credential verification failed")
		} else {
			log.Info().Err(err).Msg("sign-in rejected")
		}
		h.metrics.RecordSignIn(result)
		utils.WriteJSON(w, models.SignInResponse{
			OK:     false,
			Status: http.StatusUnauthorized,
			Error:  models.SignInErrorCredentials,
		}, http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("creation of token failed")
		h.metrics.RecordSignIn(metrics.ResultError)
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	expires := h.cookie.expiry(token)
	http.SetCookie(w, h.cookie.sessionCookie(token.SignedString, expires))

	log.Info().Str("user_id", user.ID).Msg("user signed in")
	h.metrics.RecordSignIn(metrics.ResultSuccess)
	utils.WriteJSON(w, models.SignInResponse{OK: true, Status: http.StatusOK, URL: signInRedirect}, http.StatusOK)
}

// session answers with the session decoded by withSession, or {} when
// there is none.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie.expiredCookie())
	utils.WriteJSON(w, map[string]string{"url": signInRedirect}, http.StatusOK)
}

// decodeCredentials reads {email,password} from a JSON or form body.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		var credentials models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			return models.Credentials{}, fmt.Errorf("error decoding JSON credentials: %w", err)
		}
		return credentials, nil
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return models.Credentials{}, fmt.Errorf("error parsing form credentials: %w", err)
		}
		return models.Credentials{
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}, nil
	default:
		return models.Credentials{}, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}
}
