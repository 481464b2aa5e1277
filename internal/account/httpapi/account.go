package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	accountv1 "account-service/api/account/v1"
	"account-service/internal/account/handler"
	"account-service/internal/server/interceptors"
)

type successBody struct {
	Success bool `json:"success"`
}

func (h *Handler) setTwoFA(w http.ResponseWriter, r *http.Request) {
	var req accountv1.SetTwoFARequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Set2FA == nil {
		writeError(w, http.StatusBadRequest, handler.MsgSet2FARequired)
		return
	}
	userID, _ := interceptors.GetUserID(r.Context())
	if err := h.svc.SetTwoFA(r.Context(), userID, *req.Set2FA); err != nil {
		h.fail(w, "SetTwoFA", err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) verifyPhone(w http.ResponseWriter, r *http.Request) {
	userID, _ := interceptors.GetUserID(r.Context())
	if err := h.svc.VerifyPhone(r.Context(), userID); err != nil {
		h.fail(w, "VerifyPhone", err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) validatePhoneVerification(w http.ResponseWriter, r *http.Request) {
	var req accountv1.ValidatePhoneVerificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, _ := interceptors.GetUserID(r.Context())
	if err := h.svc.ValidatePhoneVerification(r.Context(), userID, req.Token); err != nil {
		h.fail(w, "ValidatePhoneVerification", err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) disableTwoFAVerification(w http.ResponseWriter, r *http.Request) {
	var req accountv1.DisableTwoFAVerificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	userID, _ := interceptors.GetUserID(r.Context())
	if err := h.svc.DisableTwoFAVerification(r.Context(), userID, req.Token); err != nil {
		h.fail(w, "DisableTwoFAVerification", err)
		return
	}
	writeJSON(w, http.StatusOK, successBody{Success: true})
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, _ := interceptors.GetUserID(r.Context())
	p, err := h.svc.GetUserInfo(r.Context(), userID)
	if err != nil {
		h.fail(w, "GetUserInfo", err)
		return
	}
	writeJSON(w, http.StatusOK, accountv1.GetUserInfoResponse{
		Success: true,
		User:    handler.ProfileToAPI(p),
	})
}

// fail maps the service's sentinel errors to 404 with their client message; anything else is a 500.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if msg, ok := handler.ErrorMessage(err); ok {
		writeError(w, http.StatusNotFound, msg)
		return
	}
	h.logger.Error("account operation failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
