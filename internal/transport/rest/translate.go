package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// maxTextLength bounds request text to keep pipeline latency predictable.
const maxTextLength = 10000

// translatorService defines the minimal interface needed by TranslateHandler.
type translatorService interface {
	Translate(ctx context.Context, text, source, target string) domain.TranslationResult
	TranslateForChat(ctx context.Context, text, senderLang, receiverLang string) domain.ChatTranslation
}

// TranslateHandler serves translation REST endpoints.
type TranslateHandler struct {
	svc translatorService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translatorService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

type chatTranslateRequest struct {
	Text             string `json:"text"`
	SenderLanguage   string `json:"senderLanguage"`
	ReceiverLanguage string `json:"receiverLanguage"`
}

// Translate handles POST /v1/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := validateTextAndLangs(req.Text, req.SourceLanguage, req.TargetLanguage); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := h.svc.Translate(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	writeJSON(w, http.StatusOK, result)
}

// TranslateChat handles POST /v1/chat/translate.
func (h *TranslateHandler) TranslateChat(w http.ResponseWriter, r *http.Request) {
	var req chatTranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg, ok := validateTextAndLangs(req.Text, req.SenderLanguage, req.ReceiverLanguage); !ok {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	result := h.svc.TranslateForChat(r.Context(), req.Text, req.SenderLanguage, req.ReceiverLanguage)
	writeJSON(w, http.StatusOK, result)
}

// validateTextAndLangs checks the shared request constraints. Empty text is
// allowed (it short-circuits in the pipeline); missing languages are not.
func validateTextAndLangs(text, a, b string) (string, bool) {
	if len(text) > maxTextLength {
		return "text too long", false
	}
	if a == "" || b == "" {
		return "both languages are required", false
	}
	return "", true
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
