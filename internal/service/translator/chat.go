package translator

import (
	"context"
	"strings"

	"github.com/lingobridge/translator-backend/internal/domain"
)

// TranslateForChat produces the three views of a chat message: the sender's
// native-script rendering, the English pivot, and the receiver's translation.
func (s *Service) TranslateForChat(ctx context.Context, text, senderLang, receiverLang string) domain.ChatTranslation {
	snd := s.langs.Normalize(senderLang)
	rcv := s.langs.Normalize(receiverLang)

	senderView := s.translit.ToNative(text, snd)

	if strings.TrimSpace(text) == "" {
		return domain.ChatTranslation{
			SenderView: senderView,
			Confidence: 1,
			Method:     domain.MethodPassthrough,
		}
	}

	if s.langs.IsSame(snd, rcv) {
		chat := domain.ChatTranslation{
			SenderView:   senderView,
			ReceiverView: senderView,
			Confidence:   1,
			Method:       domain.MethodPassthrough,
		}
		// English core is best effort here; same-language chats do not
		// need the pivot to render, only to archive.
		var scratch domain.TranslationResult
		chat.EnglishCore = s.toEnglishPivot(ctx, text, snd, &scratch)
		return chat
	}

	// Pivot corrections (unknown words from the sender side) are collected
	// separately so they survive into the combined audit trail.
	var pivot domain.TranslationResult
	english := s.toEnglishPivot(ctx, text, snd, &pivot)

	res := s.Translate(ctx, english, englishLang, rcv)

	corrections := make([]domain.CorrectionApplied, 0, len(pivot.Corrections)+len(res.Corrections))
	corrections = append(corrections, pivot.Corrections...)
	corrections = append(corrections, res.Corrections...)

	return domain.ChatTranslation{
		SenderView:   senderView,
		ReceiverView: res.Text,
		EnglishCore:  english,
		Corrections:  corrections,
		Confidence:   res.Confidence,
		Method:       res.Method,
	}
}
