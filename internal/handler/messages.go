// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aea-eng/aea-site/internal/model"
)

// MessageListData is the contact inbox view model.
type MessageListData struct {
	Messages []model.ContactSubmission
	Unread   int
}

// MessageList lists contact submissions, newest first as delivered by
// the backend.
func (h *AdminHandler) MessageList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.gw.Contacts(r.Context(), h.token(r))
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to load messages", "error", err)
		h.renderer.SetFlash(r, "Failed to load messages", "error")
		messages = nil
	}

	unread := 0
	for _, m := range messages {
		if !m.Read {
			unread++
		}
	}

	h.renderAdmin(w, r, "admin/message_list", "Messages", MessageListData{Messages: messages, Unread: unread})
}

// MessageDetailData is the single-message view model.
type MessageDetailData struct {
	Message model.ContactSubmission
}

// MessageDetail shows one submission. Opening an unread message marks
// it read on the backend first, then refetches so the rendered state is
// the stored state. Marking an already-read message again is a no-op.
func (h *AdminHandler) MessageDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.gw.Contact(r.Context(), h.token(r), id)
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		flashError(w, r, h.renderer, redirectAdminMessages, "Message not found")
		return
	}

	if !msg.Read {
		if err := h.gw.MarkContactRead(r.Context(), h.token(r), id); err != nil {
			if handleUnauthenticated(w, r, h.sm, err) {
				return
			}
			// Still readable; the unread badge just stays.
			slog.Warn("failed to mark message read", "id", id, "error", err)
		} else {
			refreshed, err := h.gw.Contact(r.Context(), h.token(r), id)
			if err == nil {
				msg = refreshed
			}
		}
	}

	h.renderAdmin(w, r, "admin/message_detail", "Message from "+msg.Name, MessageDetailData{Message: msg})
}

// MessageDelete removes a submission and returns to the inbox.
func (h *AdminHandler) MessageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.gw.DeleteContact(r.Context(), h.token(r), id); err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return
		}
		slog.Error("failed to delete message", "id", id, "error", err)
		flashError(w, r, h.renderer, redirectAdminMessages, "Failed to delete message")
		return
	}
	flashSuccess(w, r, h.renderer, redirectAdminMessages, "Message deleted")
}
