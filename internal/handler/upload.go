// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
)

// maxUploadBytes caps multipart parsing for editor forms carrying an
// image file.
const maxUploadBytes = 10 << 20 // 10 MB

// uploadFormImage forwards the form's "image" file to the backend and
// returns the hosted URL. It writes the response itself on failure and
// reports ok=false; callers only continue on success.
func (h *AdminHandler) uploadFormImage(w http.ResponseWriter, r *http.Request, redirectURL string) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		flashError(w, r, h.renderer, redirectURL, "Choose an image to upload")
		return "", false
	}
	defer file.Close()

	url, err := h.gw.UploadImage(r.Context(), h.token(r), header.Filename, file)
	if err != nil {
		if handleUnauthenticated(w, r, h.sm, err) {
			return "", false
		}
		slog.Error("image upload failed", "filename", header.Filename, "error", err)
		flashError(w, r, h.renderer, redirectURL, "Image upload failed")
		return "", false
	}
	return url, true
}
