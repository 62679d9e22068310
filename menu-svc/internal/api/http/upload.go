package httpapi

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const maxImageSize = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (h *Handler) uploadItemImage(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["id"])

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error retrieving the file")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	// the declared type has to agree with the sniffed one
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	sniffed := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[header.Header.Get("Content-Type")]
	if !ok || imageExtensions[sniffed] != ext {
		writeError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create upload directory")
		return
	}

	filename := "item_" + strconv.Itoa(itemID) + "_" + uuid.NewString() + ext
	path := filepath.Join(h.UploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save file")
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Menu.UpdateImage(r.Context(), itemID, imageURL); err != nil {
		os.Remove(path)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}
