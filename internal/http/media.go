package httpapi

import (
	"net/http"
	"path/filepath"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

type UploadedFileDTO struct {
	AssetID  string `json:"assetId"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadResponse struct {
	Uploads []UploadedFileDTO `json:"uploads"`
	Failed  *ErrorResponse    `json:"failed,omitempty"`
}

var allowedBuckets = map[string]bool{
	services.BucketProjects: true,
	services.BucketPosts:    true,
	services.BucketProfile:  true,
}

// UploadMedia accepts one or more files from a multipart form. Files
// upload sequentially; a failure mid-batch keeps the URLs already written
// and reports only the file that failed.
func (s *Server) UploadMedia(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	if !allowedBuckets[bucket] {
		WriteError(w, http.StatusBadRequest, "Unknown upload bucket")
		return
	}
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		files = r.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}

	response := UploadResponse{Uploads: []UploadedFileDTO{}}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			response.Failed = &ErrorResponse{Message: "could not read " + header.Filename}
			break
		}
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		assetID, url, err := services.SaveMediaAsset(s.DB, s.Config.MediaStoragePath, bucket, contentType, header.Filename, file)
		_ = file.Close()
		if err != nil {
			message := "upload failed for " + header.Filename
			if serr, ok := err.(services.ServiceError); ok {
				message = serr.Message
			}
			response.Failed = &ErrorResponse{Message: message}
			break
		}
		response.Uploads = append(response.Uploads, UploadedFileDTO{
			AssetID:  assetID,
			URL:      url,
			Filename: header.Filename,
		})
	}
	status := http.StatusOK
	if response.Failed != nil && len(response.Uploads) == 0 {
		status = http.StatusBadGateway
	}
	WriteJSON(w, status, response)
}

func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	row := struct {
		Bucket      string  `db:"bucket"`
		StorageKey  string  `db:"storage_key"`
		Filename    *string `db:"filename"`
		ContentType string  `db:"content_type"`
	}{}
	if err := s.DB.Get(&row, `SELECT bucket, storage_key, filename, content_type FROM media_assets WHERE id = $1`, assetID); err != nil {
		WriteError(w, http.StatusNotFound, "Media not found")
		return
	}
	path := filepath.Join(s.Config.MediaStoragePath, row.Bucket, row.StorageKey)
	if row.Filename != nil {
		w.Header().Set("Content-Disposition", "inline; filename=\""+*row.Filename+"\"")
	}
	if row.ContentType != "" {
		w.Header().Set("Content-Type", row.ContentType)
	}
	http.ServeFile(w, r, path)
}
