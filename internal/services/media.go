package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	BucketProjects = "projects"
	BucketPosts    = "posts"
	BucketProfile  = "profile"
)

func EnsureStoragePath(base string, bucket string) (string, error) {
	path := filepath.Join(base, bucket)
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// StorageKey builds a collision-resistant object name from the upload time,
// a random suffix and the original extension, so concurrent uploads never
// overwrite each other.
func StorageKey(filename string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	ext := strings.ToLower(filepath.Ext(filename))
	return time.Now().UTC().Format("20060102150405") + "-" + hex.EncodeToString(suffix) + ext
}

// SaveMediaAsset streams the upload to disk under bucket/key, records it in
// media_assets and returns the asset id plus its public URL. A failed
// database insert removes the written file so nothing half-commits.
func SaveMediaAsset(db *sqlx.DB, basePath, bucket, contentType, filename string, body io.Reader) (string, string, error) {
	bucketPath, err := EnsureStoragePath(basePath, bucket)
	if err != nil {
		return "", "", ErrStorage("media storage unavailable")
	}
	assetID := uuid.NewString()
	storageKey := StorageKey(filename)
	targetPath := filepath.Join(bucketPath, storageKey)

	file, err := os.Create(targetPath)
	if err != nil {
		return "", "", ErrStorage("media storage unavailable")
	}
	hasher := sha256.New()
	writer := io.MultiWriter(file, hasher)
	size, err := io.Copy(writer, body)
	_ = file.Close()
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", ErrStorage("upload failed")
	}
	if size == 0 {
		_ = os.Remove(targetPath)
		return "", "", ErrBadRequest("uploaded file is empty")
	}
	sha := hex.EncodeToString(hasher.Sum(nil))

	_, err = db.Exec(`
INSERT INTO media_assets (id, bucket, storage_key, filename, content_type, size_bytes, sha256, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
`, assetID, bucket, storageKey, filename, contentType, size, sha, time.Now().UTC())
	if err != nil {
		_ = os.Remove(targetPath)
		return "", "", ErrStorage("upload failed")
	}
	return assetID, BuildAssetURL(assetID), nil
}

func BuildAssetURL(assetID string) string {
	return "/media/assets/" + assetID + "/content"
}

// IsExternalURL reports whether an image field value points at an
// externally hosted asset; such values pass through unmodified and are
// never re-uploaded.
func IsExternalURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// NormalizeImageRef accepts the tagged union an image field holds: an
// uploaded asset URL, an external URL, or nothing.
func NormalizeImageRef(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if IsExternalURL(trimmed) || strings.HasPrefix(trimmed, "/media/assets/") {
		return &trimmed
	}
	return nil
}

func DeleteAsset(db *sqlx.DB, basePath string, assetID string) error {
	row := struct {
		Bucket     string `db:"bucket"`
		StorageKey string `db:"storage_key"`
	}{}
	if err := db.Get(&row, `SELECT bucket, storage_key FROM media_assets WHERE id = $1`, assetID); err != nil {
		return nil
	}
	_, _ = db.Exec(`DELETE FROM media_assets WHERE id = $1`, assetID)
	_ = os.Remove(filepath.Join(basePath, row.Bucket, row.StorageKey))
	return nil
}
