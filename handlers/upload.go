package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"qr-attendance/pkg/apperror"
)

const (
	profilePicField   = "profilePic"
	profilePicDir     = "profile_pics"
	maxProfilePicSize = 5 * 1024 * 1024
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// saveProfilePic stores the optional multipart profilePic under uploadDir/profile_pics and
// returns its public path, or "" when the request carries no picture.
func saveProfilePic(c *fiber.Ctx, uploadDir string) (string, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return "", nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return "", apperror.Validation("Invalid multipart form")
	}
	files := form.File[profilePicField]
	if len(files) == 0 {
		return "", nil
	}
	file := files[0]

	ext, ok := allowedImageTypes[file.Header.Get(fiber.HeaderContentType)]
	if !ok {
		return "", apperror.Validation("Unsupported file type. Only JPG, PNG, GIF and WEBP are allowed.")
	}
	if file.Size > maxProfilePicSize {
		return "", apperror.Validation(fmt.Sprintf("File too large. Maximum is %d MB.", maxProfilePicSize/1024/1024))
	}

	dir := filepath.Join(uploadDir, profilePicDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperror.Internal("create upload dir", err)
	}

	fileName := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(dir, fileName)); err != nil {
		return "", apperror.Internal("save profile picture", err)
	}
	return "/uploads/" + profilePicDir + "/" + fileName, nil
}

// removeProfilePic deletes a picture stored by saveProfilePic whose record was never written.
func removeProfilePic(uploadDir, publicPath string) {
	if publicPath == "" {
		return
	}
	path := filepath.Join(uploadDir, profilePicDir, filepath.Base(publicPath))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("remove orphaned profile picture %s: %v", path, err)
	}
}
