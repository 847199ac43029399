package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joannadeng/49.capstone-project-backend/config"
	"github.com/joannadeng/49.capstone-project-backend/internal/models"
)

// ImageService stores created-recipe photos in S3 and records the public
// URL on the recipe row.
type ImageService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

var _ IImageService = (*ImageService)(nil)

func NewImageService(db *gorm.DB, s3Config *config.S3Config) *ImageService {
	return &ImageService{
		db:       db,
		s3Config: s3Config,
	}
}

// UploadRecipeImage uploads an image for one of the user's created recipes
// and returns its public URL. The recipe must exist and belong to the user.
func (s *ImageService) UploadRecipeImage(ctx context.Context, username string, recipeID uuid.UUID, body io.Reader, contentType string) (string, error) {
	var recipe models.CreatedRecipe
	if err := s.db.WithContext(ctx).Where("id = ? AND username = ?", recipeID, username).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrCreatedRecipeNotFound
		}
		return "", err
	}

	key := fmt.Sprintf("recipe-images/%s/%s%s", username, uuid.New().String(), extensionFor(contentType))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	imageURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)

	if err := s.db.WithContext(ctx).Model(&recipe).Update("image_url", imageURL).Error; err != nil {
		return "", err
	}

	log.Printf("[ImageService] Stored image for recipe %s at %s", recipeID, key)
	return imageURL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
