package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// RekognitionService labels meal photos. Like the extraction service it
// sits in front of the engine: a photo becomes a list of ingredient
// guesses with default portions, which the engine then estimates.
type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// RecognizeLabels returns the top labels for a base64-encoded data-URI image.
func (r *RekognitionService) RecognizeLabels(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if !strings.HasPrefix(base64Img, "data:image") || idx < 0 {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

// nonFoodLabels are scene/object labels Rekognition commonly attaches to
// meal photos; they carry no nutrition signal and are filtered out.
var nonFoodLabels = map[string]bool{
	"food":       true,
	"meal":       true,
	"dish":       true,
	"plate":      true,
	"bowl":       true,
	"cutlery":    true,
	"table":      true,
	"dining":     true,
	"restaurant": true,
	"lunch":      true,
	"dinner":     true,
	"breakfast":  true,
	"person":     true,
	"plant":      true,
}

// RecognizeIngredients turns a meal photo into ingredient guesses with a
// default 100g portion each. The engine's coverage scorer flags how
// trustworthy the resulting estimate is.
func (r *RekognitionService) RecognizeIngredients(base64Img string) ([]models.Ingredient, error) {
	labels, err := r.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}

	var ingredients []models.Ingredient
	for _, label := range labels {
		name := strings.ToLower(strings.TrimSpace(label))
		if name == "" || nonFoodLabels[name] {
			continue
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:     name,
			Quantity: 100,
			Unit:     "g",
		})
	}
	if len(ingredients) == 0 {
		return nil, errors.New("no food labels detected")
	}
	return ingredients, nil
}
