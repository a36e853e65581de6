package service

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
)

var ErrProductNotFound = errors.New("Producto no encontrado")

// FileStore abstracts upload persistence (see infra.Storage).
type FileStore interface {
	Save(fh *multipart.FileHeader, subdir, field string) (string, error)
}

type ProductService interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	Create(ctx context.Context, req dto.CreateProductRequest, image *multipart.FileHeader) (*model.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateProductRequest, image *multipart.FileHeader) (*model.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type productService struct {
	repo  repository.ProductRepository
	files FileStore
}

func NewProductService(repo repository.ProductRepository, files FileStore) ProductService {
	return &productService{repo: repo, files: files}
}

func (s *productService) List(ctx context.Context, category string) ([]model.Product, error) {
	return s.repo.List(ctx, category)
}

func (s *productService) Get(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest, image *multipart.FileHeader) (*model.Product, error) {
	imageURL := req.Image
	if image != nil {
		url, err := s.files.Save(image, infra.SubdirProducts, "image")
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	now := time.Now().UTC()
	p := &model.Product{
		Model:     req.Model,
		Brand:     req.Brand,
		Type:      req.Type,
		Color:     req.Color,
		Year:      req.Year,
		Category:  req.Category,
		Stock:     req.Stock,
		Price:     req.Price,
		Image:     imageURL,
		QrCode:    req.QrCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update is a partial replacement. The image is only replaced when a new file
// or a non-empty URL comes in; everything else keeps the stored value when
// the request omits it.
func (s *productService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateProductRequest, image *multipart.FileHeader) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if req.Model != "" {
		p.Model = req.Model
	}
	if req.Brand != "" {
		p.Brand = req.Brand
	}
	if req.Type != "" {
		p.Type = req.Type
	}
	if req.Color != "" {
		p.Color = req.Color
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.Year != nil {
		p.Year = *req.Year
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.QrCode != nil {
		p.QrCode = *req.QrCode
	}

	switch {
	case image != nil:
		url, err := s.files.Save(image, infra.SubdirProducts, "image")
		if err != nil {
			return nil, err
		}
		p.Image = url
	case req.Image != "":
		p.Image = req.Image
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}
