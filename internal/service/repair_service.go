package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/infra"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/repository"
)

var (
	ErrRepairNotFound      = errors.New("Orden no encontrada")
	ErrRepairMissingFields = errors.New("Faltan datos obligatorios (Cliente o Servicio). Revisa el formulario.")
)

const maxEvidencePhotos = 10

type RepairService interface {
	Create(ctx context.Context, req dto.CreateRepairRequest, photos []*multipart.FileHeader, signature *multipart.FileHeader) (*model.RepairOrder, error)
	List(ctx context.Context) ([]model.RepairOrder, error)
	Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateRepairRequest, photos []*multipart.FileHeader, signature *multipart.FileHeader) (*model.RepairOrder, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	RenderPDF(ctx context.Context, id primitive.ObjectID) ([]byte, error)
}

type repairService struct {
	repo  repository.RepairRepository
	files FileStore
}

func NewRepairService(repo repository.RepairRepository, files FileStore) RepairService {
	return &repairService{repo: repo, files: files}
}

func newRepairFolio() string {
	return fmt.Sprintf("REP-%d-%d", time.Now().UnixMilli(), rand.IntN(1000))
}

// firstNonEmpty returns the first non-empty string, or fallback.
func firstNonEmpty(fallback string, values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return fallback
}

func parseDeliveryDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func (s *repairService) Create(ctx context.Context, req dto.CreateRepairRequest, photos []*multipart.FileHeader, signature *multipart.FileHeader) (*model.RepairOrder, error) {
	if req.ClientName == "" || req.Service == "" {
		return nil, ErrRepairMissingFields
	}

	photoURLs, signatureURL, err := s.saveAttachments(photos, signature)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := &model.RepairOrder{
		ClientName:   req.ClientName,
		Phone:        firstNonEmpty("Sin teléfono", req.Phone),
		Service:      req.Service,
		Cost:         req.Cost,
		DownPayment:  req.DownPayment,
		DeliveryDate: parseDeliveryDate(req.DeliveryDate),
		Comments:     req.Comments,
		Status:       firstNonEmpty("Pendiente", req.Status),
		Device: model.Device{
			// Nested keys win over flattened ones; both default to N/A.
			Brand: firstNonEmpty("N/A", req.DeviceBrand, req.Brand),
			Model: firstNonEmpty("N/A", req.DeviceModel, req.Model),
			Color: firstNonEmpty("N/A", req.DeviceColor, req.Color),
		},
		UnlockType:      firstNonEmpty(model.UnlockNone, req.UnlockType),
		UnlockCode:      req.UnlockCode,
		EvidencePhotos:  photoURLs,
		ClientSignature: signatureURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var insertErr error
	for attempt := 0; attempt < folioAttempts; attempt++ {
		order.Folio = newRepairFolio()
		insertErr = s.repo.Insert(ctx, order)
		if !errors.Is(insertErr, repository.ErrDuplicateKey) {
			break
		}
	}
	if insertErr != nil {
		return nil, insertErr
	}
	return order, nil
}

func (s *repairService) List(ctx context.Context) ([]model.RepairOrder, error) {
	return s.repo.List(ctx)
}

func (s *repairService) Update(ctx context.Context, id primitive.ObjectID, req dto.UpdateRepairRequest, photos []*multipart.FileHeader, signature *multipart.FileHeader) (*model.RepairOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}

	if req.ClientName != "" {
		order.ClientName = req.ClientName
	}
	if req.Phone != "" {
		order.Phone = req.Phone
	}
	if req.Service != "" {
		order.Service = req.Service
	}
	if req.Cost != nil {
		order.Cost = *req.Cost
	}
	if req.DownPayment != nil {
		order.DownPayment = *req.DownPayment
	}
	if d := parseDeliveryDate(req.DeliveryDate); d != nil {
		order.DeliveryDate = d
	}
	if req.Comments != nil {
		order.Comments = *req.Comments
	}
	if req.Status != "" {
		order.Status = req.Status
		// Delivery closes the order; the timestamp sticks on first transition.
		if req.Status == "Entregado" && order.ClosedAt == nil {
			now := time.Now().UTC()
			order.ClosedAt = &now
		}
	}
	if req.DeviceBrand != "" {
		order.Device.Brand = req.DeviceBrand
	}
	if req.DeviceModel != "" {
		order.Device.Model = req.DeviceModel
	}
	if req.DeviceColor != "" {
		order.Device.Color = req.DeviceColor
	}
	if req.UnlockType != "" {
		order.UnlockType = req.UnlockType
	}
	if req.UnlockCode != nil {
		order.UnlockCode = *req.UnlockCode
	}

	photoURLs, signatureURL, err := s.saveAttachments(photos, signature)
	if err != nil {
		return nil, err
	}
	// New photos replace the stored sequence wholesale.
	if len(photoURLs) > 0 {
		order.EvidencePhotos = photoURLs
	}
	if signatureURL != "" {
		order.ClientSignature = signatureURL
	}

	order.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *repairService) Delete(ctx context.Context, id primitive.ObjectID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrRepairNotFound
	}
	return err
}

func (s *repairService) RenderPDF(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRepairNotFound
		}
		return nil, err
	}
	return infra.GenerateRepairPDF(order)
}

// saveAttachments streams the uploaded files to disk and returns their public
// URLs. The photo sequence is never nil so it serializes as [].
func (s *repairService) saveAttachments(photos []*multipart.FileHeader, signature *multipart.FileHeader) ([]string, string, error) {
	if len(photos) > maxEvidencePhotos {
		photos = photos[:maxEvidencePhotos]
	}
	photoURLs := make([]string, 0, len(photos))
	for _, fh := range photos {
		url, err := s.files.Save(fh, infra.SubdirRepairs, "evidencePhotos")
		if err != nil {
			return nil, "", err
		}
		photoURLs = append(photoURLs, url)
	}

	var signatureURL string
	if signature != nil {
		url, err := s.files.Save(signature, infra.SubdirRepairs, "clientSignature")
		if err != nil {
			return nil, "", err
		}
		signatureURL = url
	}
	return photoURLs, signatureURL, nil
}
