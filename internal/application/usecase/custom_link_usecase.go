package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// CustomLinkUseCase CRUD y aprobación de enlaces custom.
type CustomLinkUseCase struct {
	store    repository.Store[domain.CustomLink]
	resolver CountryNameResolver
	log      *logger.Logger
}

// NewCustomLinkUseCase construye el caso de uso.
func NewCustomLinkUseCase(store repository.Store[domain.CustomLink], resolver CountryNameResolver, log *logger.Logger) *CustomLinkUseCase {
	return &CustomLinkUseCase{store: store, resolver: resolver, log: log}
}

// List lista enlaces, opcionalmente filtrados por país y/o solo aprobados.
func (uc *CustomLinkUseCase) List(countryCode string, approvedOnly bool) []domain.CustomLink {
	out := []domain.CustomLink{}
	for _, l := range uc.store.All() {
		if countryCode != "" && !strings.EqualFold(l.CountryCode, countryCode) {
			continue
		}
		if approvedOnly && !l.Approved {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ListPending enlaces pendientes de aprobación.
func (uc *CustomLinkUseCase) ListPending() []domain.CustomLink {
	out := []domain.CustomLink{}
	for _, l := range uc.store.All() {
		if !l.Approved {
			out = append(out, l)
		}
	}
	return out
}

// Create valida y persiste un enlace nuevo.
func (uc *CustomLinkUseCase) Create(in dto.CreateLinkRequest) (*domain.CustomLink, error) {
	code := strings.ToUpper(in.CountryCode)
	link := domain.CustomLink{
		Submission:  newSubmission(in.CreatedBy),
		CountryCode: code,
		CountryName: resolveCountryName(uc.resolver, uc.log, code),
		Title:       in.Title,
		URL:         in.URL,
		Description: in.Description,
		Category:    in.Category,
	}
	if err := uc.store.Insert(link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Update aplica los campos presentes sobre el registro existente.
// ID y CreatedAt son inmutables; un cambio de approved estampa
// approvedBy/approvedAt.
func (uc *CustomLinkUseCase) Update(id string, in dto.UpdateLinkRequest) (*domain.CustomLink, error) {
	link, ok := uc.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.CountryCode != nil {
		code := strings.ToUpper(*in.CountryCode)
		if !strings.EqualFold(link.CountryCode, code) {
			link.CountryCode = code
			link.CountryName = resolveCountryName(uc.resolver, uc.log, code)
		}
	}
	if in.Title != nil {
		link.Title = *in.Title
	}
	if in.URL != nil {
		link.URL = *in.URL
	}
	if in.Description != nil {
		link.Description = *in.Description
	}
	if in.Category != nil {
		link.Category = *in.Category
	}
	if in.Approved != nil && *in.Approved != link.Approved {
		applyApproval(&link.Submission, *in.Approved, in.ApprovedBy)
	}
	link.UpdatedAt = time.Now().UTC()
	if _, err := uc.store.Replace(link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Approve marca un enlace como aprobado.
func (uc *CustomLinkUseCase) Approve(id, approvedBy string) (*domain.CustomLink, error) {
	approved := true
	return uc.Update(id, dto.UpdateLinkRequest{Approved: &approved, ApprovedBy: approvedBy})
}

// Delete elimina por ID; domain.ErrNotFound si no existía.
func (uc *CustomLinkUseCase) Delete(id string) error {
	found, err := uc.store.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
