package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// CustomLegislationUseCase CRUD y aprobación de legislación custom.
type CustomLegislationUseCase struct {
	store    repository.Store[domain.CustomLegislation]
	resolver CountryNameResolver
	log      *logger.Logger
}

// NewCustomLegislationUseCase construye el caso de uso.
func NewCustomLegislationUseCase(store repository.Store[domain.CustomLegislation], resolver CountryNameResolver, log *logger.Logger) *CustomLegislationUseCase {
	return &CustomLegislationUseCase{store: store, resolver: resolver, log: log}
}

// List lista legislación, opcionalmente por país y/o solo aprobada.
func (uc *CustomLegislationUseCase) List(countryCode string, approvedOnly bool) []domain.CustomLegislation {
	out := []domain.CustomLegislation{}
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

// ListPending legislación pendiente de aprobación.
func (uc *CustomLegislationUseCase) ListPending() []domain.CustomLegislation {
	out := []domain.CustomLegislation{}
	for _, l := range uc.store.All() {
		if !l.Approved {
			out = append(out, l)
		}
	}
	return out
}

// Create valida y persiste legislación nueva.
func (uc *CustomLegislationUseCase) Create(in dto.CreateLegislationRequest) (*domain.CustomLegislation, error) {
	code := strings.ToUpper(in.CountryCode)
	leg := domain.CustomLegislation{
		Submission:    newSubmission(in.CreatedBy),
		CountryCode:   code,
		CountryName:   resolveCountryName(uc.resolver, uc.log, code),
		Name:          in.Name,
		URL:           in.URL,
		Language:      in.Language,
		Channel:       domain.Channel(in.Channel),
		EffectiveDate: in.EffectiveDate,
	}
	if err := uc.store.Insert(leg); err != nil {
		return nil, err
	}
	return &leg, nil
}

// Update aplica los campos presentes sobre el registro existente.
func (uc *CustomLegislationUseCase) Update(id string, in dto.UpdateLegislationRequest) (*domain.CustomLegislation, error) {
	leg, ok := uc.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.CountryCode != nil {
		code := strings.ToUpper(*in.CountryCode)
		if !strings.EqualFold(leg.CountryCode, code) {
			leg.CountryCode = code
			leg.CountryName = resolveCountryName(uc.resolver, uc.log, code)
		}
	}
	if in.Name != nil {
		leg.Name = *in.Name
	}
	if in.URL != nil {
		leg.URL = *in.URL
	}
	if in.Language != nil {
		leg.Language = *in.Language
	}
	if in.Channel != nil {
		leg.Channel = domain.Channel(*in.Channel)
	}
	if in.EffectiveDate != nil {
		leg.EffectiveDate = *in.EffectiveDate
	}
	if in.Approved != nil && *in.Approved != leg.Approved {
		applyApproval(&leg.Submission, *in.Approved, in.ApprovedBy)
	}
	leg.UpdatedAt = time.Now().UTC()
	if _, err := uc.store.Replace(leg); err != nil {
		return nil, err
	}
	return &leg, nil
}

// Approve marca legislación como aprobada.
func (uc *CustomLegislationUseCase) Approve(id, approvedBy string) (*domain.CustomLegislation, error) {
	approved := true
	return uc.Update(id, dto.UpdateLegislationRequest{Approved: &approved, ApprovedBy: approvedBy})
}

// Delete elimina por ID; domain.ErrNotFound si no existía.
func (uc *CustomLegislationUseCase) Delete(id string) error {
	found, err := uc.store.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
