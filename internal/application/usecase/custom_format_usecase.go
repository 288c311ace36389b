package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/einvoicing-compliance-api/internal/application/dto"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/internal/domain/repository"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// CustomFormatUseCase CRUD y aprobación de formatos custom.
type CustomFormatUseCase struct {
	store    repository.Store[domain.CustomFormat]
	resolver CountryNameResolver
	log      *logger.Logger
}

// NewCustomFormatUseCase construye el caso de uso.
func NewCustomFormatUseCase(store repository.Store[domain.CustomFormat], resolver CountryNameResolver, log *logger.Logger) *CustomFormatUseCase {
	return &CustomFormatUseCase{store: store, resolver: resolver, log: log}
}

// List lista formatos, opcionalmente por país y/o solo aprobados.
func (uc *CustomFormatUseCase) List(countryCode string, approvedOnly bool) []domain.CustomFormat {
	out := []domain.CustomFormat{}
	for _, f := range uc.store.All() {
		if countryCode != "" && !strings.EqualFold(f.CountryCode, countryCode) {
			continue
		}
		if approvedOnly && !f.Approved {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ListPending formatos pendientes de aprobación.
func (uc *CustomFormatUseCase) ListPending() []domain.CustomFormat {
	out := []domain.CustomFormat{}
	for _, f := range uc.store.All() {
		if !f.Approved {
			out = append(out, f)
		}
	}
	return out
}

// Create valida y persiste un formato nuevo.
func (uc *CustomFormatUseCase) Create(in dto.CreateFormatRequest) (*domain.CustomFormat, error) {
	code := strings.ToUpper(in.CountryCode)
	format := domain.CustomFormat{
		Submission:       newSubmission(in.CreatedBy),
		CountryCode:      code,
		CountryName:      resolveCountryName(uc.resolver, uc.log, code),
		Channel:          domain.Channel(in.Channel),
		Type:             domain.FormatType(in.Type),
		Name:             in.Name,
		Version:          in.Version,
		SpecificationURL: in.SpecificationURL,
		AuthorityName:    in.AuthorityName,
	}
	if err := uc.store.Insert(format); err != nil {
		return nil, err
	}
	return &format, nil
}

// Update aplica los campos presentes sobre el registro existente.
func (uc *CustomFormatUseCase) Update(id string, in dto.UpdateFormatRequest) (*domain.CustomFormat, error) {
	format, ok := uc.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.CountryCode != nil {
		code := strings.ToUpper(*in.CountryCode)
		if !strings.EqualFold(format.CountryCode, code) {
			format.CountryCode = code
			format.CountryName = resolveCountryName(uc.resolver, uc.log, code)
		}
	}
	if in.Channel != nil {
		format.Channel = domain.Channel(*in.Channel)
	}
	if in.Type != nil {
		format.Type = domain.FormatType(*in.Type)
	}
	if in.Name != nil {
		format.Name = *in.Name
	}
	if in.Version != nil {
		format.Version = *in.Version
	}
	if in.SpecificationURL != nil {
		format.SpecificationURL = *in.SpecificationURL
	}
	if in.AuthorityName != nil {
		format.AuthorityName = *in.AuthorityName
	}
	if in.Approved != nil && *in.Approved != format.Approved {
		applyApproval(&format.Submission, *in.Approved, in.ApprovedBy)
	}
	format.UpdatedAt = time.Now().UTC()
	if _, err := uc.store.Replace(format); err != nil {
		return nil, err
	}
	return &format, nil
}

// Approve marca un formato como aprobado.
func (uc *CustomFormatUseCase) Approve(id, approvedBy string) (*domain.CustomFormat, error) {
	approved := true
	return uc.Update(id, dto.UpdateFormatRequest{Approved: &approved, ApprovedBy: approvedBy})
}

// Delete elimina por ID; domain.ErrNotFound si no existía.
func (uc *CustomFormatUseCase) Delete(id string) error {
	found, err := uc.store.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
