package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/einvoicing-compliance-api/internal/domain"
	"github.com/jhoicas/einvoicing-compliance-api/pkg/logger"
)

// CountryNameResolver resuelve el nombre legible de un país por ISO3.
// Lo implementa CountryUseCase; el segundo retorno indica si se encontró.
type CountryNameResolver interface {
	ResolveName(code string) (string, bool)
}

// newSubmission inicializa los campos comunes de un registro custom.
// Approved queda en true solo si no hay identidad de creador.
func newSubmission(createdBy string) domain.Submission {
	now := time.Now().UTC()
	return domain.Submission{
		ID:        uuid.New().String(),
		CreatedBy: createdBy,
		Approved:  createdBy == "",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// applyApproval aplica un cambio del flag approved estampando quién y cuándo.
func applyApproval(s *domain.Submission, approved bool, approvedBy string) {
	s.Approved = approved
	if approved {
		if approvedBy == "" {
			approvedBy = "admin"
		}
		now := time.Now().UTC()
		s.ApprovedBy = approvedBy
		s.ApprovedAt = &now
	} else {
		s.ApprovedBy = ""
		s.ApprovedAt = nil
	}
}

// resolveCountryName busca el nombre del país; si no se resuelve se deja
// el código crudo como nombre de display y se deja traza.
func resolveCountryName(r CountryNameResolver, log *logger.Logger, code string) string {
	if name, ok := r.ResolveName(code); ok {
		return name
	}
	log.Warn().Str("countryCode", code).
		Msg("no se pudo resolver el nombre del país, se usa el código")
	return code
}
