package services

import (
	"net/http"

	"jobtrack_backend/pkg/apperrors"
)

// checkOwnership - общее правило авторизации: запись видна и изменяема
// только создавшему ее пользователю. Вызывается ПОСЛЕ проверки существования
// записи, поэтому несуществующий id всегда дает NotFound, а чужой - Forbidden.
func checkOwnership(ownerID, requesterID, domain string) error {
	if ownerID != requesterID {
		return apperrors.New(apperrors.CodeForbidden, domain, "Not authorized", http.StatusForbidden)
	}
	return nil
}
