package models

type ApplicationStatus string

// Статусы жизненного цикла отклика. Значения регистрозависимы
// и проверяются на каждой входной границе.
const (
	ApplicationStatusApplied   ApplicationStatus = "Applied"
	ApplicationStatusInterview ApplicationStatus = "Interview"
	ApplicationStatusOffer     ApplicationStatus = "Offer"
	ApplicationStatusRejected  ApplicationStatus = "Rejected"
)

// AllApplicationStatuses - фиксированный порядок для агрегаций и валидации
var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusInterview,
	ApplicationStatusOffer,
	ApplicationStatusRejected,
}

// IsValidApplicationStatus проверяет значение против закрытого множества
func IsValidApplicationStatus(s string) bool {
	for _, status := range AllApplicationStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
