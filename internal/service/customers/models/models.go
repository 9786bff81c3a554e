package models

import "github.com/velitt/Studio-BookingService/internal/domain"

// ProfileResponse профиль клиента для формы бронирования
// Registered=false означает, что клиент еще ни разу не бронировал;
// IsBlacklisted=true полностью блокирует клиенту форму
type ProfileResponse struct {
	UserID        string `json:"userId"`
	Registered    bool   `json:"registered"`
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	MemberCode    string `json:"memberCode,omitempty"`
	IsBlacklisted bool   `json:"isBlacklisted"`
}

// FromDomainCustomer конвертирует доменного клиента в профиль
func FromDomainCustomer(c *domain.Customer) *ProfileResponse {
	return &ProfileResponse{
		UserID:        c.UserID,
		Registered:    true,
		Name:          c.Name,
		Phone:         c.Phone,
		MemberCode:    c.MemberCode,
		IsBlacklisted: c.IsBlacklisted,
	}
}

// EmptyProfile профиль еще не зарегистрированного клиента
func EmptyProfile(userID string) *ProfileResponse {
	return &ProfileResponse{
		UserID:     userID,
		Registered: false,
	}
}
