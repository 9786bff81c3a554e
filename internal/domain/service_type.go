package domain

// ServiceType тип услуги студии
type ServiceType string

const (
	ServiceManicure    ServiceType = "manicure"
	ServiceManicureGel ServiceType = "manicure_gel"
	ServicePedicure    ServiceType = "pedicure"
	ServicePedicureGel ServiceType = "pedicure_gel"
)

// serviceLabels человекочитаемые названия услуг для уведомлений
var serviceLabels = map[ServiceType]string{
	ServiceManicure:    "Маникюр",
	ServiceManicureGel: "Маникюр с гель-лаком",
	ServicePedicure:    "Педикюр",
	ServicePedicureGel: "Педикюр с гель-лаком",
}

// IsValid возвращает true для известного типа услуги
func (s ServiceType) IsValid() bool {
	_, ok := serviceLabels[s]
	return ok
}

// Label возвращает человекочитаемое название услуги
// Для неизвестного типа возвращает сырое значение
func (s ServiceType) Label() string {
	if label, ok := serviceLabels[s]; ok {
		return label
	}
	return string(s)
}
