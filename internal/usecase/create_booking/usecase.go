package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velitt/Studio-BookingService/internal/domain"
	bookingRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/booking"
	customerRepo "github.com/velitt/Studio-BookingService/internal/infra/storage/customer"
	"github.com/velitt/Studio-BookingService/internal/integrations/notifier"
)

// notifyTimeout таймаут отправки fire-and-forget уведомления
const notifyTimeout = 15 * time.Second

// UseCase use case создания бронирования
//
// Двухшаговая запись (upsert клиента, затем insert бронирования) выполняется
// в одной сериализуемой транзакции, поэтому окна неконсистентности между
// шагами нет. Уведомление отправляется после коммита в отдельной горутине
// и на результат операции не влияет
type UseCase struct {
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	leadHours               int
	nextMonthVisibleFromDay int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	notifier Notifier,
	txManager TransactionManager,
	leadHours int,
	nextMonthVisibleFromDay int,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo:            customerRepo,
		bookingRepo:             bookingRepo,
		scheduleRepo:            scheduleRepo,
		notifier:                notifier,
		txManager:               txManager,
		timeProvider:            &RealTimeProvider{},
		logger:                  logger,
		leadHours:               leadHours,
		nextMonthVisibleFromDay: nextMonthVisibleFromDay,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, date=%s, time=%s, service=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Blacklist gate: клиенту из черного списка бронирование недоступно
	existing, err := uc.customerRepo.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateBooking: failed to get customer user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	if existing != nil && existing.IsBlacklisted {
		uc.logger.Warn("CreateBooking: blacklisted user=%s rejected", req.UserID)
		return nil, ErrUserBlacklisted
	}

	// 4. Проверяем дату и время по cutoff-правилам
	if err := validateBookingMoment(req.Date, req.StartTime, now, uc.leadHours, uc.nextMonthVisibleFromDay); err != nil {
		uc.logger.Warn("CreateBooking: booking moment validation failed: %v", err)
		return nil, err
	}

	// 5. Определяем member code
	// Пустой код нового клиента заменяется сгенерированным; для существующего
	// клиента хранимый код в любом случае не перезаписывается (COALESCE в upsert)
	memberCode := strings.TrimSpace(req.MemberCode)
	if memberCode == "" && existing == nil {
		memberCode = newMemberCode()
		uc.logger.Info("CreateBooking: assigned member code %s to new user=%s", memberCode, req.UserID)
	}

	var (
		customer *domain.Customer
		created  *domain.Booking
	)

	// 6. Обе записи в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Слот должен входить в whitelist расписания даты
		configuredSlots, err := uc.scheduleRepo.GetDaySlots(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get day slots: %v", err)
			return fmt.Errorf("%w: failed to get day slots: %v", ErrInternal, err)
		}

		if len(configuredSlots) == 0 {
			uc.logger.Warn("CreateBooking: studio closed on %s", req.Date.Format(domain.DateFormat))
			return ErrStudioClosed
		}

		if !containsSlot(configuredSlots, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s not in schedule for %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrInvalidTimeSlot
		}

		// 6.2. Upsert клиента
		// При отказе вся операция прерывается - бронирование не создается
		customer, err = uc.customerRepo.Upsert(txCtx, &domain.Customer{
			UserID:     req.UserID,
			Name:       req.Name,
			Phone:      req.Phone,
			MemberCode: memberCode,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: customer upsert failed for user=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: %v", ErrCustomerWrite, err)
		}

		// 6.3. Insert бронирования со снапшотом имени/телефона
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			ServiceType: req.ServiceType,
			RemoveGel:   req.RemoveGel,
			Status:      domain.StatusConfirmed,
			Name:        req.Name,
			Phone:       req.Phone,
			EditCount:   0,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s already taken",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: booking insert failed for user=%s: %v", req.UserID, err)
			return fmt.Errorf("%w: %v", ErrBookingWrite, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for user=%s", created.ID, req.UserID)

	// 7. Fire-and-forget уведомление: результат не виден вызывающему
	uc.dispatchNotification(created, customer.MemberCode, req.DisplayName)

	return &Response{
		ID:          created.ID,
		UserID:      created.UserID,
		MemberCode:  customer.MemberCode,
		BookingDate: created.BookingDate,
		StartTime:   created.StartTime,
		ServiceType: created.ServiceType,
		RemoveGel:   created.RemoveGel,
		Status:      string(created.Status),
		Name:        created.Name,
		Phone:       created.Phone,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// dispatchNotification отправляет webhook-уведомление в отдельной горутине
// Ошибка доставки только логируется - бронирование уже зафиксировано
func (uc *UseCase) dispatchNotification(booking *domain.Booking, memberCode, displayName string) {
	if displayName == "" {
		displayName = booking.Name
	}

	payload := &notifier.BookingNotification{
		BookingID:    booking.ID,
		BookingDate:  booking.BookingDate.Format(domain.DateFormat),
		StartTime:    booking.StartTime.String(),
		ServiceType:  string(booking.ServiceType),
		ServiceLabel: booking.ServiceType.Label(),
		RemoveGel:    booking.RemoveGel,
		MemberCode:   memberCode,
		Name:         booking.Name,
		Phone:        booking.Phone,
		DisplayName:  displayName,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Notify(ctx, payload); err != nil {
			uc.logger.Error("CreateBooking: notification dispatch failed for booking id=%d: %v",
				booking.ID, err)
		}
	}()
}

// newMemberCode генерирует короткий код клиента (8 hex символов)
func newMemberCode() string {
	id := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
