// Package checkout описывает оформление заказа как конечный автомат.
// Transition — чистая функция без обращения к хранилищам и таймерам.
package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"glutivia/internal/domain"
)

// Step шаг оформления
type Step string

const (
	StepCart          Step = "cart"
	StepCustomerInfo  Step = "customer-info"
	StepPaymentMethod Step = "payment-method"
	StepCardDetails   Step = "card-details"
	StepCODDetails    Step = "cod-details"
	StepSuccess       Step = "success"
)

// DefaultCountryCode код страны по умолчанию (Марокко)
const DefaultCountryCode = "+212"

// CountryCodes телефонные коды, доступные при оформлении
var CountryCodes = []string{"+212", "+33", "+971", "+1", "+44", "+34", "+39"}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrBusy              = errors.New("payment is being processed")
)

// CustomerInfo данные доставки
type CustomerInfo struct {
	FirstName   string `json:"firstName" validate:"notblank"`
	LastName    string `json:"lastName" validate:"notblank"`
	CountryCode string `json:"countryCode" validate:"omitempty,countrycode"`
	Phone       string `json:"phone" validate:"notblank"`
	Location    string `json:"location" validate:"notblank"`
}

// CardData реквизиты карты; живут только в памяти на время оформления
type CardData struct {
	CardName   string `json:"cardName" validate:"notblank"`
	CardNumber string `json:"cardNumber" validate:"cardnumber"`
	Expiry     string `json:"expiry" validate:"expiry"`
	CVV        string `json:"cvv" validate:"len=3,number"`
}

// State черновик оформления: текущий шаг, введённые данные и ошибки полей
type State struct {
	Step       Step                 `json:"step"`
	Processing bool                 `json:"processing"`
	Method     domain.PaymentMethod `json:"method,omitempty"`
	Customer   CustomerInfo         `json:"customer"`
	Card       CardData             `json:"-"`
	Errors     map[string]string    `json:"errors,omitempty"`
}

// Initial состояние до начала оформления
func Initial() State {
	return State{Step: StepCart, Customer: CustomerInfo{CountryCode: DefaultCountryCode}}
}

// EventKind тип события автомата
type EventKind string

const (
	EventBegin      EventKind = "begin"
	EventSubmitInfo EventKind = "submit-customer-info"
	EventChooseCard EventKind = "choose-card"
	EventChooseCOD  EventKind = "choose-cod"
	EventSubmitCard EventKind = "submit-card"
	EventConfirmCOD EventKind = "confirm-cod"
	EventCompleted  EventKind = "completed"
	EventAbort      EventKind = "abort"
	EventBack       EventKind = "back"
	EventCancel     EventKind = "cancel"
	EventReset      EventKind = "reset"
)

// Event входное событие; заполняются только поля, нужные его типу
type Event struct {
	Kind     EventKind
	CartSize int
	Customer CustomerInfo
	Card     CardData
}

// Transition вычисляет следующее состояние. При ошибке валидации возвращается
// состояние с заполненными Errors и *ValidationError; шаг не меняется.
func Transition(s State, e Event) (State, error) {
	if s.Processing && e.Kind != EventCompleted && e.Kind != EventAbort {
		return s, ErrBusy
	}

	switch e.Kind {
	case EventBegin:
		if s.Step != StepCart {
			return s, invalid(s, e)
		}
		if e.CartSize <= 0 {
			return s, ErrEmptyCart
		}
		next := Initial()
		next.Step = StepCustomerInfo
		return next, nil

	case EventSubmitInfo:
		if s.Step != StepCustomerInfo {
			return s, invalid(s, e)
		}
		s.Customer = normalizeCustomer(e.Customer)
		if errs := ValidateCustomer(s.Customer); len(errs) > 0 {
			s.Errors = errs
			return s, &ValidationError{Fields: errs}
		}
		s.Errors = nil
		s.Step = StepPaymentMethod
		return s, nil

	case EventChooseCard, EventChooseCOD:
		if s.Step != StepPaymentMethod {
			return s, invalid(s, e)
		}
		s.Errors = nil
		if e.Kind == EventChooseCard {
			s.Step = StepCardDetails
		} else {
			s.Step = StepCODDetails
		}
		return s, nil

	case EventSubmitCard:
		if s.Step != StepCardDetails {
			return s, invalid(s, e)
		}
		s.Card = MaskCard(e.Card)
		if errs := ValidateCard(s.Card); len(errs) > 0 {
			s.Errors = errs
			return s, &ValidationError{Fields: errs}
		}
		s.Errors = nil
		s.Processing = true
		s.Method = domain.PaymentCard
		return s, nil

	case EventConfirmCOD:
		if s.Step != StepCODDetails {
			return s, invalid(s, e)
		}
		s.Errors = nil
		s.Processing = true
		s.Method = domain.PaymentCOD
		return s, nil

	case EventCompleted:
		if !s.Processing {
			return s, invalid(s, e)
		}
		s.Processing = false
		s.Step = StepSuccess
		s.Card = CardData{}
		return s, nil

	case EventAbort:
		if !s.Processing {
			return s, invalid(s, e)
		}
		s.Processing = false
		s.Method = ""
		return s, nil

	case EventBack:
		switch s.Step {
		case StepPaymentMethod:
			s.Step = StepCustomerInfo
		case StepCardDetails, StepCODDetails:
			s.Step = StepPaymentMethod
		default:
			return s, invalid(s, e)
		}
		s.Errors = nil
		return s, nil

	case EventCancel:
		if s.Step == StepSuccess {
			return s, invalid(s, e)
		}
		// the draft is discarded entirely
		return Initial(), nil

	case EventReset:
		if s.Step != StepSuccess {
			return s, invalid(s, e)
		}
		return Initial(), nil
	}
	return s, fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, e.Kind)
}

func invalid(s State, e Event) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e.Kind, s.Step)
}

func normalizeCustomer(c CustomerInfo) CustomerInfo {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Location = strings.TrimSpace(c.Location)
	c.CountryCode = strings.TrimSpace(c.CountryCode)
	if c.CountryCode == "" {
		c.CountryCode = DefaultCountryCode
	}
	return c
}

// BuildOrder собирает заказ из завершённого черновика и снимка корзины
func BuildOrder(s State, id string, items []domain.CartItem, total float64, now time.Time) domain.Order {
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)
	return domain.Order{
		ID:        id,
		Items:     snapshot,
		Total:     total,
		Method:    s.Method,
		Timestamp: now,
		FirstName: s.Customer.FirstName,
		LastName:  s.Customer.LastName,
		Phone:     s.Customer.CountryCode + " " + s.Customer.Phone,
		Location:  s.Customer.Location,
	}
}
