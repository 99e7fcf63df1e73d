package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultReplyCategory labels replies saved without a category.
const DefaultReplyCategory = "General"

// DueDateLayout is the form and storage layout for order due dates.
const DueDateLayout = "2006-01-02"

type Order struct {
	ID      string      `json:"id"`
	Client  string      `json:"client"`
	Item    string      `json:"item"`
	DueDate time.Time   `json:"dueDate"`
	Status  OrderStatus `json:"status"`
	Total   Amount      `json:"total"`
}

type Reply struct {
	ID       string `json:"id"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// OrderForm is the raw order submission.
type OrderForm struct {
	Client  string `validate:"required"`
	Item    string `validate:"required"`
	DueDate string `validate:"omitempty,datetime=2006-01-02"`
	Total   string `validate:"required"`
}

// ReplyForm is the raw reply submission.
type ReplyForm struct {
	Question string
	Answer   string `validate:"required"`
	Category string
}

// ValidationError lists the form fields that failed, keyed by lower-case
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

var validate = validator.New()

func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	ve := &ValidationError{Fields: make(map[string]string)}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			ve.Fields[field] = "This field is required"
		case "datetime":
			ve.Fields[field] = "Use the YYYY-MM-DD format"
		default:
			ve.Fields[field] = "Invalid value"
		}
	}
	return ve
}

func trimOrderForm(f OrderForm) OrderForm {
	return OrderForm{
		Client:  strings.TrimSpace(f.Client),
		Item:    strings.TrimSpace(f.Item),
		DueDate: strings.TrimSpace(f.DueDate),
		Total:   strings.TrimSpace(f.Total),
	}
}

// NewOrder validates the form and builds a placed order from it. A missing
// due date defaults to today.
func NewOrder(f OrderForm, now time.Time) (Order, error) {
	f = trimOrderForm(f)
	if err := validateForm(f); err != nil {
		return Order{}, err
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if f.DueDate != "" {
		// Format already checked by the datetime tag.
		due, _ = time.Parse(DueDateLayout, f.DueDate)
	}
	return Order{
		ID:      NewPresetID(now),
		Client:  f.Client,
		Item:    f.Item,
		DueDate: due,
		Status:  StatusPlaced,
		Total:   Amount(ParseAmount(f.Total)),
	}, nil
}

// NewReply validates the form and builds a reply from it.
func NewReply(f ReplyForm, defaultCategory string, now time.Time) (Reply, error) {
	f = ReplyForm{
		Question: strings.TrimSpace(f.Question),
		Answer:   strings.TrimSpace(f.Answer),
		Category: strings.TrimSpace(f.Category),
	}
	if err := validateForm(f); err != nil {
		return Reply{}, err
	}
	if f.Category == "" {
		f.Category = defaultCategory
	}
	if f.Category == "" {
		f.Category = DefaultReplyCategory
	}
	return Reply{
		ID:       NewPresetID(now),
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
	}, nil
}

// AdvanceOrder moves the order with the given id one status forward and
// reports whether it was found.
func AdvanceOrder(orders []Order, id string) ([]Order, bool) {
	out := make([]Order, len(orders))
	copy(out, orders)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = out[i].Status.Advance()
			return out, true
		}
	}
	return out, false
}

// DefaultReplies seeds the reply library on first use.
func DefaultReplies() []Reply {
	return []Reply{
		{
			ID:       "default-shipping",
			Question: "How long does shipping take?",
			Answer:   "Orders ship within 3-5 working days. You will get a tracking number by message.",
			Category: "Shipping",
		},
		{
			ID:       "default-custom",
			Question: "Can you make a custom piece?",
			Answer:   "Yes! Send me the colors and size you want and I will prepare an offer.",
			Category: DefaultReplyCategory,
		},
	}
}
