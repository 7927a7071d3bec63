package coupon

import (
	"strings"
	"time"

	"coupon-market/internal/domain/validation"
	"coupon-market/internal/pkg/apperr"
)

// Draft is the raw client-submitted coupon data. Dates arrive as strings
// in the fixed calendar layout and are parsed during validation.
type Draft struct {
	CompanyID int64
	Title     string
	Type      Type
	StartDate string
	EndDate   string
	Price     float64
	Amount    int
	Message   string
}

type Coupon struct {
	id        int64
	companyID int64
	title     string
	ctype     Type
	startDate time.Time
	endDate   time.Time
	price     float64
	amount    int
	message   string
	createdAt time.Time
}

// New validates the draft, collecting every failing rule before giving up.
// Cross-field date rules only run when both dates parsed; a malformed date
// already carries its own field error.
func New(d Draft, now time.Time) (*Coupon, error) {
	var c apperr.Collector

	if !validation.ValidName(d.Title) {
		c.Add("title", apperr.CodeInvalidName)
	}
	if !d.Type.IsValid() {
		c.Add("type", apperr.CodeInvalidType)
	}

	datesValid := true
	start, ok := validation.ParseDate(d.StartDate)
	if !ok {
		c.Add("startDate", apperr.CodeInvalidStartDate)
		datesValid = false
	}
	end, ok := validation.ParseDate(d.EndDate)
	if !ok {
		c.Add("endDate", apperr.CodeInvalidEndDate)
		datesValid = false
	}

	if !validation.ValidAmount(d.Amount) {
		c.Add("amount", apperr.CodeInvalidAmount)
	}
	if !validation.ValidMessage(d.Message) {
		c.Add("message", apperr.CodeInvalidMessage)
	}
	if !validation.ValidPrice(d.Price) {
		c.Add("price", apperr.CodeInvalidPrice)
	}

	if datesValid && validation.EndBeforeStart(start, end) {
		c.Add("endDate", apperr.CodeEndBeforeStart)
	}
	if datesValid && validation.StartAlreadyPassed(start, now) {
		c.Add("startDate", apperr.CodeStartAlreadyPassed)
	}

	if err := c.Err("one or more coupon fields are invalid"); err != nil {
		return nil, err
	}

	return &Coupon{
		companyID: d.CompanyID,
		title:     strings.TrimSpace(d.Title),
		ctype:     d.Type,
		startDate: start,
		endDate:   end,
		price:     d.Price,
		amount:    d.Amount,
		message:   d.Message,
		createdAt: now,
	}, nil
}

// Reconstruct rebuilds a coupon from a trusted store row.
func Reconstruct(id, companyID int64, title string, ctype Type, startDate, endDate time.Time, price float64, amount int, message string, createdAt time.Time) *Coupon {
	return &Coupon{
		id:        id,
		companyID: companyID,
		title:     title,
		ctype:     ctype,
		startDate: startDate,
		endDate:   endDate,
		price:     price,
		amount:    amount,
		message:   message,
		createdAt: createdAt,
	}
}

func (c *Coupon) WithID(id int64) *Coupon {
	c.id = id
	return c
}

// InStock reports whether at least one unit remains.
func (c *Coupon) InStock() bool {
	return c.amount > 0
}

// ExpiredAt reports whether the coupon's validity window has closed: the
// expiry sweep removes coupons whose end date is on or before the cutoff.
func (c *Coupon) ExpiredAt(t time.Time) bool {
	return !c.endDate.After(validation.Truncate(t))
}

func (c *Coupon) ID() int64            { return c.id }
func (c *Coupon) CompanyID() int64     { return c.companyID }
func (c *Coupon) Title() string        { return c.title }
func (c *Coupon) Type() Type           { return c.ctype }
func (c *Coupon) StartDate() time.Time { return c.startDate }
func (c *Coupon) EndDate() time.Time   { return c.endDate }
func (c *Coupon) Price() float64       { return c.price }
func (c *Coupon) Amount() int          { return c.amount }
func (c *Coupon) Message() string      { return c.message }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
