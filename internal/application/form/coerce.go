package form

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain/entity"
)

// coercer convierte texto a tipos de dominio acumulando errores por campo.
type coercer struct {
	errs FieldErrors
}

func (c *coercer) fail(field, msg string) {
	if c.errs == nil {
		c.errs = FieldErrors{}
	}
	if _, ok := c.errs[field]; !ok {
		c.errs[field] = msg
	}
}

func (c *coercer) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func (c *coercer) decimal(field, s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		c.fail(field, "debe ser un número")
		return decimal.Zero
	}
	return d
}

func (c *coercer) positive(field, s string) decimal.Decimal {
	d := c.decimal(field, s)
	if !d.IsPositive() {
		c.fail(field, "debe ser mayor que cero")
	}
	return d
}

func (c *coercer) nonNegative(field, s string) decimal.Decimal {
	d := c.decimal(field, s)
	if d.IsNegative() {
		c.fail(field, "no puede ser negativo")
	}
	return d
}

func (c *coercer) id(field, s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		c.fail(field, "identificador inválido")
		return 0
	}
	return n
}

func (c *coercer) optionalID(field, s string) *int64 {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n := c.id(field, s)
	return &n
}

func (c *coercer) intRange(field, s string, lo, hi int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		c.fail(field, "debe ser un número entero")
		return 0
	}
	if n < lo || n > hi {
		c.fail(field, "fuera de rango ("+strconv.Itoa(lo)+"-"+strconv.Itoa(hi)+")")
	}
	return n
}

func (c *coercer) date(field, s string) entity.Date {
	if strings.TrimSpace(s) == "" {
		return entity.Date{}
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		c.fail(field, "fecha inválida (AAAA-MM-DD)")
	}
	return d
}
