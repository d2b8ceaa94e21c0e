package handlers

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"vatcalc/internal/format"
	"vatcalc/internal/models"
	"vatcalc/internal/services/vat"
	"vatcalc/internal/utils/response"
	"vatcalc/internal/validation"
)

// calculateRequest is the form payload. Omitted numbers fall back to the
// country's seed values, and an omitted country to the default country.
type calculateRequest struct {
	Country    string   `json:"country" validate:"omitempty,len=2,alpha"`
	Amount     *float64 `json:"amount"`
	FlatFee    *float64 `json:"flat_fee"`
	PercentFee *float64 `json:"percent_fee"`
}

// CalculationResponse is the body returned for every calculation.
type CalculationResponse struct {
	Result    vat.Result    `json:"result"`
	ShowVAT   bool          `json:"show_vat"`
	Breakdown []format.Line `json:"breakdown"`
}

type CalculatorHandler struct {
	service  vat.Service
	validate *validator.Validate
	log      *zap.Logger
}

func NewCalculatorHandler(svc vat.Service, log *zap.Logger) *CalculatorHandler {
	if log == nil {
		log = zap.NewNop()
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CalculatorHandler{service: svc, validate: v, log: log}
}

// ListCountries returns the supported countries in display order.
func (h *CalculatorHandler) ListCountries(c *fiber.Ctx) error {
	return response.Success(c, "Countries retrieved", h.service.Countries())
}

// GetCountry returns one country config.
func (h *CalculatorHandler) GetCountry(c *fiber.Ctx) error {
	cfg, err := h.service.Country(c.Params("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return response.Success(c, "Country retrieved", cfg)
}

// CountryDefaults computes the seed calculation shown when a country is picked.
func (h *CalculatorHandler) CountryDefaults(c *fiber.Ctx) error {
	percent := models.DefaultPercentFee
	if raw := c.Query("percent_fee"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.ValidationError(c, []validation.Error{{Field: "percent_fee", Message: "must be a number"}})
		}
		percent = p
	}

	res, err := h.service.Defaults(c.UserContext(), c.Params("code"), percent)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, res)
}

// Calculate handles POST /api/calculate with a JSON body.
func (h *CalculatorHandler) Calculate(c *fiber.Ctx) error {
	var input calculateRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	return h.calculate(c, input)
}

// CalculateQuery handles GET /api/calculate with query parameters, so a form
// can re-pull the result after every input change.
func (h *CalculatorHandler) CalculateQuery(c *fiber.Ctx) error {
	input := calculateRequest{Country: c.Query("country")}

	v := validation.New()
	input.Amount = queryFloat(c, v, "amount")
	input.FlatFee = queryFloat(c, v, "flat_fee")
	input.PercentFee = queryFloat(c, v, "percent_fee")
	if !v.Valid() {
		return response.ValidationError(c, v.Errors)
	}

	return h.calculate(c, input)
}

func (h *CalculatorHandler) calculate(c *fiber.Ctx, input calculateRequest) error {
	input.Country = strings.TrimSpace(input.Country)
	if err := h.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]validation.Error, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, validation.Error{Field: fe.Field(), Message: "failed " + fe.Tag() + " check"})
			}
			return response.ValidationError(c, fields)
		}
		return response.BadRequest(c, err.Error())
	}

	code := input.Country
	if code == "" {
		code = string(models.DefaultCountry)
	}
	cfg, err := h.service.Country(code)
	if err != nil {
		return h.fail(c, err)
	}

	req := vat.CalculationRequest{
		Country:    code,
		Amount:     valueOr(input.Amount, cfg.DefaultAmount),
		FlatFee:    valueOr(input.FlatFee, cfg.DefaultFlatFee),
		PercentFee: valueOr(input.PercentFee, models.DefaultPercentFee),
	}

	res, err := h.service.Calculate(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return h.respond(c, res)
}

func (h *CalculatorHandler) respond(c *fiber.Ctx, res *vat.Result) error {
	return response.Success(c, "Calculation successful", CalculationResponse{
		Result:    *res,
		ShowVAT:   res.ShowVAT(),
		Breakdown: format.Breakdown(*res),
	})
}

func (h *CalculatorHandler) fail(c *fiber.Ctx, err error) error {
	var ve *vat.ValidationError
	switch {
	case errors.Is(err, models.ErrUnknownCountry):
		return response.NotFound(c, err.Error())
	case errors.As(err, &ve):
		return response.ValidationError(c, ve.Fields)
	default:
		h.log.Error("calculation failed", zap.Error(err))
		return response.ServerError(c, "Failed to calculate")
	}
}

func queryFloat(c *fiber.Ctx, v *validation.Validator, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	v.Check(err == nil, key, "must be a number", nil)
	if err != nil {
		return nil
	}
	return &f
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
